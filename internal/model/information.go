package model

import "time"

// Information represents an information or data asset.
type Information struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"ownerId"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	Type            string    `json:"type"`
	Source          string    `json:"source,omitempty"`
	AcquisitionDate time.Time `json:"acquisitionDate"`
	Confidentiality string    `json:"confidentiality"`
	Value           string    `json:"value,omitempty"`
	FileURL         string    `json:"fileUrl,omitempty"`
	Summary         string    `json:"summary,omitempty"`
	Tags            string    `json:"tags,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ConfidentialityInternal is the default confidentiality level.
const ConfidentialityInternal = "internal"
