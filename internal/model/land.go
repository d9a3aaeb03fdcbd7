package model

import "time"

// Land represents a land or real-estate holding.
type Land struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"ownerId"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	Area            float64   `json:"area"`
	AreaUnit        string    `json:"areaUnit"`
	Value           float64   `json:"value"`
	AcquisitionDate time.Time `json:"acquisitionDate"`
	Status          string    `json:"status"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Defaults for omitted land fields.
const (
	LandStatusActive = "active"
	AreaUnitAcres    = "acres"
)
