package model

import "time"

// Technology represents a technology asset (hardware, software, equipment).
type Technology struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"ownerId"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	Manufacturer    string    `json:"manufacturer,omitempty"`
	Model           string    `json:"model,omitempty"`
	SerialNumber    string    `json:"serialNumber,omitempty"`
	PurchaseDate    time.Time `json:"purchaseDate"`
	PurchasePrice   float64   `json:"purchasePrice"`
	MaintenanceCost float64   `json:"maintenanceCost"`
	Status          string    `json:"status"`
	Location        string    `json:"location,omitempty"`
	Specifications  string    `json:"specifications,omitempty"`
	AutomationLevel *float64  `json:"automationLevel,omitempty"`
	AICapabilities  string    `json:"aiCapabilities,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TechnologyStatusOperational is the default technology status.
const TechnologyStatusOperational = "operational"
