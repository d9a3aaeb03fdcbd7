package model

import "time"

// Capital represents a financial holding (cash, stocks, bonds, ...).
type Capital struct {
	ID              string     `json:"id"`
	OwnerID         string     `json:"ownerId"`
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	Category        string     `json:"category"`
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency"`
	AcquisitionDate time.Time  `json:"acquisitionDate"`
	MaturityDate    *time.Time `json:"maturityDate,omitempty"`
	Status          string     `json:"status"`
	Description     string     `json:"description,omitempty"`
	Returns         *float64   `json:"returns,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Default capital field values.
const (
	CapitalStatusActive = "active"
	CurrencyDefault     = "USD"
)
