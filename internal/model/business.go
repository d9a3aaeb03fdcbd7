package model

import "time"

// Business represents a business ownership stake.
type Business struct {
	ID                  string    `json:"id"`
	OwnerID             string    `json:"ownerId"`
	Name                string    `json:"name"`
	Industry            string    `json:"industry"`
	RegistrationNumber  string    `json:"registrationNumber,omitempty"`
	EstablishedDate     time.Time `json:"establishedDate"`
	OwnershipPercentage float64   `json:"ownershipPercentage"`
	InvestmentAmount    float64   `json:"investmentAmount"`
	CurrentValue        float64   `json:"currentValue"`
	Status              string    `json:"status"`
	Location            string    `json:"location,omitempty"`
	Employees           int64     `json:"employees"`
	AnnualRevenue       *float64  `json:"annualRevenue,omitempty"`
	Description         string    `json:"description,omitempty"`
	Website             string    `json:"website,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// BusinessStatusActive is the default business status.
const BusinessStatusActive = "active"
