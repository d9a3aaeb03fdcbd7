package model

import "time"

// Labour represents an employee or collaborator.
//
// The collaboration fields (networkValue through collectiveAchievements) are
// optional and only present for rows recorded with the extended form.
type Labour struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	EmployeeName string    `json:"employeeName"`
	Position     string    `json:"position"`
	Department   string    `json:"department"`
	EmployeeType string    `json:"employeeType"`
	Salary       float64   `json:"salary"`
	HireDate     time.Time `json:"hireDate"`
	Status       string    `json:"status"`
	Skills       string    `json:"skills,omitempty"`
	ContactInfo  string    `json:"contactInfo,omitempty"`

	CollaborationType      string   `json:"collaborationType,omitempty"`
	ContributionArea       string   `json:"contributionArea,omitempty"`
	NetworkValue           *float64 `json:"networkValue,omitempty"`
	ProjectsLed            *int64   `json:"projectsLed,omitempty"`
	TeamImpact             string   `json:"teamImpact,omitempty"`
	MentorshipRole         string   `json:"mentorshipRole,omitempty"`
	IsOutsourced           *bool    `json:"isOutsourced,omitempty"`
	TeamSize               *int64   `json:"teamSize,omitempty"`
	ImpactMultiplier       *float64 `json:"impactMultiplier,omitempty"`
	CollectiveAchievements string   `json:"collectiveAchievements,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Default labour field values.
const (
	LabourStatusActive  = "active"
	EmployeeTypeDefault = "full-time"
)
