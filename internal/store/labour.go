package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomazk/holdings/internal/model"
	"github.com/tomazk/holdings/internal/schema"
)

// CreateLabour inserts a labour record for the given owner from a validated record.
func CreateLabour(ctx context.Context, db *sql.DB, ownerID string, rec schema.Record) (*model.Labour, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO labour (id, owner_id, employee_name, position, department, employee_type,
		                     salary, hire_date, status, skills, contact_info, collaboration_type,
		                     contribution_area, network_value, projects_led, team_impact,
		                     mentorship_role, is_outsourced, team_size, impact_multiplier,
		                     collective_achievements)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, ownerID, rec.String("employeeName"), rec.String("position"), rec.String("department"),
		rec.String("employeeType"), rec.Float("salary"), rec.Time("hireDate"), rec.String("status"),
		rec["skills"], rec["contactInfo"], rec["collaborationType"], rec["contributionArea"],
		rec["networkValue"], rec["projectsLed"], rec["teamImpact"], rec["mentorshipRole"],
		rec["isOutsourced"], rec["teamSize"], rec["impactMultiplier"], rec["collectiveAchievements"],
	)
	if err != nil {
		return nil, fmt.Errorf("creating labour: %w", err)
	}

	return GetLabour(ctx, db, id, ownerID)
}

// GetLabour returns a labour record by ID, scoped to its owner.
func GetLabour(ctx context.Context, db *sql.DB, id, ownerID string) (*model.Labour, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+labourColumns+` FROM labour WHERE id = ? AND owner_id = ?`, id, ownerID,
	)
	l, err := scanLabour(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting labour: %w", err)
	}
	return l, nil
}

// ListLabour returns all labour records owned by ownerID, newest first.
func ListLabour(ctx context.Context, db *sql.DB, ownerID string) ([]model.Labour, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+labourColumns+` FROM labour WHERE owner_id = ? ORDER BY created_at DESC, id`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing labour: %w", err)
	}
	defer rows.Close()

	var labours []model.Labour
	for rows.Next() {
		l, err := scanLabour(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning labour: %w", err)
		}
		labours = append(labours, *l)
	}
	return labours, rows.Err()
}

// UpdateLabour replaces all validated fields of a labour record.
func UpdateLabour(ctx context.Context, db *sql.DB, id string, rec schema.Record) error {
	_, err := db.ExecContext(ctx,
		`UPDATE labour SET employee_name = ?, position = ?, department = ?, employee_type = ?,
		        salary = ?, hire_date = ?, status = ?, skills = ?, contact_info = ?,
		        collaboration_type = ?, contribution_area = ?, network_value = ?, projects_led = ?,
		        team_impact = ?, mentorship_role = ?, is_outsourced = ?, team_size = ?,
		        impact_multiplier = ?, collective_achievements = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		rec.String("employeeName"), rec.String("position"), rec.String("department"),
		rec.String("employeeType"), rec.Float("salary"), rec.Time("hireDate"), rec.String("status"),
		rec["skills"], rec["contactInfo"], rec["collaborationType"], rec["contributionArea"],
		rec["networkValue"], rec["projectsLed"], rec["teamImpact"], rec["mentorshipRole"],
		rec["isOutsourced"], rec["teamSize"], rec["impactMultiplier"], rec["collectiveAchievements"],
		id,
	)
	if err != nil {
		return fmt.Errorf("updating labour: %w", err)
	}
	return nil
}

// DeleteLabour removes a labour record.
func DeleteLabour(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM labour WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting labour: %w", err)
	}
	return nil
}

// CountLabour returns the number of labour records owned by ownerID.
func CountLabour(ctx context.Context, db *sql.DB, ownerID string) (int, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM labour WHERE owner_id = ?`, ownerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting labour: %w", err)
	}
	return count, nil
}

const labourColumns = `id, owner_id, employee_name, position, department, employee_type,
	salary, hire_date, status, skills, contact_info, collaboration_type, contribution_area,
	network_value, projects_led, team_impact, mentorship_role, is_outsourced, team_size,
	impact_multiplier, collective_achievements, created_at, updated_at`

// scanLabour scans one labour row; the column order must match labourColumns.
func scanLabour(scan func(...any) error) (*model.Labour, error) {
	l := &model.Labour{}
	var skills, contactInfo, collaborationType, contributionArea sql.NullString
	var teamImpact, mentorshipRole, collectiveAchievements sql.NullString
	var networkValue, impactMultiplier sql.NullFloat64
	var projectsLed, teamSize sql.NullInt64
	var isOutsourced sql.NullBool

	err := scan(&l.ID, &l.OwnerID, &l.EmployeeName, &l.Position, &l.Department, &l.EmployeeType,
		&l.Salary, &l.HireDate, &l.Status, &skills, &contactInfo, &collaborationType,
		&contributionArea, &networkValue, &projectsLed, &teamImpact, &mentorshipRole,
		&isOutsourced, &teamSize, &impactMultiplier, &collectiveAchievements,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}

	l.Skills = skills.String
	l.ContactInfo = contactInfo.String
	l.CollaborationType = collaborationType.String
	l.ContributionArea = contributionArea.String
	l.TeamImpact = teamImpact.String
	l.MentorshipRole = mentorshipRole.String
	l.CollectiveAchievements = collectiveAchievements.String
	if networkValue.Valid {
		l.NetworkValue = &networkValue.Float64
	}
	if impactMultiplier.Valid {
		l.ImpactMultiplier = &impactMultiplier.Float64
	}
	if projectsLed.Valid {
		l.ProjectsLed = &projectsLed.Int64
	}
	if teamSize.Valid {
		l.TeamSize = &teamSize.Int64
	}
	if isOutsourced.Valid {
		l.IsOutsourced = &isOutsourced.Bool
	}
	return l, nil
}
