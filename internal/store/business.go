package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomazk/holdings/internal/model"
	"github.com/tomazk/holdings/internal/schema"
)

// CreateBusiness inserts a business stake for the given owner from a validated record.
func CreateBusiness(ctx context.Context, db *sql.DB, ownerID string, rec schema.Record) (*model.Business, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO business (id, owner_id, name, industry, registration_number, established_date,
		                       ownership_percentage, investment_amount, current_value, status,
		                       location, employees, annual_revenue, description, website)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, ownerID, rec.String("name"), rec.String("industry"), rec["registrationNumber"],
		rec.Time("establishedDate"), rec.Float("ownershipPercentage"), rec.Float("investmentAmount"),
		rec.Float("currentValue"), rec.String("status"), rec["location"], rec.Int("employees"),
		rec["annualRevenue"], rec["description"], rec["website"],
	)
	if err != nil {
		return nil, fmt.Errorf("creating business: %w", err)
	}

	return GetBusiness(ctx, db, id, ownerID)
}

// GetBusiness returns a business stake by ID, scoped to its owner.
func GetBusiness(ctx context.Context, db *sql.DB, id, ownerID string) (*model.Business, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+businessColumns+` FROM business WHERE id = ? AND owner_id = ?`, id, ownerID,
	)
	b, err := scanBusiness(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting business: %w", err)
	}
	return b, nil
}

// ListBusinesses returns all business stakes owned by ownerID, newest first.
func ListBusinesses(ctx context.Context, db *sql.DB, ownerID string) ([]model.Business, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+businessColumns+` FROM business WHERE owner_id = ? ORDER BY created_at DESC, id`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing businesses: %w", err)
	}
	defer rows.Close()

	var businesses []model.Business
	for rows.Next() {
		b, err := scanBusiness(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning business: %w", err)
		}
		businesses = append(businesses, *b)
	}
	return businesses, rows.Err()
}

// UpdateBusiness replaces all validated fields of a business stake.
func UpdateBusiness(ctx context.Context, db *sql.DB, id string, rec schema.Record) error {
	_, err := db.ExecContext(ctx,
		`UPDATE business SET name = ?, industry = ?, registration_number = ?, established_date = ?,
		        ownership_percentage = ?, investment_amount = ?, current_value = ?, status = ?,
		        location = ?, employees = ?, annual_revenue = ?, description = ?, website = ?,
		        updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		rec.String("name"), rec.String("industry"), rec["registrationNumber"],
		rec.Time("establishedDate"), rec.Float("ownershipPercentage"), rec.Float("investmentAmount"),
		rec.Float("currentValue"), rec.String("status"), rec["location"], rec.Int("employees"),
		rec["annualRevenue"], rec["description"], rec["website"], id,
	)
	if err != nil {
		return fmt.Errorf("updating business: %w", err)
	}
	return nil
}

// DeleteBusiness removes a business stake.
func DeleteBusiness(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM business WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting business: %w", err)
	}
	return nil
}

// CountBusinesses returns the number of business stakes owned by ownerID.
func CountBusinesses(ctx context.Context, db *sql.DB, ownerID string) (int, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM business WHERE owner_id = ?`, ownerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting businesses: %w", err)
	}
	return count, nil
}

const businessColumns = `id, owner_id, name, industry, registration_number, established_date,
	ownership_percentage, investment_amount, current_value, status, location, employees,
	annual_revenue, description, website, created_at, updated_at`

// scanBusiness scans one business row; the column order must match businessColumns.
func scanBusiness(scan func(...any) error) (*model.Business, error) {
	b := &model.Business{}
	var registrationNumber, location, description, website sql.NullString
	var annualRevenue sql.NullFloat64

	err := scan(&b.ID, &b.OwnerID, &b.Name, &b.Industry, &registrationNumber, &b.EstablishedDate,
		&b.OwnershipPercentage, &b.InvestmentAmount, &b.CurrentValue, &b.Status, &location,
		&b.Employees, &annualRevenue, &description, &website, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}

	b.RegistrationNumber = registrationNumber.String
	b.Location = location.String
	b.Description = description.String
	b.Website = website.String
	if annualRevenue.Valid {
		b.AnnualRevenue = &annualRevenue.Float64
	}
	return b, nil
}
