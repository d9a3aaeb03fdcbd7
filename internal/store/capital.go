package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomazk/holdings/internal/model"
	"github.com/tomazk/holdings/internal/schema"
)

// CreateCapital inserts a capital holding for the given owner from a validated record.
func CreateCapital(ctx context.Context, db *sql.DB, ownerID string, rec schema.Record) (*model.Capital, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO capital (id, owner_id, name, type, category, amount, currency,
		                      acquisition_date, maturity_date, status, description, returns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, ownerID, rec.String("name"), rec.String("type"), rec.String("category"),
		rec.Float("amount"), rec.String("currency"), rec.Time("acquisitionDate"),
		rec["maturityDate"], rec.String("status"), rec["description"], rec["returns"],
	)
	if err != nil {
		return nil, fmt.Errorf("creating capital: %w", err)
	}

	return GetCapital(ctx, db, id, ownerID)
}

// GetCapital returns a capital holding by ID, scoped to its owner.
func GetCapital(ctx context.Context, db *sql.DB, id, ownerID string) (*model.Capital, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+capitalColumns+` FROM capital WHERE id = ? AND owner_id = ?`, id, ownerID,
	)
	c, err := scanCapital(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting capital: %w", err)
	}
	return c, nil
}

// ListCapital returns all capital owned by ownerID, newest first.
func ListCapital(ctx context.Context, db *sql.DB, ownerID string) ([]model.Capital, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+capitalColumns+` FROM capital WHERE owner_id = ? ORDER BY created_at DESC, id`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing capital: %w", err)
	}
	defer rows.Close()

	var capitals []model.Capital
	for rows.Next() {
		c, err := scanCapital(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning capital: %w", err)
		}
		capitals = append(capitals, *c)
	}
	return capitals, rows.Err()
}

// UpdateCapital replaces all validated fields of a capital holding.
func UpdateCapital(ctx context.Context, db *sql.DB, id string, rec schema.Record) error {
	_, err := db.ExecContext(ctx,
		`UPDATE capital SET name = ?, type = ?, category = ?, amount = ?, currency = ?,
		        acquisition_date = ?, maturity_date = ?, status = ?, description = ?,
		        returns = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		rec.String("name"), rec.String("type"), rec.String("category"), rec.Float("amount"),
		rec.String("currency"), rec.Time("acquisitionDate"), rec["maturityDate"],
		rec.String("status"), rec["description"], rec["returns"], id,
	)
	if err != nil {
		return fmt.Errorf("updating capital: %w", err)
	}
	return nil
}

// DeleteCapital removes a capital holding.
func DeleteCapital(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM capital WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting capital: %w", err)
	}
	return nil
}

// CountCapital returns the number of capital holdings owned by ownerID.
func CountCapital(ctx context.Context, db *sql.DB, ownerID string) (int, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM capital WHERE owner_id = ?`, ownerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting capital: %w", err)
	}
	return count, nil
}

const capitalColumns = `id, owner_id, name, type, category, amount, currency,
	acquisition_date, maturity_date, status, description, returns, created_at, updated_at`

// scanCapital scans one capital row; the column order must match capitalColumns.
func scanCapital(scan func(...any) error) (*model.Capital, error) {
	c := &model.Capital{}
	var maturityDate sql.NullTime
	var description sql.NullString
	var returns sql.NullFloat64

	err := scan(&c.ID, &c.OwnerID, &c.Name, &c.Type, &c.Category, &c.Amount, &c.Currency,
		&c.AcquisitionDate, &maturityDate, &c.Status, &description, &returns,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if maturityDate.Valid {
		c.MaturityDate = &maturityDate.Time
	}
	c.Description = description.String
	if returns.Valid {
		c.Returns = &returns.Float64
	}
	return c, nil
}
