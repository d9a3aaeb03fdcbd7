package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomazk/holdings/internal/model"
	"github.com/tomazk/holdings/internal/schema"
)

// CreateLand inserts a land holding for the given owner from a validated record.
func CreateLand(ctx context.Context, db *sql.DB, ownerID string, rec schema.Record) (*model.Land, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO land (id, owner_id, name, location, area, area_unit, value,
		                   acquisition_date, status, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, ownerID, rec.String("name"), rec.String("location"), rec.Float("area"),
		rec.String("areaUnit"), rec.Float("value"), rec.Time("acquisitionDate"),
		rec.String("status"), rec["description"],
	)
	if err != nil {
		return nil, fmt.Errorf("creating land: %w", err)
	}

	return GetLand(ctx, db, id, ownerID)
}

// GetLand returns a land holding by ID, scoped to its owner. A missing row and
// a row owned by someone else both return nil.
func GetLand(ctx context.Context, db *sql.DB, id, ownerID string) (*model.Land, error) {
	l := &model.Land{}
	var description sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, owner_id, name, location, area, area_unit, value,
		        acquisition_date, status, description, created_at, updated_at
		 FROM land WHERE id = ? AND owner_id = ?`, id, ownerID,
	).Scan(&l.ID, &l.OwnerID, &l.Name, &l.Location, &l.Area, &l.AreaUnit, &l.Value,
		&l.AcquisitionDate, &l.Status, &description, &l.CreatedAt, &l.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting land: %w", err)
	}
	l.Description = description.String
	return l, nil
}

// ListLand returns all land owned by ownerID, newest first.
func ListLand(ctx context.Context, db *sql.DB, ownerID string) ([]model.Land, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, owner_id, name, location, area, area_unit, value,
		        acquisition_date, status, description, created_at, updated_at
		 FROM land WHERE owner_id = ? ORDER BY created_at DESC, id`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing land: %w", err)
	}
	defer rows.Close()

	var lands []model.Land
	for rows.Next() {
		var l model.Land
		var description sql.NullString
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.Name, &l.Location, &l.Area, &l.AreaUnit,
			&l.Value, &l.AcquisitionDate, &l.Status, &description, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning land: %w", err)
		}
		l.Description = description.String
		lands = append(lands, l)
	}
	return lands, rows.Err()
}

// UpdateLand replaces all validated fields of a land holding.
func UpdateLand(ctx context.Context, db *sql.DB, id string, rec schema.Record) error {
	_, err := db.ExecContext(ctx,
		`UPDATE land SET name = ?, location = ?, area = ?, area_unit = ?, value = ?,
		        acquisition_date = ?, status = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		rec.String("name"), rec.String("location"), rec.Float("area"), rec.String("areaUnit"),
		rec.Float("value"), rec.Time("acquisitionDate"), rec.String("status"), rec["description"], id,
	)
	if err != nil {
		return fmt.Errorf("updating land: %w", err)
	}
	return nil
}

// DeleteLand removes a land holding.
func DeleteLand(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM land WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting land: %w", err)
	}
	return nil
}

// CountLand returns the number of land holdings owned by ownerID.
func CountLand(ctx context.Context, db *sql.DB, ownerID string) (int, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM land WHERE owner_id = ?`, ownerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting land: %w", err)
	}
	return count, nil
}
