package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomazk/holdings/internal/model"
	"github.com/tomazk/holdings/internal/schema"
)

// CreateTechnology inserts a technology asset for the given owner from a validated record.
func CreateTechnology(ctx context.Context, db *sql.DB, ownerID string, rec schema.Record) (*model.Technology, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO technology (id, owner_id, name, type, category, manufacturer, model,
		                         serial_number, purchase_date, purchase_price, maintenance_cost,
		                         status, location, specifications, automation_level, ai_capabilities)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, ownerID, rec.String("name"), rec.String("type"), rec.String("category"),
		rec["manufacturer"], rec["model"], rec["serialNumber"], rec.Time("purchaseDate"),
		rec.Float("purchasePrice"), rec.Float("maintenanceCost"), rec.String("status"),
		rec["location"], rec["specifications"], rec["automationLevel"], rec["aiCapabilities"],
	)
	if err != nil {
		return nil, fmt.Errorf("creating technology: %w", err)
	}

	return GetTechnology(ctx, db, id, ownerID)
}

// GetTechnology returns a technology asset by ID, scoped to its owner.
func GetTechnology(ctx context.Context, db *sql.DB, id, ownerID string) (*model.Technology, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+technologyColumns+` FROM technology WHERE id = ? AND owner_id = ?`, id, ownerID,
	)
	tech, err := scanTechnology(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting technology: %w", err)
	}
	return tech, nil
}

// ListTechnology returns all technology owned by ownerID, newest first.
func ListTechnology(ctx context.Context, db *sql.DB, ownerID string) ([]model.Technology, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+technologyColumns+` FROM technology WHERE owner_id = ? ORDER BY created_at DESC, id`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing technology: %w", err)
	}
	defer rows.Close()

	var techs []model.Technology
	for rows.Next() {
		tech, err := scanTechnology(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning technology: %w", err)
		}
		techs = append(techs, *tech)
	}
	return techs, rows.Err()
}

// UpdateTechnology replaces all validated fields of a technology asset.
func UpdateTechnology(ctx context.Context, db *sql.DB, id string, rec schema.Record) error {
	_, err := db.ExecContext(ctx,
		`UPDATE technology SET name = ?, type = ?, category = ?, manufacturer = ?, model = ?,
		        serial_number = ?, purchase_date = ?, purchase_price = ?, maintenance_cost = ?,
		        status = ?, location = ?, specifications = ?, automation_level = ?,
		        ai_capabilities = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		rec.String("name"), rec.String("type"), rec.String("category"), rec["manufacturer"],
		rec["model"], rec["serialNumber"], rec.Time("purchaseDate"), rec.Float("purchasePrice"),
		rec.Float("maintenanceCost"), rec.String("status"), rec["location"], rec["specifications"],
		rec["automationLevel"], rec["aiCapabilities"], id,
	)
	if err != nil {
		return fmt.Errorf("updating technology: %w", err)
	}
	return nil
}

// DeleteTechnology removes a technology asset.
func DeleteTechnology(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM technology WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting technology: %w", err)
	}
	return nil
}

// CountTechnology returns the number of technology assets owned by ownerID.
func CountTechnology(ctx context.Context, db *sql.DB, ownerID string) (int, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM technology WHERE owner_id = ?`, ownerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting technology: %w", err)
	}
	return count, nil
}

const technologyColumns = `id, owner_id, name, type, category, manufacturer, model,
	serial_number, purchase_date, purchase_price, maintenance_cost, status, location,
	specifications, automation_level, ai_capabilities, created_at, updated_at`

// scanTechnology scans one technology row; the column order must match technologyColumns.
func scanTechnology(scan func(...any) error) (*model.Technology, error) {
	tech := &model.Technology{}
	var manufacturer, techModel, serialNumber, location, specifications, aiCapabilities sql.NullString
	var automationLevel sql.NullFloat64

	err := scan(&tech.ID, &tech.OwnerID, &tech.Name, &tech.Type, &tech.Category,
		&manufacturer, &techModel, &serialNumber, &tech.PurchaseDate, &tech.PurchasePrice,
		&tech.MaintenanceCost, &tech.Status, &location, &specifications,
		&automationLevel, &aiCapabilities, &tech.CreatedAt, &tech.UpdatedAt)
	if err != nil {
		return nil, err
	}

	tech.Manufacturer = manufacturer.String
	tech.Model = techModel.String
	tech.SerialNumber = serialNumber.String
	tech.Location = location.String
	tech.Specifications = specifications.String
	tech.AICapabilities = aiCapabilities.String
	if automationLevel.Valid {
		tech.AutomationLevel = &automationLevel.Float64
	}
	return tech, nil
}
