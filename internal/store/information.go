package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomazk/holdings/internal/model"
	"github.com/tomazk/holdings/internal/schema"
)

// CreateInformation inserts an information asset for the given owner from a validated record.
func CreateInformation(ctx context.Context, db *sql.DB, ownerID string, rec schema.Record) (*model.Information, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO information (id, owner_id, title, category, type, source, acquisition_date,
		                          confidentiality, value, file_url, summary, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, ownerID, rec.String("title"), rec.String("category"), rec.String("type"),
		rec["source"], rec.Time("acquisitionDate"), rec.String("confidentiality"),
		rec["value"], rec["fileUrl"], rec["summary"], rec["tags"],
	)
	if err != nil {
		return nil, fmt.Errorf("creating information: %w", err)
	}

	return GetInformation(ctx, db, id, ownerID)
}

// GetInformation returns an information asset by ID, scoped to its owner.
func GetInformation(ctx context.Context, db *sql.DB, id, ownerID string) (*model.Information, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+informationColumns+` FROM information WHERE id = ? AND owner_id = ?`, id, ownerID,
	)
	info, err := scanInformation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting information: %w", err)
	}
	return info, nil
}

// ListInformation returns all information assets owned by ownerID, newest first.
func ListInformation(ctx context.Context, db *sql.DB, ownerID string) ([]model.Information, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+informationColumns+` FROM information WHERE owner_id = ? ORDER BY created_at DESC, id`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing information: %w", err)
	}
	defer rows.Close()

	var infos []model.Information
	for rows.Next() {
		info, err := scanInformation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning information: %w", err)
		}
		infos = append(infos, *info)
	}
	return infos, rows.Err()
}

// UpdateInformation replaces all validated fields of an information asset.
func UpdateInformation(ctx context.Context, db *sql.DB, id string, rec schema.Record) error {
	_, err := db.ExecContext(ctx,
		`UPDATE information SET title = ?, category = ?, type = ?, source = ?,
		        acquisition_date = ?, confidentiality = ?, value = ?, file_url = ?,
		        summary = ?, tags = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		rec.String("title"), rec.String("category"), rec.String("type"), rec["source"],
		rec.Time("acquisitionDate"), rec.String("confidentiality"), rec["value"],
		rec["fileUrl"], rec["summary"], rec["tags"], id,
	)
	if err != nil {
		return fmt.Errorf("updating information: %w", err)
	}
	return nil
}

// DeleteInformation removes an information asset.
func DeleteInformation(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM information WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting information: %w", err)
	}
	return nil
}

// CountInformation returns the number of information assets owned by ownerID.
func CountInformation(ctx context.Context, db *sql.DB, ownerID string) (int, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM information WHERE owner_id = ?`, ownerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting information: %w", err)
	}
	return count, nil
}

const informationColumns = `id, owner_id, title, category, type, source, acquisition_date,
	confidentiality, value, file_url, summary, tags, created_at, updated_at`

// scanInformation scans one information row; the column order must match informationColumns.
func scanInformation(scan func(...any) error) (*model.Information, error) {
	info := &model.Information{}
	var source, value, fileURL, summary, tags sql.NullString

	err := scan(&info.ID, &info.OwnerID, &info.Title, &info.Category, &info.Type, &source,
		&info.AcquisitionDate, &info.Confidentiality, &value, &fileURL, &summary, &tags,
		&info.CreatedAt, &info.UpdatedAt)
	if err != nil {
		return nil, err
	}

	info.Source = source.String
	info.Value = value.String
	info.FileURL = fileURL.String
	info.Summary = summary.String
	info.Tags = tags.String
	return info, nil
}
