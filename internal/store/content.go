package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomazk/holdings/internal/model"
	"github.com/tomazk/holdings/internal/schema"
)

// CreateContent inserts a content asset for the given owner from a validated record.
func CreateContent(ctx context.Context, db *sql.DB, ownerID string, rec schema.Record) (*model.Content, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO content (id, owner_id, title, content_type, platform, publication_date,
		                      audience_reach, view_count, engagement_rate, is_repeatable,
		                      distribution_channels, production_cost, revenue_generated,
		                      content_url, status, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, ownerID, rec.String("title"), rec.String("contentType"), rec.String("platform"),
		rec.Time("publicationDate"), rec.Float("audienceReach"), rec.Float("viewCount"),
		rec.Float("engagementRate"), rec.Bool("isRepeatable"), rec.String("distributionChannels"),
		rec.Float("productionCost"), rec.Float("revenueGenerated"), rec["contentUrl"],
		rec.String("status"), rec["description"],
	)
	if err != nil {
		return nil, fmt.Errorf("creating content: %w", err)
	}

	return GetContent(ctx, db, id, ownerID)
}

// GetContent returns a content asset by ID, scoped to its owner.
func GetContent(ctx context.Context, db *sql.DB, id, ownerID string) (*model.Content, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+contentColumns+` FROM content WHERE id = ? AND owner_id = ?`, id, ownerID,
	)
	c, err := scanContent(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting content: %w", err)
	}
	return c, nil
}

// ListContent returns all content assets owned by ownerID, newest first.
func ListContent(ctx context.Context, db *sql.DB, ownerID string) ([]model.Content, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+contentColumns+` FROM content WHERE owner_id = ? ORDER BY created_at DESC, id`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing content: %w", err)
	}
	defer rows.Close()

	var contents []model.Content
	for rows.Next() {
		c, err := scanContent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning content: %w", err)
		}
		contents = append(contents, *c)
	}
	return contents, rows.Err()
}

// UpdateContent replaces all validated fields of a content asset.
func UpdateContent(ctx context.Context, db *sql.DB, id string, rec schema.Record) error {
	_, err := db.ExecContext(ctx,
		`UPDATE content SET title = ?, content_type = ?, platform = ?, publication_date = ?,
		        audience_reach = ?, view_count = ?, engagement_rate = ?, is_repeatable = ?,
		        distribution_channels = ?, production_cost = ?, revenue_generated = ?,
		        content_url = ?, status = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		rec.String("title"), rec.String("contentType"), rec.String("platform"),
		rec.Time("publicationDate"), rec.Float("audienceReach"), rec.Float("viewCount"),
		rec.Float("engagementRate"), rec.Bool("isRepeatable"), rec.String("distributionChannels"),
		rec.Float("productionCost"), rec.Float("revenueGenerated"), rec["contentUrl"],
		rec.String("status"), rec["description"], id,
	)
	if err != nil {
		return fmt.Errorf("updating content: %w", err)
	}
	return nil
}

// DeleteContent removes a content asset.
func DeleteContent(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM content WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting content: %w", err)
	}
	return nil
}

// CountContent returns the number of content assets owned by ownerID.
func CountContent(ctx context.Context, db *sql.DB, ownerID string) (int, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM content WHERE owner_id = ?`, ownerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting content: %w", err)
	}
	return count, nil
}

const contentColumns = `id, owner_id, title, content_type, platform, publication_date,
	audience_reach, view_count, engagement_rate, is_repeatable, distribution_channels,
	production_cost, revenue_generated, content_url, status, description, created_at, updated_at`

// scanContent scans one content row; the column order must match contentColumns.
func scanContent(scan func(...any) error) (*model.Content, error) {
	c := &model.Content{}
	var contentURL, description sql.NullString

	err := scan(&c.ID, &c.OwnerID, &c.Title, &c.ContentType, &c.Platform, &c.PublicationDate,
		&c.AudienceReach, &c.ViewCount, &c.EngagementRate, &c.IsRepeatable,
		&c.DistributionChannels, &c.ProductionCost, &c.RevenueGenerated, &contentURL,
		&c.Status, &description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	c.ContentURL = contentURL.String
	c.Description = description.String
	return c, nil
}
