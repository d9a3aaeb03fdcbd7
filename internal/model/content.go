package model

import "time"

// Content represents a published content asset (video, article, course, ...).
type Content struct {
	ID                   string    `json:"id"`
	OwnerID              string    `json:"ownerId"`
	Title                string    `json:"title"`
	ContentType          string    `json:"contentType"`
	Platform             string    `json:"platform"`
	PublicationDate      time.Time `json:"publicationDate"`
	AudienceReach        float64   `json:"audienceReach"`
	ViewCount            float64   `json:"viewCount"`
	EngagementRate       float64   `json:"engagementRate"`
	IsRepeatable         bool      `json:"isRepeatable"`
	DistributionChannels string    `json:"distributionChannels"`
	ProductionCost       float64   `json:"productionCost"`
	RevenueGenerated     float64   `json:"revenueGenerated"`
	ContentURL           string    `json:"contentUrl,omitempty"`
	Status               string    `json:"status"`
	Description          string    `json:"description,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// ContentStatusPublished is the default content status.
const ContentStatusPublished = "published"
