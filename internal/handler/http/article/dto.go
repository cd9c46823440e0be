// Package article provides HTTP handlers for the public article endpoints and
// the authenticated admin endpoints for managing articles.
package article

import (
	"time"

	"newsradar/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID              string    `json:"id" example:"a4c1b9fe-0c2d-4f5a-9a1e-8b7d6c5e4f3a"`
	Title           string    `json:"title" example:"Markets Surge on Rate Cut News"`
	Slug            string    `json:"slug" example:"markets-surge-on-rate-cut-news"`
	SourceHeadline  string    `json:"sourceHeadline" example:"Markets surge on rate cut"`
	Category        string    `json:"category" example:"business"`
	Content         string    `json:"content" example:"<p>Markets rallied today...</p>"`
	MetaDescription string    `json:"metaDescription" example:"Markets rallied after the central bank cut rates."`
	CoverImage      string    `json:"coverImage" example:"https://images.pexels.com/photos/1.jpeg"`
	Author          string    `json:"author" example:"NewsRadar Staff"`
	AffiliateLink   string    `json:"affiliateLink" example:"https://example.com/business-tools?ref=ainews"`
	Published       bool      `json:"published" example:"true"`
	CreatedAt       time.Time `json:"createdAt" example:"2025-10-26T12:00:00Z"`
	UpdatedAt       time.Time `json:"updatedAt" example:"2025-10-26T12:00:00Z"`
}

func FromEntity(a *entity.Article) DTO {
	return DTO{
		ID:              a.ID,
		Title:           a.Title,
		Slug:            a.Slug,
		SourceHeadline:  a.SourceHeadline,
		Category:        a.Category.String(),
		Content:         a.Content,
		MetaDescription: a.MetaDescription,
		CoverImage:      a.CoverImage,
		Author:          a.Author,
		AffiliateLink:   a.AffiliateLink,
		Published:       a.Published,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func toDTOs(articles []*entity.Article) []DTO {
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, FromEntity(a))
	}
	return out
}
