package jsonfile

import (
	"fmt"
	"time"

	"newsradar/internal/domain/entity"
)

// timeLayout is the timestamp format used in the JSON file.
const timeLayout = time.RFC3339

func fromStored(s storedArticle) (*entity.Article, error) {
	createdAt, err := time.Parse(timeLayout, s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: article %s createdAt %q", errBadTimestamp, s.ID, s.CreatedAt)
	}
	updatedAt, err := time.Parse(timeLayout, s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: article %s updatedAt %q", errBadTimestamp, s.ID, s.UpdatedAt)
	}

	return &entity.Article{
		ID:              s.ID,
		Title:           s.Title,
		Slug:            s.Slug,
		SourceHeadline:  s.SourceHeadline,
		Category:        entity.Category(s.Category),
		Content:         s.Content,
		MetaDescription: s.MetaDescription,
		CoverImage:      s.CoverImage,
		Author:          s.Author,
		AffiliateLink:   s.AffiliateLink,
		Published:       s.Published,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}
