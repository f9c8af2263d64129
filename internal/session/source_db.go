package session

import (
	"context"

	"gallery-app/internal/domain/catalog"

	"gorm.io/gorm"
)

// DBSource reads the catalog of record. The db handle is injected to keep
// this package free of the global database import.
type DBSource struct {
	DB *gorm.DB
}

func (s DBSource) ListArtworks(ctx context.Context) ([]catalog.Artwork, error) {
	var rows []catalog.Artwork
	err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	return rows, err
}
