package repository

import (
	"context"

	"ewastehub/internal/domain/entity"
)

// Filters are ANDed equality matches; a missing key means no constraint on
// that field. Lists are returned newest first without pagination.
type EWasteRepository interface {
	Create(ctx context.Context, listing *entity.EWasteListing) error
	GetByID(ctx context.Context, id string) (*entity.EWasteListing, error)
	List(ctx context.Context, filter map[string]interface{}) ([]*entity.EWasteListing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.EWasteListing, error)
	Update(ctx context.Context, listing *entity.EWasteListing) error
	Delete(ctx context.Context, id string) error
}

type BulkEWasteRepository interface {
	Create(ctx context.Context, listing *entity.BulkListing) error
	GetByID(ctx context.Context, id string) (*entity.BulkListing, error)
	List(ctx context.Context, filter map[string]interface{}) ([]*entity.BulkListing, error)
	ListByOwner(ctx context.Context, collectorID string) ([]*entity.BulkListing, error)
	Update(ctx context.Context, listing *entity.BulkListing) error
	Delete(ctx context.Context, id string) error
}
