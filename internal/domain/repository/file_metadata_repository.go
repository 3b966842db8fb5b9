package repository

import (
	"context"

	"ewastehub/internal/domain/entity"
)

type FileMetadataRepository interface {
	Create(ctx context.Context, metadata *entity.FileMetadata) error
	GetByEntity(ctx context.Context, entityType, entityID string) ([]*entity.FileMetadata, error)
}
