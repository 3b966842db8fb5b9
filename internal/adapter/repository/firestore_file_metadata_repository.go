package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"ewastehub/internal/domain/entity"
	"ewastehub/internal/domain/repository"
	"ewastehub/pkg/errors"
)

type firestoreFileMetadataRepository struct {
	client *firestore.Client
}

func NewFirestoreFileMetadataRepository(client *firestore.Client) repository.FileMetadataRepository {
	return &firestoreFileMetadataRepository{
		client: client,
	}
}

func (r *firestoreFileMetadataRepository) Create(ctx context.Context, metadata *entity.FileMetadata) error {
	_, err := r.client.Collection("file_metadata").Doc(metadata.ID).Set(ctx, metadata)
	if err != nil {
		return errors.Internal("Failed to create file metadata", err)
	}
	return nil
}

func (r *firestoreFileMetadataRepository) GetByEntity(ctx context.Context, entityType, entityID string) ([]*entity.FileMetadata, error) {
	iter := r.client.Collection("file_metadata").
		Where("entityType", "==", entityType).
		Where("entityId", "==", entityID).
		Documents(ctx)

	var results []*entity.FileMetadata
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate file metadata", err)
		}
		var metadata entity.FileMetadata
		if err := doc.DataTo(&metadata); err != nil {
			return nil, errors.Internal("Failed to parse file metadata", err)
		}
		results = append(results, &metadata)
	}

	return results, nil
}
