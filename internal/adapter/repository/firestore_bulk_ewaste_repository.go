package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ewastehub/internal/domain/entity"
	"ewastehub/internal/domain/repository"
	"ewastehub/pkg/errors"
)

type firestoreBulkEWasteRepository struct {
	client *firestore.Client
}

func NewFirestoreBulkEWasteRepository(client *firestore.Client) repository.BulkEWasteRepository {
	return &firestoreBulkEWasteRepository{
		client: client,
	}
}

func (r *firestoreBulkEWasteRepository) Create(ctx context.Context, listing *entity.BulkListing) error {
	if listing.ID == "" {
		doc := r.client.Collection("bulk_ewaste").NewDoc()
		listing.ID = doc.ID
	}

	now := time.Now()
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now

	_, err := r.client.Collection("bulk_ewaste").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create bulk post", err)
	}

	return nil
}

func (r *firestoreBulkEWasteRepository) GetByID(ctx context.Context, id string) (*entity.BulkListing, error) {
	doc, err := r.client.Collection("bulk_ewaste").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Bulk post", err)
		}
		return nil, errors.Internal("Failed to get bulk post", err)
	}

	var listing entity.BulkListing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse bulk post data", err)
	}

	return &listing, nil
}

func (r *firestoreBulkEWasteRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.BulkListing, error) {
	query := r.client.Collection("bulk_ewaste").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var listings []*entity.BulkListing

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate bulk posts", err)
		}
		var listing entity.BulkListing
		if err := doc.DataTo(&listing); err != nil {
			return nil, errors.Internal("Failed to parse bulk post data", err)
		}
		listings = append(listings, &listing)
	}

	return listings, nil
}

func (r *firestoreBulkEWasteRepository) ListByOwner(ctx context.Context, collectorID string) ([]*entity.BulkListing, error) {
	return r.List(ctx, map[string]interface{}{"collectorId": collectorID})
}

func (r *firestoreBulkEWasteRepository) Update(ctx context.Context, listing *entity.BulkListing) error {
	listing.UpdatedAt = time.Now()

	_, err := r.client.Collection("bulk_ewaste").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update bulk post", err)
	}

	return nil
}

func (r *firestoreBulkEWasteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("bulk_ewaste").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete bulk post", err)
	}

	return nil
}
