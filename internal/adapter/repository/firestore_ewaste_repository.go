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

type firestoreEWasteRepository struct {
	client *firestore.Client
}

func NewFirestoreEWasteRepository(client *firestore.Client) repository.EWasteRepository {
	return &firestoreEWasteRepository{
		client: client,
	}
}

func (r *firestoreEWasteRepository) Create(ctx context.Context, listing *entity.EWasteListing) error {
	if listing.ID == "" {
		doc := r.client.Collection("ewaste").NewDoc()
		listing.ID = doc.ID
	}

	now := time.Now()
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now

	_, err := r.client.Collection("ewaste").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create e-waste post", err)
	}

	return nil
}

func (r *firestoreEWasteRepository) GetByID(ctx context.Context, id string) (*entity.EWasteListing, error) {
	doc, err := r.client.Collection("ewaste").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("E-waste post", err)
		}
		return nil, errors.Internal("Failed to get e-waste post", err)
	}

	var listing entity.EWasteListing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse e-waste data", err)
	}

	return &listing, nil
}

func (r *firestoreEWasteRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.EWasteListing, error) {
	query := r.client.Collection("ewaste").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var listings []*entity.EWasteListing

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate e-waste posts", err)
		}
		var listing entity.EWasteListing
		if err := doc.DataTo(&listing); err != nil {
			return nil, errors.Internal("Failed to parse e-waste data", err)
		}
		listings = append(listings, &listing)
	}

	return listings, nil
}

func (r *firestoreEWasteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.EWasteListing, error) {
	return r.List(ctx, map[string]interface{}{"userId": ownerID})
}

func (r *firestoreEWasteRepository) Update(ctx context.Context, listing *entity.EWasteListing) error {
	listing.UpdatedAt = time.Now()

	_, err := r.client.Collection("ewaste").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update e-waste post", err)
	}

	return nil
}

func (r *firestoreEWasteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("ewaste").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete e-waste post", err)
	}

	return nil
}
