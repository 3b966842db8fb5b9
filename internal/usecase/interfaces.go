package usecase

import (
	"context"

	"ewastehub/internal/domain/entity"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
}

// ListingCache caches listing-by-id lookups. A nil-listing, nil-error return
// is a cache miss. Implementations must tolerate concurrent use.
type ListingCache interface {
	GetEWaste(ctx context.Context, id string) (*entity.EWasteListing, error)
	SetEWaste(ctx context.Context, listing *entity.EWasteListing) error
	DeleteEWaste(ctx context.Context, id string) error
	GetBulk(ctx context.Context, id string) (*entity.BulkListing, error)
	SetBulk(ctx context.Context, listing *entity.BulkListing) error
	DeleteBulk(ctx context.Context, id string) error
}
