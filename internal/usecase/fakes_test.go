package usecase

import (
	"context"
	"sort"
	"time"

	"ewastehub/internal/domain/entity"
	"ewastehub/pkg/errors"

	"github.com/google/uuid"
)

type fakeEWasteRepo struct {
	listings map[string]*entity.EWasteListing
}

func newFakeEWasteRepo() *fakeEWasteRepo {
	return &fakeEWasteRepo{listings: make(map[string]*entity.EWasteListing)}
}

func (r *fakeEWasteRepo) Create(ctx context.Context, listing *entity.EWasteListing) error {
	listing.ID = uuid.New().String()
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt
	stored := *listing
	r.listings[listing.ID] = &stored
	return nil
}

func (r *fakeEWasteRepo) GetByID(ctx context.Context, id string) (*entity.EWasteListing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("E-waste", nil)
	}
	copied := *listing
	return &copied, nil
}

func (r *fakeEWasteRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.EWasteListing, error) {
	var out []*entity.EWasteListing
	for _, listing := range r.listings {
		if status, ok := filter["status"]; ok && listing.Status != status {
			continue
		}
		if condition, ok := filter["condition"]; ok && listing.Condition != condition {
			continue
		}
		if ownerID, ok := filter["userId"]; ok && listing.UserID != ownerID {
			continue
		}
		copied := *listing
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeEWasteRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.EWasteListing, error) {
	return r.List(ctx, map[string]interface{}{"userId": ownerID})
}

func (r *fakeEWasteRepo) Update(ctx context.Context, listing *entity.EWasteListing) error {
	if _, ok := r.listings[listing.ID]; !ok {
		return errors.NotFound("E-waste", nil)
	}
	listing.UpdatedAt = time.Now()
	stored := *listing
	r.listings[listing.ID] = &stored
	return nil
}

func (r *fakeEWasteRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.listings[id]; !ok {
		return errors.NotFound("E-waste", nil)
	}
	delete(r.listings, id)
	return nil
}

type fakeBulkRepo struct {
	listings map[string]*entity.BulkListing
}

func newFakeBulkRepo() *fakeBulkRepo {
	return &fakeBulkRepo{listings: make(map[string]*entity.BulkListing)}
}

func (r *fakeBulkRepo) Create(ctx context.Context, listing *entity.BulkListing) error {
	listing.ID = uuid.New().String()
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt
	stored := *listing
	r.listings[listing.ID] = &stored
	return nil
}

func (r *fakeBulkRepo) GetByID(ctx context.Context, id string) (*entity.BulkListing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("Bulk e-waste", nil)
	}
	copied := *listing
	return &copied, nil
}

func (r *fakeBulkRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.BulkListing, error) {
	var out []*entity.BulkListing
	for _, listing := range r.listings {
		if status, ok := filter["status"]; ok && listing.Status != status {
			continue
		}
		if condition, ok := filter["condition"]; ok && listing.Condition != condition {
			continue
		}
		if collectorID, ok := filter["collectorId"]; ok && listing.CollectorID != collectorID {
			continue
		}
		copied := *listing
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBulkRepo) ListByOwner(ctx context.Context, collectorID string) ([]*entity.BulkListing, error) {
	return r.List(ctx, map[string]interface{}{"collectorId": collectorID})
}

func (r *fakeBulkRepo) Update(ctx context.Context, listing *entity.BulkListing) error {
	if _, ok := r.listings[listing.ID]; !ok {
		return errors.NotFound("Bulk e-waste", nil)
	}
	listing.UpdatedAt = time.Now()
	stored := *listing
	r.listings[listing.ID] = &stored
	return nil
}

func (r *fakeBulkRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.listings[id]; !ok {
		return errors.NotFound("Bulk e-waste", nil)
	}
	delete(r.listings, id)
	return nil
}

type fakeUserRepo struct {
	users      map[string]*entity.User
	createErr  error
	getByIDErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) add(id, name, role string) *entity.User {
	user := &entity.User{
		ID:      id,
		Name:    name,
		Email:   id + "@example.com",
		Phone:   "555-" + id,
		Address: name + " street",
		Role:    role,
	}
	r.users[id] = user
	return user
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if r.getByIDErr != nil {
		return nil, r.getByIDErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeFirebaseAuth struct {
	createErr    error
	signInErr    error
	deletedUIDs  []string
	nextUID      string
	issuedTokens map[string]string
}

func newFakeFirebaseAuth() *fakeFirebaseAuth {
	return &fakeFirebaseAuth{
		nextUID:      "uid-1",
		issuedTokens: make(map[string]string),
	}
}

func (f *fakeFirebaseAuth) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.nextUID, nil
}

func (f *fakeFirebaseAuth) DeleteUser(ctx context.Context, uid string) error {
	f.deletedUIDs = append(f.deletedUIDs, uid)
	return nil
}

func (f *fakeFirebaseAuth) VerifyToken(ctx context.Context, token string) (string, error) {
	uid, ok := f.issuedTokens[token]
	if !ok {
		return "", errors.Unauthorized("Invalid token", nil)
	}
	return uid, nil
}

func (f *fakeFirebaseAuth) SignInWithEmailPassword(email, password string) (string, error) {
	if f.signInErr != nil {
		return "", f.signInErr
	}
	token := "token-for-" + email
	f.issuedTokens[token] = f.nextUID
	return token, nil
}
