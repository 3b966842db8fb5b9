package handler

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"testing"
	"time"

	"ewastehub/internal/domain/entity"
	"ewastehub/internal/usecase"
	"ewastehub/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBulkRepo struct {
	listings map[string]*entity.BulkListing
}

func newMemBulkRepo() *memBulkRepo {
	return &memBulkRepo{listings: make(map[string]*entity.BulkListing)}
}

func (r *memBulkRepo) Create(ctx context.Context, listing *entity.BulkListing) error {
	listing.ID = uuid.New().String()
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt
	stored := *listing
	r.listings[listing.ID] = &stored
	return nil
}

func (r *memBulkRepo) GetByID(ctx context.Context, id string) (*entity.BulkListing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("Bulk e-waste", nil)
	}
	copied := *listing
	return &copied, nil
}

func (r *memBulkRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.BulkListing, error) {
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

func (r *memBulkRepo) ListByOwner(ctx context.Context, collectorID string) ([]*entity.BulkListing, error) {
	return r.List(ctx, map[string]interface{}{"collectorId": collectorID})
}

func (r *memBulkRepo) Update(ctx context.Context, listing *entity.BulkListing) error {
	if _, ok := r.listings[listing.ID]; !ok {
		return errors.NotFound("Bulk e-waste", nil)
	}
	stored := *listing
	r.listings[listing.ID] = &stored
	return nil
}

func (r *memBulkRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.listings[id]; !ok {
		return errors.NotFound("Bulk e-waste", nil)
	}
	delete(r.listings, id)
	return nil
}

func newBulkTestHandler() (*BulkEWasteHandler, *memBulkRepo) {
	repo := newMemBulkRepo()
	uc := usecase.NewBulkEWasteUseCase(repo, newMemUserRepo(), nil)
	return NewBulkEWasteHandler(uc, nil, nil), repo
}

func TestBulkCreateHandlerDerivesTotal(t *testing.T) {
	h, _ := newBulkTestHandler()

	form := url.Values{}
	form.Set("title", "Mixed board lot")
	form.Set("description", "Assorted circuit boards")
	form.Set("weightInKg", "40")
	form.Set("pricePerKg", "2.5")
	// A caller-supplied total is ignored, never trusted.
	form.Set("totalPrice", "999999")

	c, rec := formContext(http.MethodPost, "/api/bulk-ewaste", form, "collector-1", entity.RoleCollector)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "available", dataField(t, envelope, "status"))
	assert.Equal(t, "collector-1", dataField(t, envelope, "collector_id"))
	assert.Equal(t, 100.0, dataField(t, envelope, "total_price"))
}

func TestBulkCreateHandlerWeightTooLow(t *testing.T) {
	h, _ := newBulkTestHandler()

	form := url.Values{}
	form.Set("title", "Tiny lot")
	form.Set("description", "Not much here")
	form.Set("weightInKg", "0.05")

	c, rec := formContext(http.MethodPost, "/api/bulk-ewaste", form, "collector-1", entity.RoleCollector)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "Weight must be at least 0.1 kg", envelope.Error.Message)
}

func seedBulk(t *testing.T, repo *memBulkRepo, collectorID string) *entity.BulkListing {
	t.Helper()
	rate := 2.5
	listing := &entity.BulkListing{
		CollectorID: collectorID,
		Title:       "Mixed board lot",
		Description: "Assorted circuit boards",
		WeightInKg:  40,
		PricePerKg:  &rate,
		Images:      []string{},
		Status:      entity.BulkStatusAvailable,
	}
	listing.RecomputeTotalPrice()
	require.NoError(t, repo.Create(context.Background(), listing))
	return listing
}

func TestBulkUpdateHandlerClearingRateClearsTotal(t *testing.T) {
	h, repo := newBulkTestHandler()
	listing := seedBulk(t, repo, "collector-1")

	form := url.Values{}
	form.Set("pricePerKg", "")
	c, rec := formContext(http.MethodPut, "/api/bulk-ewaste/"+listing.ID, form, "collector-1", entity.RoleCollector)
	c.SetParamNames("id")
	c.SetParamValues(listing.ID)
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Nil(t, dataField(t, envelope, "price_per_kg"))
	assert.Nil(t, dataField(t, envelope, "total_price"))
}

func TestBulkMarkSoldHandler(t *testing.T) {
	h, repo := newBulkTestHandler()
	listing := seedBulk(t, repo, "collector-1")

	c, rec := formContext(http.MethodPut, "/api/bulk-ewaste/"+listing.ID+"/sold", nil, "org-1", entity.RoleOrganization)
	c.SetParamNames("id")
	c.SetParamValues(listing.ID)
	require.NoError(t, h.MarkSold(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "sold", dataField(t, envelope, "status"))
	assert.Equal(t, "org-1", dataField(t, envelope, "sold_to_id"))
}

func TestBulkMarkSoldHandlerConflict(t *testing.T) {
	h, repo := newBulkTestHandler()
	listing := seedBulk(t, repo, "collector-1")
	listing.Status = entity.BulkStatusSold
	listing.SoldToID = "org-2"
	require.NoError(t, repo.Update(context.Background(), listing))

	c, rec := formContext(http.MethodPut, "/api/bulk-ewaste/"+listing.ID+"/sold", nil, "org-1", entity.RoleOrganization)
	c.SetParamNames("id")
	c.SetParamValues(listing.ID)
	require.NoError(t, h.MarkSold(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
	assert.Equal(t, "Bulk e-waste already sold", envelope.Error.Message)
}
