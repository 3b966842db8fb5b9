package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"ewastehub/internal/adapter/api"
	"ewastehub/internal/domain/entity"
	"ewastehub/internal/usecase"
	"ewastehub/pkg/errors"
	"ewastehub/pkg/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memEWasteRepo struct {
	listings map[string]*entity.EWasteListing
}

func newMemEWasteRepo() *memEWasteRepo {
	return &memEWasteRepo{listings: make(map[string]*entity.EWasteListing)}
}

func (r *memEWasteRepo) Create(ctx context.Context, listing *entity.EWasteListing) error {
	listing.ID = uuid.New().String()
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt
	stored := *listing
	r.listings[listing.ID] = &stored
	return nil
}

func (r *memEWasteRepo) GetByID(ctx context.Context, id string) (*entity.EWasteListing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("E-waste", nil)
	}
	copied := *listing
	return &copied, nil
}

func (r *memEWasteRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.EWasteListing, error) {
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

func (r *memEWasteRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.EWasteListing, error) {
	return r.List(ctx, map[string]interface{}{"userId": ownerID})
}

func (r *memEWasteRepo) Update(ctx context.Context, listing *entity.EWasteListing) error {
	if _, ok := r.listings[listing.ID]; !ok {
		return errors.NotFound("E-waste", nil)
	}
	stored := *listing
	r.listings[listing.ID] = &stored
	return nil
}

func (r *memEWasteRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.listings[id]; !ok {
		return errors.NotFound("E-waste", nil)
	}
	delete(r.listings, id)
	return nil
}

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	repo := &memUserRepo{users: make(map[string]*entity.User)}
	repo.users["owner-1"] = &entity.User{ID: "owner-1", Name: "Owner One", Email: "owner@example.com", Role: entity.RoleUser}
	repo.users["collector-1"] = &entity.User{ID: "collector-1", Name: "Collector One", Email: "collector@example.com", Role: entity.RoleCollector}
	return repo
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func newEWasteTestHandler() (*EWasteHandler, *memEWasteRepo) {
	repo := newMemEWasteRepo()
	uc := usecase.NewEWasteUseCase(repo, newMemUserRepo(), nil)
	return NewEWasteHandler(uc, nil, nil), repo
}

func formContext(method, target string, form url.Values, uid, role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = api.NewValidator()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", uid)
	c.Set("role", role)
	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func dataField(t *testing.T, envelope response.Response, key string) interface{} {
	t.Helper()
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok, "data is not an object")
	return data[key]
}

func TestEWasteCreateHandler(t *testing.T) {
	h, _ := newEWasteTestHandler()

	form := url.Values{}
	form.Set("title", "Old phone")
	form.Set("description", "Cracked screen")
	form.Set("category", "Mobile Devices")
	form.Set("condition", "not working")
	form.Set("price", "0")

	c, rec := formContext(http.MethodPost, "/api/ewaste", form, "owner-1", entity.RoleUser)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "pending", dataField(t, envelope, "status"))
	assert.Equal(t, "owner-1", dataField(t, envelope, "user_id"))
	// An explicit zero price is a free item, not an absent price.
	assert.Equal(t, 0.0, dataField(t, envelope, "price"))
}

func TestEWasteCreateHandlerMissingTitle(t *testing.T) {
	h, _ := newEWasteTestHandler()

	form := url.Values{}
	form.Set("description", "Cracked screen")
	form.Set("category", "Other")
	form.Set("condition", "working")

	c, rec := formContext(http.MethodPost, "/api/ewaste", form, "owner-1", entity.RoleUser)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Equal(t, "title is required", envelope.Error.Message)
}

func TestEWasteCreateHandlerBadPrice(t *testing.T) {
	h, _ := newEWasteTestHandler()

	form := url.Values{}
	form.Set("title", "Old phone")
	form.Set("description", "Cracked screen")
	form.Set("category", "Other")
	form.Set("condition", "working")
	form.Set("price", "abc")

	c, rec := formContext(http.MethodPost, "/api/ewaste", form, "owner-1", entity.RoleUser)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}

func seedEWaste(t *testing.T, repo *memEWasteRepo, ownerID string, price *float64) *entity.EWasteListing {
	t.Helper()
	listing := &entity.EWasteListing{
		UserID:      ownerID,
		Title:       "Old phone",
		Description: "Cracked screen",
		Category:    "Mobile Devices",
		Condition:   "not working",
		Quantity:    1,
		Price:       price,
		Location:    "Bandung",
		Images:      []string{},
		Status:      entity.EWasteStatusPending,
	}
	require.NoError(t, repo.Create(context.Background(), listing))
	return listing
}

func TestEWasteUpdateHandlerPricePresence(t *testing.T) {
	h, repo := newEWasteTestHandler()
	price := 25.0
	listing := seedEWaste(t, repo, "owner-1", &price)

	// A form without the price key leaves the stored price alone.
	form := url.Values{}
	form.Set("title", "Old phone, reduced")
	c, rec := formContext(http.MethodPut, "/api/ewaste/"+listing.ID, form, "owner-1", entity.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues(listing.ID)
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 25.0, dataField(t, decodeEnvelope(t, rec), "price"))

	// price=0 is an explicit overwrite.
	form = url.Values{}
	form.Set("price", "0")
	c, rec = formContext(http.MethodPut, "/api/ewaste/"+listing.ID, form, "owner-1", entity.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues(listing.ID)
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.0, dataField(t, decodeEnvelope(t, rec), "price"))

	// An explicitly empty price clears it.
	form = url.Values{}
	form.Set("price", "")
	c, rec = formContext(http.MethodPut, "/api/ewaste/"+listing.ID, form, "owner-1", entity.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues(listing.ID)
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, dataField(t, decodeEnvelope(t, rec), "price"))
}

func TestEWasteUpdateHandlerForbidden(t *testing.T) {
	h, repo := newEWasteTestHandler()
	listing := seedEWaste(t, repo, "owner-1", nil)

	form := url.Values{}
	form.Set("title", "Hijacked")
	c, rec := formContext(http.MethodPut, "/api/ewaste/"+listing.ID, form, "collector-1", entity.RoleCollector)
	c.SetParamNames("id")
	c.SetParamValues(listing.ID)
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "FORBIDDEN", envelope.Error.Code)
}

func TestEWasteDeleteHandler(t *testing.T) {
	h, repo := newEWasteTestHandler()
	listing := seedEWaste(t, repo, "owner-1", nil)

	c, rec := formContext(http.MethodDelete, "/api/ewaste/"+listing.ID, nil, "owner-1", entity.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues(listing.ID)
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "E-waste post deleted successfully", envelope.Message)
}

func TestEWasteMarkCollectedHandler(t *testing.T) {
	h, repo := newEWasteTestHandler()
	listing := seedEWaste(t, repo, "owner-1", nil)

	c, rec := formContext(http.MethodPut, "/api/ewaste/"+listing.ID+"/collect", nil, "collector-1", entity.RoleCollector)
	c.SetParamNames("id")
	c.SetParamValues(listing.ID)
	require.NoError(t, h.MarkCollected(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "collected", dataField(t, envelope, "status"))
	assert.Equal(t, "collector-1", dataField(t, envelope, "collected_by_id"))
}

func TestEWasteMarkCollectedHandlerConflict(t *testing.T) {
	h, repo := newEWasteTestHandler()
	listing := seedEWaste(t, repo, "owner-1", nil)
	listing.Status = entity.EWasteStatusCollected
	require.NoError(t, repo.Update(context.Background(), listing))

	c, rec := formContext(http.MethodPut, "/api/ewaste/"+listing.ID+"/collect", nil, "collector-1", entity.RoleCollector)
	c.SetParamNames("id")
	c.SetParamValues(listing.ID)
	require.NoError(t, h.MarkCollected(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
	assert.Equal(t, "E-waste already collected", envelope.Error.Message)
}

func TestEWasteListAllHandlerCount(t *testing.T) {
	h, repo := newEWasteTestHandler()
	seedEWaste(t, repo, "owner-1", nil)
	seedEWaste(t, repo, "owner-1", nil)

	c, rec := formContext(http.MethodGet, "/api/ewaste", nil, "collector-1", entity.RoleCollector)
	require.NoError(t, h.ListAll(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Count)
	assert.Equal(t, 2, *envelope.Count)
}
