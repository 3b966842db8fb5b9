package usecase

import (
	"context"
	"time"

	"ewastehub/internal/domain/entity"
	"ewastehub/internal/domain/repository"
	"ewastehub/pkg/errors"
	"ewastehub/pkg/logger"
)

type EWasteUseCase struct {
	ewasteRepo repository.EWasteRepository
	userRepo   repository.UserRepository
	cache      ListingCache
}

func NewEWasteUseCase(ewasteRepo repository.EWasteRepository, userRepo repository.UserRepository, cache ListingCache) *EWasteUseCase {
	return &EWasteUseCase{
		ewasteRepo: ewasteRepo,
		userRepo:   userRepo,
		cache:      cache,
	}
}

type CreateEWasteInput struct {
	Title       string
	Description string
	Category    string
	Condition   string
	Quantity    int
	Price       *float64
	Location    string
}

type UpdateEWasteInput struct {
	Title       string
	Description string
	Category    string
	Condition   string
	Quantity    int
	Price       OptionalFloat
	Location    OptionalString
}

type EWasteFilter struct {
	Status    string
	Condition string
}

func (uc *EWasteUseCase) Create(ctx context.Context, actor Actor, input CreateEWasteInput, imageURLs []string) (*entity.EWasteListing, error) {
	if input.Title == "" || input.Description == "" || input.Category == "" || input.Condition == "" {
		return nil, errors.BadRequest("Please provide all required fields", nil)
	}
	if !entity.ValidEWasteCategory(input.Category) {
		return nil, errors.BadRequest("Invalid category", nil)
	}
	if !entity.ValidEWasteCondition(input.Condition) {
		return nil, errors.BadRequest("Invalid condition", nil)
	}
	if input.Quantity < 0 {
		return nil, errors.BadRequest("Quantity must be at least 1", nil)
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, errors.BadRequest("Price cannot be negative", nil)
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if imageURLs == nil {
		imageURLs = []string{}
	}

	listing := &entity.EWasteListing{
		UserID:      actor.ID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Condition:   input.Condition,
		Quantity:    quantity,
		Price:       input.Price,
		Location:    input.Location,
		Images:      imageURLs,
		Status:      entity.EWasteStatusPending,
	}

	if err := uc.ewasteRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	uc.cacheSet(ctx, listing)

	return listing, nil
}

// ListMine returns the caller's own posts, newest first, with owner and
// collector references resolved to name/email summaries.
func (uc *EWasteUseCase) ListMine(ctx context.Context, actor Actor) ([]*entity.EWasteListing, error) {
	listings, err := uc.ewasteRepo.ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	uc.populate(ctx, listings, false)

	return listings, nil
}

// ListAll is open to any authenticated actor. Browsing collectors need the
// owner's contact info, so owner summaries carry phone and address here.
func (uc *EWasteUseCase) ListAll(ctx context.Context, filter EWasteFilter) ([]*entity.EWasteListing, error) {
	storeFilter := map[string]interface{}{}
	if filter.Status != "" {
		storeFilter["status"] = filter.Status
	}
	if filter.Condition != "" {
		storeFilter["condition"] = filter.Condition
	}

	listings, err := uc.ewasteRepo.List(ctx, storeFilter)
	if err != nil {
		return nil, err
	}

	uc.populate(ctx, listings, true)

	return listings, nil
}

func (uc *EWasteUseCase) GetByID(ctx context.Context, id string) (*entity.EWasteListing, error) {
	listing, err := uc.getCachedOrLoad(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.populate(ctx, []*entity.EWasteListing{listing}, true)

	return listing, nil
}

func (uc *EWasteUseCase) Update(ctx context.Context, actor Actor, id string, input UpdateEWasteInput, newImageURLs []string) (*entity.EWasteListing, error) {
	listing, err := uc.ewasteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canMutate(actor, listing.UserID) {
		return nil, errors.Forbidden("Not authorized to update this item", nil)
	}

	if input.Title != "" {
		listing.Title = input.Title
	}
	if input.Description != "" {
		listing.Description = input.Description
	}
	if input.Category != "" {
		if !entity.ValidEWasteCategory(input.Category) {
			return nil, errors.BadRequest("Invalid category", nil)
		}
		listing.Category = input.Category
	}
	if input.Condition != "" {
		if !entity.ValidEWasteCondition(input.Condition) {
			return nil, errors.BadRequest("Invalid condition", nil)
		}
		listing.Condition = input.Condition
	}
	if input.Quantity > 0 {
		listing.Quantity = input.Quantity
	}

	// Price and location honor explicit presence: a provided zero or empty
	// value overwrites, only a fully absent field keeps the stored value.
	if input.Price.Present {
		if input.Price.Value != nil && *input.Price.Value < 0 {
			return nil, errors.BadRequest("Price cannot be negative", nil)
		}
		listing.Price = input.Price.Value
	}
	if input.Location.Present {
		listing.Location = input.Location.Value
	}

	// New images are appended, never replacing the existing list.
	listing.Images = append(listing.Images, newImageURLs...)

	if err := uc.ewasteRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	uc.cacheSet(ctx, listing)

	return listing, nil
}

func (uc *EWasteUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	listing, err := uc.ewasteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !canDelete(actor, listing.UserID) {
		return errors.Forbidden("Not authorized to delete this post", nil)
	}

	if err := uc.ewasteRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.cacheDelete(ctx, id)

	return nil
}

// MarkCollected is the one-way pending -> collected transition. Collecting an
// already-collected post is an error, not a no-op. There is no version check:
// two concurrent calls can both pass the status check and last write wins.
func (uc *EWasteUseCase) MarkCollected(ctx context.Context, actor Actor, id string) (*entity.EWasteListing, error) {
	if !actor.HasRole(entity.RoleCollector, entity.RoleAdmin) {
		return nil, errors.Forbidden("Only collectors can mark items as collected", nil)
	}

	listing, err := uc.ewasteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.Status == entity.EWasteStatusCollected {
		return nil, errors.Conflict("E-waste already collected")
	}

	now := time.Now()
	listing.Status = entity.EWasteStatusCollected
	listing.CollectedByID = actor.ID
	listing.CollectedAt = &now

	if err := uc.ewasteRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	uc.cacheSet(ctx, listing)

	return listing, nil
}

func (uc *EWasteUseCase) getCachedOrLoad(ctx context.Context, id string) (*entity.EWasteListing, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetEWaste(ctx, id)
		if err != nil {
			logger.Warn("E-waste cache read failed for %s: %v", id, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	listing, err := uc.ewasteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.cacheSet(ctx, listing)

	return listing, nil
}

func (uc *EWasteUseCase) cacheSet(ctx context.Context, listing *entity.EWasteListing) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.SetEWaste(ctx, listing); err != nil {
		logger.Warn("E-waste cache write failed for %s: %v", listing.ID, err)
	}
}

func (uc *EWasteUseCase) cacheDelete(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeleteEWaste(ctx, id); err != nil {
		logger.Warn("E-waste cache delete failed for %s: %v", id, err)
	}
}

func (uc *EWasteUseCase) populate(ctx context.Context, listings []*entity.EWasteListing, ownerContact bool) {
	resolver := newSummaryResolver(uc.userRepo)
	for _, listing := range listings {
		listing.User = resolver.resolve(ctx, listing.UserID, ownerContact)
		listing.CollectedBy = resolver.resolve(ctx, listing.CollectedByID, false)
	}
}
