package usecase

import (
	"context"
	"time"

	"ewastehub/internal/domain/entity"
	"ewastehub/internal/domain/repository"
	"ewastehub/pkg/errors"
	"ewastehub/pkg/logger"
)

type BulkEWasteUseCase struct {
	bulkRepo repository.BulkEWasteRepository
	userRepo repository.UserRepository
	cache    ListingCache
}

func NewBulkEWasteUseCase(bulkRepo repository.BulkEWasteRepository, userRepo repository.UserRepository, cache ListingCache) *BulkEWasteUseCase {
	return &BulkEWasteUseCase{
		bulkRepo: bulkRepo,
		userRepo: userRepo,
		cache:    cache,
	}
}

type CreateBulkInput struct {
	Title       string
	Description string
	Category    string
	Condition   string
	WeightInKg  float64
	PricePerKg  *float64
	Location    string
}

type UpdateBulkInput struct {
	Title       string
	Description string
	Category    string
	Condition   string
	WeightInKg  float64
	PricePerKg  OptionalFloat
	Location    OptionalString
}

type BulkFilter struct {
	Status    string
	Condition string
}

func (uc *BulkEWasteUseCase) Create(ctx context.Context, actor Actor, input CreateBulkInput, imageURLs []string) (*entity.BulkListing, error) {
	if input.Title == "" || input.Description == "" || input.WeightInKg == 0 {
		return nil, errors.BadRequest("Please provide all required fields", nil)
	}
	if input.WeightInKg < entity.MinBulkWeightKg {
		return nil, errors.BadRequest("Weight must be at least 0.1 kg", nil)
	}
	if input.Category != "" && !entity.ValidBulkCategory(input.Category) {
		return nil, errors.BadRequest("Invalid category", nil)
	}
	if input.Condition != "" && !entity.ValidBulkCondition(input.Condition) {
		return nil, errors.BadRequest("Invalid condition", nil)
	}
	if input.PricePerKg != nil && *input.PricePerKg < 0 {
		return nil, errors.BadRequest("Price per kg cannot be negative", nil)
	}

	if imageURLs == nil {
		imageURLs = []string{}
	}

	listing := &entity.BulkListing{
		CollectorID: actor.ID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Condition:   input.Condition,
		WeightInKg:  input.WeightInKg,
		PricePerKg:  input.PricePerKg,
		Location:    input.Location,
		Images:      imageURLs,
		Status:      entity.BulkStatusAvailable,
	}
	// The total is always derived server-side, never trusted from the caller.
	listing.RecomputeTotalPrice()

	if err := uc.bulkRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	uc.cacheSet(ctx, listing)

	return listing, nil
}

func (uc *BulkEWasteUseCase) ListMine(ctx context.Context, actor Actor) ([]*entity.BulkListing, error) {
	listings, err := uc.bulkRepo.ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	uc.populate(ctx, listings, false)

	return listings, nil
}

func (uc *BulkEWasteUseCase) ListAll(ctx context.Context, filter BulkFilter) ([]*entity.BulkListing, error) {
	storeFilter := map[string]interface{}{}
	if filter.Status != "" {
		storeFilter["status"] = filter.Status
	}
	if filter.Condition != "" {
		storeFilter["condition"] = filter.Condition
	}

	listings, err := uc.bulkRepo.List(ctx, storeFilter)
	if err != nil {
		return nil, err
	}

	uc.populate(ctx, listings, true)

	return listings, nil
}

func (uc *BulkEWasteUseCase) GetByID(ctx context.Context, id string) (*entity.BulkListing, error) {
	listing, err := uc.getCachedOrLoad(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.populate(ctx, []*entity.BulkListing{listing}, true)

	return listing, nil
}

func (uc *BulkEWasteUseCase) Update(ctx context.Context, actor Actor, id string, input UpdateBulkInput, newImageURLs []string) (*entity.BulkListing, error) {
	listing, err := uc.bulkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canMutate(actor, listing.CollectorID) {
		return nil, errors.Forbidden("Not authorized to update this post", nil)
	}

	if input.Title != "" {
		listing.Title = input.Title
	}
	if input.Description != "" {
		listing.Description = input.Description
	}
	if input.Category != "" {
		if !entity.ValidBulkCategory(input.Category) {
			return nil, errors.BadRequest("Invalid category", nil)
		}
		listing.Category = input.Category
	}
	if input.Condition != "" {
		if !entity.ValidBulkCondition(input.Condition) {
			return nil, errors.BadRequest("Invalid condition", nil)
		}
		listing.Condition = input.Condition
	}
	if input.WeightInKg != 0 {
		if input.WeightInKg < entity.MinBulkWeightKg {
			return nil, errors.BadRequest("Weight must be at least 0.1 kg", nil)
		}
		listing.WeightInKg = input.WeightInKg
	}

	if input.PricePerKg.Present {
		if input.PricePerKg.Value != nil && *input.PricePerKg.Value < 0 {
			return nil, errors.BadRequest("Price per kg cannot be negative", nil)
		}
		listing.PricePerKg = input.PricePerKg.Value
	}
	if input.Location.Present {
		listing.Location = input.Location.Value
	}

	// Rederive the total after any weight or rate change; a stale total is
	// never carried over, and clearing the rate clears the total.
	listing.RecomputeTotalPrice()

	listing.Images = append(listing.Images, newImageURLs...)

	if err := uc.bulkRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	uc.cacheSet(ctx, listing)

	return listing, nil
}

func (uc *BulkEWasteUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	listing, err := uc.bulkRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !canDelete(actor, listing.CollectorID) {
		return errors.Forbidden("Not authorized to delete this post", nil)
	}

	if err := uc.bulkRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.cacheDelete(ctx, id)

	return nil
}

// MarkSold is the one-way available -> sold transition, reserved to
// purchasing organizations and admins. Selling twice is an error. As with
// collection there is no version check, so concurrent calls race.
func (uc *BulkEWasteUseCase) MarkSold(ctx context.Context, actor Actor, id string) (*entity.BulkListing, error) {
	if !actor.HasRole(entity.RoleOrganization, entity.RoleAdmin) {
		return nil, errors.Forbidden("Only organizations can purchase bulk posts", nil)
	}

	listing, err := uc.bulkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.Status == entity.BulkStatusSold {
		return nil, errors.Conflict("Bulk e-waste already sold")
	}

	now := time.Now()
	listing.Status = entity.BulkStatusSold
	listing.SoldToID = actor.ID
	listing.SoldAt = &now

	if err := uc.bulkRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	uc.cacheSet(ctx, listing)

	return listing, nil
}

func (uc *BulkEWasteUseCase) getCachedOrLoad(ctx context.Context, id string) (*entity.BulkListing, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetBulk(ctx, id)
		if err != nil {
			logger.Warn("Bulk cache read failed for %s: %v", id, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	listing, err := uc.bulkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.cacheSet(ctx, listing)

	return listing, nil
}

func (uc *BulkEWasteUseCase) cacheSet(ctx context.Context, listing *entity.BulkListing) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.SetBulk(ctx, listing); err != nil {
		logger.Warn("Bulk cache write failed for %s: %v", listing.ID, err)
	}
}

func (uc *BulkEWasteUseCase) cacheDelete(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeleteBulk(ctx, id); err != nil {
		logger.Warn("Bulk cache delete failed for %s: %v", id, err)
	}
}

func (uc *BulkEWasteUseCase) populate(ctx context.Context, listings []*entity.BulkListing, ownerContact bool) {
	resolver := newSummaryResolver(uc.userRepo)
	for _, listing := range listings {
		listing.Collector = resolver.resolve(ctx, listing.CollectorID, ownerContact)
		listing.SoldTo = resolver.resolve(ctx, listing.SoldToID, false)
	}
}
