package usecase

import (
	"context"

	"ewastehub/internal/domain/entity"
	"ewastehub/internal/domain/repository"
	"ewastehub/pkg/logger"
)

// Actor is the authenticated caller, threaded explicitly into every lifecycle
// operation instead of being pulled out of request state.
type Actor struct {
	ID   string
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

func (a Actor) HasRole(roles ...string) bool {
	for _, role := range roles {
		if a.Role == role {
			return true
		}
	}
	return false
}

// canMutate gates updates: the owner or an admin.
func canMutate(actor Actor, ownerID string) bool {
	return actor.ID == ownerID || actor.IsAdmin()
}

// canDelete gates deletes: owner only. Admins may edit other users' posts but
// not remove them.
func canDelete(actor Actor, ownerID string) bool {
	return actor.ID == ownerID
}

// OptionalFloat distinguishes an absent field from one explicitly provided.
// An explicit zero overwrites; an explicit nil clears the stored value; an
// absent field (Present false) leaves it untouched.
type OptionalFloat struct {
	Present bool
	Value   *float64
}

func FloatValue(v float64) OptionalFloat {
	return OptionalFloat{Present: true, Value: &v}
}

func FloatCleared() OptionalFloat {
	return OptionalFloat{Present: true}
}

// OptionalString carries the same presence semantics for string fields.
type OptionalString struct {
	Present bool
	Value   string
}

func StringValue(v string) OptionalString {
	return OptionalString{Present: true, Value: v}
}

// summaryResolver resolves user references to display summaries, memoizing
// lookups within one request. A dangling reference resolves to nil rather
// than failing the whole read.
type summaryResolver struct {
	userRepo repository.UserRepository
	memo     map[string]*entity.User
}

func newSummaryResolver(userRepo repository.UserRepository) *summaryResolver {
	return &summaryResolver{
		userRepo: userRepo,
		memo:     make(map[string]*entity.User),
	}
}

func (r *summaryResolver) resolve(ctx context.Context, id string, contact bool) *entity.UserSummary {
	if id == "" {
		return nil
	}

	user, ok := r.memo[id]
	if !ok {
		var err error
		user, err = r.userRepo.GetByID(ctx, id)
		if err != nil {
			logger.Warn("Failed to resolve user reference %s: %v", id, err)
			r.memo[id] = nil
			return nil
		}
		r.memo[id] = user
	}
	if user == nil {
		return nil
	}

	summary := &entity.UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
	if contact {
		summary.Phone = user.Phone
		summary.Address = user.Address
	}
	return summary
}
