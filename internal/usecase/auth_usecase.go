package usecase

import (
	"context"
	"time"

	"ewastehub/internal/domain/entity"
	"ewastehub/internal/domain/repository"
	"ewastehub/pkg/errors"
	"ewastehub/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Name             string
	Email            string
	Password         string
	Phone            string
	Address          string
	Role             string
	OrganizationName string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Admin accounts are provisioned manually, never through signup.
	switch input.Role {
	case entity.RoleUser, entity.RoleCollector, entity.RoleOrganization:
	case "":
		input.Role = entity.RoleUser
	default:
		return nil, errors.BadRequest("Invalid role", nil)
	}

	if input.Role == entity.RoleOrganization && input.OrganizationName == "" {
		return nil, errors.BadRequest("Organization name is required", nil)
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:               uid,
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Address:          input.Address,
		Role:             input.Role,
		OrganizationName: input.OrganizationName,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Roll back the auth record so the email is not left orphaned.
		if delErr := uc.firebaseAuth.DeleteUser(ctx, uid); delErr != nil {
			logger.Error("Failed to clean up auth user %s after profile create failure: %v", uid, delErr)
		}
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}
