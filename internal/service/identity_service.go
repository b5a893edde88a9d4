package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrms/internal/auth"
	"hrms/internal/cache"
	"hrms/internal/errors"
	"hrms/internal/repository"
)

const identityCacheTTL = 5 * time.Minute

func identityCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("identity:%s", userID.String())
}

// IdentityService resolves token claims to the full caller identity,
// including the linked employee profile.
type IdentityService interface {
	Resolve(ctx context.Context, userID uuid.UUID) (*auth.Identity, error)
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type identityService struct {
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewIdentityService creates a new identity service.
func NewIdentityService(userRepo repository.UserRepository, cache *cache.Client) IdentityService {
	return &identityService{
		userRepo: userRepo,
		cache:    cache,
	}
}

// Resolve loads the identity for a user id, with short-TTL caching. The role
// and employee link come from the store, not the token, so profile changes
// take effect within the TTL.
func (s *identityService) Resolve(ctx context.Context, userID uuid.UUID) (*auth.Identity, error) {
	if data, _ := s.cache.Get(ctx, identityCacheKey(userID)); data != nil {
		var cached auth.Identity
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUnauthorized
		}
		return nil, err
	}

	ident := &auth.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}
	if user.Employee != nil {
		employee := *user.Employee
		employee.User = *user
		summary := employee.Summary()
		ident.Employee = &summary
	}

	if payload, err := json.Marshal(ident); err == nil {
		_ = s.cache.Set(ctx, identityCacheKey(userID), payload, identityCacheTTL)
	}

	return ident, nil
}

// Invalidate drops the cached identity for a user.
func (s *identityService) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return s.cache.Delete(ctx, identityCacheKey(userID))
}
