package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/voxdigify/crm-api/internal/core/domain"
	"github.com/voxdigify/crm-api/internal/core/ports"
)

// UserService covers profile self-service and admin user management.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile applies a partial update to the caller's own profile. Empty
// fields are left unchanged; a supplied password is re-hashed.
func (s *UserService) UpdateProfile(ctx context.Context, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.ProfilePicture != "" {
		user.ProfilePicture = in.ProfilePicture
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("profile updated")
	return user, nil
}

// DeleteOwn closes the caller's own account. Admin accounts cannot be removed
// this way; the admin invariant forbids any self-deletion path.
func (s *UserService) DeleteOwn(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleAdmin {
		return domain.ErrSelfAction
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("account deleted by owner")
	return nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// ChangeRole updates a user's role. Self-role-change is rejected regardless
// of role.
func (s *UserService) ChangeRole(ctx context.Context, actorID, targetID, role string) error {
	if !domain.ValidRole(role) {
		return domain.ErrInvalidRole
	}
	if actorID == targetID {
		return domain.ErrSelfAction
	}

	if err := s.repo.UpdateRole(ctx, targetID, role); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", targetID).Str("role", role).Str("actor_id", actorID).Msg("role updated")
	return nil
}

// DeleteUser removes another user's account. Self-deletion is rejected
// regardless of role.
func (s *UserService) DeleteUser(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return domain.ErrSelfAction
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", targetID).Str("actor_id", actorID).Msg("user deleted")
	return nil
}
