package ports

import (
	"context"

	"github.com/voxdigify/crm-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Create returns
// domain.ErrUserExists when the unique email index is violated.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateRole(ctx context.Context, id, role string) error
	Delete(ctx context.Context, id string) error
}

// AuthService implements signup and login.
type AuthService interface {
	// Signup creates a user (role defaults to client) and returns a signed
	// token alongside the created user.
	Signup(ctx context.Context, name, email, password, role string) (string, *domain.User, error)
	// Login verifies credentials and returns a signed token. Unknown email
	// and wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// UpdateProfileInput carries a partial profile update; zero-valued fields are
// left unchanged, a non-empty Password is re-hashed.
type UpdateProfileInput struct {
	UserID         string
	Name           string
	Email          string
	Password       string
	ProfilePicture string
}

// UserService covers profile self-service and the admin-only user management
// operations. ChangeRole and DeleteUser reject self-targeting with
// domain.ErrSelfAction regardless of role.
type UserService interface {
	Profile(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*domain.User, error)
	// DeleteOwn closes the caller's own account. Admin accounts cannot be
	// self-deleted and get domain.ErrSelfAction.
	DeleteOwn(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ChangeRole(ctx context.Context, actorID, targetID, role string) error
	DeleteUser(ctx context.Context, actorID, targetID string) error
}
