package storage

import (
	"context"
	"errors"

	"github.com/tejaIG/sevak-ai-poc/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrRequirementsNotFound = errors.New("requirements not found")
	ErrDuplicateEmail       = errors.New("email already in use")
	ErrDuplicateMobile      = errors.New("mobile already in use")
	ErrDuplicateUser        = errors.New("requirements already exist for user")
)

// Store is the persistence boundary for the intake workflow. The in-memory
// implementation backs development and tests; the GORM implementation backs
// postgres and mysql. Call sites never depend on which one is wired.
type Store interface {
	// User operations
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByMobile(ctx context.Context, mobile string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, int64, error)

	// Requirements operations
	CreateRequirements(ctx context.Context, req *models.Requirements) error
	GetRequirements(ctx context.Context, userID uint) (*models.Requirements, error)
	UpdateRequirements(ctx context.Context, req *models.Requirements) error
	ListRequirementsByStatus(ctx context.Context, status models.RequirementsStatus) ([]models.Requirements, error)

	Ping(ctx context.Context) error
}
