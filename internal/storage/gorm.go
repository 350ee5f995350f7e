package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tejaIG/sevak-ai-poc/internal/models"
)

// GormStore backs the intake workflow with a relational database. Unique
// constraints on email, mobile and requirements.user_id are enforced by the
// schema, so a concurrent insert that slips past the service-level existence
// check still fails with a duplicate error instead of corrupting state.
type GormStore struct {
	db *gorm.DB
}

// OpenGormStore connects using the configured driver ("postgres" or "mysql")
// and migrates the intake tables. TranslateError lets us detect constraint
// violations through gorm.ErrDuplicatedKey regardless of driver.
func OpenGormStore(driver, dsn string) (*GormStore, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(driver) {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Requirements{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &GormStore{db: db}, nil
}

// NewGormStore wraps an existing connection (used by tests).
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// User operations

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return s.classifyUserConflict(ctx, user)
	}
	return err
}

func (s *GormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "mobile = ?", mobile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) UpdateUser(ctx context.Context, user *models.User) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"full_name":      user.FullName,
			"email":          user.Email,
			"mobile":         user.Mobile,
			"location":       user.Location,
			"accepted_terms": user.AcceptedTerms,
		})

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return s.classifyUserConflict(ctx, user)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *GormStore) ListUsers(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := s.db.WithContext(ctx).
		Order("id ASC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

// classifyUserConflict decides which unique constraint fired. The conflicting
// row is re-read because driver error messages are not portable.
func (s *GormStore) classifyUserConflict(ctx context.Context, user *models.User) error {
	var existing models.User
	if err := s.db.WithContext(ctx).
		Where("email = ? AND id <> ?", user.Email, user.ID).
		First(&existing).Error; err == nil {
		return ErrDuplicateEmail
	}
	return ErrDuplicateMobile
}

// Requirements operations

func (s *GormStore) CreateRequirements(ctx context.Context, req *models.Requirements) error {
	if req.Status == "" {
		req.Status = models.RequirementsStatusDraft
	}
	err := s.db.WithContext(ctx).Create(req).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateUser
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrUserNotFound
	}
	return err
}

func (s *GormStore) GetRequirements(ctx context.Context, userID uint) (*models.Requirements, error) {
	var req models.Requirements
	err := s.db.WithContext(ctx).First(&req, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequirementsNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (s *GormStore) UpdateRequirements(ctx context.Context, req *models.Requirements) error {
	result := s.db.WithContext(ctx).Model(&models.Requirements{}).
		Where("id = ? AND user_id = ?", req.ID, req.UserID).
		Updates(map[string]interface{}{
			"helper_types":              req.HelperTypes,
			"timing":                    req.Timing,
			"budget":                    req.Budget,
			"working_days":              req.WorkingDays,
			"working_hours":             req.WorkingHours,
			"specific_skills":           req.SpecificSkills,
			"experience_required":       req.ExperienceRequired,
			"language_preferences":      req.LanguagePreferences,
			"accommodation_required":    req.AccommodationRequired,
			"food_preferences":          req.FoodPreferences,
			"background_check_required": req.BackgroundCheckRequired,
			"proximity_preference":      req.ProximityPreference,
			"urgency":                   req.Urgency,
			"additional_requirements":   req.AdditionalRequirements,
			"status":                    req.Status,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequirementsNotFound
	}
	return nil
}

func (s *GormStore) ListRequirementsByStatus(ctx context.Context, status models.RequirementsStatus) ([]models.Requirements, error) {
	var out []models.Requirements
	err := s.db.WithContext(ctx).
		Where("status = ?", status).Order("id ASC").Find(&out).Error
	return out, err
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
