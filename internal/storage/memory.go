package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tejaIG/sevak-ai-poc/internal/models"
)

// MemoryStore keeps all records in process memory. It mirrors the relational
// store's semantics (id assignment, uniqueness, timestamps) so services and
// tests behave identically against either backend.
type MemoryStore struct {
	mu                 sync.RWMutex
	users              map[uint]*models.User
	requirements       map[uint]*models.Requirements
	nextUserID         uint
	nextRequirementsID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:              make(map[uint]*models.User),
		requirements:       make(map[uint]*models.Requirements),
		nextUserID:         1,
		nextRequirementsID: 1,
	}
}

// User operations

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return ErrDuplicateEmail
		}
		if existing.Mobile == user.Mobile {
			return ErrDuplicateMobile
		}
	}

	now := time.Now()
	user.ID = s.nextUserID
	s.nextUserID++
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users[user.ID] = copyUser(user)
	return nil
}

func (s *MemoryStore) GetUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return copyUser(user), nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) GetUserByMobile(_ context.Context, mobile string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Mobile == mobile {
			return copyUser(user), nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) UpdateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[user.ID]
	if !ok {
		return ErrUserNotFound
	}

	for id, other := range s.users {
		if id == user.ID {
			continue
		}
		if other.Email == user.Email {
			return ErrDuplicateEmail
		}
		if other.Mobile == user.Mobile {
			return ErrDuplicateMobile
		}
	}

	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now()
	s.users[user.ID] = copyUser(user)
	return nil
}

func (s *MemoryStore) ListUsers(_ context.Context, limit, offset int) ([]models.User, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uint, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	total := int64(len(ids))
	if offset >= len(ids) {
		return []models.User{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(ids) {
		end = len(ids)
	}

	users := make([]models.User, 0, end-offset)
	for _, id := range ids[offset:end] {
		users = append(users, *copyUser(s.users[id]))
	}
	return users, total, nil
}

// Requirements operations

func (s *MemoryStore) CreateRequirements(_ context.Context, req *models.Requirements) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[req.UserID]; !ok {
		return ErrUserNotFound
	}
	for _, existing := range s.requirements {
		if existing.UserID == req.UserID {
			return ErrDuplicateUser
		}
	}

	now := time.Now()
	req.ID = s.nextRequirementsID
	s.nextRequirementsID++
	req.CreatedAt = now
	req.UpdatedAt = now
	if req.Status == "" {
		req.Status = models.RequirementsStatusDraft
	}

	s.requirements[req.ID] = copyRequirements(req)
	return nil
}

func (s *MemoryStore) GetRequirements(_ context.Context, userID uint) (*models.Requirements, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, req := range s.requirements {
		if req.UserID == userID {
			return copyRequirements(req), nil
		}
	}
	return nil, ErrRequirementsNotFound
}

func (s *MemoryStore) UpdateRequirements(_ context.Context, req *models.Requirements) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.requirements[req.ID]
	if !ok || existing.UserID != req.UserID {
		return ErrRequirementsNotFound
	}

	req.CreatedAt = existing.CreatedAt
	req.UpdatedAt = time.Now()
	s.requirements[req.ID] = copyRequirements(req)
	return nil
}

func (s *MemoryStore) ListRequirementsByStatus(_ context.Context, status models.RequirementsStatus) ([]models.Requirements, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Requirements
	for _, req := range s.requirements {
		if req.Status == status {
			out = append(out, *copyRequirements(req))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Records are copied on the way in and out so callers can never mutate
// stored state through a shared pointer or slice.

func copyUser(u *models.User) *models.User {
	clone := *u
	clone.Requirements = nil
	return &clone
}

func copyRequirements(r *models.Requirements) *models.Requirements {
	clone := *r
	clone.HelperTypes = append(r.HelperTypes[:0:0], r.HelperTypes...)
	clone.WorkingDays = append(r.WorkingDays[:0:0], r.WorkingDays...)
	clone.SpecificSkills = append(r.SpecificSkills[:0:0], r.SpecificSkills...)
	clone.LanguagePreferences = append(r.LanguagePreferences[:0:0], r.LanguagePreferences...)
	return &clone
}
