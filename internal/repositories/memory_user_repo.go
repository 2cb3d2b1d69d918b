package repositories

import (
	"sync"

	"shoplite/internal/models"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
// The existence check, id allocation and insert all happen under one write
// lock, so concurrent registrations can neither share an id nor overwrite
// each other.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[string]models.User
	nextID int64
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:  make(map[string]models.User),
		nextID: 1,
	}
}

// Create stores a new user, assigning the next sequential id.
func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return ErrDuplicate
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.Username] = *user
	return nil
}

// GetByUsername returns a copy of the user record for the given username.
func (r *MemoryUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// Count returns the number of stored users.
func (r *MemoryUserRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}
