package repositories

import "shoplite/internal/models"

// UserRepository defines the interface for user data access.
//
// Create must treat the uniqueness check, id assignment and insert as one
// atomic unit: two concurrent creates for the same username must yield
// exactly one success and one ErrDuplicate, and ids are never reused.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	Count() (int64, error)
}
