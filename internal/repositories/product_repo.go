package repositories

import "shoplite/internal/models"

// ProductRepository defines read access to the fixed catalog.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Seed(products []models.Product) error
}
