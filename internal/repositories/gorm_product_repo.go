package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shoplite/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// Seed upserts the catalog entries; reseeding on restart is idempotent.
func (r *GORMProductRepository) Seed(products []models.Product) error {
	for i := range products {
		if err := r.db.Save(&products[i]).Error; err != nil {
			return fmt.Errorf("seed product %s: %w", products[i].ID, err)
		}
	}
	return nil
}

// GetAll returns the catalog ordered by id.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a product by id.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return &product, nil
}
