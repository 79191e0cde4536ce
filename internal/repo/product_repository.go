package repo

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/models"
)

// ErrProductNotFound is returned when a product id does not resolve to an
// existing product.
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidProduct is returned when a product fails the store-level
// field validation gate (missing name or category, negative price).
var ErrInvalidProduct = errors.New("invalid product")

// ProductRepository defines the interface for product data operations.
// Delete returns the removed record so callers can clean up associated
// resources such as a locally stored image file.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll(offset, limit int) ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	GetAllExcept(id string) ([]models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id string) (models.Product, error)
}

var validate = validator.New()

// validateProduct is the last correctness gate beneath the normalizer.
// The normalizer deliberately passes negative amounts through; they are
// rejected here, before anything touches storage.
func validateProduct(p models.Product) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}
	return nil
}
