package repo

import (
	"time"

	"github.com/google/uuid"

	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository. Insertion order is the store's natural iteration
// order, which the recommendation ranking relies on for tie-breaking.
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: []models.Product{}}
}

// Create adds a new product to the repository, assigning its id and
// timestamps.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	if err := validateProduct(product); err != nil {
		return models.Product{}, err
	}
	product.ID = uuid.New().String()
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves products in insertion order, applying skip/limit
// pagination. A limit of zero or less means no limit.
func (r *InMemoryProductRepository) GetAll(offset, limit int) ([]models.Product, error) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.products) {
		return []models.Product{}, nil
	}
	end := len(r.products)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]models.Product, end-offset)
	copy(out, r.products[offset:end])
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// GetAllExcept retrieves every product except the one with the given ID,
// in insertion order.
func (r *InMemoryProductRepository) GetAllExcept(id string) ([]models.Product, error) {
	out := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out, nil
}

// Update replaces an existing product, refreshing its update timestamp.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	if err := validateProduct(product); err != nil {
		return models.Product{}, err
	}
	for i, p := range r.products {
		if p.ID == product.ID {
			product.CreatedAt = p.CreatedAt
			product.UpdatedAt = time.Now().UTC()
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product by its ID and returns the removed record.
func (r *InMemoryProductRepository) Delete(id string) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Clear removes all products. Used by tests.
func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}
