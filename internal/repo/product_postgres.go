package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/models"
)

const productColumns = `id, name, price, category, tags, colors, sizes, description, image, created_at, updated_at`

// PostgresProductRepository stores products in Postgres. The list fields
// are jsonb columns so they round-trip as the same string slices the
// normalizer produced.
type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	if err := validateProduct(p); err != nil {
		return models.Product{}, err
	}

	p.ID = uuid.New().String()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `INSERT INTO products (` + productColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Price, p.Category,
		mustJSON(p.Tags), mustJSON(p.Colors), mustJSON(p.Sizes),
		p.Description, p.Image, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	return p, nil
}

func (r *PostgresProductRepository) GetAll(offset, limit int) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id`
	args := []any{}
	argIdx := 1
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, limit)
		argIdx++
	}
	if offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, offset)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *PostgresProductRepository) GetByID(id string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

// GetAllExcept returns the rest of the catalog in creation order, the
// deterministic order the recommendation sort breaks ties with.
func (r *PostgresProductRepository) GetAllExcept(id string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id <> $1 ORDER BY created_at, id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	if err := validateProduct(p); err != nil {
		return models.Product{}, err
	}
	p.UpdatedAt = time.Now().UTC()

	query := `UPDATE products SET name = $1, price = $2, category = $3, tags = $4, colors = $5, sizes = $6,
		description = $7, image = $8, updated_at = $9 WHERE id = $10`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Price, p.Category,
		mustJSON(p.Tags), mustJSON(p.Colors), mustJSON(p.Sizes),
		p.Description, p.Image, p.UpdatedAt, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id string) (models.Product, error) {
	query := `DELETE FROM products WHERE id = $1 RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var tags, colors, sizes []byte
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Category,
		&tags, &colors, &sizes, &p.Description, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Product{}, err
	}
	if err := unmarshalList(tags, &p.Tags); err != nil {
		return models.Product{}, err
	}
	if err := unmarshalList(colors, &p.Colors); err != nil {
		return models.Product{}, err
	}
	if err := unmarshalList(sizes, &p.Sizes); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func mustJSON(list []string) []byte {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	return b
}

func unmarshalList(data []byte, dst *[]string) error {
	if len(data) == 0 {
		*dst = []string{}
		return nil
	}
	return json.Unmarshal(data, dst)
}
