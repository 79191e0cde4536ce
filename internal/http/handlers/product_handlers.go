package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/models"
	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/normalize"
	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/repo"
	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/uploads"
)

const (
	defaultPageSize = 50
	maxFormMemory   = 8 << 20
)

// PingHandler godoc
// @Summary Liveness check
// @Tags meta
// @Produce json
// @Success 200 {object} PingResponse
// @Router /api/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PingResponse{Ok: true, Time: time.Now().Format(time.RFC3339)})
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog. Accepts JSON or multipart form data; price and list fields may arrive in any client format and are normalized.
// @Tags products
// @Accept json
// @Accept mpfd
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {string} string "Invalid input"
// @Router /api/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	req, file, err := parseProductRequest(w, r)
	if err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product := models.Product{
		Tags:   []string{},
		Colors: []string{},
		Sizes:  []string{},
	}
	pricePresent, err := applyRequest(&product, req)
	if err != nil {
		http.Error(w, "invalid price", http.StatusBadRequest)
		return
	}
	if !pricePresent {
		http.Error(w, "price is required", http.StatusBadRequest)
		return
	}

	if file != nil {
		imageURL, status, err := storeImage(r, file)
		if err != nil {
			http.Error(w, err.Error(), status)
			return
		}
		product.Image = imageURL
	}

	created, err := productRepo.Create(product)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidProduct) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", defaultPageSize)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	products, err := productRepo.GetAll((page-1)*limit, limit)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponses(products))
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Partial update: only supplied fields change, each re-normalized. Accepts JSON or multipart form data with an optional image file.
// @Tags products
// @Accept json
// @Accept mpfd
// @Produce json
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "Fields to update"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	req, file, err := parseProductRequest(w, r)
	if err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product := existing
	if _, err := applyRequest(&product, req); err != nil {
		http.Error(w, "invalid price", http.StatusBadRequest)
		return
	}

	if file != nil {
		imageURL, status, err := storeImage(r, file)
		if err != nil {
			http.Error(w, err.Error(), status)
			return
		}
		product.Image = imageURL
	}

	updated, err := productRepo.Update(product)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrInvalidProduct):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "could not update product", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Deletes the product and, best effort, its locally stored image file.
// @Tags products
// @Param id path string true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := productRepo.Delete(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}

	if uploadStore != nil && deleted.Image != "" {
		uploadStore.Remove(deleted.Image)
	}

	w.WriteHeader(http.StatusNoContent)
}

// applyRequest folds the supplied fields into product, running the
// normalizer per field. Absent fields leave the product untouched. The
// first return value reports whether a price value was supplied.
func applyRequest(product *models.Product, req ProductRequest) (bool, error) {
	price, err := normalize.ParsePrice(req.Price)
	if err != nil {
		return false, err
	}
	if price.Present {
		product.Price = price.Amount
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		product.Category = strings.TrimSpace(*req.Category)
	}
	if tags, ok := normalize.StringList(req.Tags); ok {
		product.Tags = tags
	}
	if colors, ok := normalize.StringList(req.Colors); ok {
		product.Colors = colors
	}
	if sizes, ok := normalize.StringList(req.Sizes); ok {
		product.Sizes = sizes
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	return price.Present, nil
}

// parseProductRequest decodes a product payload from either a JSON body
// or a multipart form. Multipart values arrive as raw strings, which the
// normalizer handles the same way it handles JSON scalars.
func parseProductRequest(w http.ResponseWriter, r *http.Request) (ProductRequest, *multipart.FileHeader, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return ProductRequest{}, nil, fmt.Errorf("failed to parse form: %w", err)
		}
		form := r.MultipartForm

		req := ProductRequest{
			Name:        formString(form, "name"),
			Price:       formAny(form, "price"),
			Category:    formString(form, "category"),
			Tags:        formAny(form, "tags"),
			Colors:      formAny(form, "colors"),
			Sizes:       formAny(form, "sizes"),
			Description: formString(form, "description"),
			Image:       formString(form, "image"),
		}

		var file *multipart.FileHeader
		if files := form.File["image"]; len(files) > 0 {
			file = files[0]
			req.Image = nil // the uploaded file wins over a text value
		}
		return req, file, nil
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		return ProductRequest{}, nil, err
	}
	return req, nil, nil
}

func formString(form *multipart.Form, key string) *string {
	if vals, ok := form.Value[key]; ok && len(vals) > 0 {
		return &vals[0]
	}
	return nil
}

func formAny(form *multipart.Form, key string) any {
	if vals, ok := form.Value[key]; ok && len(vals) > 0 {
		return vals[0]
	}
	return nil
}

// storeImage persists an uploaded image file and returns its public URL.
// The second return value is the HTTP status for the error, if any.
func storeImage(r *http.Request, file *multipart.FileHeader) (string, int, error) {
	if uploadStore == nil {
		return "", http.StatusServiceUnavailable, errors.New("image uploads not configured")
	}
	if file.Size > uploads.MaxFileSize {
		return "", http.StatusRequestEntityTooLarge, errors.New("image too large")
	}

	src, err := file.Open()
	if err != nil {
		return "", http.StatusBadRequest, errors.New("could not read image")
	}
	defer src.Close()

	name, err := uploadStore.Save(file.Filename, src)
	if err != nil {
		log.Printf("failed to store image: %v", err)
		return "", http.StatusInternalServerError, errors.New("could not store image")
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/uploads/%s", scheme, r.Host, name), 0, nil
}

func queryInt(r *http.Request, key string, fallback int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
