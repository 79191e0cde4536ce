package handlers

import (
	"time"

	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/models"
)

// ProductRequest carries client-submitted product fields. Price and the
// list fields are deliberately untyped: clients send them as numbers,
// strings, or arrays, and the normalize package sorts it out. Pointer
// fields distinguish "absent" from "empty" on partial updates.
type ProductRequest struct {
	Name        *string `json:"name"`
	Price       any     `json:"price"`
	Category    *string `json:"category"`
	Tags        any     `json:"tags"`
	Colors      any     `json:"colors"`
	Sizes       any     `json:"sizes"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

type ProductResponse struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Colors      []string  `json:"colors"`
	Sizes       []string  `json:"sizes"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PingResponse struct {
	Ok   bool   `json:"ok"`
	Time string `json:"time"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Tags:        orEmpty(p.Tags),
		Colors:      orEmpty(p.Colors),
		Sizes:       orEmpty(p.Sizes),
		Description: p.Description,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

// orEmpty keeps list fields as [] instead of null on the wire.
func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
