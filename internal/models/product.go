package models

import "time"

// Product represents a single sellable item in the catalog.
// Tags, Colors and Sizes are always plain string slices once persisted;
// the normalize package converts whatever the client sent before a
// product ever reaches a repository.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty" validate:"omitempty,uuid4"`
	Name        string    `json:"name" bson:"name" validate:"required"`
	Price       float64   `json:"price" bson:"price" validate:"gte=0"`
	Category    string    `json:"category" bson:"category" validate:"required"`
	Tags        []string  `json:"tags" bson:"tags"`
	Colors      []string  `json:"colors" bson:"colors"`
	Sizes       []string  `json:"sizes" bson:"sizes"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}
