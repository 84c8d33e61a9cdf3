package product

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Category    string    `json:"category"`
	ArtisanName string    `json:"artisanName"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Image       string    `json:"image"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateProductInput struct {
	Name        string
	Description *string
	Category    string
	ArtisanName string
	Price       float64
	Quantity    int
	Image       string
}

type UpdateProductInput struct {
	Name        *string
	Description *string
	Category    *string
	ArtisanName *string
	Price       *float64
	Quantity    *int
	Image       *string
}
