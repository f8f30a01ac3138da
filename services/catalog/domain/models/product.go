package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const maxDescriptionLength = 255

// Product is the core aggregate for this bounded context. The catalog is
// shared across all users; ownership checks live in the shopping list context.
// Price is stored in the currency's smallest unit.
type Product struct {
	ID          uuid.UUID
	Name        ProductName
	Price       int64
	Quantity    int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct constructs a valid Product aggregate with generated ID and current timestamp.
func NewProduct(name ProductName, price int64, quantity int, description string) (*Product, error) {
	if err := validateAttributes(price, quantity, description); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Product{
		ID:          uuid.New(),
		Name:        name,
		Price:       price,
		Quantity:    quantity,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update applies new attribute values, re-validating constraints and bumping
// UpdatedAt.
func (p *Product) Update(name ProductName, price int64, quantity int, description string) error {
	if err := validateAttributes(price, quantity, description); err != nil {
		return err
	}
	p.Name = name
	p.Price = price
	p.Quantity = quantity
	p.Description = description
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func validateAttributes(price int64, quantity int, description string) error {
	if price < 0 {
		return fmt.Errorf("product price must not be negative")
	}
	if quantity < 0 {
		return fmt.Errorf("product quantity must not be negative")
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("product description must not exceed %d characters", maxDescriptionLength)
	}
	return nil
}
