package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Tag         string          `json:"tag,omitempty"`
	Rating      decimal.Decimal `json:"rating"`
	Reviews     int             `json:"reviews"`
	InStock     bool            `json:"inStock"`
	Image       string          `json:"image"`
	Featured    bool            `json:"featured"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
