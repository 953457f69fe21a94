package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
	Images       []string        `json:"images,omitempty"` // additional images, primary excluded
	Category     string          `json:"category"`
	Materials    []string        `json:"materials"`
	Customizable bool            `json:"customizable"`
	Rating       float64         `json:"rating"`
	ReviewCount  int             `json:"review_count"`
}

// Gallery returns the primary image followed by the additional images.
func (p Product) Gallery() []string {
	images := make([]string, 0, len(p.Images)+1)
	images = append(images, p.ImageURL)
	return append(images, p.Images...)
}
