package dto

import "tienda_backend/internal/feature/product/domain/entity"

// ProductResponse is the wire shape of a product.
type ProductResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageBase64 string  `json:"image_base_64,omitempty"`
	SellerID    string  `json:"seller_id"`
	Active      bool    `json:"active"`
}

// FromEntity converts a domain product into its wire shape.
func FromEntity(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		Category:    p.Category,
		ImageBase64: p.ImageBase64,
		SellerID:    p.SellerID,
		Active:      p.Active,
	}
}
