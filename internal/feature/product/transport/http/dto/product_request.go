// Package dto defines the request and response shapes of the product
// endpoints.
package dto

// ProductReq is the request body for creating or updating a product.
type ProductReq struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageBase64 string  `json:"image_base_64"`
}
