// Package usecase implements the business logic for the product feature.
package usecase

import (
	"context"

	"tienda_backend/internal/feature/auth/domain/entity"
	"tienda_backend/internal/feature/product/domain"
	productentity "tienda_backend/internal/feature/product/domain/entity"
)

// ProductRepository abstracts the relational product store.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ProductRepository interface {
	// ListActive returns every product with Active true.
	ListActive(ctx context.Context) ([]productentity.Product, error)

	// FindByID retrieves a product by id, or domain.ErrProductNotFound.
	FindByID(ctx context.Context, id uint) (*productentity.Product, error)

	// Create persists a new product and fills in its assigned id.
	Create(ctx context.Context, p *productentity.Product) error

	// Update persists mutations to an existing product.
	Update(ctx context.Context, p *productentity.Product) error

	// Deactivate marks a product inactive. It returns
	// domain.ErrProductNotFound when no such product exists.
	Deactivate(ctx context.Context, id uint) error
}

// ProductInput carries the writable product fields for create and update.
type ProductInput struct {
	Title       string
	Price       float64
	Stock       int
	Description string
	Category    string
	ImageBase64 string
}

type productUsecase struct {
	products ProductRepository
}

// NewProductUsecase creates a new instance of productUsecase.
func NewProductUsecase(products ProductRepository) *productUsecase {
	return &productUsecase{products: products}
}

func validateInput(in ProductInput) error {
	if in.Title == "" {
		return &domain.ValidationError{Field: "title", Message: "El titulo es requerido"}
	}
	if in.Price <= 0 {
		return &domain.ValidationError{Field: "price", Message: "El precio debe ser mayor a 0"}
	}
	if in.Stock < 0 {
		return &domain.ValidationError{Field: "stock", Message: "El stock no puede ser negativo"}
	}
	if in.Description == "" {
		return &domain.ValidationError{Field: "description", Message: "La descripcion es requerida"}
	}
	if in.Category == "" {
		return &domain.ValidationError{Field: "category", Message: "La categoria es requerida"}
	}
	return nil
}

// List returns the active products.
func (u *productUsecase) List(ctx context.Context) ([]productentity.Product, error) {
	return u.products.ListActive(ctx)
}

// Get returns a single product. Inactive products are reported as absent.
func (u *productUsecase) Get(ctx context.Context, id uint) (*productentity.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// Create validates the input and persists a new active product owned by
// sellerID.
func (u *productUsecase) Create(ctx context.Context, sellerID string, in ProductInput) (*productentity.Product, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	p := &productentity.Product{
		Title:       in.Title,
		Price:       in.Price,
		Stock:       in.Stock,
		Description: in.Description,
		Category:    in.Category,
		ImageBase64: in.ImageBase64,
		SellerID:    sellerID,
		Active:      true,
	}
	if err := u.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the writable fields of a product. Only the seller that
// owns the product or an admin may update it.
func (u *productUsecase) Update(ctx context.Context, id uint, actorID, actorRole string, in ProductInput) (*productentity.Product, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, domain.ErrProductNotFound
	}
	if p.SellerID != actorID && actorRole != entity.RoleAdmin {
		return nil, domain.ErrNotOwner
	}

	p.Title = in.Title
	p.Price = in.Price
	p.Stock = in.Stock
	p.Description = in.Description
	p.Category = in.Category
	p.ImageBase64 = in.ImageBase64
	if err := u.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete soft-deletes a product. Role gating happens at the router; the
// usecase only flips the flag.
func (u *productUsecase) Delete(ctx context.Context, id uint) error {
	return u.products.Deactivate(ctx, id)
}
