// Package adapters provides the repository implementations for the
// product feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"tienda_backend/internal/feature/product/domain"
	"tienda_backend/internal/feature/product/domain/entity"
	"tienda_backend/internal/feature/product/usecase"

	"gorm.io/gorm"
)

type productMySQL struct {
	db *gorm.DB
}

var _ usecase.ProductRepository = (*productMySQL)(nil)

// NewProductRepository creates a new productMySQL repository on the given
// DB connection.
func NewProductRepository(db *gorm.DB) *productMySQL {
	return &productMySQL{db: db}
}

// ProductModel is the persistence shape of a product row.
type ProductModel struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"size:255;not null"`
	Price       float64 `gorm:"not null"`
	Stock       int     `gorm:"not null;default:0"`
	Description string  `gorm:"type:text;not null"`
	Category    string  `gorm:"size:64;not null;index"`
	ImageBase64 string  `gorm:"type:longtext"`
	SellerID    string  `gorm:"size:24;not null;index"`
	Active      bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

func toModel(e *entity.Product) ProductModel {
	return ProductModel{
		ID:          e.ID,
		Title:       e.Title,
		Price:       e.Price,
		Stock:       e.Stock,
		Description: e.Description,
		Category:    e.Category,
		ImageBase64: e.ImageBase64,
		SellerID:    e.SellerID,
		Active:      e.Active,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toEntity(m ProductModel) entity.Product {
	return entity.Product{
		ID:          m.ID,
		Title:       m.Title,
		Price:       m.Price,
		Stock:       m.Stock,
		Description: m.Description,
		Category:    m.Category,
		ImageBase64: m.ImageBase64,
		SellerID:    m.SellerID,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ListActive returns every active product, newest first.
func (r *productMySQL) ListActive(ctx context.Context) ([]entity.Product, error) {
	var rows []ProductModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// FindByID retrieves a product regardless of its active flag.
func (r *productMySQL) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var m ProductModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	e := toEntity(m)
	return &e, nil
}

// Create inserts the product and fills in the assigned id.
func (r *productMySQL) Create(ctx context.Context, p *entity.Product) error {
	m := toModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	return nil
}

// Update saves every writable column of the product row.
func (r *productMySQL) Update(ctx context.Context, p *entity.Product) error {
	m := toModel(p)
	res := r.db.WithContext(ctx).Model(&ProductModel{ID: p.ID}).
		Select("Title", "Price", "Stock", "Description", "Category", "ImageBase64").
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Deactivate flips the active flag off instead of deleting the row.
func (r *productMySQL) Deactivate(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&ProductModel{ID: id}).
		Where("active = ?", true).
		Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
