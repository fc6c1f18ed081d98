// Package handler provides the HTTP handlers for the product feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tienda_backend/internal/feature/product/domain"
	"tienda_backend/internal/feature/product/domain/entity"
	"tienda_backend/internal/feature/product/transport/http/dto"
	"tienda_backend/internal/feature/product/usecase"
	jwtmw "tienda_backend/internal/platform/jwt"
	"tienda_backend/internal/shared/response"
)

// ProductUsecase defines the product operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type ProductUsecase interface {
	List(ctx context.Context) ([]entity.Product, error)
	Get(ctx context.Context, id uint) (*entity.Product, error)
	Create(ctx context.Context, sellerID string, in usecase.ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id uint, actorID, actorRole string, in usecase.ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uint) error
}

// ProductHandler handles the HTTP requests of the product catalog.
type ProductHandler struct {
	products ProductUsecase
}

// NewProductHandler creates a new instance of ProductHandler.
func NewProductHandler(products ProductUsecase) *ProductHandler {
	return &ProductHandler{products: products}
}

func toInput(req dto.ProductReq) usecase.ProductInput {
	return usecase.ProductInput{
		Title:       req.Title,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		Category:    req.Category,
		ImageBase64: req.ImageBase64,
	}
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		slog.Error("product list failed", "error", err)
		response.Detail(c, http.StatusInternalServerError, "Error interno del servidor", "Ocurrio un error al obtener los productos")
		return
	}
	if len(products) == 0 {
		response.Detail(c, http.StatusNotFound, "No se encontraron productos", "No hay productos disponibles")
		return
	}

	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.FromEntity(p))
	}
	response.Success(c, http.StatusOK, "Productos encontrados", gin.H{"products": out})
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			response.Detail(c, http.StatusNotFound, "Producto no encontrado", "No existe un producto con el id especificado")
			return
		}
		slog.Error("product get failed", "id", id, "error", err)
		response.Detail(c, http.StatusInternalServerError, "Error interno del servidor", "Ocurrio un error al obtener el producto")
		return
	}

	response.Success(c, http.StatusOK, "Producto encontrado", gin.H{"product": dto.FromEntity(*p)})
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Bad request", "El cuerpo de la peticion no es un JSON valido")
		return
	}
	sellerID := c.GetString(jwtmw.ContextUserID)

	p, err := h.products.Create(c.Request.Context(), sellerID, toInput(req))
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			response.FieldErrors(c, http.StatusBadRequest, "Bad request", map[string]string{vErr.Field: vErr.Message})
			return
		}
		slog.Error("product create failed", "seller_id", sellerID, "error", err)
		response.Detail(c, http.StatusInternalServerError, "Error interno del servidor", "Ocurrio un error al crear el producto")
		return
	}

	slog.Info("product created", "id", p.ID, "seller_id", sellerID)
	response.Success(c, http.StatusCreated, "Producto creado", gin.H{"product": dto.FromEntity(*p)})
}

// Update handles PUT /api/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Bad request", "El cuerpo de la peticion no es un JSON valido")
		return
	}
	actorID := c.GetString(jwtmw.ContextUserID)
	actorRole := c.GetString(jwtmw.ContextUserRole)

	p, err := h.products.Update(c.Request.Context(), id, actorID, actorRole, toInput(req))
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.FieldErrors(c, http.StatusBadRequest, "Bad request", map[string]string{vErr.Field: vErr.Message})
		case errors.Is(err, domain.ErrProductNotFound):
			response.Detail(c, http.StatusNotFound, "Producto no encontrado", "No existe un producto con el id especificado")
		case errors.Is(err, domain.ErrNotOwner):
			response.Detail(c, http.StatusForbidden, "Operacion no permitida", "Solo el vendedor del producto puede modificarlo")
		default:
			slog.Error("product update failed", "id", id, "error", err)
			response.Detail(c, http.StatusInternalServerError, "Error interno del servidor", "Ocurrio un error al actualizar el producto")
		}
		return
	}

	response.Success(c, http.StatusOK, "Producto actualizado", gin.H{"product": dto.FromEntity(*p)})
}

// Delete handles DELETE /api/products/:id. Role gating happens at the
// router, only admins reach this handler.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			response.Detail(c, http.StatusNotFound, "Producto no encontrado", "No existe un producto con el id especificado")
			return
		}
		slog.Error("product delete failed", "id", id, "error", err)
		response.Detail(c, http.StatusInternalServerError, "Error interno del servidor", "Ocurrio un error al eliminar el producto")
		return
	}

	response.Success(c, http.StatusOK, "Producto eliminado", nil)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Bad request", "El id del producto no es valido")
		return 0, false
	}
	return uint(id), true
}
