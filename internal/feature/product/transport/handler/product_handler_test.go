package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda_backend/internal/feature/product/domain"
	"tienda_backend/internal/feature/product/domain/entity"
	"tienda_backend/internal/feature/product/usecase"
	jwtmw "tienda_backend/internal/platform/jwt"
)

// mockProductUsecase is a mock implementation of the ProductUsecase interface.
type mockProductUsecase struct {
	ListFunc   func(ctx context.Context) ([]entity.Product, error)
	GetFunc    func(ctx context.Context, id uint) (*entity.Product, error)
	CreateFunc func(ctx context.Context, sellerID string, in usecase.ProductInput) (*entity.Product, error)
	UpdateFunc func(ctx context.Context, id uint, actorID, actorRole string, in usecase.ProductInput) (*entity.Product, error)
	DeleteFunc func(ctx context.Context, id uint) error
}

func (m *mockProductUsecase) List(ctx context.Context) ([]entity.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockProductUsecase) Get(ctx context.Context, id uint) (*entity.Product, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrProductNotFound
}

func (m *mockProductUsecase) Create(ctx context.Context, sellerID string, in usecase.ProductInput) (*entity.Product, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sellerID, in)
	}
	return nil, errors.New("create not configured")
}

func (m *mockProductUsecase) Update(ctx context.Context, id uint, actorID, actorRole string, in usecase.ProductInput) (*entity.Product, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, actorID, actorRole, in)
	}
	return nil, errors.New("update not configured")
}

func (m *mockProductUsecase) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// fakeIdentity injects the context values AuthRequired would set.
func fakeIdentity(id, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, id)
		c.Set(jwtmw.ContextUserRole, role)
		c.Next()
	}
}

// newProductRouter wires the handler under test into a fresh gin engine
// with the same routes the real router registers.
func newProductRouter(uc *mockProductUsecase, userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProductHandler(uc)
	r := gin.New()
	g := r.Group("/api/products", fakeIdentity(userID, role))
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

// envelope mirrors the response envelope for assertions.
type envelope struct {
	Ok      bool           `json:"ok"`
	Status  int            `json:"status"`
	Message string         `json:"message"`
	Payload map[string]any `json:"payload"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "response is not a valid envelope: %s", w.Body.String())
	return w, env
}

func productReqBody() gin.H {
	return gin.H{
		"title":       "Teclado mecánico",
		"price":       199.99,
		"stock":       12,
		"description": "Teclado mecánico retroiluminado",
		"category":    "perifericos",
	}
}

func TestProductHandler_List(t *testing.T) {
	t.Run("empty catalog returns 404", func(t *testing.T) {
		r := newProductRouter(&mockProductUsecase{}, "seller-1", "user")

		w, env := doJSON(t, r, http.MethodGet, "/api/products", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Ok)
		assert.Equal(t, "No se encontraron productos", env.Message)
	})

	t.Run("products are returned inside the payload", func(t *testing.T) {
		uc := &mockProductUsecase{
			ListFunc: func(ctx context.Context) ([]entity.Product, error) {
				return []entity.Product{
					{ID: 1, Title: "Teclado", Price: 100, SellerID: "seller-1", Active: true},
					{ID: 2, Title: "Mouse", Price: 50, SellerID: "seller-2", Active: true},
				}, nil
			},
		}
		r := newProductRouter(uc, "seller-1", "user")

		w, env := doJSON(t, r, http.MethodGet, "/api/products", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Ok)

		products, ok := env.Payload["products"].([]any)
		require.True(t, ok, "payload should hold a products array")
		require.Len(t, products, 2)

		first, ok := products[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Teclado", first["title"])
		assert.Equal(t, float64(1), first["id"])
		assert.Equal(t, "seller-1", first["seller_id"])
	})
}

func TestProductHandler_Get(t *testing.T) {
	t.Run("unknown product", func(t *testing.T) {
		r := newProductRouter(&mockProductUsecase{}, "seller-1", "user")

		w, _ := doJSON(t, r, http.MethodGet, "/api/products/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		r := newProductRouter(&mockProductUsecase{}, "seller-1", "user")

		w, env := doJSON(t, r, http.MethodGet, "/api/products/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Ok)
	})

	t.Run("success", func(t *testing.T) {
		uc := &mockProductUsecase{
			GetFunc: func(ctx context.Context, id uint) (*entity.Product, error) {
				return &entity.Product{ID: id, Title: "Monitor", Price: 300, Active: true}, nil
			},
		}
		r := newProductRouter(uc, "seller-1", "user")

		w, env := doJSON(t, r, http.MethodGet, "/api/products/3", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		product, ok := env.Payload["product"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Monitor", product["title"])
	})
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("seller id comes from the authenticated identity", func(t *testing.T) {
		var gotSeller string
		uc := &mockProductUsecase{
			CreateFunc: func(ctx context.Context, sellerID string, in usecase.ProductInput) (*entity.Product, error) {
				gotSeller = sellerID
				return &entity.Product{ID: 9, Title: in.Title, Price: in.Price, SellerID: sellerID, Active: true}, nil
			},
		}
		r := newProductRouter(uc, "seller-7", "user")

		w, env := doJSON(t, r, http.MethodPost, "/api/products", productReqBody())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Ok)
		assert.Equal(t, "seller-7", gotSeller)

		product, ok := env.Payload["product"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "seller-7", product["seller_id"])
	})

	t.Run("validation error maps to field-scoped payload", func(t *testing.T) {
		uc := &mockProductUsecase{
			CreateFunc: func(ctx context.Context, sellerID string, in usecase.ProductInput) (*entity.Product, error) {
				return nil, &domain.ValidationError{Field: "price", Message: "El precio debe ser mayor a 0"}
			},
		}
		r := newProductRouter(uc, "seller-1", "user")

		body := productReqBody()
		body["price"] = 0
		w, env := doJSON(t, r, http.MethodPost, "/api/products", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		fieldErrors, ok := env.Payload["errors"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "El precio debe ser mayor a 0", fieldErrors["price"])
	})

	t.Run("malformed body", func(t *testing.T) {
		r := newProductRouter(&mockProductUsecase{}, "seller-1", "user")

		req, err := http.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString("{not json"))
		require.NoError(t, err)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_Update(t *testing.T) {
	t.Run("non-owner gets 403", func(t *testing.T) {
		uc := &mockProductUsecase{
			UpdateFunc: func(ctx context.Context, id uint, actorID, actorRole string, in usecase.ProductInput) (*entity.Product, error) {
				return nil, domain.ErrNotOwner
			},
		}
		r := newProductRouter(uc, "seller-2", "user")

		w, env := doJSON(t, r, http.MethodPut, "/api/products/3", productReqBody())

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, env.Ok)
	})

	t.Run("identity reaches the usecase", func(t *testing.T) {
		var gotActor, gotRole string
		uc := &mockProductUsecase{
			UpdateFunc: func(ctx context.Context, id uint, actorID, actorRole string, in usecase.ProductInput) (*entity.Product, error) {
				gotActor, gotRole = actorID, actorRole
				return &entity.Product{ID: id, Title: in.Title, Active: true}, nil
			},
		}
		r := newProductRouter(uc, "admin-1", "admin")

		w, _ := doJSON(t, r, http.MethodPut, "/api/products/3", productReqBody())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin-1", gotActor)
		assert.Equal(t, "admin", gotRole)
	})

	t.Run("unknown product", func(t *testing.T) {
		uc := &mockProductUsecase{
			UpdateFunc: func(ctx context.Context, id uint, actorID, actorRole string, in usecase.ProductInput) (*entity.Product, error) {
				return nil, domain.ErrProductNotFound
			},
		}
		r := newProductRouter(uc, "seller-1", "user")

		w, _ := doJSON(t, r, http.MethodPut, "/api/products/99", productReqBody())

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var deleted uint
		uc := &mockProductUsecase{
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = id
				return nil
			},
		}
		r := newProductRouter(uc, "admin-1", "admin")

		w, env := doJSON(t, r, http.MethodDelete, "/api/products/5", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Ok)
		assert.Equal(t, "Producto eliminado", env.Message)
		assert.Equal(t, uint(5), deleted)
	})

	t.Run("unknown product", func(t *testing.T) {
		uc := &mockProductUsecase{
			DeleteFunc: func(ctx context.Context, id uint) error {
				return domain.ErrProductNotFound
			},
		}
		r := newProductRouter(uc, "admin-1", "admin")

		w, _ := doJSON(t, r, http.MethodDelete, "/api/products/5", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
