package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/khatkhazana-hub/backend/internal/domain"
	"github.com/khatkhazana-hub/backend/internal/service/product"
)

type stubProducts struct {
	lastList  product.ListInput
	createErr error
}

func (s *stubProducts) List(_ context.Context, in product.ListInput) ([]domain.Product, error) {
	s.lastList = in
	return nil, nil
}

func (s *stubProducts) Get(context.Context, string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (s *stubProducts) Create(context.Context, product.CreateInput) (*domain.Product, error) {
	return nil, s.createErr
}

func (s *stubProducts) Update(context.Context, string, product.UpdateInput) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (s *stubProducts) Delete(context.Context, string) error { return nil }

func productsRouter(svc ProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/products", listProductsHandler(svc))
	router.POST("/api/products", createProductHandler(svc))
	return router
}

func TestListProducts_ActiveFilter(t *testing.T) {
	cases := []struct {
		name        string
		query       string
		wantActive  bool
		wantCategory string
	}{
		{"default filters to active", "", true, ""},
		{"active=true", "?active=true", true, ""},
		{"active=false lists everything", "?active=false", false, ""},
		{"category forwarded", "?category=Keepsakes", true, "Keepsakes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubProducts{}
			router := productsRouter(svc)
			req := httptest.NewRequest(http.MethodGet, "/api/products"+tc.query, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rec.Code)
			}
			if svc.lastList.ActiveOnly != tc.wantActive {
				t.Fatalf("ActiveOnly = %v, want %v", svc.lastList.ActiveOnly, tc.wantActive)
			}
			if svc.lastList.Category != tc.wantCategory {
				t.Fatalf("Category = %q, want %q", svc.lastList.Category, tc.wantCategory)
			}
		})
	}
}

func TestCreateProduct_DuplicateTitleIs400(t *testing.T) {
	svc := &stubProducts{createErr: domain.Invalid("Product with this title already exists")}
	router := productsRouter(svc)

	body := `{"title":"Dup","description":"d","price":18.5,"category":"c","image":"i"}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Product with this title already exists") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
