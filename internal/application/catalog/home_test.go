package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domcatalog "github.com/shopfront/client/internal/domain/catalog"
	"github.com/shopfront/client/internal/infrastructure/rest"
)

func someProducts(n int) []domcatalog.Product {
	products := make([]domcatalog.Product, n)
	for i := range products {
		products[i] = domcatalog.Product{ID: int64(i + 1), Name: gofakeit.ProductName()}
	}
	return products
}

func newTestHome(t *testing.T) (*HomeService, *atomic.Value) {
	t.Helper()

	var lastLimit atomic.Value
	lastLimit.Store("")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products/{section}", func(w http.ResponseWriter, r *http.Request) {
		lastLimit.Store(r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode(someProducts(4))
	})
	mux.HandleFunc("GET /api/categories/parent", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domcatalog.Category{
			{ID: 1, Name: "Apparel"},
			{ID: 2, Name: "Gadgets"},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := rest.New(rest.Config{BaseURL: server.URL}, zap.NewNop())
	require.NoError(t, err)

	return NewHomeService(client, zap.NewNop()), &lastLimit
}

func TestHomeService_FetchSection(t *testing.T) {
	sections := []domcatalog.HomeSection{
		domcatalog.HomeSectionNew,
		domcatalog.HomeSectionTrend,
		domcatalog.HomeSectionBestSeller,
		domcatalog.HomeSectionFeatured,
	}

	for _, section := range sections {
		t.Run(string(section), func(t *testing.T) {
			s, lastLimit := newTestHome(t)

			products, err := s.FetchSection(context.Background(), section, 4)
			require.NoError(t, err)
			assert.Len(t, products, 4)
			assert.Equal(t, "4", lastLimit.Load())

			state := s.Section(section)
			assert.False(t, state.Loading)
			assert.Empty(t, state.ErrorMessage)
			assert.Len(t, state.Products, 4)
		})
	}
}

func TestHomeService_FetchSection_NoLimit(t *testing.T) {
	s, lastLimit := newTestHome(t)

	_, err := s.FetchSection(context.Background(), domcatalog.HomeSectionNew, 0)
	require.NoError(t, err)
	assert.Equal(t, "", lastLimit.Load(), "limit omitted when not positive")
}

func TestHomeService_FetchSection_UnknownSection(t *testing.T) {
	s, _ := newTestHome(t)

	_, err := s.FetchSection(context.Background(), domcatalog.HomeSection("clearance"), 4)
	require.Error(t, err)
	assert.Empty(t, s.Section("clearance").Products)
}

func TestHomeService_FetchSection_FailureKeepsProducts(t *testing.T) {
	failing := atomic.Bool{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products/{section}", func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			http.Error(w, `{"title":"Internal Server Error"}`, http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(someProducts(2))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := rest.New(rest.Config{BaseURL: server.URL}, zap.NewNop())
	require.NoError(t, err)
	s := NewHomeService(client, zap.NewNop())

	_, err = s.FetchSection(context.Background(), domcatalog.HomeSectionTrend, 2)
	require.NoError(t, err)

	failing.Store(true)
	_, err = s.FetchSection(context.Background(), domcatalog.HomeSectionTrend, 2)
	require.Error(t, err)

	state := s.Section(domcatalog.HomeSectionTrend)
	assert.NotEmpty(t, state.ErrorMessage)
	assert.Len(t, state.Products, 2, "last good row survives a failed re-fetch")
}

func TestHomeService_FetchParentCategories(t *testing.T) {
	s, _ := newTestHome(t)

	categories, err := s.FetchParentCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Apparel", categories[0].Name)
	assert.Equal(t, categories, s.ParentCategories())
}
