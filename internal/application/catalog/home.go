// Package catalog composes page-specific projections of the catalog: the
// curated home-page product rows and the parent-category navigation. These
// endpoints do not share the generic collection pagination contract, so they
// bypass the resource slices.
package catalog

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"go.uber.org/zap"

	domcatalog "github.com/shopfront/client/internal/domain/catalog"
	"github.com/shopfront/client/internal/domain/shared"
	"github.com/shopfront/client/internal/infrastructure/rest"
)

// SectionState is the observable state of one home-page product row
type SectionState struct {
	Loading      bool
	ErrorMessage string
	Products     []domcatalog.Product
}

// HomeService fetches and caches the home-page projections
type HomeService struct {
	client *rest.Client
	logger *zap.Logger

	mu       sync.RWMutex
	sections map[domcatalog.HomeSection]SectionState
	parents  []domcatalog.Category
}

// NewHomeService creates a home catalog service
func NewHomeService(client *rest.Client, logger *zap.Logger) *HomeService {
	return &HomeService{
		client:   client,
		logger:   logger,
		sections: make(map[domcatalog.HomeSection]SectionState),
	}
}

// FetchSection fetches one curated product row, at most limit products
func (s *HomeService) FetchSection(ctx context.Context, section domcatalog.HomeSection, limit int) ([]domcatalog.Product, error) {
	if !section.IsValid() {
		return nil, shared.NewDomainError("INVALID_SECTION", "Unknown home section: "+string(section))
	}

	s.mu.Lock()
	s.sections[section] = SectionState{Loading: true, Products: s.sections[section].Products}
	s.mu.Unlock()

	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var products []domcatalog.Product
	err := s.client.Get(ctx, "/api/products/"+string(section), query, &products)

	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.sections[section]
	state.Loading = false
	if err != nil {
		state.ErrorMessage = err.Error()
		s.sections[section] = state
		return nil, err
	}
	state.ErrorMessage = ""
	state.Products = products
	s.sections[section] = state
	return products, nil
}

// Section returns the cached state of one home row
func (s *HomeService) Section(section domcatalog.HomeSection) SectionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sections[section]
}

// FetchParentCategories fetches the top-level categories for navigation
func (s *HomeService) FetchParentCategories(ctx context.Context) ([]domcatalog.Category, error) {
	var categories []domcatalog.Category
	if err := s.client.Get(ctx, "/api/categories/parent", nil, &categories); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.parents = categories
	s.mu.Unlock()
	return categories, nil
}

// ParentCategories returns the cached top-level categories
func (s *HomeService) ParentCategories() []domcatalog.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parents
}
