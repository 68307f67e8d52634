// Package cardservice manages business logic layer of cash cards.
package cardservice

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/cashcard/internal/domain"
)

// Default paging and sorting policy applied when the caller omits parameters.
//
// Sorting defaults to amount ascending on purpose: leaving the order
// unspecified produces results that look stable but are not guaranteed
// to be, which breaks pagination.
const (
	DefaultPage      int32 = 0
	DefaultPageSize  int32 = 20
	DefaultSortField       = "amount"
)

var sortFields = map[string]struct{}{
	"amount": {},
	"id":     {},
}

// Repo provides data access layer interface needed by card service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package cardservice
type Repo interface {
	Create(ctx context.Context, amount decimal.Decimal) (domain.CashCard, error)
	Get(ctx context.Context, id int64) (domain.CashCard, error)
	List(ctx context.Context, limit, offset int32, sortField string, sortDir domain.SortDirection) ([]domain.CashCard, error)
	Count(ctx context.Context) (int64, error)
}

// Service facilitates card service layer logic.
type Service struct {
	repo Repo
}

// New returns card service struct to manage card business logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Create stores a card with the given amount and returns it with the
// server assigned id. The amount sign is deliberately not constrained.
func (s *Service) Create(ctx context.Context, amount decimal.Decimal) (domain.CashCard, error) {
	card, err := s.repo.Create(ctx, amount)
	if err != nil {
		return card, err
	}

	return card, nil
}

// Get returns the card with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.CashCard, error) {
	card, err := s.repo.Get(ctx, id)
	if err != nil {
		return card, err
	}

	return card, nil
}

// List returns one zero-based page of cards. Nil page and size and empty
// sort parameters fall back to the default policy. A page beyond the last
// stored card yields an empty slice, not an error.
func (s *Service) List(ctx context.Context, page, size *int32, sortField, sortDirection string) ([]domain.CashCard, error) {
	pageID := DefaultPage
	if page != nil {
		pageID = *page
	}

	pageSize := DefaultPageSize
	if size != nil {
		pageSize = *size
	}

	if sortField == "" {
		sortField = DefaultSortField
	}

	if _, ok := sortFields[sortField]; !ok {
		return nil, domain.ErrInvalidSortField
	}

	var sortDir domain.SortDirection

	switch strings.ToLower(sortDirection) {
	case "", "asc":
		sortDir = domain.SortAsc
	case "desc":
		sortDir = domain.SortDesc
	default:
		return nil, domain.ErrInvalidSortDirection
	}

	limit := pageSize
	// The product of two int32 page parameters can overflow int32 and
	// reach the store as a negative offset, so it is computed in int64.
	offset := int64(pageID) * int64(pageSize)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	if offset >= total {
		return []domain.CashCard{}, nil
	}

	cards, err := s.repo.List(ctx, limit, int32(offset), sortField, sortDir)
	if err != nil {
		return nil, err
	}

	return cards, nil
}
