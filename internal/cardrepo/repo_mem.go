package cardrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/go-petr/cashcard/internal/domain"
)

// RepoMem is an in-memory card store. It backs the memory db driver and
// the handler level tests, and is safe for concurrent use.
type RepoMem struct {
	mu     sync.Mutex
	nextID int64
	cards  []domain.CashCard
}

// NewRepoMem returns an empty in-memory card store.
func NewRepoMem() *RepoMem {
	return &RepoMem{nextID: 1}
}

// Create stores a card with the given amount and returns it with the assigned id.
func (r *RepoMem) Create(ctx context.Context, amount decimal.Decimal) (domain.CashCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := domain.CashCard{
		ID:     r.nextID,
		Amount: amount,
	}
	r.nextID++

	r.cards = append(r.cards, c)

	return c, nil
}

// Get returns the card with the given id.
func (r *RepoMem) Get(ctx context.Context, id int64) (domain.CashCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.cards {
		if c.ID == id {
			return c, nil
		}
	}

	return domain.CashCard{}, domain.ErrCardNotFound
}

// List returns one page of cards ordered by the given field and direction,
// with id ascending as the tie-break.
func (r *RepoMem) List(ctx context.Context, limit, offset int32, sortField string, sortDir domain.SortDirection) ([]domain.CashCard, error) {
	if _, ok := sortColumns[sortField]; !ok {
		return nil, domain.ErrInvalidSortField
	}

	r.mu.Lock()
	sorted := make([]domain.CashCard, len(r.cards))
	copy(sorted, r.cards)
	r.mu.Unlock()

	desc := sortDir == domain.SortDesc

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		var cmp int

		switch sortField {
		case "amount":
			cmp = a.Amount.Cmp(b.Amount)
		case "id":
			switch {
			case a.ID < b.ID:
				cmp = -1
			case a.ID > b.ID:
				cmp = 1
			}
		}

		if cmp == 0 {
			return a.ID < b.ID
		}

		if desc {
			return cmp > 0
		}

		return cmp < 0
	})

	start := int(offset)
	if start >= len(sorted) {
		return []domain.CashCard{}, nil
	}

	end := start + int(limit)
	if end > len(sorted) {
		end = len(sorted)
	}

	page := make([]domain.CashCard, end-start)
	copy(page, sorted[start:end])

	return page, nil
}

// Count returns the total number of stored cards.
func (r *RepoMem) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.cards)), nil
}
