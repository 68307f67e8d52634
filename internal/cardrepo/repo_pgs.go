// Package cardrepo manages repository layer of cash cards.
package cardrepo

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/go-petr/cashcard/internal/domain"
	"github.com/go-petr/cashcard/pkg/dbpkg"
	"github.com/go-petr/cashcard/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// RepoPGS facilitates cash card repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns cash card RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    cash_cards (amount)
VALUES
    ($1)
RETURNING id, amount
`

// Create stores a card with the given amount and returns it with the assigned id.
// The amount is bound as a scale preserving string: the driver encoding of
// decimal.Decimal trims trailing fractional zeros on the way in.
func (r *RepoPGS) Create(ctx context.Context, amount decimal.Decimal) (domain.CashCard, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, domain.AmountString(amount))

	var c domain.CashCard

	err := row.Scan(
		&c.ID,
		&c.Amount,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const getQuery = `
SELECT
	id, amount
FROM cash_cards
WHERE id = $1
`

// Get returns the card with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.CashCard, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var c domain.CashCard

	err := row.Scan(
		&c.ID,
		&c.Amount,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return c, domain.ErrCardNotFound
		}

		l.Error().Err(err).Send()

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

// Sort columns must come from this whitelist since ORDER BY
// cannot take bind parameters.
var sortColumns = map[string]string{
	"amount": "amount",
	"id":     "id",
}

const listQueryPrefix = `
SELECT
	id, amount
FROM cash_cards
`

// List returns one page of cards ordered by the given field and direction.
// Ties are broken by id ascending so that pagination stays deterministic.
func (r *RepoPGS) List(ctx context.Context, limit, offset int32, sortField string, sortDir domain.SortDirection) ([]domain.CashCard, error) {
	l := zerolog.Ctx(ctx)

	column, ok := sortColumns[sortField]
	if !ok {
		return nil, domain.ErrInvalidSortField
	}

	orderBy := ` ORDER BY ` + column + ` ` + string(sortDir)
	if column != "id" {
		orderBy += `, id ASC`
	}

	query := listQueryPrefix + orderBy + ` LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.CashCard{}

	for rows.Next() {
		var c domain.CashCard
		if err := rows.Scan(&c.ID, &c.Amount); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const countQuery = `
SELECT count(*) FROM cash_cards
`

// Count returns the total number of stored cards.
func (r *RepoPGS) Count(ctx context.Context) (int64, error) {
	l := zerolog.Ctx(ctx)

	var total int64

	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return total, nil
}
