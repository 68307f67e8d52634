// Package domain provides defenitions of all entities.
package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
)

var (
	// ErrCardNotFound indicates that the cash card is not found.
	ErrCardNotFound = errors.New("cash card not found")
	// ErrInvalidSortField indicates an unsupported sort field in a list request.
	ErrInvalidSortField = errors.New("sort field must be one of: amount, id")
	// ErrInvalidSortDirection indicates an unsupported sort direction in a list request.
	ErrInvalidSortDirection = errors.New("sort direction must be asc or desc")
)

// SortDirection is the ordering direction of a list request.
type SortDirection string

// Supported sort directions.
const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// CashCard holds the stored amount for a single card.
//
// The id is assigned by the store on creation and never changes afterwards.
type CashCard struct {
	ID     int64
	Amount decimal.Decimal
}

// AmountString renders a monetary value with its full stored scale.
// Decimal.String trims trailing fractional zeros, turning 250.00 into 250,
// which must not leak onto the wire.
func AmountString(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}

	return d.String()
}

// MarshalJSON writes the fixed wire shape {"id":N,"amount":N}.
// The amount must render as a bare JSON number with the scale given by
// the client, which rules out the default quoted encoding of decimal.Decimal.
func (c CashCard) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer

	b.WriteString(`{"id":`)
	b.WriteString(strconv.FormatInt(c.ID, 10))
	b.WriteString(`,"amount":`)
	b.WriteString(AmountString(c.Amount))
	b.WriteByte('}')

	return b.Bytes(), nil
}

// UnmarshalJSON reads the wire shape produced by MarshalJSON.
func (c *CashCard) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID     int64           `json:"id"`
		Amount decimal.Decimal `json:"amount"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.ID = raw.ID
	c.Amount = raw.Amount

	return nil
}
