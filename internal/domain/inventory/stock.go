package inventory

import (
	"fmt"
	"math"
	"strings"

	"fleet-workflow/internal/pkg/errs"
)

var (
	ErrInvalidSKU       = errs.Validation("sku id is required")
	ErrInvalidQuantity  = errs.Validation("quantity must be positive")
	ErrQuantityTooLarge = errs.Validation("quantity exceeds the stock limit")
)

// MaxQuantity bounds every counter of a SKU, and their sum, to the width of
// the quantity columns.
const MaxQuantity = math.MaxInt32

// InvariantViolation is raised, as a panic, when a movement would drive a
// stock counter below zero. Callers are expected to check availability first.
type InvariantViolation struct {
	SKU    string
	Reason string
}

func (v InvariantViolation) Error() string {
	return fmt.Sprintf("inventory invariant violated for %s: %s", v.SKU, v.Reason)
}

// Stock is the state of one SKU. Every movement preserves
// Available + Reserved + Consumed, except Restock which grows it.
type Stock struct {
	id        string
	brand     string
	product   string
	available int
	reserved  int
	consumed  int
}

func NewStock(id, brand, product string, available int) (Stock, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Stock{}, ErrInvalidSKU
	}
	if available < 0 {
		return Stock{}, ErrInvalidQuantity
	}
	if available > MaxQuantity {
		return Stock{}, ErrQuantityTooLarge
	}
	return Stock{
		id:        id,
		brand:     strings.TrimSpace(brand),
		product:   strings.TrimSpace(product),
		available: available,
	}, nil
}

func ReconstructStock(id, brand, product string, available, reserved, consumed int) Stock {
	return Stock{
		id:        id,
		brand:     brand,
		product:   product,
		available: available,
		reserved:  reserved,
		consumed:  consumed,
	}
}

func (s Stock) CanReserve(q int) bool {
	return q >= 0 && s.available >= q
}

// Reserve moves q units from available to reserved.
func (s Stock) Reserve(q int) (Stock, error) {
	s.mustBeNonNegative(q)
	if !s.CanReserve(q) {
		return s, errs.WithDetail(
			errs.Wrapf(errs.ErrInsufficientStock, "part %s: available %d, requested %d", s.id, s.available, q),
			fmt.Sprintf("insufficient stock for part %s", s.id),
		)
	}
	s.available -= q
	s.reserved += q
	return s, nil
}

// Release moves q units from reserved back to available.
func (s Stock) Release(q int) Stock {
	s.mustBeNonNegative(q)
	if s.reserved < q {
		panic(InvariantViolation{SKU: s.id, Reason: fmt.Sprintf("release %d exceeds reserved %d", q, s.reserved)})
	}
	s.reserved -= q
	s.available += q
	return s
}

// Finalize moves q units from reserved to consumed.
func (s Stock) Finalize(q int) Stock {
	s.mustBeNonNegative(q)
	if s.reserved < q {
		panic(InvariantViolation{SKU: s.id, Reason: fmt.Sprintf("finalize %d exceeds reserved %d", q, s.reserved)})
	}
	s.reserved -= q
	s.consumed += q
	return s
}

func (s Stock) Restock(q int) (Stock, error) {
	if q <= 0 {
		return s, ErrInvalidQuantity
	}
	if q > MaxQuantity-s.Total() {
		return s, errs.WithDetail(ErrQuantityTooLarge, fmt.Sprintf("part %s can hold at most %d more units", s.id, MaxQuantity-s.Total()))
	}
	s.available += q
	return s, nil
}

func (s Stock) mustBeNonNegative(q int) {
	if q < 0 {
		panic(InvariantViolation{SKU: s.id, Reason: fmt.Sprintf("negative quantity %d", q)})
	}
}

// Total is every unit ever added for this SKU.
func (s Stock) Total() int {
	return s.available + s.reserved + s.consumed
}

func (s Stock) ID() string      { return s.id }
func (s Stock) Brand() string   { return s.brand }
func (s Stock) Product() string { return s.product }
func (s Stock) Available() int  { return s.available }
func (s Stock) Reserved() int   { return s.reserved }
func (s Stock) Consumed() int   { return s.consumed }
