package workorder

import (
	"sort"
	"strings"

	"fleet-workflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Part is a line of a work order: an inventory SKU and how many units of it.
// The unit price is only known once an administrator approves the order.
type Part struct {
	id        string
	brand     string
	product   string
	quantity  int
	unitPrice *decimal.Decimal
}

func NewPart(id, brand, product string, quantity int) (Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Part{}, errs.Wrap(ErrInvalidPart, "part id is required")
	}
	if quantity < 0 {
		return Part{}, errs.Wrapf(ErrInvalidPart, "part %s has negative quantity", id)
	}
	return Part{
		id:       id,
		brand:    strings.TrimSpace(brand),
		product:  strings.TrimSpace(product),
		quantity: quantity,
	}, nil
}

func NewPricedPart(id, brand, product string, quantity int, unitPrice decimal.Decimal) (Part, error) {
	p, err := NewPart(id, brand, product, quantity)
	if err != nil {
		return Part{}, err
	}
	return p.WithPrice(unitPrice)
}

// maxUnitPrice is the first value that no longer fits NUMERIC(12, 2).
var maxUnitPrice = decimal.New(1, 10)

// WithPrice returns a copy of p carrying unitPrice. Prices are stored with
// two decimals, so finer values are rejected rather than rounded.
func (p Part) WithPrice(unitPrice decimal.Decimal) (Part, error) {
	if unitPrice.IsNegative() {
		return Part{}, errs.Wrapf(ErrInvalidPart, "part %s has negative price", p.id)
	}
	if !unitPrice.Equal(unitPrice.Truncate(2)) {
		return Part{}, errs.Wrapf(ErrInvalidPart, "part %s price %s has more than two decimals", p.id, unitPrice)
	}
	if unitPrice.GreaterThanOrEqual(maxUnitPrice) {
		return Part{}, errs.Wrapf(ErrInvalidPart, "part %s price %s is too large", p.id, unitPrice)
	}
	p.unitPrice = &unitPrice
	return p, nil
}

// WithQuantity returns a copy of p with a different quantity.
func (p Part) WithQuantity(quantity int) Part {
	p.quantity = quantity
	return p
}

func (p Part) ID() string      { return p.id }
func (p Part) Brand() string   { return p.brand }
func (p Part) Product() string { return p.product }
func (p Part) Quantity() int   { return p.quantity }

func (p Part) UnitPrice() (decimal.Decimal, bool) {
	if p.unitPrice == nil {
		return decimal.Zero, false
	}
	return *p.unitPrice, true
}

func (p Part) IsPriced() bool {
	return p.unitPrice != nil
}

// Cost is unit price times quantity, zero for unpriced parts.
func (p Part) Cost() decimal.Decimal {
	if p.unitPrice == nil {
		return decimal.Zero
	}
	return p.unitPrice.Mul(decimal.NewFromInt(int64(p.quantity)))
}

// PartList is an ordered list of parts with unique SKU ids.
type PartList []Part

// NewPartList validates that parts is non-empty and free of duplicate ids.
func NewPartList(parts ...Part) (PartList, error) {
	if len(parts) == 0 {
		return nil, ErrEmptyParts
	}
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		if _, dup := seen[p.id]; dup {
			return nil, errs.WithDetail(errs.Wrapf(ErrDuplicatePart, "part %s", p.id), "duplicate part "+p.id)
		}
		seen[p.id] = struct{}{}
	}
	list := make(PartList, len(parts))
	copy(list, parts)
	return list, nil
}

func (l PartList) Len() int { return len(l) }

func (l PartList) IDs() []string {
	ids := make([]string, len(l))
	for i, p := range l {
		ids[i] = p.id
	}
	return ids
}

func (l PartList) Find(id string) (Part, bool) {
	for _, p := range l {
		if p.id == id {
			return p, true
		}
	}
	return Part{}, false
}

func (l PartList) Cost() decimal.Decimal {
	total := decimal.Zero
	for _, p := range l {
		total = total.Add(p.Cost())
	}
	return total
}

func (l PartList) TotalQuantity() int {
	total := 0
	for _, p := range l {
		total += p.quantity
	}
	return total
}

// SortedByID returns a copy ordered by SKU id, the order in which stock rows are locked.
func (l PartList) SortedByID() PartList {
	out := make(PartList, len(l))
	copy(out, l)
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Minus returns, per SKU of l, the quantity not covered by other.
// Entries that end up at zero are omitted.
func (l PartList) Minus(other PartList) PartList {
	var out PartList
	for _, p := range l {
		rest := p.quantity
		if o, ok := other.Find(p.id); ok {
			rest -= o.quantity
		}
		if rest > 0 {
			out = append(out, p.WithQuantity(rest))
		}
	}
	return out
}

// NonZero drops entries with zero quantity.
func (l PartList) NonZero() PartList {
	var out PartList
	for _, p := range l {
		if p.quantity > 0 {
			out = append(out, p)
		}
	}
	return out
}
