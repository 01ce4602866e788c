package workorder

import "fleet-workflow/internal/pkg/errs"

type Outcome string

const (
	OutcomeDeny    Outcome = "deny"
	OutcomeRevise  Outcome = "revise"
	OutcomeApprove Outcome = "approve"
)

// Decision is the administrator's verdict on a pending order.
// Only Deny, Revise and Approve implement it.
type Decision interface {
	Outcome() Outcome
	target() Status
}

type Deny struct {
	RequestedChanges string
}

type Revise struct {
	RequestedChanges string
}

// Approve carries the final quantities and unit prices of the parts used.
type Approve struct {
	Adjustments PartList
}

func (Deny) Outcome() Outcome    { return OutcomeDeny }
func (Revise) Outcome() Outcome  { return OutcomeRevise }
func (Approve) Outcome() Outcome { return OutcomeApprove }

func (Deny) target() Status    { return StatusDenegado }
func (Revise) target() Status  { return StatusRevision }
func (Approve) target() Status { return StatusAprobado }

// ValidateAgainst checks the adjustments against the parts that were requested.
// Every adjustment must be priced, must name a requested SKU and may not
// exceed the reserved quantity.
func (a Approve) ValidateAgainst(requested PartList) error {
	if _, err := NewPartList(a.Adjustments...); err != nil {
		return err
	}
	for _, adj := range a.Adjustments {
		if !adj.IsPriced() {
			return errs.WithDetail(errs.Wrapf(ErrMissingPrice, "part %s", adj.ID()), "missing price for "+adj.ID())
		}
		req, ok := requested.Find(adj.ID())
		if !ok {
			return errs.WithDetail(errs.Wrapf(ErrUnknownAdjustment, "part %s", adj.ID()), "part "+adj.ID()+" was not requested")
		}
		if adj.Quantity() > req.Quantity() {
			return errs.WithDetail(errs.Wrapf(ErrAdjustmentExceeds, "part %s", adj.ID()), "part "+adj.ID()+" exceeds requested quantity")
		}
	}
	return nil
}
