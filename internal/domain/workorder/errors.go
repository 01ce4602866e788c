package workorder

import "fleet-workflow/internal/pkg/errs"

var (
	ErrInvalidTransition = errs.Mark(errs.New("invalid status transition"), errs.ErrConflict)
	ErrInvalidStatus     = errs.Validation("invalid work order status")
	ErrInvalidKind       = errs.Validation("invalid work order kind")
	ErrEmptyPlate        = errs.Validation("vehicle plate is required")
	ErrEmptyParts        = errs.Validation("parts list is empty")
	ErrDuplicatePart     = errs.Validation("parts list contains duplicates")
	ErrInvalidPart       = errs.Validation("invalid part")
	ErrMissingPrice      = errs.Validation("adjusted part requires a unit price")
	ErrUnknownAdjustment = errs.Validation("adjusted part was not requested")
	ErrAdjustmentExceeds = errs.Validation("adjusted quantity exceeds requested quantity")
	ErrInvalidOdometer   = errs.Validation("measured odometer is below the previous reading")
	ErrInvalidEndTime    = errs.Validation("end time precedes start time")
)

func transitionError(from, to Status) error {
	if from == statusNew {
		from = "new"
	}
	return errs.WithDetail(
		errs.Wrapf(ErrInvalidTransition, "%s -> %s", from, to),
		"from="+from.String()+" to="+to.String(),
	)
}
