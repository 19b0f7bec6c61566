package astroplan

import "errors"

// Errors for constraint configuration, evaluation, and vectorization.
var (
	// ErrNoLimits means a constraint that requires at least one bound was
	// given none.
	ErrNoLimits = errors.New("constraint requires at least one of min or max")

	// ErrLimitShape means a per-target limit's length disagrees with the
	// number of targets being evaluated.
	ErrLimitShape = errors.New("cannot broadcast constraint limits against targets")

	// ErrShapeMismatch means constraint result matrices disagree in shape
	// during AND-reduction.
	ErrShapeMismatch = errors.New("constraint results have mismatched shapes")

	// ErrNoTimes means neither explicit times nor a time range was supplied.
	ErrNoTimes = errors.New("no times or time range supplied")

	// ErrMixedLimits means a vectorization merge found a limit set on some
	// instances and unset on others.
	ErrMixedLimits = errors.New("cannot vectorize constraints with a mixture of scalar and unset limits")

	// ErrNotScalarLimit means a vectorization merge found an instance that
	// already carries a per-target limit.
	ErrNotScalarLimit = errors.New("cannot vectorize constraints with non-scalar limits")

	// ErrScoreUnsupported means a float (non-boolean) evaluation was
	// requested with a min/max combination that has no defined rescaling.
	ErrScoreUnsupported = errors.New("no max specified for float constraint score")
)
