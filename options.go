package pathbool

import (
	"errors"
	"fmt"
	"time"
)

// FillRule decides which points are inside a path.
type FillRule int

// Fill rules.
const (
	EvenOdd FillRule = iota // inside when a ray from the point crosses the path an odd number of times
	NonZero                 // inside when the winding number around the point is non-zero
)

func (fillRule FillRule) String() string {
	switch fillRule {
	case EvenOdd:
		return "EvenOdd"
	case NonZero:
		return "NonZero"
	}
	return fmt.Sprintf("FillRule(%d)", int(fillRule))
}

// Options configures intersection and boolean operations. The zero value of a field means its default from DefaultOptions.
type Options struct {
	// Tolerance is the parameter window width below which the intersection search stops subdividing.
	Tolerance float64

	// Resolution is the parameter grid used to merge intersection candidates that converge on the same root.
	Resolution float64

	// StitchTolerance is the maximum distance between fragment end points that are joined into one contour.
	StitchTolerance float64

	// FillRule decides inside/outside for classification. Filled shapes are rendered with EvenOdd.
	FillRule FillRule

	// MaxDepth caps the subdivision depth of the intersection search.
	MaxDepth int

	// MaxCandidates caps the number of raw intersection candidates per operation.
	MaxCandidates int
}

// DefaultOptions are the options used by the package level functions.
var DefaultOptions = Options{
	Tolerance:       1e-4,
	Resolution:      1e-3,
	StitchTolerance: 1.0,
	FillRule:        EvenOdd,
	MaxDepth:        32,
	MaxCandidates:   1 << 16,
}

// ErrBadOptions is returned by Options.Validate.
var ErrBadOptions = errors.New("bad options")

// Validate fills in defaults for zero fields and returns an error for out of range values.
func (o Options) Validate() (Options, error) {
	if o.Tolerance < 0.0 || 0.5 <= o.Tolerance {
		return o, fmt.Errorf("%w: tolerance must be in [0,0.5), got %g", ErrBadOptions, o.Tolerance)
	} else if o.Resolution < 0.0 || 0.5 <= o.Resolution {
		return o, fmt.Errorf("%w: resolution must be in [0,0.5), got %g", ErrBadOptions, o.Resolution)
	} else if o.StitchTolerance < 0.0 {
		return o, fmt.Errorf("%w: stitch tolerance must be positive, got %g", ErrBadOptions, o.StitchTolerance)
	} else if o.FillRule != EvenOdd && o.FillRule != NonZero {
		return o, fmt.Errorf("%w: unknown fill rule %v", ErrBadOptions, o.FillRule)
	} else if o.MaxDepth < 0 || o.MaxCandidates < 0 {
		return o, fmt.Errorf("%w: limits must be positive", ErrBadOptions)
	}

	if o.Tolerance == 0.0 {
		o.Tolerance = DefaultOptions.Tolerance
	}
	if o.Resolution == 0.0 {
		o.Resolution = DefaultOptions.Resolution
	}
	if o.StitchTolerance == 0.0 {
		o.StitchTolerance = DefaultOptions.StitchTolerance
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultOptions.MaxDepth
	}
	if o.MaxCandidates == 0 {
		o.MaxCandidates = DefaultOptions.MaxCandidates
	}
	return o, nil
}

// withDefaults is Validate for internal callers, which fall back to DefaultOptions on invalid options.
func (o Options) withDefaults() Options {
	o, err := o.Validate()
	if err != nil {
		Logger().Warn("invalid options, using defaults", "err", err)
		return DefaultOptions
	}
	return o
}

////////////////////////////////////////////////////////////////

// Diagnostics describes how a boolean or intersection operation went. Degraded results are flagged here instead of being returned as errors.
type Diagnostics struct {
	Candidates   int           // raw intersection candidates found by subdivision
	Splits       int           // split parameters after deduplication, over both paths
	Fragments    int           // sub-curves selected for the result
	Contours     int           // contours in the result
	Open         int           // contours that could not be closed by stitching
	DepthLimited bool          // the subdivision depth cap was hit
	Truncated    bool          // the candidate ceiling was hit
	Elapsed      time.Duration // wall time of the operation
}

// Degraded returns true if the result may be incomplete or open.
func (d Diagnostics) Degraded() bool {
	return 0 < d.Open || d.DepthLimited || d.Truncated
}
