package reconcile

import "errors"

var (
	// ErrInvalidConfig is returned for thresholds outside [0,1] or a non-positive bonus.
	ErrInvalidConfig = errors.New("reconcile: invalid config")
	// ErrNoMatchFunction is returned when neither equality nor similarity is configured.
	ErrNoMatchFunction = errors.New("reconcile: no equality or similarity function")
	// ErrNilSequence is returned when the source or target slice is nil.
	ErrNilSequence = errors.New("reconcile: nil sequence")
	// ErrSimilarityOutOfRange is returned when a similarity function yields NaN or a value outside [0,1].
	ErrSimilarityOutOfRange = errors.New("reconcile: similarity out of range")
)
