package reconcile

//go:generate go tool stringer -type=Phase -trimprefix=Phase -output=phase_string.go

// Phase identifies the step of the algorithm that produced a link.
type Phase int

const (
	PhaseNone            Phase = iota // not linked
	PhaseEqual                        // equality relation
	PhasePerfect                      // similarity 1.0
	PhaseUnconflicted                 // sole candidate on both sides
	PhaseSourceSingleton              // source with a single candidate won the target
	PhaseTargetSingleton              // target with a single candidate won the source
	PhaseBestRemaining                // highest remaining candidate
)
