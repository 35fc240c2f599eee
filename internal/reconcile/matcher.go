package reconcile

import (
	"log/slog"
	"reflect"
)

// Equality reports whether a source and a target item are the same item.
// Equal pairs are linked before any similarity is computed.
type Equality[T any] func(source, target T) bool

// SimilarityFunc scores a source/target pair in [0,1].
// Values outside that range, or NaN, abort the run with ErrSimilarityOutOfRange.
type SimilarityFunc[T any] func(source, target T) float64

// Validator decides at link time whether a prospective link is acceptable.
// A rejected pair is dropped from the candidates; a returned error aborts the run.
type Validator[T any] func(source, target T, similarity float64, sourceCandidates, targetCandidates int) (bool, error)

// Option configures a Matcher.
type Option[T any] func(*Matcher[T])

// WithEquality sets the equality relation applied before similarity matching.
func WithEquality[T any](equal Equality[T]) Option[T] {
	return func(m *Matcher[T]) {
		m.equal = equal
	}
}

// WithSimilarity sets the similarity function used to build the candidate matrix.
func WithSimilarity[T any](similar SimilarityFunc[T]) Option[T] {
	return func(m *Matcher[T]) {
		m.similar = similar
	}
}

// WithValidator sets a callback that may veto links of similarity candidates.
func WithValidator[T any](validate Validator[T]) Option[T] {
	return func(m *Matcher[T]) {
		m.validate = validate
	}
}

// WithPlaceholder overrides how placeholder items are detected.
// Placeholders are never compared and never linked.
// By default nil pointers, interfaces, maps, slices, funcs and channels are placeholders.
func WithPlaceholder[T any](isPlaceholder func(T) bool) Option[T] {
	return func(m *Matcher[T]) {
		m.placeholder = isPlaceholder
	}
}

// WithLogger sets the logger receiving debug output of each run.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(m *Matcher[T]) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Matcher holds a validated configuration and the callbacks used to match items.
// It is immutable after construction and safe for concurrent use.
type Matcher[T any] struct {
	config      Config
	equal       Equality[T]
	similar     SimilarityFunc[T]
	validate    Validator[T]
	placeholder func(T) bool
	logger      *slog.Logger
}

// NewMatcher creates a Matcher. It fails with ErrInvalidConfig for an invalid
// configuration and with ErrNoMatchFunction when neither an equality relation
// nor a similarity function is given.
func NewMatcher[T any](cfg Config, opts ...Option[T]) (*Matcher[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Matcher[T]{
		config:      cfg,
		placeholder: isNilItem[T],
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.equal == nil && m.similar == nil {
		return nil, ErrNoMatchFunction
	}
	if m.placeholder == nil {
		m.placeholder = isNilItem[T]
	}

	return m, nil
}

// Config returns the matcher configuration.
func (m *Matcher[T]) Config() Config {
	return m.config
}

// Match links source items to target items and returns the immutable result.
// Neither slice is modified. The slices may differ in length and may be empty,
// but must not be nil.
func (m *Matcher[T]) Match(source, target []T) (*Result[T], error) {
	if source == nil || target == nil {
		return nil, ErrNilSequence
	}

	l := newLinker(m, source, target)
	if err := l.run(); err != nil {
		return nil, err
	}

	r := newResult(l)
	m.logger.Debug("reconcile: match finished",
		"sources", len(source),
		"targets", len(target),
		"match_count", r.MatchCount(),
		"average_similarity", r.AverageSimilarity())

	return r, nil
}

// isNilItem reports whether v is a nil value of a nillable kind.
func isNilItem[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
