package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-reconciler/internal/reconcile"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
matcher:
  similarity_threshold: 0.4
  noise_factor: 0.6
packages: [./v1, ./v2]
pairs:
  - source: v1.Order
    target: v2.Order
    pinned:
      OrderID: ID
    ignore: [Internal, Notes]
  - source: v1.Customer
    target: v2.Customer
    ignore: Phone
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []string{"./v1", "./v2"}, f.Packages)

	// Missing matcher keys keep their defaults.
	assert.InDelta(t, 0.4, f.Matcher.SimilarityThreshold, 1e-12)
	assert.InDelta(t, 0.6, f.Matcher.NoiseFactor, 1e-12)
	assert.InDelta(t, reconcile.DefaultSingletonPrecedenceThreshold, f.Matcher.SingletonPrecedenceThreshold, 1e-12)
	assert.InDelta(t, reconcile.DefaultSingletonPrecedenceBonus, f.Matcher.SingletonPrecedenceBonus, 1e-12)

	require.Len(t, f.Pairs, 2)
	order := f.Pairs[0]
	assert.Equal(t, "v1.Order->v2.Order", order.String())
	assert.Equal(t, map[string]string{"OrderID": "ID"}, order.Pinned)
	assert.Equal(t, StringOrArray{"Internal", "Notes"}, order.Ignore)
	assert.True(t, order.Ignore.Contains("Notes"))

	// A single string is accepted for ignore.
	assert.Equal(t, StringOrArray{"Phone"}, f.Pairs[1].Ignore)
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte("pairs: [{source: A, target: B}]"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version)
	assert.Equal(t, reconcile.DefaultConfig(), f.Matcher)
	assert.Empty(t, f.Packages)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{"bad yaml", "pairs: [", "failed to parse reconcile YAML"},
		{"bad ignore", "pairs: [{source: A, target: B, ignore: {a: b}}]", "expected string or array"},
		{"version", `version: "2"
pairs: [{source: A, target: B}]`, `unsupported version "2"`},
		{"no pairs", `version: "1"`, "no pairs"},
		{"missing target", "pairs: [{source: A}]", "source and target are required"},
		{"threshold", `matcher: {similarity_threshold: 1.5}
pairs: [{source: A, target: B}]`, "similarity threshold 1.5 not in [0,1]"},
		{"bonus", `matcher: {singleton_precedence_bonus: 0}
pairs: [{source: A, target: B}]`, "singleton precedence bonus 0 must be positive"},
		{"pinned and ignored", "pairs: [{source: A, target: B, pinned: {X: Y}, ignore: X}]", "field X is both pinned and ignored"},
		{"pinned twice", "pairs: [{source: A, target: B, pinned: {X: Z, Y: Z}}]", "fields X and Y are pinned to Z"},
		{"pinned empty", "pairs: [{source: A, target: B, pinned: {X: ''}}]", "pinned field X has no target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParse_InvalidWrapsSentinels(t *testing.T) {
	_, err := Parse([]byte(`matcher: {noise_factor: -1}
pairs: [{source: A, target: B}]`))
	require.ErrorIs(t, err, ErrInvalidFile)
	require.ErrorIs(t, err, reconcile.ErrInvalidConfig)
}

func TestLoadFile_Example(t *testing.T) {
	f, err := LoadFile(filepath.Join("..", "..", "examples", "legacy", "reconcile.yaml"))
	require.NoError(t, err)

	assert.Equal(t, reconcile.DefaultConfig(), f.Matcher)
	assert.Equal(t, []string{"./examples/legacy/v1", "./examples/legacy/v2"}, f.Packages)
	require.Len(t, f.Pairs, 4)
	assert.Equal(t, "v2.OrderLine", f.Pairs[2].Target)
	assert.Equal(t, "Stock", f.Pairs[3].Pinned["Inventory"])
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	f := &File{
		Version: CurrentVersion,
		Matcher: reconcile.DefaultConfig(),
		Pairs: []Pair{{
			Source: "v1.Order",
			Target: "v2.Order",
			Pinned: map[string]string{"OrderID": "ID"},
			Ignore: StringOrArray{"Notes"},
		}},
	}

	path := filepath.Join(t.TempDir(), "reconcile.yaml")
	require.NoError(t, WriteFile(f, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ignore: Notes\n")

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)
}
