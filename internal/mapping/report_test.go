package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"type-reconciler/internal/diagnostic"
	"type-reconciler/internal/reconcile"
)

func TestWriteReport(t *testing.T) {
	pr := PairReport{
		Source: "v1.Customer",
		Target: "v2.Customer",
		Links: []LinkReport{{
			Source:        "Email",
			Target:        "EmailAddress",
			SourceType:    "string",
			TargetType:    "string",
			Similarity:    0.8,
			Phase:         "SourceSingleton",
			Compatibility: "identical",
		}},
		Discarded: []string{"Phone"},
		Stats:     Stats{MatchCount: 1, Total: 0.8, Average: 0.8, Lowest: 0.8, Highest: 0.8},
	}
	pr.Diagnostics.AddWarning(diagnostic.CodeUnmatchedSource, "old field Phone has no match", pr.Source+"->"+pr.Target, "Phone")

	r := &Report{Version: CurrentVersion, Matcher: reconcile.DefaultConfig(), Pairs: []PairReport{pr}}

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, WriteReport(r, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	pairs, ok := raw["pairs"].([]any)
	require.True(t, ok)
	require.Len(t, pairs, 1)

	pair, ok := pairs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"Phone"}, pair["discarded"])
	assert.NotContains(t, pair, "added")
	assert.NotContains(t, pair, "ignored")

	diags, ok := pair["diagnostics"].(map[string]any)
	require.True(t, ok)
	warnings, ok := diags["warnings"].([]any)
	require.True(t, ok)
	require.Len(t, warnings, 1)
	assert.Equal(t, "warning", warnings[0].(map[string]any)["severity"])
}

func TestMarshalReport_OmitsEmptyDiagnostics(t *testing.T) {
	data, err := MarshalReport(&Report{
		Version: CurrentVersion,
		Matcher: reconcile.DefaultConfig(),
		Pairs:   []PairReport{{Source: "A", Target: "B"}},
	})
	require.NoError(t, err)

	assert.NotContains(t, string(data), "diagnostics")
	assert.Contains(t, string(data), "match_count: 0")
}
