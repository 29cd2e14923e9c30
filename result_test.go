package btcschema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// mixedResultTree returns a depth three result tree with optional and
// mandatory nodes at every level.
func mixedResultTree() BtcResult {
	return BtcResult{
		Type:        "object",
		Optional:    true,
		Description: "outer object",
		Inner: []BtcResult{
			{
				Type:        "array",
				Description: "inner array",
				KeyName:     "entries",
				Inner: []BtcResult{
					{
						Type:        "string",
						Optional:    true,
						Description: "entry",
					},
					{
						Type:        "number",
						Description: "count",
						KeyName:     "count",
					},
				},
			},
			{
				Type:        "string",
				Optional:    true,
				Description: "warning",
				KeyName:     "warning",
				Condition:   "if the node is out of sync",
			},
		},
	}
}

// requireNormalized walks a result tree and asserts that Required mirrors
// !Optional on every node.
func requireNormalized(t *testing.T, result *BtcResult) {
	t.Helper()

	require.Equal(t, !result.Optional, result.Required)
	for i := range result.Inner {
		requireNormalized(t, &result.Inner[i])
	}
}

// TestPostProcessDerivesRequired asserts that normalization derives the
// Required flag at every depth of a mixed tree.
func TestPostProcessDerivesRequired(t *testing.T) {
	t.Parallel()

	tree := mixedResultTree()
	tree.PostProcess()

	requireNormalized(t, &tree)

	// Spot check a few nodes so a broken walk cannot hide behind the
	// recursive assertion.
	require.False(t, tree.Required)
	require.True(t, tree.Inner[0].Required)
	require.False(t, tree.Inner[0].Inner[0].Required)
	require.True(t, tree.Inner[0].Inner[1].Required)
	require.False(t, tree.Inner[1].Required)
}

// TestPostProcessIdempotent asserts that normalizing twice yields the same
// tree as normalizing once.
func TestPostProcessIdempotent(t *testing.T) {
	t.Parallel()

	once := mixedResultTree()
	once.PostProcess()

	twice := mixedResultTree()
	twice.PostProcess()
	twice.PostProcess()

	require.Equal(t, once, twice)
}

// TestPostProcessLeaf asserts that a node without children only derives its
// own flag.
func TestPostProcessLeaf(t *testing.T) {
	t.Parallel()

	leaf := BtcResult{Type: "string", Optional: true}
	leaf.PostProcess()

	require.False(t, leaf.Required)
	require.Empty(t, leaf.Inner)
}

// TestResultDecodeDiscardsRequired asserts that a required value carried by
// the source document is dropped during decoding and only reappears once
// normalization derives it.
func TestResultDecodeDiscardsRequired(t *testing.T) {
	t.Parallel()

	// The document claims the node is required even though it is
	// optional. The decoder must not believe it.
	doc := `{
		"type": "object",
		"optional": true,
		"description": "lying document",
		"required": true,
		"inner": [
			{
				"type": "string",
				"description": "inner",
				"required": false
			}
		]
	}`

	var result BtcResult
	require.NoError(t, json.Unmarshal([]byte(doc), &result))

	// Freshly decoded, Required holds its default at every depth.
	require.False(t, result.Required)
	require.False(t, result.Inner[0].Required)

	result.PostProcess()

	require.False(t, result.Required)
	require.True(t, result.Inner[0].Required)
}

// TestResultDecodeDefaults asserts the defaults of a minimal result node.
func TestResultDecodeDefaults(t *testing.T) {
	t.Parallel()

	doc := `{"type": "string", "description": "bare"}`

	var result BtcResult
	require.NoError(t, json.Unmarshal([]byte(doc), &result))

	require.Equal(t, "string", result.Type)
	require.False(t, result.Optional)
	require.False(t, result.SkipTypeCheck)
	require.Empty(t, result.KeyName)
	require.Empty(t, result.Condition)
	require.Empty(t, result.Inner)
}
