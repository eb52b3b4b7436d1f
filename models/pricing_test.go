package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePricing(t *testing.T) {
	tests := []struct {
		raw      string
		wantType PricingType
		amount   float64
	}{
		{"Free", PricingFree, 0},
		{"$10/mo freemium", PricingFreemium, 10},
		{"Freemium", PricingFreemium, 0},
		{"$29.99 per month", PricingPaid, 29.99},
		{"paid", PricingPaid, 0},
		{"Contact sales", PricingCustom, 0},
		{"Custom quote", PricingCustom, 0},
		{"free trial, then $ 15", PricingPaid, 15},
		{"", PricingCustom, 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p := ParsePricing(tt.raw)
			assert.Equal(t, tt.wantType, p.Type)
			assert.InDelta(t, tt.amount, p.Price(), 1e-9)
		})
	}
}

func TestNewPricing(t *testing.T) {
	assert.Equal(t, Pricing{Type: PricingPaid, StartingAmount: 20}, NewPricing("PAID", 20))
	assert.Equal(t, Pricing{Type: PricingFree}, NewPricing("free", -3))

	p := NewPricing("$5 freemium", 0)
	assert.Equal(t, PricingFreemium, p.Type)
	assert.InDelta(t, 5, p.StartingAmount, 1e-9)
}

func TestPricing_UnmarshalYAML(t *testing.T) {
	var doc struct {
		Flat       Pricing `yaml:"flat"`
		Structured Pricing `yaml:"structured"`
	}
	src := `
flat: "$12/mo"
structured:
  type: freemium
  startingAmount: 8
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	assert.Equal(t, PricingPaid, doc.Flat.Type)
	assert.InDelta(t, 12, doc.Flat.Price(), 1e-9)
	assert.Equal(t, Pricing{Type: PricingFreemium, StartingAmount: 8}, doc.Structured)
}

func TestPricing_UnmarshalJSON(t *testing.T) {
	var p Pricing
	require.NoError(t, json.Unmarshal([]byte(`"free"`), &p))
	assert.Equal(t, PricingFree, p.Type)

	require.NoError(t, json.Unmarshal([]byte(`{"type":"paid","startingAmount":49}`), &p))
	assert.Equal(t, Pricing{Type: PricingPaid, StartingAmount: 49}, p)

	require.NoError(t, json.Unmarshal([]byte(`42`), &p))
	assert.Equal(t, PricingCustom, p.Type)
}

func TestReasonsJoinSplit(t *testing.T) {
	reasons := []string{"Popular with developers like you", "Fits your free-only budget"}
	assert.Equal(t, reasons, SplitReasons(JoinReasons(reasons)))
	assert.Nil(t, SplitReasons("  "))
}

func TestToolRecord_ContextTags(t *testing.T) {
	tool := ToolRecord{Category: "Writing", Tags: []string{"writing", " SEO ", "", "seo"}}
	assert.Equal(t, []string{"writing", "seo"}, tool.ContextTags())
}

func TestActionKind_Valid(t *testing.T) {
	assert.True(t, ActionBookmark.Valid())
	assert.False(t, ActionKind("like").Valid())
	assert.Equal(t, "wf-1", BehaviorPayload{ToolID: "t", WorkflowID: "wf-1"}.ItemID(ActionWorkflowComplete))
	assert.Equal(t, "t", BehaviorPayload{ToolID: "t", WorkflowID: "wf-1"}.ItemID(ActionView))
}
