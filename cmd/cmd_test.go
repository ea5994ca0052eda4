package cmd

import (
	"testing"

	"catalog-sync/core/mapping"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignments(t *testing.T) {
	values, err := parseAssignments([]string{"price=19.99", ` images=[{"image_url":"a=b"}]`})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"price":  "19.99",
		"images": `[{"image_url":"a=b"}]`,
	}, values)

	_, err = parseAssignments([]string{"price"})
	assert.Error(t, err)

	_, err = parseAssignments([]string{"=1"})
	assert.Error(t, err)
}

func TestDifferences(t *testing.T) {
	a := &mapping.Record{Name: "Amp", Price: decimal.RequireFromString("10.0"), Visible: true}
	b := &mapping.Record{Name: "Amp", Price: decimal.RequireFromString("10"), Visible: false}

	assert.Equal(t, []string{"visible"}, differences(a, b))
	assert.Empty(t, differences(a, a))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"start", "stores", "get", "compare", "import", "batch", "sync", "check"} {
		assert.True(t, names[want], want)
	}
}
