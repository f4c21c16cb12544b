package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/migration"
)

func TestParseSeeds(t *testing.T) {
	seeds, err := parseSeeds([]string{"Acme=acc-1", " Beta Ltda = acc-2 "})
	require.NoError(t, err)
	assert.Equal(t, []migration.Seed{
		{Company: "Acme", AccountID: "acc-1"},
		{Company: "Beta Ltda", AccountID: "acc-2"},
	}, seeds)

	for _, invalid := range []string{"Acme", "=acc-1", "Acme="} {
		_, err := parseSeeds([]string{invalid})
		assert.Error(t, err, invalid)
	}
}

func TestQueryFlags(t *testing.T) {
	flags := &queryFlags{start: "2025-01-01", end: "31/01/2025", company: " Acme "}

	query, err := flags.query()

	require.NoError(t, err)
	assert.Equal(t, "Acme", query.Company)
	assert.True(t, query.Scope.IsAdmin)
	assert.Equal(t, 30*24.0, query.EndDay.Sub(query.StartDay).Hours())

	flags.start = "ontem"
	_, err = flags.query()
	assert.ErrorContains(t, err, "--start")
}
