package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateQuery(t *testing.T) {
	parsed := parseDateQuery("2026-03-10")
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), *parsed)

	assert.Nil(t, parseDateQuery(""))
	assert.Nil(t, parseDateQuery("10/03/2026"))
}

func TestParseDateToQueryCoversWholeDay(t *testing.T) {
	bound := parseDateToQuery("2026-03-10")
	require.NotNil(t, bound)

	duringDay := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.False(t, bound.Before(duringDay), "a record created during the end day must fall inside the bound")
	assert.True(t, bound.Before(nextDay))

	assert.Nil(t, parseDateToQuery(""))
	assert.Nil(t, parseDateToQuery("not-a-date"))
}
