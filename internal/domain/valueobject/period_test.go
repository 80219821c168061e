package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailingMonths(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	periods := TrailingMonths(now, 7, time.UTC)
	require.Len(t, periods, 7)

	labels := make([]string, 0, len(periods))
	for _, p := range periods {
		labels = append(labels, p.Label)
	}
	assert.Equal(t, []string{"Set", "Out", "Nov", "Dez", "Jan", "Fev", "Mar"}, labels)
	assert.Equal(t, time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC), periods[0].PeriodStart)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), periods[6].PeriodEnd)
}

func TestTrailingMonths_UsesLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 01:00 UTC on April 1st is still March 31st in BRT.
	now := time.Date(2024, time.April, 1, 1, 0, 0, 0, time.UTC)

	periods := TrailingMonths(now, 1, loc)
	require.Len(t, periods, 1)
	assert.Equal(t, "Mar", periods[0].Label)
}

func TestMonthPeriod_Contains(t *testing.T) {
	p := TrailingMonths(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), 1, time.UTC)[0]

	assert.True(t, p.Contains(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, time.January, 31, 23, 0, 0, 0, time.UTC)))
}
