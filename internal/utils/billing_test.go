package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecomposeHours(t *testing.T) {
	all := ConfiguredUnits{Month: true, Week: true, Day: true, Hour: true}

	t.Run("30 hours with day and hour rates", func(t *testing.T) {
		// 30h = 1 day (24h) + 6h remainder, not 30 hourly units
		d := DecomposeHours(30, ConfiguredUnits{Day: true, Hour: true})
		assert.Equal(t, 0, d.Months)
		assert.Equal(t, 0, d.Weeks)
		assert.Equal(t, 1, d.Days)
		assert.Equal(t, 6.0, d.Hours)
	})

	t.Run("8 days with week and day rates", func(t *testing.T) {
		// 192h = 1 week (168h) + 1 day (24h)
		d := DecomposeHours(192, ConfiguredUnits{Week: true, Day: true, Hour: true})
		assert.Equal(t, 1, d.Weeks)
		assert.Equal(t, 1, d.Days)
		assert.Equal(t, 0.0, d.Hours)
	})

	t.Run("All units", func(t *testing.T) {
		// 1 month (720h) + 1 week (168h) + 2 days (48h) + 3h = 939h
		d := DecomposeHours(939, all)
		assert.Equal(t, 1, d.Months)
		assert.Equal(t, 1, d.Weeks)
		assert.Equal(t, 2, d.Days)
		assert.Equal(t, 3.0, d.Hours)
	})

	t.Run("Unconfigured unit is skipped", func(t *testing.T) {
		// No week rate: 8 days = 8 daily units
		d := DecomposeHours(192, ConfiguredUnits{Day: true, Hour: true})
		assert.Equal(t, 0, d.Weeks)
		assert.Equal(t, 8, d.Days)
	})

	t.Run("Month below threshold not consumed", func(t *testing.T) {
		// 719h < 720h: falls through to weeks
		d := DecomposeHours(719, all)
		assert.Equal(t, 0, d.Months)
		assert.Equal(t, 4, d.Weeks) // 4 * 168 = 672
		assert.Equal(t, 1, d.Days)  // 47h remaining -> 1 day
		assert.Equal(t, 23.0, d.Hours)
	})

	t.Run("No hourly rate leaves remainder unbilled", func(t *testing.T) {
		d := DecomposeHours(30, ConfiguredUnits{Day: true})
		assert.Equal(t, 1, d.Days)
		assert.Equal(t, 0.0, d.Hours)
	})

	t.Run("Fractional remainder", func(t *testing.T) {
		d := DecomposeHours(25.5, ConfiguredUnits{Day: true, Hour: true})
		assert.Equal(t, 1, d.Days)
		assert.Equal(t, 1.5, d.Hours)
	})

	t.Run("Zero and negative durations", func(t *testing.T) {
		assert.Equal(t, Decomposition{}, DecomposeHours(0, all))
		assert.Equal(t, Decomposition{}, DecomposeHours(-5, all))
	})

	t.Run("Hourly only", func(t *testing.T) {
		d := DecomposeHours(30, ConfiguredUnits{Hour: true})
		assert.Equal(t, 0, d.Days)
		assert.Equal(t, 30.0, d.Hours)
	})
}
