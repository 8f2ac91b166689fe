package utils

// Billing-unit thresholds in hours. A month is billed as 30 days.
const (
	HoursPerDay   = 24
	HoursPerWeek  = 168
	HoursPerMonth = 720
)

// ConfiguredUnits flags which tier rates a price rule carries. Units
// without a configured rate are skipped during decomposition.
type ConfiguredUnits struct {
	Month bool
	Week  bool
	Day   bool
	Hour  bool
}

// Decomposition is a rental duration broken into whole billing units plus
// an hourly remainder. Hours is zero whenever no hourly rate is configured;
// the sub-day remainder is then unbilled.
type Decomposition struct {
	Months int
	Weeks  int
	Days   int
	Hours  float64
}

// DecomposeHours splits a duration into largest-fit billing units: whole
// months first, then whole weeks, then whole days, then the remainder in
// fractional hours. Greedy by construction, not cost-optimal: predictable
// decomposition keeps quotes auditable even when a larger unit happens to
// be disproportionately cheap.
func DecomposeHours(totalHours float64, units ConfiguredUnits) Decomposition {
	var d Decomposition
	remaining := totalHours
	if remaining <= 0 {
		return d
	}

	if units.Month && remaining >= HoursPerMonth {
		d.Months = int(remaining / HoursPerMonth)
		remaining -= float64(d.Months * HoursPerMonth)
	}
	if units.Week && remaining >= HoursPerWeek {
		d.Weeks = int(remaining / HoursPerWeek)
		remaining -= float64(d.Weeks * HoursPerWeek)
	}
	if units.Day && remaining >= HoursPerDay {
		d.Days = int(remaining / HoursPerDay)
		remaining -= float64(d.Days * HoursPerDay)
	}
	if units.Hour && remaining > 0 {
		d.Hours = remaining
	}
	return d
}
