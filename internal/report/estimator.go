package report

import "math/rand/v2"

// Estimator supplies the figures that are not derived from ticket data yet.
// Callers depend on the interface so a data-backed implementation can replace
// RandomEstimator without touching them.
type Estimator interface {
	SatisfactionRate() int
	DailySatisfactionRate() int
	AvgFirstResponseHours() float64
	Comparison() ComparisonBaseline
	Forecast() Forecast
}

// TopPerformer describes the best staff member in a comparison.
type TopPerformer struct {
	StaffName        string
	ResolutionRate   float64
	AvgResponseHours float64
}

// ComparisonBaseline holds the non-derived parts of the comparison report.
type ComparisonBaseline struct {
	YourAvgResponseHours       float64
	YourSatisfactionRate       int
	DepartmentAvgResponseHours float64
	DepartmentSatisfactionRate int
	TopPerformer               TopPerformer
}

// Forecast is the next-week outlook.
type Forecast struct {
	ExpectedTickets        int
	ExpectedResolutionRate int
	BusiestDay             string
	TicketGrowthPercent    int
	ResolutionTrend        string
	RiskFactors            []string
}

// RandomEstimator draws placeholder values from fixed ranges. It holds no
// state, so one value can serve concurrent requests.
type RandomEstimator struct{}

// NewRandomEstimator returns the placeholder estimator.
func NewRandomEstimator() RandomEstimator {
	return RandomEstimator{}
}

// between returns a uniform integer in [lo, hi].
func between(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}

func (RandomEstimator) SatisfactionRate() int {
	return between(85, 98)
}

func (RandomEstimator) DailySatisfactionRate() int {
	return between(85, 98)
}

func (RandomEstimator) AvgFirstResponseHours() float64 {
	return 2.1
}

func (RandomEstimator) Comparison() ComparisonBaseline {
	return ComparisonBaseline{
		YourAvgResponseHours:       1.8,
		YourSatisfactionRate:       between(88, 98),
		DepartmentAvgResponseHours: 2.5,
		DepartmentSatisfactionRate: 89,
		TopPerformer: TopPerformer{
			StaffName:        "Ivan Petrov",
			ResolutionRate:   95.2,
			AvgResponseHours: 1.2,
		},
	}
}

func (RandomEstimator) Forecast() Forecast {
	days := []string{"Monday", "Tuesday"}
	return Forecast{
		ExpectedTickets:        between(15, 25),
		ExpectedResolutionRate: between(75, 90),
		BusiestDay:             days[rand.IntN(len(days))],
		TicketGrowthPercent:    between(5, 15),
		ResolutionTrend:        "improvement",
		RiskFactors:            []string{"Seasonal load", "System updates"},
	}
}
