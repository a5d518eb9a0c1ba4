package prediction

// PETier scales the current price when the P/E ratio is strictly above Above
type PETier struct {
	Above      float64
	Multiplier float64
}

// Params holds the tunable constants of the target price heuristic
type Params struct {
	// Trend branch is used when history has more than MinHistoryPoints closes
	MinHistoryPoints int
	// Moving-average trend needs more than TrendHistoryPoints closes, otherwise
	// the daily change is used as the trend proxy
	TrendHistoryPoints int
	TrendWindow        int
	TrendAmplification float64

	// Blend weights (sum to 1)
	TrendWeight  float64
	PEWeight     float64
	MarketWeight float64

	// Expected annual market return, used by both branches
	MarketReturn float64

	// Checked in order; first matching tier wins
	PETiers           []PETier
	PEFloorMultiplier float64

	// Random multiplier is JitterMin + r*JitterRange with r in [0, 1)
	JitterMin   float64
	JitterRange float64

	// Short-history branch momentum weights
	PositiveMomentumWeight float64
	NegativeMomentumWeight float64

	// Growth applied when the computation cannot produce a finite price
	FallbackGrowth float64
}

// DefaultParams returns the production heuristic
func DefaultParams() Params {
	return Params{
		MinHistoryPoints:   5,
		TrendHistoryPoints: 10,
		TrendWindow:        5,
		TrendAmplification: 3,

		TrendWeight:  0.5,
		PEWeight:     0.3,
		MarketWeight: 0.2,

		MarketReturn: 0.08,

		PETiers: []PETier{
			{Above: 30, Multiplier: 1.15},
			{Above: 20, Multiplier: 1.10},
			{Above: 15, Multiplier: 1.05},
		},
		PEFloorMultiplier: 1.03,

		JitterMin:   0.95,
		JitterRange: 0.10,

		PositiveMomentumWeight: 0.5,
		NegativeMomentumWeight: 0.3,

		FallbackGrowth: 0.10,
	}
}
