package service

const (
	MaxAmount      = 10_000_000_000.0 // ₹1000 crore
	MaxAnnualRate  = 100.0            // 100% a year
	MaxYears       = 100
	MinPPFYears    = 15
	MaxPPFYears    = 50
	MinPPFDeposit  = 500.0
	MaxPPFDeposit  = 150_000.0
	MaxAge         = 100
	MaxRecentCalcs = 50

	// Used when the caller leaves the withdrawal rate at zero.
	DefaultWithdrawalRate = 4.0
)

// Compounding frequencies accepted by the compound-interest calculator, in
// periods per year.
var compoundingFrequencies = map[int]bool{
	1:   true,
	2:   true,
	4:   true,
	12:  true,
	365: true,
}

// fdCompounding maps the FD calculator's named frequencies to periods per year.
var fdCompounding = map[string]int{
	"monthly":     12,
	"quarterly":   4,
	"half-yearly": 2,
	"yearly":      1,
}
