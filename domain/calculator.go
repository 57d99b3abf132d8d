package domain

import "time"

// Calculator kinds, also used as URL path segments.
const (
	CalcSIP              = "sip"
	CalcEMI              = "emi"
	CalcCAGR             = "cagr"
	CalcCompoundInterest = "compound-interest"
	CalcFD               = "fd"
	CalcPPF              = "ppf"
	CalcRetirement       = "retirement"
	CalcLumpsum          = "lumpsum"
)

type SIPInput struct {
	MonthlyInvestment float64 `json:"monthly_investment"`
	AnnualRate        float64 `json:"annual_rate"`
	Years             int     `json:"years"`
}

type SIPResult struct {
	MaturityAmount float64 `json:"maturity_amount"`
	TotalInvested  float64 `json:"total_invested"`
	EstimatedGain  float64 `json:"estimated_gain"`
}

type EMIInput struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	Years      int     `json:"years"`
}

type EMIResult struct {
	MonthlyEMI    float64 `json:"monthly_emi"`
	TotalPayment  float64 `json:"total_payment"`
	TotalInterest float64 `json:"total_interest"`
}

type CAGRInput struct {
	InitialValue float64 `json:"initial_value"`
	FinalValue   float64 `json:"final_value"`
	Years        float64 `json:"years"`
}

type CAGRResult struct {
	CAGR         float64 `json:"cagr"`
	CAGRPercent  float64 `json:"cagr_percent"`
	AbsoluteGain float64 `json:"absolute_gain"`
}

type CompoundInterestInput struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	Years      float64 `json:"years"`
	// Frequency is compounding periods per year.
	Frequency int `json:"frequency"`
}

type CompoundInterestResult struct {
	MaturityAmount float64 `json:"maturity_amount"`
	TotalInterest  float64 `json:"total_interest"`
}

type FDInput struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	Years      float64 `json:"years"`
	// Compounding is one of monthly, quarterly, half-yearly, yearly.
	Compounding string `json:"compounding"`
}

type FDResult struct {
	MaturityAmount float64 `json:"maturity_amount"`
	TotalInterest  float64 `json:"total_interest"`
	Frequency      int     `json:"frequency"`
}

type PPFInput struct {
	YearlyContribution float64 `json:"yearly_contribution"`
	AnnualRate         float64 `json:"annual_rate"`
	Years              int     `json:"years"`
}

type PPFResult struct {
	MaturityAmount float64 `json:"maturity_amount"`
	TotalInvested  float64 `json:"total_invested"`
	TotalInterest  float64 `json:"total_interest"`
}

type RetirementInput struct {
	CurrentAge      int     `json:"current_age"`
	RetirementAge   int     `json:"retirement_age"`
	MonthlyExpense  float64 `json:"monthly_expense"`
	InflationRate   float64 `json:"inflation_rate"`
	ExpectedReturn  float64 `json:"expected_return"`
	WithdrawalRate  float64 `json:"withdrawal_rate"`
	ExistingSavings float64 `json:"existing_savings"`
}

type RetirementResult struct {
	YearsToRetirement      int     `json:"years_to_retirement"`
	MonthlyExpenseAtRetire float64 `json:"monthly_expense_at_retirement"`
	RequiredCorpus         float64 `json:"required_corpus"`
	SavingsAtRetirement    float64 `json:"savings_at_retirement"`
	CorpusGap              float64 `json:"corpus_gap"`
	RequiredMonthlySIP     float64 `json:"required_monthly_sip"`
}

type LumpsumInput struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	Years      int     `json:"years"`
}

type LumpsumResult struct {
	MaturityAmount float64 `json:"maturity_amount"`
	EstimatedGain  float64 `json:"estimated_gain"`
}

// CalculationRecord is one entry of the recent-calculations log.
type CalculationRecord struct {
	Kind      string    `json:"kind"`
	Input     any       `json:"input"`
	Result    any       `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}
