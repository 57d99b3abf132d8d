package service

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"finance-guide/domain"
	"finance-guide/logger"
	"finance-guide/repository"
)

type CalculatorService struct {
	repo  repository.CalculationRepository
	cache repository.CacheRepository
	now   func() time.Time
}

// NewCalculatorService creates a CalculatorService. cache may be nil.
func NewCalculatorService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
) *CalculatorService {
	return &CalculatorService{repo: repo, cache: cache, now: time.Now}
}

// Recent returns the latest calculations, newest first.
func (s *CalculatorService) Recent(limit int) []domain.CalculationRecord {
	if limit <= 0 || limit > MaxRecentCalcs {
		limit = MaxRecentCalcs
	}
	return s.repo.Recent(limit)
}

// SIP computes the maturity of a monthly systematic investment plan.
func (s *CalculatorService) SIP(ctx context.Context, in domain.SIPInput) (domain.SIPResult, error) {
	return run(ctx, s, domain.CalcSIP, in, func(in domain.SIPInput) (domain.SIPResult, error) {
		if err := checkAmount("monthly investment", in.MonthlyInvestment); err != nil {
			return domain.SIPResult{}, err
		}
		if err := checkRate(in.AnnualRate); err != nil {
			return domain.SIPResult{}, err
		}
		if err := checkYears(float64(in.Years)); err != nil {
			return domain.SIPResult{}, err
		}

		n := in.Years * 12
		maturity := SIPFutureValue(in.MonthlyInvestment, monthlyRate(in.AnnualRate), n)
		invested := in.MonthlyInvestment * float64(n)

		return domain.SIPResult{
			MaturityAmount: roundTo2Decimals(maturity),
			TotalInvested:  roundTo2Decimals(invested),
			EstimatedGain:  roundTo2Decimals(maturity - invested),
		}, nil
	})
}

// EMI computes the monthly instalment of an amortising loan.
func (s *CalculatorService) EMI(ctx context.Context, in domain.EMIInput) (domain.EMIResult, error) {
	return run(ctx, s, domain.CalcEMI, in, func(in domain.EMIInput) (domain.EMIResult, error) {
		if err := checkAmount("principal", in.Principal); err != nil {
			return domain.EMIResult{}, err
		}
		if err := checkRate(in.AnnualRate); err != nil {
			return domain.EMIResult{}, err
		}
		if err := checkYears(float64(in.Years)); err != nil {
			return domain.EMIResult{}, err
		}

		n := in.Years * 12
		emi := EMI(in.Principal, monthlyRate(in.AnnualRate), n)
		total := emi * float64(n)

		return domain.EMIResult{
			MonthlyEMI:    roundTo2Decimals(emi),
			TotalPayment:  roundTo2Decimals(total),
			TotalInterest: roundTo2Decimals(total - in.Principal),
		}, nil
	})
}

// CAGR computes the compound annual growth rate between two values.
func (s *CalculatorService) CAGR(ctx context.Context, in domain.CAGRInput) (domain.CAGRResult, error) {
	return run(ctx, s, domain.CalcCAGR, in, func(in domain.CAGRInput) (domain.CAGRResult, error) {
		if err := checkAmount("initial value", in.InitialValue); err != nil {
			return domain.CAGRResult{}, err
		}
		if err := checkAmount("final value", in.FinalValue); err != nil {
			return domain.CAGRResult{}, err
		}
		if err := checkYears(in.Years); err != nil {
			return domain.CAGRResult{}, err
		}

		rate := CAGR(in.InitialValue, in.FinalValue, in.Years)

		return domain.CAGRResult{
			CAGR:         math.Round(rate*1e6) / 1e6,
			CAGRPercent:  roundTo2Decimals(rate * 100),
			AbsoluteGain: roundTo2Decimals(in.FinalValue - in.InitialValue),
		}, nil
	})
}

// CompoundInterest computes A = P(1 + r/f)^(f·t).
func (s *CalculatorService) CompoundInterest(
	ctx context.Context,
	in domain.CompoundInterestInput,
) (domain.CompoundInterestResult, error) {
	return run(ctx, s, domain.CalcCompoundInterest, in, func(in domain.CompoundInterestInput) (domain.CompoundInterestResult, error) {
		if err := checkAmount("principal", in.Principal); err != nil {
			return domain.CompoundInterestResult{}, err
		}
		if err := checkRate(in.AnnualRate); err != nil {
			return domain.CompoundInterestResult{}, err
		}
		if err := checkYears(in.Years); err != nil {
			return domain.CompoundInterestResult{}, err
		}
		if !compoundingFrequencies[in.Frequency] {
			return domain.CompoundInterestResult{}, invalid("frequency must be 1, 2, 4, 12 or 365, got %d", in.Frequency)
		}

		amount := CompoundAmount(in.Principal, in.AnnualRate/100, in.Frequency, in.Years)

		return domain.CompoundInterestResult{
			MaturityAmount: roundTo2Decimals(amount),
			TotalInterest:  roundTo2Decimals(amount - in.Principal),
		}, nil
	})
}

// FD computes fixed deposit maturity with a named compounding frequency.
func (s *CalculatorService) FD(ctx context.Context, in domain.FDInput) (domain.FDResult, error) {
	return run(ctx, s, domain.CalcFD, in, func(in domain.FDInput) (domain.FDResult, error) {
		if err := checkAmount("principal", in.Principal); err != nil {
			return domain.FDResult{}, err
		}
		if err := checkRate(in.AnnualRate); err != nil {
			return domain.FDResult{}, err
		}
		if err := checkYears(in.Years); err != nil {
			return domain.FDResult{}, err
		}
		freq, ok := fdCompounding[in.Compounding]
		if !ok {
			return domain.FDResult{}, invalid("compounding must be monthly, quarterly, half-yearly or yearly, got %q", in.Compounding)
		}

		amount := CompoundAmount(in.Principal, in.AnnualRate/100, freq, in.Years)

		return domain.FDResult{
			MaturityAmount: roundTo2Decimals(amount),
			TotalInterest:  roundTo2Decimals(amount - in.Principal),
			Frequency:      freq,
		}, nil
	})
}

// PPF computes Public Provident Fund maturity: yearly deposits made at the
// start of each year, compounded annually.
func (s *CalculatorService) PPF(ctx context.Context, in domain.PPFInput) (domain.PPFResult, error) {
	return run(ctx, s, domain.CalcPPF, in, func(in domain.PPFInput) (domain.PPFResult, error) {
		if in.YearlyContribution < MinPPFDeposit || in.YearlyContribution > MaxPPFDeposit {
			return domain.PPFResult{}, invalid("yearly contribution must be between %.0f and %.0f", MinPPFDeposit, MaxPPFDeposit)
		}
		if err := checkRate(in.AnnualRate); err != nil {
			return domain.PPFResult{}, err
		}
		if in.Years < MinPPFYears || in.Years > MaxPPFYears {
			return domain.PPFResult{}, invalid("years must be between %d and %d", MinPPFYears, MaxPPFYears)
		}

		maturity := in.YearlyContribution * annuityDueFactor(in.AnnualRate/100, in.Years)
		invested := in.YearlyContribution * float64(in.Years)

		return domain.PPFResult{
			MaturityAmount: roundTo2Decimals(maturity),
			TotalInvested:  roundTo2Decimals(invested),
			TotalInterest:  roundTo2Decimals(maturity - invested),
		}, nil
	})
}

// Retirement estimates the corpus needed at retirement and the monthly SIP
// that reaches it.
func (s *CalculatorService) Retirement(ctx context.Context, in domain.RetirementInput) (domain.RetirementResult, error) {
	return run(ctx, s, domain.CalcRetirement, in, func(in domain.RetirementInput) (domain.RetirementResult, error) {
		if in.CurrentAge <= 0 || in.CurrentAge >= MaxAge {
			return domain.RetirementResult{}, invalid("current age must be between 1 and %d", MaxAge-1)
		}
		if in.RetirementAge <= in.CurrentAge || in.RetirementAge > MaxAge {
			return domain.RetirementResult{}, invalid("retirement age must be after current age and at most %d", MaxAge)
		}
		if err := checkAmount("monthly expense", in.MonthlyExpense); err != nil {
			return domain.RetirementResult{}, err
		}
		if in.InflationRate < 0 || in.InflationRate > MaxAnnualRate {
			return domain.RetirementResult{}, invalid("inflation rate must be between 0 and %.0f", MaxAnnualRate)
		}
		if err := checkRate(in.ExpectedReturn); err != nil {
			return domain.RetirementResult{}, err
		}
		if in.WithdrawalRate == 0 {
			in.WithdrawalRate = DefaultWithdrawalRate
		}
		if in.WithdrawalRate < 0 || in.WithdrawalRate > MaxAnnualRate {
			return domain.RetirementResult{}, invalid("withdrawal rate must be between 0 and %.0f", MaxAnnualRate)
		}
		if in.ExistingSavings < 0 || in.ExistingSavings > MaxAmount {
			return domain.RetirementResult{}, invalid("existing savings must be between 0 and %.0f", MaxAmount)
		}

		years := in.RetirementAge - in.CurrentAge
		expense := in.MonthlyExpense * math.Pow(1+in.InflationRate/100, float64(years))
		corpus := expense * 12 / (in.WithdrawalRate / 100)
		savings := in.ExistingSavings * math.Pow(1+in.ExpectedReturn/100, float64(years))
		gap := math.Max(0, corpus-savings)

		sip := 0.0
		if gap > 0 {
			sip = gap / annuityDueFactor(monthlyRate(in.ExpectedReturn), years*12)
		}

		return domain.RetirementResult{
			YearsToRetirement:      years,
			MonthlyExpenseAtRetire: roundTo2Decimals(expense),
			RequiredCorpus:         roundTo2Decimals(corpus),
			SavingsAtRetirement:    roundTo2Decimals(savings),
			CorpusGap:              roundTo2Decimals(gap),
			RequiredMonthlySIP:     roundTo2Decimals(sip),
		}, nil
	})
}

// Lumpsum computes the growth of a one-time investment compounded annually.
func (s *CalculatorService) Lumpsum(ctx context.Context, in domain.LumpsumInput) (domain.LumpsumResult, error) {
	return run(ctx, s, domain.CalcLumpsum, in, func(in domain.LumpsumInput) (domain.LumpsumResult, error) {
		if err := checkAmount("principal", in.Principal); err != nil {
			return domain.LumpsumResult{}, err
		}
		if err := checkRate(in.AnnualRate); err != nil {
			return domain.LumpsumResult{}, err
		}
		if err := checkYears(float64(in.Years)); err != nil {
			return domain.LumpsumResult{}, err
		}

		amount := CompoundAmount(in.Principal, in.AnnualRate/100, 1, float64(in.Years))

		return domain.LumpsumResult{
			MaturityAmount: roundTo2Decimals(amount),
			EstimatedGain:  roundTo2Decimals(amount - in.Principal),
		}, nil
	})
}

// run validates and computes through calc, serving repeated inputs from the
// cache and logging every successful calculation.
func run[I, R any](
	ctx context.Context,
	s *CalculatorService,
	kind string,
	in I,
	calc func(I) (R, error),
) (R, error) {
	key, keyErr := cacheKey(kind, in)

	if s.cache != nil && keyErr == nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var cached R
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				s.record(kind, in, cached)
				return cached, nil
			}
			logger.L.Warn("discarding unreadable cache entry", "kind", kind, "key", key)
		}
	}

	result, err := calc(in)
	if err != nil {
		return result, err
	}

	if s.cache != nil && keyErr == nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, string(raw)); err != nil {
				logger.L.Warn("failed to cache calculation", "kind", kind, "error", err)
			}
		}
	}
	s.record(kind, in, result)

	return result, nil
}

// record saves the calculation; failures are not critical.
func (s *CalculatorService) record(kind string, in, result any) {
	err := s.repo.Save(domain.CalculationRecord{
		Kind:      kind,
		Input:     in,
		Result:    result,
		CreatedAt: s.now(),
	})
	if err != nil {
		logger.L.Warn("failed to save calculation", "kind", kind, "error", err)
	}
}

func cacheKey(kind string, in any) (string, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return kind + ":" + strconv.FormatUint(xxhash.Sum64(raw), 16), nil
}

func checkAmount(field string, v float64) error {
	if v <= 0 || math.IsNaN(v) {
		return invalid("%s must be positive", field)
	}
	if v > MaxAmount {
		return invalid("%s exceeds the maximum of %.0f", field, MaxAmount)
	}
	return nil
}

func checkRate(rate float64) error {
	if rate <= 0 || math.IsNaN(rate) {
		return invalid("annual rate must be positive")
	}
	if rate > MaxAnnualRate {
		return invalid("annual rate exceeds the maximum of %.0f%%", MaxAnnualRate)
	}
	return nil
}

func checkYears(years float64) error {
	if years <= 0 || math.IsNaN(years) {
		return invalid("tenure must be positive")
	}
	if years > MaxYears {
		return invalid("tenure exceeds the maximum of %d years", MaxYears)
	}
	return nil
}
