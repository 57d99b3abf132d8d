package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-guide/domain"
	"finance-guide/repository"
)

type MockCalculationRepository struct {
	Saved      []domain.CalculationRecord
	ForceError bool
}

func (m *MockCalculationRepository) Save(record domain.CalculationRecord) error {
	if m.ForceError {
		return errors.New("save error")
	}
	m.Saved = append(m.Saved, record)
	return nil
}

func (m *MockCalculationRepository) Recent(limit int) []domain.CalculationRecord {
	return m.Saved
}

func newCalculator() (*CalculatorService, *MockCalculationRepository, *repository.MemoryCache) {
	repo := &MockCalculationRepository{}
	cache := repository.NewMemoryCache(0)
	return NewCalculatorService(repo, cache), repo, cache
}

func TestSIP_Example(t *testing.T) {
	svc, repo, _ := newCalculator()

	result, err := svc.SIP(context.Background(), domain.SIPInput{
		MonthlyInvestment: 5000,
		AnnualRate:        12,
		Years:             10,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1_161_695, result.MaturityAmount, 1)
	assert.Equal(t, 600_000.0, result.TotalInvested)
	assert.InDelta(t, 561_695, result.EstimatedGain, 1)
	require.Len(t, repo.Saved, 1)
	assert.Equal(t, domain.CalcSIP, repo.Saved[0].Kind)
}

func TestEMI_Example(t *testing.T) {
	svc, _, _ := newCalculator()

	result, err := svc.EMI(context.Background(), domain.EMIInput{
		Principal:  1_000_000,
		AnnualRate: 9.5,
		Years:      20,
	})
	require.NoError(t, err)

	assert.InDelta(t, 9318, result.MonthlyEMI, 5)
	assert.Equal(t, 9321.31, result.MonthlyEMI)
	assert.GreaterOrEqual(t, result.TotalPayment, 1_000_000.0)
	assert.InDelta(t, result.TotalPayment-1_000_000, result.TotalInterest, 0.01)
}

func TestCAGR_Service(t *testing.T) {
	svc, _, _ := newCalculator()

	result, err := svc.CAGR(context.Background(), domain.CAGRInput{
		InitialValue: 100_000,
		FinalValue:   200_000,
		Years:        5,
	})
	require.NoError(t, err)

	assert.InDelta(t, 14.87, result.CAGRPercent, 0.001)
	assert.Equal(t, 100_000.0, result.AbsoluteGain)
}

func TestCompoundInterest_Quarterly(t *testing.T) {
	svc, _, _ := newCalculator()

	result, err := svc.CompoundInterest(context.Background(), domain.CompoundInterestInput{
		Principal:  100_000,
		AnnualRate: 8,
		Years:      5,
		Frequency:  4,
	})
	require.NoError(t, err)

	// 100000 * 1.02^20
	assert.InDelta(t, 148_594.74, result.MaturityAmount, 0.01)
	assert.InDelta(t, 48_594.74, result.TotalInterest, 0.01)
}

func TestCompoundInterest_InvalidFrequency(t *testing.T) {
	svc, _, _ := newCalculator()

	_, err := svc.CompoundInterest(context.Background(), domain.CompoundInterestInput{
		Principal:  1000,
		AnnualRate: 8,
		Years:      1,
		Frequency:  3,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestFD_MatchesCompoundInterest(t *testing.T) {
	svc, _, _ := newCalculator()
	ctx := context.Background()

	fd, err := svc.FD(ctx, domain.FDInput{
		Principal:   100_000,
		AnnualRate:  8,
		Years:       5,
		Compounding: "quarterly",
	})
	require.NoError(t, err)

	ci, err := svc.CompoundInterest(ctx, domain.CompoundInterestInput{
		Principal:  100_000,
		AnnualRate: 8,
		Years:      5,
		Frequency:  4,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, fd.Frequency)
	assert.Equal(t, ci.MaturityAmount, fd.MaturityAmount)

	_, err = svc.FD(ctx, domain.FDInput{Principal: 1, AnnualRate: 1, Years: 1, Compounding: "weekly"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestPPF_FifteenYears(t *testing.T) {
	svc, _, _ := newCalculator()

	result, err := svc.PPF(context.Background(), domain.PPFInput{
		YearlyContribution: 150_000,
		AnnualRate:         7.1,
		Years:              15,
	})
	require.NoError(t, err)

	assert.InDelta(t, 4_068_209, result.MaturityAmount, 1)
	assert.Equal(t, 2_250_000.0, result.TotalInvested)

	_, err = svc.PPF(context.Background(), domain.PPFInput{
		YearlyContribution: 150_000,
		AnnualRate:         7.1,
		Years:              10,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.PPF(context.Background(), domain.PPFInput{
		YearlyContribution: 200_000,
		AnnualRate:         7.1,
		Years:              15,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRetirement_BackSolvesSIP(t *testing.T) {
	svc, _, _ := newCalculator()

	result, err := svc.Retirement(context.Background(), domain.RetirementInput{
		CurrentAge:     30,
		RetirementAge:  60,
		MonthlyExpense: 50_000,
		InflationRate:  6,
		ExpectedReturn: 12,
	})
	require.NoError(t, err)

	assert.Equal(t, 30, result.YearsToRetirement)
	assert.InDelta(t, 287_174.56, result.MonthlyExpenseAtRetire, 0.5)
	// 4% withdrawal: 25x annual expense.
	assert.InDelta(t, result.MonthlyExpenseAtRetire*12*25, result.RequiredCorpus, 2)
	assert.Equal(t, result.RequiredCorpus, result.CorpusGap)

	// The SIP must grow into the gap.
	fv := SIPFutureValue(result.RequiredMonthlySIP, monthlyRate(12), 360)
	assert.InEpsilon(t, result.CorpusGap, fv, 1e-6)
}

func TestRetirement_SavingsCoverCorpus(t *testing.T) {
	svc, _, _ := newCalculator()

	result, err := svc.Retirement(context.Background(), domain.RetirementInput{
		CurrentAge:      55,
		RetirementAge:   60,
		MonthlyExpense:  10_000,
		InflationRate:   5,
		ExpectedReturn:  8,
		WithdrawalRate:  5,
		ExistingSavings: 100_000_000,
	})
	require.NoError(t, err)

	assert.Zero(t, result.CorpusGap)
	assert.Zero(t, result.RequiredMonthlySIP)
}

func TestRetirement_InvalidAges(t *testing.T) {
	svc, _, _ := newCalculator()

	_, err := svc.Retirement(context.Background(), domain.RetirementInput{
		CurrentAge:     60,
		RetirementAge:  55,
		MonthlyExpense: 10_000,
		ExpectedReturn: 8,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLumpsum(t *testing.T) {
	svc, _, _ := newCalculator()

	result, err := svc.Lumpsum(context.Background(), domain.LumpsumInput{
		Principal:  100_000,
		AnnualRate: 12,
		Years:      10,
	})
	require.NoError(t, err)

	assert.InDelta(t, 310_584.82, result.MaturityAmount, 0.01)
	assert.InDelta(t, 210_584.82, result.EstimatedGain, 0.01)
}

func TestCalculator_RejectsNonPositiveInputs(t *testing.T) {
	svc, repo, _ := newCalculator()
	ctx := context.Background()

	_, err := svc.SIP(ctx, domain.SIPInput{MonthlyInvestment: 0, AnnualRate: 12, Years: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.EMI(ctx, domain.EMIInput{Principal: 1000, AnnualRate: 0, Years: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Lumpsum(ctx, domain.LumpsumInput{Principal: 1000, AnnualRate: 10, Years: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.EMI(ctx, domain.EMIInput{Principal: MaxAmount * 2, AnnualRate: 10, Years: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Empty(t, repo.Saved, "invalid calculations must not be recorded")
}

func TestCalculator_CachesResults(t *testing.T) {
	svc, repo, cache := newCalculator()
	ctx := context.Background()
	in := domain.LumpsumInput{Principal: 100_000, AnnualRate: 12, Years: 10}

	first, err := svc.Lumpsum(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	second, err := svc.Lumpsum(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())
	assert.Len(t, repo.Saved, 2)
}

func TestCalculator_SaveFailureIsNotFatal(t *testing.T) {
	repo := &MockCalculationRepository{ForceError: true}
	svc := NewCalculatorService(repo, nil)

	_, err := svc.SIP(context.Background(), domain.SIPInput{MonthlyInvestment: 1000, AnnualRate: 10, Years: 5})
	require.NoError(t, err)
}

func TestCalculator_RecentIsCapped(t *testing.T) {
	svc := NewCalculatorService(repository.NewCalculationRepositoryMemory(MaxRecentCalcs), nil)
	ctx := context.Background()

	for i := 1; i <= MaxRecentCalcs+10; i++ {
		_, err := svc.Lumpsum(ctx, domain.LumpsumInput{Principal: float64(i * 1000), AnnualRate: 10, Years: 1})
		require.NoError(t, err)
	}

	recent := svc.Recent(0)
	require.Len(t, recent, MaxRecentCalcs)
	assert.Equal(t, domain.CalcLumpsum, recent[0].Kind)
	assert.Equal(t, domain.LumpsumInput{Principal: float64((MaxRecentCalcs + 10) * 1000), AnnualRate: 10, Years: 1}, recent[0].Input)
}
