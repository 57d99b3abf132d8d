package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"finance-guide/cli"
	"finance-guide/domain"
	"finance-guide/repository"
	"finance-guide/service"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run a financial calculator in the terminal",
}

var (
	sipIn        domain.SIPInput
	emiIn        domain.EMIInput
	cagrIn       domain.CAGRInput
	compoundIn   domain.CompoundInterestInput
	fdIn         domain.FDInput
	ppfIn        domain.PPFInput
	retirementIn domain.RetirementInput
	lumpsumIn    domain.LumpsumInput
)

func init() {
	rootCmd.AddCommand(calcCmd)

	sip := calcSubcommand(domain.CalcSIP, "SIP maturity for a monthly investment", func(ctx context.Context, s *service.CalculatorService, w io.Writer) error {
		r, err := s.SIP(ctx, sipIn)
		if err != nil {
			return err
		}
		fmt.Fprint(w, cli.RenderResult("SIP CALCULATOR", []cli.Row{
			{Label: "Monthly investment", Value: cli.FormatRupees(sipIn.MonthlyInvestment)},
			{Label: "Tenure", Value: cli.FormatYears(float64(sipIn.Years))},
			{Label: "Invested amount", Value: cli.FormatRupees(r.TotalInvested)},
			{Label: "Estimated returns", Value: cli.FormatRupees(r.EstimatedGain)},
			{Label: "Maturity value", Value: cli.FormatRupees(r.MaturityAmount)},
		}))
		return nil
	})
	sip.Flags().Float64VarP(&sipIn.MonthlyInvestment, "monthly", "p", 5000, "Monthly investment")
	sip.Flags().Float64VarP(&sipIn.AnnualRate, "rate", "r", 12, "Expected annual return (%)")
	sip.Flags().IntVarP(&sipIn.Years, "years", "y", 10, "Investment period in years")

	emi := calcSubcommand(domain.CalcEMI, "Monthly EMI for a loan", func(ctx context.Context, s *service.CalculatorService, w io.Writer) error {
		r, err := s.EMI(ctx, emiIn)
		if err != nil {
			return err
		}
		fmt.Fprint(w, cli.RenderResult("EMI CALCULATOR", []cli.Row{
			{Label: "Loan amount", Value: cli.FormatRupees(emiIn.Principal)},
			{Label: "Interest rate", Value: cli.FormatPercent(emiIn.AnnualRate)},
			{Label: "Tenure", Value: cli.FormatYears(float64(emiIn.Years))},
			{Label: "Monthly EMI", Value: cli.FormatRupees(r.MonthlyEMI)},
			{Label: "Total interest", Value: cli.FormatRupees(r.TotalInterest)},
			{Label: "Total payment", Value: cli.FormatRupees(r.TotalPayment)},
		}))
		return nil
	})
	emi.Flags().Float64VarP(&emiIn.Principal, "principal", "p", 1_000_000, "Loan amount")
	emi.Flags().Float64VarP(&emiIn.AnnualRate, "rate", "r", 9.5, "Annual interest rate (%)")
	emi.Flags().IntVarP(&emiIn.Years, "years", "y", 20, "Loan tenure in years")

	cagr := calcSubcommand(domain.CalcCAGR, "Compound annual growth rate between two values", func(ctx context.Context, s *service.CalculatorService, w io.Writer) error {
		r, err := s.CAGR(ctx, cagrIn)
		if err != nil {
			return err
		}
		fmt.Fprint(w, cli.RenderResult("CAGR CALCULATOR", []cli.Row{
			{Label: "Initial value", Value: cli.FormatRupees(cagrIn.InitialValue)},
			{Label: "Final value", Value: cli.FormatRupees(cagrIn.FinalValue)},
			{Label: "Duration", Value: cli.FormatYears(cagrIn.Years)},
			{Label: "Absolute gain", Value: cli.FormatRupees(r.AbsoluteGain)},
			{Label: "CAGR", Value: cli.FormatPercent(r.CAGRPercent)},
		}))
		return nil
	})
	cagr.Flags().Float64Var(&cagrIn.InitialValue, "initial", 100_000, "Initial value")
	cagr.Flags().Float64Var(&cagrIn.FinalValue, "final", 200_000, "Final value")
	cagr.Flags().Float64VarP(&cagrIn.Years, "years", "y", 5, "Duration in years")

	compound := calcSubcommand(domain.CalcCompoundInterest, "Compound interest with a chosen frequency", func(ctx context.Context, s *service.CalculatorService, w io.Writer) error {
		r, err := s.CompoundInterest(ctx, compoundIn)
		if err != nil {
			return err
		}
		fmt.Fprint(w, cli.RenderResult("COMPOUND INTEREST", []cli.Row{
			{Label: "Principal", Value: cli.FormatRupees(compoundIn.Principal)},
			{Label: "Rate", Value: cli.FormatPercent(compoundIn.AnnualRate)},
			{Label: "Compounded per year", Value: strconv.Itoa(compoundIn.Frequency)},
			{Label: "Total interest", Value: cli.FormatRupees(r.TotalInterest)},
			{Label: "Maturity amount", Value: cli.FormatRupees(r.MaturityAmount)},
		}))
		return nil
	})
	compound.Flags().Float64VarP(&compoundIn.Principal, "principal", "p", 100_000, "Principal")
	compound.Flags().Float64VarP(&compoundIn.AnnualRate, "rate", "r", 8, "Annual rate (%)")
	compound.Flags().Float64VarP(&compoundIn.Years, "years", "y", 5, "Years")
	compound.Flags().IntVarP(&compoundIn.Frequency, "frequency", "f", 4, "Compounding periods per year (1, 2, 4, 12, 365)")

	fd := calcSubcommand(domain.CalcFD, "Fixed deposit maturity", func(ctx context.Context, s *service.CalculatorService, w io.Writer) error {
		r, err := s.FD(ctx, fdIn)
		if err != nil {
			return err
		}
		fmt.Fprint(w, cli.RenderResult("FIXED DEPOSIT", []cli.Row{
			{Label: "Deposit", Value: cli.FormatRupees(fdIn.Principal)},
			{Label: "Rate", Value: cli.FormatPercent(fdIn.AnnualRate)},
			{Label: "Compounding", Value: fdIn.Compounding},
			{Label: "Interest earned", Value: cli.FormatRupees(r.TotalInterest)},
			{Label: "Maturity amount", Value: cli.FormatRupees(r.MaturityAmount)},
		}))
		return nil
	})
	fd.Flags().Float64VarP(&fdIn.Principal, "principal", "p", 100_000, "Deposit amount")
	fd.Flags().Float64VarP(&fdIn.AnnualRate, "rate", "r", 7, "Annual rate (%)")
	fd.Flags().Float64VarP(&fdIn.Years, "years", "y", 5, "Tenure in years")
	fd.Flags().StringVar(&fdIn.Compounding, "compounding", "quarterly", "monthly, quarterly, half-yearly or yearly")

	ppf := calcSubcommand(domain.CalcPPF, "Public Provident Fund maturity", func(ctx context.Context, s *service.CalculatorService, w io.Writer) error {
		r, err := s.PPF(ctx, ppfIn)
		if err != nil {
			return err
		}
		fmt.Fprint(w, cli.RenderResult("PPF CALCULATOR", []cli.Row{
			{Label: "Yearly contribution", Value: cli.FormatRupees(ppfIn.YearlyContribution)},
			{Label: "Tenure", Value: cli.FormatYears(float64(ppfIn.Years))},
			{Label: "Total invested", Value: cli.FormatRupees(r.TotalInvested)},
			{Label: "Total interest", Value: cli.FormatRupees(r.TotalInterest)},
			{Label: "Maturity value", Value: cli.FormatRupees(r.MaturityAmount)},
		}))
		return nil
	})
	ppf.Flags().Float64VarP(&ppfIn.YearlyContribution, "yearly", "p", 150_000, "Yearly contribution (500 to 150000)")
	ppf.Flags().Float64VarP(&ppfIn.AnnualRate, "rate", "r", 7.1, "Annual rate (%)")
	ppf.Flags().IntVarP(&ppfIn.Years, "years", "y", 15, "Tenure in years (at least 15)")

	retirement := calcSubcommand(domain.CalcRetirement, "Retirement corpus and the SIP needed to reach it", func(ctx context.Context, s *service.CalculatorService, w io.Writer) error {
		r, err := s.Retirement(ctx, retirementIn)
		if err != nil {
			return err
		}
		fmt.Fprint(w, cli.RenderResult("RETIREMENT PLANNER", []cli.Row{
			{Label: "Years to retirement", Value: strconv.Itoa(r.YearsToRetirement)},
			{Label: "Monthly expense at retirement", Value: cli.FormatRupees(r.MonthlyExpenseAtRetire)},
			{Label: "Required corpus", Value: cli.FormatRupees(r.RequiredCorpus)},
			{Label: "Existing savings then", Value: cli.FormatRupees(r.SavingsAtRetirement)},
			{Label: "Corpus gap", Value: cli.FormatRupees(r.CorpusGap)},
			{Label: "Required monthly SIP", Value: cli.FormatRupees(r.RequiredMonthlySIP)},
		}))
		return nil
	})
	retirement.Flags().IntVar(&retirementIn.CurrentAge, "age", 30, "Current age")
	retirement.Flags().IntVar(&retirementIn.RetirementAge, "retire-at", 60, "Retirement age")
	retirement.Flags().Float64Var(&retirementIn.MonthlyExpense, "expense", 50_000, "Current monthly expense")
	retirement.Flags().Float64Var(&retirementIn.InflationRate, "inflation", 6, "Expected inflation (%)")
	retirement.Flags().Float64Var(&retirementIn.ExpectedReturn, "return", 12, "Expected return before retirement (%)")
	retirement.Flags().Float64Var(&retirementIn.WithdrawalRate, "withdrawal", service.DefaultWithdrawalRate, "Annual withdrawal rate after retirement (%)")
	retirement.Flags().Float64Var(&retirementIn.ExistingSavings, "savings", 0, "Existing retirement savings")

	lumpsum := calcSubcommand(domain.CalcLumpsum, "Growth of a one-time investment", func(ctx context.Context, s *service.CalculatorService, w io.Writer) error {
		r, err := s.Lumpsum(ctx, lumpsumIn)
		if err != nil {
			return err
		}
		fmt.Fprint(w, cli.RenderResult("LUMPSUM CALCULATOR", []cli.Row{
			{Label: "Investment", Value: cli.FormatRupees(lumpsumIn.Principal)},
			{Label: "Tenure", Value: cli.FormatYears(float64(lumpsumIn.Years))},
			{Label: "Estimated returns", Value: cli.FormatRupees(r.EstimatedGain)},
			{Label: "Maturity value", Value: cli.FormatRupees(r.MaturityAmount)},
		}))
		return nil
	})
	lumpsum.Flags().Float64VarP(&lumpsumIn.Principal, "principal", "p", 100_000, "Investment amount")
	lumpsum.Flags().Float64VarP(&lumpsumIn.AnnualRate, "rate", "r", 12, "Expected annual return (%)")
	lumpsum.Flags().IntVarP(&lumpsumIn.Years, "years", "y", 10, "Investment period in years")
}

type calcFunc func(ctx context.Context, s *service.CalculatorService, w io.Writer) error

// calcSubcommand registers a calculator under calc. The terminal runs need no
// cache, so they use a plain in-memory service.
func calcSubcommand(use, short string, run calcFunc) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := service.NewCalculatorService(repository.NewCalculationRepositoryMemory(1), nil)
			return run(cmd.Context(), svc, cmd.OutOrStdout())
		},
	}
	calcCmd.AddCommand(c)
	return c
}
