package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/receiptmate/taxcore/internal/aggregate"
	"github.com/receiptmate/taxcore/internal/calculation"
	"github.com/receiptmate/taxcore/internal/config"
	"github.com/receiptmate/taxcore/internal/domain"
	"github.com/receiptmate/taxcore/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taxcore",
	Short: "UK self-employed expense compliance calculator",
	Long:  "Prices business mileage against the approved rates, normalizes receipts to GBP and projects the self-assessment bill",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxcore %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// loadTables resolves the regulatory tables: the file from --tables when
// set, otherwise the built-ins.
func loadTables(cmd *cobra.Command) *config.Tables {
	tablesFile, _ := cmd.Flags().GetString("tables")
	if tablesFile == "" {
		return config.NewTables()
	}
	tables, err := config.LoadTables(tablesFile)
	if err != nil {
		log.Fatal(err)
	}
	return tables
}

func loadInput(cmd *cobra.Command, filename string) *config.Input {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	if asOf, _ := cmd.Flags().GetString("as-of"); asOf != "" {
		t, err := time.Parse("2006-01-02", asOf)
		if err != nil {
			log.Fatalf("invalid --as-of date: %v", err)
		}
		input.Profile.AsOf = t
	}
	return input
}

func newClaimCalculator(cmd *cobra.Command, tables *config.Tables) *calculation.ClaimCalculator {
	cc := calculation.NewClaimCalculator()
	cc.TableFor = tables.RatesFor
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		cc.SetLogger(simpleCLILogger{})
	}
	return cc
}

// buildReportData prices the input's trips, aggregates the requested range
// and attaches the tax estimate and mileage stats.
func buildReportData(cmd *cobra.Command, input *config.Input, tables *config.Tables) *output.ReportData {
	ty := input.TaxYear()
	asOf := input.Profile.AsOf

	cc := newClaimCalculator(cmd, tables)
	claims, err := cc.BuildClaims(input.Trips, asOf)
	if err != nil {
		log.Fatal(err)
	}

	from, to := ty.Start(), ty.End()
	if input.Report != nil {
		from, to = input.Report.From, input.Report.To
	}
	report := aggregate.Aggregate(input.Receipts, claims, from, to)

	// The estimate always runs over the tax year, whatever range the report
	// view was narrowed to.
	yearTotals := aggregate.Aggregate(input.Receipts, claims, ty.Start(), ty.End()).Totals
	estimator := calculation.NewEstimator(tables.BandsFor(ty))
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		estimator.SetLogger(simpleCLILogger{})
	}
	estimate := estimator.Estimate(input.Profile.GrossIncome, yearTotals.GrandTotal, asOf)
	stats := cc.Stats(claims, asOf)

	return &output.ReportData{
		GeneratedAt: asOf,
		TaxYear:     ty,
		Report:      report,
		Claims:      claims,
		Estimate:    &estimate,
		Stats:       &stats,
	}
}

func render(cmd *cobra.Command, data *output.ReportData) {
	outputFormat, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(outputFormat)
	if f == nil {
		log.Fatalf("unsupported format %q (supported: %v)", outputFormat, output.FormatNames())
	}
	out, err := f.Format(data)
	if err != nil {
		log.Fatal(err)
	}
	if outFile, _ := cmd.Flags().GetString("output"); outFile != "" {
		if err := os.WriteFile(outFile, out, 0o644); err != nil {
			log.Fatal(err)
		}
		return
	}
	fmt.Print(string(out))
}

var reportCmd = &cobra.Command{
	Use:   "report [input-file]",
	Short: "Aggregate receipts and mileage into a compliance report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := loadInput(cmd, args[0])
		tables := loadTables(cmd)
		render(cmd, buildReportData(cmd, input, tables))
	},
}

var estimateCmd = &cobra.Command{
	Use:   "estimate [input-file]",
	Short: "Project the self-assessment tax bill for the input's tax year",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := loadInput(cmd, args[0])
		tables := loadTables(cmd)
		data := buildReportData(cmd, input, tables)
		// Estimate-only view: drop the aggregation detail.
		data.Report.ByCategory = nil
		data.Report.ByMonth = nil
		render(cmd, data)
	},
}

var claimCmd = &cobra.Command{
	Use:   "claim [input-file]",
	Short: "Price a single trip against the input file's claim history",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := loadInput(cmd, args[0])
		tables := loadTables(cmd)
		cc := newClaimCalculator(cmd, tables)

		history, err := cc.BuildClaims(input.Trips, input.Profile.AsOf)
		if err != nil {
			log.Fatal(err)
		}

		trip, err := tripFromFlags(cmd)
		if err != nil {
			log.Fatal(err)
		}
		claim, err := cc.CreateClaim(trip, history, input.Profile.AsOf)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Claim for %s -> %s on %s\n", claim.StartLocation, claim.EndLocation, claim.Date.Format("2006-01-02"))
		fmt.Printf("  Total miles:  %s\n", claim.TotalMiles.StringFixed(2))
		fmt.Printf("  Miles before: %s\n", claim.MilesBefore.StringFixed(2))
		fmt.Printf("  Rate:         %s/mile\n", output.FormatCurrency(claim.Rate))
		fmt.Printf("  Amount:       %s\n", output.FormatCurrency(claim.Amount))
	},
}

func tripFromFlags(cmd *cobra.Command) (domain.Trip, error) {
	dateStr, _ := cmd.Flags().GetString("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("invalid --date: %w", err)
	}
	miles, _ := cmd.Flags().GetFloat64("miles")
	oneWay, err := calculation.MilesFromLookup(miles)
	if err != nil {
		return domain.Trip{}, err
	}
	start, _ := cmd.Flags().GetString("from")
	end, _ := cmd.Flags().GetString("to")
	vehicle, _ := cmd.Flags().GetString("vehicle")
	roundTrip, _ := cmd.Flags().GetBool("round-trip")
	purpose, _ := cmd.Flags().GetString("purpose")
	return domain.Trip{
		Date:            date,
		StartLocation:   start,
		EndLocation:     end,
		VehicleType:     domain.VehicleType(vehicle),
		OneWayMiles:     oneWay,
		RoundTrip:       roundTrip,
		BusinessPurpose: purpose,
	}, nil
}

var ratesCmd = &cobra.Command{
	Use:   "rates [tax-year]",
	Short: "Print the approved mileage rates and tax bands for a tax year",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ty := domain.ResolveTaxYear(time.Now().UTC())
		if len(args) == 1 {
			var y int
			if _, err := fmt.Sscanf(args[0], "%d", &y); err != nil {
				log.Fatalf("invalid tax year %q", args[0])
			}
			ty = domain.TaxYear(y)
		}
		tables := loadTables(cmd)
		rt := tables.RatesFor(ty)
		bt := tables.BandsFor(ty)

		p := func(d decimal.Decimal) string { return d.Mul(decimal.NewFromInt(100)).StringFixed(0) }
		fmt.Printf("Tax year %s\n\n", ty.String())
		fmt.Printf("Approved mileage rates:\n")
		fmt.Printf("  Car:        %sp/mile first %s miles, then %sp\n", p(rt.CarTier1), rt.CarThresholdMiles.StringFixed(0), p(rt.CarTier2))
		fmt.Printf("  Motorcycle: %sp/mile\n", p(rt.Motorcycle))
		fmt.Printf("  Bicycle:    %sp/mile\n\n", p(rt.Bicycle))
		fmt.Printf("Income Tax:\n")
		fmt.Printf("  Personal allowance: %s (tapered above %s)\n", output.FormatCurrency(bt.PersonalAllowance), output.FormatCurrency(bt.TaperThreshold))
		fmt.Printf("  Basic %s%% to %s, higher %s%% to %s, additional %s%%\n",
			p(bt.BasicRate), output.FormatCurrency(bt.BasicRateLimit),
			p(bt.HigherRate), output.FormatCurrency(bt.HigherRateLimit), p(bt.AdditionalRate))
		fmt.Printf("National Insurance:\n")
		fmt.Printf("  Class 2: %s/week above %s\n", output.FormatCurrency(bt.Class2WeeklyRate), output.FormatCurrency(bt.Class2SmallProfits))
		fmt.Printf("  Class 4: %s%% between %s and %s, %s%% above\n",
			p(bt.Class4MainRate), output.FormatCurrency(bt.Class4LowerLimit),
			output.FormatCurrency(bt.Class4UpperLimit), p(bt.Class4UpperRate))
	},
}

func init() {
	for _, c := range []*cobra.Command{reportCmd, estimateCmd, claimCmd, ratesCmd} {
		c.Flags().String("tables", "", "regulatory tables YAML (bands and mileage rates)")
		c.Flags().Bool("debug", false, "enable debug logging")
	}
	for _, c := range []*cobra.Command{reportCmd, estimateCmd, claimCmd} {
		c.Flags().String("as-of", "", "evaluation date override (YYYY-MM-DD)")
	}
	for _, c := range []*cobra.Command{reportCmd, estimateCmd} {
		c.Flags().String("format", "console", "output format (console, csv, json, pdf)")
		c.Flags().String("output", "", "write output to file instead of stdout")
	}

	claimCmd.Flags().String("date", "", "trip date (YYYY-MM-DD)")
	claimCmd.Flags().String("from", "", "start location")
	claimCmd.Flags().String("to", "", "end location")
	claimCmd.Flags().Float64("miles", 0, "one-way distance in miles")
	claimCmd.Flags().String("vehicle", "car", "vehicle type (car, motorcycle, bicycle)")
	claimCmd.Flags().Bool("round-trip", false, "double the distance for the return leg")
	claimCmd.Flags().String("purpose", "", "business purpose (required for compliance)")

	rootCmd.AddCommand(reportCmd, estimateCmd, claimCmd, ratesCmd, versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
