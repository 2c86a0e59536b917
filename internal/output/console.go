package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// ConsoleFormatter renders the report as a styled terminal summary.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(data *ReportData) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintln(&b, titleStyle.Render("EXPENSE COMPLIANCE REPORT"))
	fmt.Fprintf(&b, "Tax year %s | %s to %s\n\n",
		data.TaxYear.String(),
		data.Report.From.Format("2006-01-02"),
		data.Report.To.Format("2006-01-02"))

	fmt.Fprintln(&b, sectionStyle.Render("By Category"))
	fmt.Fprintf(&b, "%-28s %6s %14s %8s\n", "Category", "Count", "Total", "Share")
	for _, c := range data.Report.ByCategory {
		fmt.Fprintf(&b, "%-28s %6d %14s %7s%%\n",
			c.Category, c.Count, FormatCurrency(c.Total), c.Percentage.StringFixed(2))
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, sectionStyle.Render("By Month"))
	fmt.Fprintf(&b, "%-10s %6s %14s %12s\n", "Month", "Count", "Total", "VAT")
	for _, m := range data.Report.ByMonth {
		fmt.Fprintf(&b, "%-10s %6d %14s %12s\n",
			m.Month, m.Count, FormatCurrency(m.Total), FormatCurrency(m.VAT))
	}
	if !data.Report.MonthOverMonthChange.IsZero() {
		fmt.Fprintf(&b, "%s\n", dimStyle.Render(
			fmt.Sprintf("Month-over-month change: %s%%", data.Report.MonthOverMonthChange.StringFixed(1))))
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, sectionStyle.Render("Totals"))
	fmt.Fprintf(&b, "Receipts:        %s (%d)\n", FormatCurrency(data.Report.Totals.ReceiptTotal), data.Report.Totals.ReceiptCount)
	fmt.Fprintf(&b, "Mileage:         %s (%d claims, %s miles)\n",
		FormatCurrency(data.Report.Totals.MileageTotal), data.Report.Totals.ClaimCount, data.Report.Totals.TotalMiles.StringFixed(2))
	fmt.Fprintf(&b, "Grand total:     %s\n\n", FormatCurrency(data.Report.Totals.GrandTotal))

	if data.Stats != nil {
		fmt.Fprintln(&b, sectionStyle.Render("Mileage Position"))
		fmt.Fprintf(&b, "Car miles this tax year:  %s\n", data.Stats.CurrentTaxYearMiles.StringFixed(2))
		fmt.Fprintf(&b, "Rate for a new claim:     %sp/mile\n\n",
			data.Stats.CurrentRateForNewClaim.Mul(hundred).StringFixed(0))
	}

	if data.Estimate != nil {
		e := data.Estimate
		fmt.Fprintln(&b, sectionStyle.Render("Tax Estimate"))
		fmt.Fprintf(&b, "Gross income:     %s\n", FormatCurrency(e.GrossIncome))
		fmt.Fprintf(&b, "Deductions:       %s\n", FormatCurrency(e.TotalDeductions))
		fmt.Fprintf(&b, "Taxable profit:   %s\n", FormatCurrency(e.TaxableProfit))
		fmt.Fprintf(&b, "Income Tax:       %s\n", FormatCurrency(e.IncomeTax))
		fmt.Fprintf(&b, "Class 2 NI:       %s\n", FormatCurrency(e.Class2NI))
		fmt.Fprintf(&b, "Class 4 NI:       %s\n", FormatCurrency(e.Class4NI))
		fmt.Fprintf(&b, "Total tax:        %s\n", FormatCurrency(e.TotalTax))
		fmt.Fprintf(&b, "Effective rate:   %s%%\n", e.EffectiveRate.StringFixed(2))
		fmt.Fprintf(&b, "Monthly target:   %s\n", FormatCurrency(e.MonthlySavingsTarget))
		fmt.Fprintf(&b, "%s\n", dimStyle.Render(
			fmt.Sprintf("Deductions save roughly %s at the basic rate", FormatCurrency(e.DeductionsSavedTax))))
	}

	return []byte(b.String()), nil
}
