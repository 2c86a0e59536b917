package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/receiptmate/taxcore/internal/output"
)

// View implements tea.Model.
func (m Model) View() string {
	var left strings.Builder
	left.WriteString(TitleStyle.Render(fmt.Sprintf("Tax Estimate %s", m.taxYear.String())))
	left.WriteString("\n")
	left.WriteString(LabelStyle.Render("Gross income") + m.inputs[fieldIncome].View() + "\n")
	left.WriteString(LabelStyle.Render("Total deductions") + m.inputs[fieldDeductions].View() + "\n")

	var right strings.Builder
	if m.parseErr {
		right.WriteString(TotalStyle.Render("Enter valid non-negative amounts"))
	} else {
		e := m.estimate
		row := func(label string, value string) {
			right.WriteString(LabelStyle.Render(label) + ValueStyle.Render(value) + "\n")
		}
		row("Taxable profit", output.FormatCurrency(e.TaxableProfit))
		row("Income Tax", output.FormatCurrency(e.IncomeTax))
		row("Class 2 NI", output.FormatCurrency(e.Class2NI))
		row("Class 4 NI", output.FormatCurrency(e.Class4NI))
		right.WriteString(LabelStyle.Render("Total tax") + TotalStyle.Render(output.FormatCurrency(e.TotalTax)) + "\n")
		row("Effective rate", e.EffectiveRate.StringFixed(2)+"%")
		right.WriteString(LabelStyle.Render("Monthly target") + SavingsStyle.Render(output.FormatCurrency(e.MonthlySavingsTarget)) + "\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		PanelStyle.Render(left.String()),
		PanelStyle.Render(right.String()))

	help := HelpStyle.Render("tab: switch field | left/right: tax year | q: quit")
	return AppStyle.Render(body + "\n" + help)
}
