// Package tui is an interactive what-if view over the tax estimator: type an
// income and deduction figure and watch the projected bill update live.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/receiptmate/taxcore/internal/calculation"
	"github.com/receiptmate/taxcore/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	fieldIncome = iota
	fieldDeductions
	fieldCount
)

// Model is the bubbletea model for the estimate dashboard.
type Model struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	taxYear domain.TaxYear
	asOf    time.Time

	estimate domain.TaxEstimate
	parseErr bool
}

// NewModel creates the dashboard model evaluating at asOf.
func NewModel(asOf time.Time) Model {
	m := Model{
		taxYear: domain.ResolveTaxYear(asOf),
		asOf:    asOf,
	}

	income := textinput.New()
	income.Placeholder = "45000"
	income.Prompt = "> "
	income.CharLimit = 12
	income.Focus()
	m.inputs[fieldIncome] = income

	deductions := textinput.New()
	deductions.Placeholder = "0"
	deductions.Prompt = "> "
	deductions.CharLimit = 12
	m.inputs[fieldDeductions] = deductions

	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "tab", "enter", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case "left":
			m.taxYear--
			m.recompute()
			return m, nil
		case "right":
			m.taxYear++
			m.recompute()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recompute()
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *Model) recompute() {
	income, ok1 := parseAmount(m.inputs[fieldIncome].Value())
	deductions, ok2 := parseAmount(m.inputs[fieldDeductions].Value())
	m.parseErr = !ok1 || !ok2
	if m.parseErr {
		return
	}
	estimator := calculation.NewEstimatorForYear(m.taxYear)
	m.estimate = estimator.Estimate(income, deductions, m.asOf)
}

func parseAmount(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.LessThan(decimal.Zero) {
		return decimal.Zero, false
	}
	return d, true
}
