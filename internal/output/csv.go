package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter writes the report as flat rows: categories first (largest
// share down), then month buckets ascending, then totals. The ordering and
// 2dp rounding match the console view so exports reconcile with the screen.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(data *ReportData) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Section", "Name", "Count", "TotalGBP", "Percentage"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, c := range data.Report.ByCategory {
		row := []string{
			"category",
			string(c.Category),
			strconv.Itoa(c.Count),
			c.Total.StringFixed(2),
			c.Percentage.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	for _, m := range data.Report.ByMonth {
		row := []string{"month", m.Month, strconv.Itoa(m.Count), m.Total.StringFixed(2), ""}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	t := data.Report.Totals
	totalRows := [][]string{
		{"total", "Receipts", strconv.Itoa(t.ReceiptCount), t.ReceiptTotal.StringFixed(2), ""},
		{"total", "Mileage", strconv.Itoa(t.ClaimCount), t.MileageTotal.StringFixed(2), ""},
		{"total", "Grand", strconv.Itoa(t.ReceiptCount + t.ClaimCount), t.GrandTotal.StringFixed(2), ""},
	}
	for _, row := range totalRows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	if e := data.Estimate; e != nil {
		estimateRows := [][]string{
			{"estimate", "TaxableProfit", "", e.TaxableProfit.StringFixed(2), ""},
			{"estimate", "IncomeTax", "", e.IncomeTax.StringFixed(2), ""},
			{"estimate", "Class2NI", "", e.Class2NI.StringFixed(2), ""},
			{"estimate", "Class4NI", "", e.Class4NI.StringFixed(2), ""},
			{"estimate", "TotalTax", "", e.TotalTax.StringFixed(2), e.EffectiveRate.StringFixed(2)},
		}
		for _, row := range estimateRows {
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
