package output

import "encoding/json"

// JSONFormatter marshals the full report bundle for downstream consumers.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(data *ReportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}
