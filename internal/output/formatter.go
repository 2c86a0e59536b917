package output

// Formatter renders a report bundle into one output format.
type Formatter interface {
	Name() string
	Format(data *ReportData) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	PDFFormatter{},
}

// GetFormatterByName returns the named formatter, or nil when the format is
// not supported.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatNames lists the supported format names in registration order.
func FormatNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}
