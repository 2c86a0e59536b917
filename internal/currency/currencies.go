package currency

// Currency describes one supported currency for conversion and display.
type Currency struct {
	Code   string `yaml:"code" json:"code"`
	Name   string `yaml:"name" json:"name"`
	Symbol string `yaml:"symbol" json:"symbol"`
}

// Supported is the currency set offered in the receipt form, GBP first.
var Supported = []Currency{
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "$"},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "Fr"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "NZD", Name: "New Zealand Dollar", Symbol: "$"},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "$"},
	{Code: "HKD", Name: "Hong Kong Dollar", Symbol: "$"},
	{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr"},
	{Code: "SEK", Name: "Swedish Krona", Symbol: "kr"},
	{Code: "DKK", Name: "Danish Krone", Symbol: "kr"},
	{Code: "PLN", Name: "Polish Zloty", Symbol: "zł"},
	{Code: "CZK", Name: "Czech Koruna", Symbol: "Kč"},
	{Code: "THB", Name: "Thai Baht", Symbol: "฿"},
	{Code: "MYR", Name: "Malaysian Ringgit", Symbol: "RM"},
	{Code: "ZAR", Name: "South African Rand", Symbol: "R"},
	{Code: "TRY", Name: "Turkish Lira", Symbol: "₺"},
}

// symbolAfter lists the symbols conventionally written after the amount.
// This is a table, not an inference: locale quirks do not generalise.
var symbolAfter = map[string]bool{
	"kr": true,
	"zł": true,
	"Kč": true,
}

func lookup(code string) (Currency, bool) {
	for _, c := range Supported {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// IsSupported reports whether the ISO 4217 code is in the supported set.
func IsSupported(code string) bool {
	_, ok := lookup(normalize(code))
	return ok
}

// Symbol returns the display symbol for a currency, or the code itself for
// unknown currencies.
func Symbol(code string) string {
	if c, ok := lookup(normalize(code)); ok {
		return c.Symbol
	}
	return code
}
