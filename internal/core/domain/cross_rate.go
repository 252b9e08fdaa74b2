package domain

// BaseCurrency is the domestic currency all upstream rates are quoted
// against.
const BaseCurrency = "PLN"

// CrossRate describes a derived column computed as the ratio of two
// existing columns quoted against the same domestic currency.
type CrossRate struct {
	Name        string `json:"name"`        // e.g. "EUR/USD"
	Numerator   string `json:"numerator"`   // e.g. "EUR/PLN"
	Denominator string `json:"denominator"` // e.g. "USD/PLN"
}

// DefaultCrossRates returns the cross-rate columns the table carries by
// default. They are recomputed on every build; the persisted values are
// never the source of truth.
func DefaultCrossRates() []CrossRate {
	return []CrossRate{
		{Name: "EUR/USD", Numerator: "EUR/PLN", Denominator: "USD/PLN"},
		{Name: "CHF/USD", Numerator: "CHF/PLN", Denominator: "USD/PLN"},
	}
}
