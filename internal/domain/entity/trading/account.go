package trading

// AccountSnapshot mirrors the brokerage account object at the moment of the
// request. Values are reported verbatim, never mutated locally.
type AccountSnapshot struct {
	ID             string  `json:"id"`
	Cash           float64 `json:"cash"`
	PortfolioValue float64 `json:"portfolio_value"`
	BuyingPower    float64 `json:"buying_power"`
	Equity         float64 `json:"equity"`
	Status         string  `json:"status"`
}
