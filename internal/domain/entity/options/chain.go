package options

// Quote is a single call or put record in a synthesized chain. It is a value
// type: fully determined by (spot, strike, expiry, side).
type Quote struct {
	Expiry            string  `json:"expiry"`
	Strike            float64 `json:"strike"`
	Premium           float64 `json:"premium"`
	Bid               float64 `json:"bid"`
	Ask               float64 `json:"ask"`
	Volume            int     `json:"volume"`
	OpenInterest      int     `json:"open_interest"`
	ImpliedVolatility float64 `json:"implied_volatility"`
	Delta             float64 `json:"delta"`
	Gamma             float64 `json:"gamma"`
	Theta             float64 `json:"theta"`
	Vega              float64 `json:"vega"`
	InTheMoney        bool    `json:"in_the_money"`
}

// Chain holds the full synthesized chain for one underlying. Calls and puts
// have equal length: one record per (expiration, strike) pair on each side.
type Chain struct {
	Symbol          string   `json:"symbol"`
	CurrentPrice    float64  `json:"current_price"`
	ExpirationDates []string `json:"expiration_dates"`
	Calls           []Quote  `json:"calls"`
	Puts            []Quote  `json:"puts"`
}
