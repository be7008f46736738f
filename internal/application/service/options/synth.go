package options

import (
	"math"
	"time"

	options "main/internal/domain/entity/options"
)

// The chain is synthesized, not priced: the constants below are tuning values
// chosen to produce internally consistent quotes that decay with distance
// from the money. Consumers depend on the exact numbers, so they are fixed
// here rather than configurable.
const (
	strikeStep   = 5.0
	strikeCount  = 9
	strikeCenter = 4

	minPremium        = 0.05
	premiumFactor     = 0.05
	itmDistanceFactor = 0.8
	otmDistanceFactor = 1.2

	callIVBase = 30.0
	putIVBase  = 35.0

	callVolumeBase       = 1000
	callOpenInterestBase = 5000
	putVolumeBase        = 800
	putOpenInterestBase  = 4000

	callDeltaMin = 0.05
	callDeltaMax = 0.95
)

// expirationOffsets are the ladder rungs in days from today.
var expirationOffsets = [4]int{7, 14, 30, 60}

// Synthesize builds a mock options chain for the symbol from a single spot
// price. It is deterministic for a fixed (spot, now) pair and performs no
// I/O. The strike ladder holds nine strikes centered on spot rounded to the
// nearest multiple of 5, four below and four above.
func Synthesize(symbol string, spot float64, now time.Time) *options.Chain {
	expirations := make([]string, 0, len(expirationOffsets))
	expiries := make([]time.Time, 0, len(expirationOffsets))
	for _, offset := range expirationOffsets {
		expiry := now.AddDate(0, 0, offset)
		expiries = append(expiries, expiry)
		expirations = append(expirations, expiry.Format("2006-01-02"))
	}

	base := math.Round(spot/strikeStep) * strikeStep
	strikes := make([]float64, 0, strikeCount)
	for i := 0; i < strikeCount; i++ {
		strikes = append(strikes, base+float64(i-strikeCenter)*strikeStep)
	}

	chain := &options.Chain{
		Symbol:          symbol,
		CurrentPrice:    spot,
		ExpirationDates: expirations,
		Calls:           make([]options.Quote, 0, len(expiries)*len(strikes)),
		Puts:            make([]options.Quote, 0, len(expiries)*len(strikes)),
	}

	for i, expiry := range expiries {
		// A same-day expiration would otherwise zero the theta divisor.
		daysToExpiry := int(expiry.Sub(now).Hours() / 24)
		if daysToExpiry < 1 {
			daysToExpiry = 1
		}

		for _, strike := range strikes {
			call, put := synthesizePair(spot, strike, expirations[i], daysToExpiry)
			chain.Calls = append(chain.Calls, call)
			chain.Puts = append(chain.Puts, put)
		}
	}

	return chain
}

func synthesizePair(spot, strike float64, expiry string, daysToExpiry int) (options.Quote, options.Quote) {
	itm := spot > strike
	distance := math.Abs(spot-strike) / spot

	basePremium := spot * premiumFactor * (1 + float64(daysToExpiry)/30)
	var premium float64
	if itm {
		premium = basePremium * (1 - distance*itmDistanceFactor)
	} else {
		premium = basePremium * (1 - distance*otmDistanceFactor)
	}
	premium = math.Max(minPremium, premium)

	var delta float64
	if itm {
		delta = 0.5 + 0.5*(spot-strike)/strike
	} else {
		delta = 0.5 * (1 - distance)
	}
	delta = math.Max(callDeltaMin, math.Min(callDeltaMax, delta))

	theta := -premium / float64(daysToExpiry) * 0.1
	gamma := 0.06 * (1 - distance*2)
	vega := premium * 0.1

	call := options.Quote{
		Expiry:            expiry,
		Strike:            strike,
		Premium:           round2(premium),
		Bid:               round2(premium * 0.95),
		Ask:               round2(premium * 1.05),
		Volume:            int(callVolumeBase * (1 - distance)),
		OpenInterest:      int(callOpenInterestBase * (1 - distance)),
		ImpliedVolatility: round2(callIVBase + distance*100),
		Delta:             round2(delta),
		Gamma:             round3(gamma),
		Theta:             round3(theta),
		Vega:              round3(vega),
		InTheMoney:        itm,
	}

	putITM := spot < strike
	putMult := 0.9
	if putITM {
		putMult = 1.1
	}
	var putDelta float64
	if putITM {
		putDelta = -0.5 - 0.5*(spot-strike)/strike
	} else {
		putDelta = -0.5 * (1 - distance)
	}
	putDelta = math.Min(-callDeltaMin, math.Max(-callDeltaMax, putDelta))

	put := options.Quote{
		Expiry:            expiry,
		Strike:            strike,
		Premium:           round2(premium * putMult),
		Bid:               round2(premium * 0.95 * putMult),
		Ask:               round2(premium * 1.05 * putMult),
		Volume:            int(putVolumeBase * (1 - distance)),
		OpenInterest:      int(putOpenInterestBase * (1 - distance)),
		ImpliedVolatility: round2(putIVBase + distance*100),
		Delta:             round2(putDelta),
		Gamma:             round3(gamma),
		Theta:             round3(theta * 1.1),
		Vega:              round3(vega),
		InTheMoney:        putITM,
	}

	return call, put
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
