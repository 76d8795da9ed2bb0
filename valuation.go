package classfolio

// Value returns the value, at current prices, of an initial investment split
// across the section's holdings by vote weight and bought at start prices.
//
// A holding without a positive price at start or at current is skipped: it
// contributes nothing. A section without holdings, or without votes, is worth 0.
func Value(s Section, start, current Quotes, initialInvestment float64) float64 {
	if len(s.Holdings) == 0 {
		return 0
	}
	var total float64
	for i, w := range s.Weights() {
		if w == 0 {
			continue
		}
		ticker := s.Holdings[i].Ticker
		startPrice, ok := start.Price(ticker)
		if !ok {
			continue
		}
		currentPrice, ok := current.Price(ticker)
		if !ok {
			continue
		}
		shares := w * initialInvestment / startPrice
		total += shares * currentPrice
	}
	return total
}
