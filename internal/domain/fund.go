package domain

// Holding is one line of a fund's disclosed stock portfolio. Weight is the
// position's share of fund NAV, in percent. Weights come straight from the
// disclosure and may not sum to 100.
type Holding struct {
	SecurityId string
	Name       string
	Weight     float64
}

// Fund is a catalog entry used for search. Pinyin holds the name's
// abbreviated romanization so partial latin queries can match CJK names.
type Fund struct {
	Code   string
	Name   string
	Type   string
	Pinyin string
}

// HoldingDetail is a holding enriched with quote data for display.
// PrevClose and ChangePct are nil when the security could not be priced.
type HoldingDetail struct {
	SecurityId  string
	Name        string
	Weight      float64
	PrevClose   *float64
	LatestPrice float64
	ChangePct   *float64
}
