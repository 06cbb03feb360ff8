package alphavantage

// globalQuoteResponse maps the GLOBAL_QUOTE endpoint's response. Alpha
// Vantage returns every numeric field as a string, keyed by a numbered label.
// An unknown symbol yields an empty GlobalQuote object rather than an error.
type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol           string `json:"01. symbol"`
		Open             string `json:"02. open"`
		High             string `json:"03. high"`
		Low              string `json:"04. low"`
		Price            string `json:"05. price"`
		Volume           string `json:"06. volume"`
		LatestTradingDay string `json:"07. latest trading day"`
		PreviousClose    string `json:"08. previous close"`
		Change           string `json:"09. change"`
		ChangePercent    string `json:"10. change percent"`
	} `json:"Global Quote"`

	apiMessages
}

// overviewResponse maps the OVERVIEW endpoint's response. ETFs and crypto
// symbols return an empty object; fundamentals are best-effort.
type overviewResponse struct {
	Symbol       string `json:"Symbol"`
	Name         string `json:"Name"`
	Description  string `json:"Description"`
	Sector       string `json:"Sector"`
	MarketCap    string `json:"MarketCapitalization"`
	PERatio      string `json:"PERatio"`
	FiftyTwoHigh string `json:"52WeekHigh"`
	FiftyTwoLow  string `json:"52WeekLow"`

	apiMessages
}

// seriesBar is one OHLCV record inside a time-series map. Field keys are the
// same for daily and intraday endpoints.
type seriesBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// Note: TIME_SERIES_DAILY and TIME_SERIES_INTRADAY responses key the bar map
// under a label that embeds the interval ("Time Series (Daily)", "Time Series
// (5min)", ...), so the client decodes them via json.RawMessage instead of a
// fixed struct tag.

// searchResponse maps the SYMBOL_SEARCH endpoint's response.
type searchResponse struct {
	BestMatches []struct {
		Symbol     string `json:"1. symbol"`
		Name       string `json:"2. name"`
		Type       string `json:"3. type"`
		Region     string `json:"4. region"`
		Currency   string `json:"8. currency"`
		MatchScore string `json:"9. matchScore"`
	} `json:"bestMatches"`

	apiMessages
}

// apiMessages captures Alpha Vantage's out-of-band status payloads. The API
// reports quota exhaustion and bad requests inside a 200 response using these
// keys instead of an HTTP status code.
type apiMessages struct {
	Note         string `json:"Note"`
	Information  string `json:"Information"`
	ErrorMessage string `json:"Error Message"`
}

// rateLimited reports whether the response carried a quota message.
func (m apiMessages) rateLimited() bool {
	return m.Note != "" || m.Information != ""
}
