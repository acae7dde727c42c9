package models

// QuoteAnalyticsOverview summarizes quoting activity with month-over-month comparison
type QuoteAnalyticsOverview struct {
	CurrentMonthQuotes   int     `json:"current_month_quotes"`
	LastMonthQuotes      int     `json:"last_month_quotes"`
	QuotesGrowthPercent  float64 `json:"quotes_growth_percent"`
	CurrentMonthQuoted   float64 `json:"current_month_quoted"`
	LastMonthQuoted      float64 `json:"last_month_quoted"`
	QuotedGrowthPercent  float64 `json:"quoted_growth_percent"`
	ConversionRate       float64 `json:"conversion_rate"`
	PendingQuotes        int     `json:"pending_quotes"`
	AverageQuoteTotal    float64 `json:"average_quote_total"`
}

// MonthlyQuoteVolume is one month's quote count and quoted amount
type MonthlyQuoteVolume struct {
	Month       string  `json:"month"`
	MonthNumber int     `json:"month_number"`
	Quotes      int     `json:"quotes"`
	Quoted      float64 `json:"quoted"`
}

// TopQuotedProduct is a product ranked by how often it is quoted
type TopQuotedProduct struct {
	ProductName string  `json:"product_name"`
	TimesQuoted int     `json:"times_quoted"`
	TotalUnits  int     `json:"total_units"`
	TotalQuoted float64 `json:"total_quoted"`
}
