package notifier

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"FuturesReport/internal/model"
)

const ruleWidth = 60

// contractNames maps known tickers to the description shown next to them.
var contractNames = map[string]string{
	"ZC": "Simulated Corn Futures",
	"ZW": "Simulated Wheat Futures",
	"ZS": "Simulated Soybean Futures",
	"ES": "Simulated E-mini S&P 500 Futures",
	"CL": "Simulated Crude Oil Futures",
	"GC": "Simulated Gold Futures",
}

// ContractName returns the display name for symbol.
func ContractName(symbol string) string {
	if name, ok := contractNames[symbol]; ok {
		return name
	}
	return "Simulated Futures"
}

// FormatReport formats a summary into the console analysis report.
func FormatReport(sum *model.Summary) string {
	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)

	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("Futures Contract Analysis Report: %s\n", sum.Symbol))
	b.WriteString(rule + "\n")

	b.WriteString(fmt.Sprintf("| Contract Ticker: %s (%s)\n", sum.Symbol, ContractName(sum.Symbol)))
	b.WriteString(fmt.Sprintf("| Data Range: %s to %s\n", sum.From, sum.To))
	b.WriteString(fmt.Sprintf("| Average Closing Price: $%.2f\n", sum.AverageClose))
	b.WriteString(fmt.Sprintf("| Total Price Change (Swing): $%+.2f\n", sum.PriceSwing))

	maxDay := sum.MaxVolumeDay
	b.WriteString(fmt.Sprintf("| Highest Volume Day: %s (Volume: %s)\n", maxDay.Date(), humanize.Comma(maxDay.Volume)))
	b.WriteString(fmt.Sprintf("| Closing Price on Max Volume Day: $%.2f\n", maxDay.Close))

	b.WriteString(rule + "\n")
	return b.String()
}
