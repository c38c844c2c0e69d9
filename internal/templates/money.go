package templates

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ruPrinter  = message.NewPrinter(language.Russian)
	spaceFixer = strings.NewReplacer("\u00a0", " ", "\u202f", " ")
)

// FormatAmount renders whole rubles with Russian digit grouping: 15000 -> "15 000".
func FormatAmount(d decimal.Decimal) string {
	return spaceFixer.Replace(ruPrinter.Sprintf("%d", d.Round(0).IntPart()))
}
