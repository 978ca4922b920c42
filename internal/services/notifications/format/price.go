package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Price renders a price with the embedded currency table.
func Price(code string, initial, final, discountPercent int) string {
	return defaultTable.Price(code, initial, final, discountPercent)
}

// Price renders a price observation. Without a discount only the final
// amount is shown; with one the struck initial amount, the percentage and the
// final amount follow in that order. Amounts are hundredths of the unit.
// Negative input is a programming error and panics.
func (t *Table) Price(code string, initial, final, discountPercent int) string {
	if initial < 0 || final < 0 || discountPercent < 0 || discountPercent > 100 {
		panic(fmt.Sprintf("format: invalid price initial=%d final=%d discount=%d", initial, final, discountPercent))
	}
	if discountPercent == 0 {
		return "**" + t.Amount(code, final) + "**"
	}
	return fmt.Sprintf("~~%s~~ (-%d%%) **%s**", t.Amount(code, initial), discountPercent, t.Amount(code, final))
}

// Amount renders hundredths of a currency unit with its symbol. ISO codes
// missing from the table are rendered with the code and their standard
// precision; anything else uses the default currency.
func (t *Table) Amount(code string, hundredths int) string {
	if hundredths < 0 {
		panic(fmt.Sprintf("format: negative amount %d", hundredths))
	}
	value := float64(hundredths) / 100

	cur, ok := t.Lookup(code)
	if !ok {
		if unit, err := currency.ParseISO(normalizeCode(code)); err == nil {
			scale, _ := currency.Standard.Rounding(unit)
			return unit.String() + " " + decimal(language.English, value, scale)
		}
		cur = t.Default()
	}

	amount := decimal(cur.tag, value, cur.Decimals)
	if cur.Position == SymbolSuffix {
		return amount + cur.Symbol
	}
	return cur.Symbol + amount
}

func decimal(tag language.Tag, value float64, scale int) string {
	p := message.NewPrinter(tag)
	return strings.TrimSpace(p.Sprint(number.Decimal(value, number.Scale(scale))))
}
