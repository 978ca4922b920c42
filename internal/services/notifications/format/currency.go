// Package format turns raw storefront integers into display strings: prices
// localized per currency, byte sizes in binary units and grouped counts.
package format

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// SymbolPosition places the currency symbol around the amount.
type SymbolPosition string

const (
	SymbolPrefix SymbolPosition = "prefix"
	SymbolSuffix SymbolPosition = "suffix"
)

// Currency describes how one storefront currency is displayed.
type Currency struct {
	Code        string         `yaml:"code"`
	Name        string         `yaml:"name"`
	CountryCode string         `yaml:"country_code"`
	Locale      string         `yaml:"locale"`
	Symbol      string         `yaml:"symbol"`
	Position    SymbolPosition `yaml:"position"`
	Decimals    int            `yaml:"decimals"`

	tag language.Tag
}

type tableFile struct {
	Default    string     `yaml:"default"`
	Currencies []Currency `yaml:"currencies"`
}

// Table is an immutable set of display currencies.
type Table struct {
	byCode      map[string]Currency
	codes       []string
	defaultCode string
}

//go:embed currencies.yaml
var embeddedCurrencies []byte

var defaultTable = mustLoadEmbedded()

func mustLoadEmbedded() *Table {
	table, err := LoadCurrencies(embeddedCurrencies)
	if err != nil {
		panic(fmt.Sprintf("format: load embedded currencies: %v", err))
	}
	return table
}

// Currencies returns the embedded storefront currency table.
func Currencies() *Table {
	return defaultTable
}

// LoadCurrencies parses and validates a YAML currency table.
func LoadCurrencies(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse currency table: %w", err)
	}
	if len(file.Currencies) == 0 {
		return nil, fmt.Errorf("currency table is empty")
	}

	table := &Table{byCode: make(map[string]Currency, len(file.Currencies))}
	for _, cur := range file.Currencies {
		cur.Code = normalizeCode(cur.Code)
		if _, err := currency.ParseISO(cur.Code); err != nil {
			return nil, fmt.Errorf("currency %q: %w", cur.Code, err)
		}
		if _, exists := table.byCode[cur.Code]; exists {
			return nil, fmt.Errorf("currency %q defined twice", cur.Code)
		}
		tag, err := language.Parse(cur.Locale)
		if err != nil {
			return nil, fmt.Errorf("currency %q locale %q: %w", cur.Code, cur.Locale, err)
		}
		cur.tag = tag
		if cur.Position != SymbolPrefix && cur.Position != SymbolSuffix {
			return nil, fmt.Errorf("currency %q: symbol position %q is not prefix or suffix", cur.Code, cur.Position)
		}
		if cur.Decimals < 0 || cur.Decimals > 2 {
			return nil, fmt.Errorf("currency %q: decimals %d out of range", cur.Code, cur.Decimals)
		}
		cur.CountryCode = strings.ToUpper(strings.TrimSpace(cur.CountryCode))
		if cur.CountryCode == "" {
			return nil, fmt.Errorf("currency %q: country code is required", cur.Code)
		}
		table.byCode[cur.Code] = cur
		table.codes = append(table.codes, cur.Code)
	}

	table.defaultCode = normalizeCode(file.Default)
	if _, ok := table.byCode[table.defaultCode]; !ok {
		return nil, fmt.Errorf("default currency %q is not in the table", file.Default)
	}
	return table, nil
}

// Lookup returns the currency for an ISO code, case-insensitively.
func (t *Table) Lookup(code string) (Currency, bool) {
	cur, ok := t.byCode[normalizeCode(code)]
	return cur, ok
}

// Default returns the fallback currency.
func (t *Table) Default() Currency {
	return t.byCode[t.defaultCode]
}

// Resolve returns the currency for code, or the default when unknown.
func (t *Table) Resolve(code string) Currency {
	if cur, ok := t.Lookup(code); ok {
		return cur
	}
	return t.Default()
}

// Codes lists the table's currency codes in file order.
func (t *Table) Codes() []string {
	return append([]string(nil), t.codes...)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

var regionCurrencies = map[string]string{
	"brazil":      "BRL",
	"europe":      "EUR",
	"hongkong":    "HKD",
	"india":       "INR",
	"japan":       "JPY",
	"russia":      "RUB",
	"singapore":   "SGD",
	"southafrica": "ZAR",
	"sydney":      "AUD",
	"us-central":  "USD",
	"us-east":     "USD",
	"us-south":    "USD",
	"us-west":     "USD",
}

// CurrencyForRegion maps a chat server voice region to its storefront
// currency code, falling back to the table default.
func (t *Table) CurrencyForRegion(region string) string {
	if code, ok := regionCurrencies[strings.ToLower(strings.TrimSpace(region))]; ok {
		if _, known := t.byCode[code]; known {
			return code
		}
	}
	return t.defaultCode
}
