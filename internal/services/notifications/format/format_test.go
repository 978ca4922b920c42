package format

import (
	"strings"
	"testing"
)

func TestPriceWithoutDiscount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code  string
		final int
		want  string
	}{
		{code: "USD", final: 1999, want: "**$19.99**"},
		{code: "usd", final: 99, want: "**$0.99**"},
		{code: "GBP", final: 1999, want: "**£19.99**"},
		{code: "EUR", final: 1999, want: "**19,99€**"},
		{code: "JPY", final: 198000, want: "**¥ 1,980**"},
		{code: "USD", final: 0, want: "**$0.00**"},
	}
	for _, tc := range tests {
		if got := Price(tc.code, tc.final, tc.final, 0); got != tc.want {
			t.Fatalf("Price(%s, %d) = %q, want %q", tc.code, tc.final, got, tc.want)
		}
	}
}

func TestPriceWithDiscount(t *testing.T) {
	t.Parallel()

	got := Price("USD", 1999, 999, 50)
	want := "~~$19.99~~ (-50%) **$9.99**"
	if got != want {
		t.Fatalf("Price = %q, want %q", got, want)
	}
}

func TestPriceOrderingAcrossCurrencies(t *testing.T) {
	t.Parallel()

	table := Currencies()
	for _, code := range table.Codes() {
		plain := table.Price(code, 4999, 4999, 0)
		if strings.Contains(plain, "~~") || strings.Contains(plain, "%") {
			t.Fatalf("%s without discount = %q, want no strikethrough or percentage", code, plain)
		}

		discounted := table.Price(code, 4999, 1249, 75)
		initial := strings.Index(discounted, table.Amount(code, 4999))
		pct := strings.Index(discounted, "-75%")
		final := strings.LastIndex(discounted, table.Amount(code, 1249))
		if initial < 0 || pct < 0 || final < 0 || initial >= pct || pct >= final {
			t.Fatalf("%s discounted = %q, want initial, percentage, final in order", code, discounted)
		}
	}
}

func TestAmountFallbacks(t *testing.T) {
	t.Parallel()

	if got := Currencies().Amount("ZZZ", 1999); got != "$19.99" {
		t.Fatalf("Amount(ZZZ) = %q, want default currency", got)
	}
	if got := Currencies().Amount("ISK", 199000); !strings.HasPrefix(got, "ISK ") {
		t.Fatalf("Amount(ISK) = %q, want ISO code prefix", got)
	}
}

func TestPriceNegativePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative price")
		}
	}()
	Price("USD", -1, 0, 0)
}

func TestCurrencyForRegion(t *testing.T) {
	t.Parallel()

	table := Currencies()
	tests := map[string]string{
		"brazil":      "BRL",
		"Europe":      "EUR",
		"japan":       "JPY",
		"us-west":     "USD",
		"southafrica": "ZAR",
		"sydney":      "AUD",
		"":            "USD",
		"atlantis":    "USD",
	}
	for region, want := range tests {
		if got := table.CurrencyForRegion(region); got != want {
			t.Fatalf("CurrencyForRegion(%q) = %q, want %q", region, got, want)
		}
	}
}

func TestLookupAndDefault(t *testing.T) {
	t.Parallel()

	table := Currencies()
	cur, ok := table.Lookup(" brl ")
	if !ok {
		t.Fatal("expected BRL in table")
	}
	if cur.CountryCode != "BR" || cur.Locale != "pt-BR" {
		t.Fatalf("BRL = %+v, want BR / pt-BR", cur)
	}
	if got := table.Default().Code; got != "USD" {
		t.Fatalf("Default = %q, want USD", got)
	}
	if got := table.Resolve("nope").Code; got != "USD" {
		t.Fatalf("Resolve(nope) = %q, want USD", got)
	}
}

func TestLoadCurrenciesRejectsInvalidTables(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"empty":            "currencies: []",
		"bad code":         "default: XXQ\ncurrencies:\n  - {code: XXQ, country_code: US, locale: en-US, symbol: $, position: prefix, decimals: 2}",
		"bad position":     "default: USD\ncurrencies:\n  - {code: USD, country_code: US, locale: en-US, symbol: $, position: middle, decimals: 2}",
		"bad decimals":     "default: USD\ncurrencies:\n  - {code: USD, country_code: US, locale: en-US, symbol: $, position: prefix, decimals: 5}",
		"missing default":  "default: EUR\ncurrencies:\n  - {code: USD, country_code: US, locale: en-US, symbol: $, position: prefix, decimals: 2}",
		"duplicate":        "default: USD\ncurrencies:\n  - {code: USD, country_code: US, locale: en-US, symbol: $, position: prefix, decimals: 2}\n  - {code: USD, country_code: US, locale: en-US, symbol: $, position: prefix, decimals: 2}",
		"missing country":  "default: USD\ncurrencies:\n  - {code: USD, locale: en-US, symbol: $, position: prefix, decimals: 2}",
		"malformed":        "currencies: [",
	}
	for name, data := range tests {
		if _, err := LoadCurrencies([]byte(data)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestByteSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes int64
		want  string
	}{
		{bytes: 0, want: "0.0 B"},
		{bytes: 1023, want: "1023.0 B"},
		{bytes: 1024, want: "1.0 KB"},
		{bytes: 1536, want: "1.5 KB"},
		{bytes: 1048575, want: "1.0 MB"},
		{bytes: 5 * 1024 * 1024 * 1024, want: "5.0 GB"},
		{bytes: 3 << 40, want: "3.0 TB"},
	}
	for _, tc := range tests {
		if got := ByteSize(tc.bytes); got != tc.want {
			t.Fatalf("ByteSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestByteSizeNegativePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative size")
		}
	}()
	ByteSize(-1)
}

func TestCount(t *testing.T) {
	t.Parallel()

	if got := Count(1234567); got != "1,234,567" {
		t.Fatalf("Count = %q, want 1,234,567", got)
	}
	if got := Count(12); got != "12" {
		t.Fatalf("Count = %q, want 12", got)
	}
}
