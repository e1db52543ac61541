// Package refdata supplies the reference data consumed by the invoice
// core: currency metadata (native symbol, decimal digits) and locale
// string tables, both behind a lookup-by-key contract.
//
// The core never embeds this data. It is injected at construction time,
// either as the built-in static tables (see NewStaticProvider) or loaded
// from a YAML file (see NewFileProvider), so the data source can be
// swapped without touching business logic.
package refdata

import (
	"errors"
	"fmt"
	"sort"
)

// Currency describes one currency as known to the reference tables.
type Currency struct {
	// Code is the upper-case ISO 4217 code (e.g. "EUR").
	Code string `mapstructure:"code"`

	// SymbolNative is the symbol used in the currency's home locale.
	SymbolNative string `mapstructure:"symbol_native"`

	// DecimalDigits is the currency's conventional number of decimal
	// places. Carried for callers that need it; invoice formatting
	// always prints two decimals regardless.
	DecimalDigits int `mapstructure:"decimal_digits"`
}

var (
	// ErrCurrencyNotFound is returned when a currency code is absent
	// from the reference tables.
	ErrCurrencyNotFound = errors.New("currency not found")

	// ErrLocaleNotFound is returned when no string table exists for
	// the requested locale.
	ErrLocaleNotFound = errors.New("locale not found")

	// ErrTranslationNotFound is returned when the locale exists but
	// the requested key is absent from its table.
	ErrTranslationNotFound = errors.New("translation key not found")
)

// Provider is the lookup contract the invoice core consumes.
type Provider interface {
	// LookupCurrency resolves an upper-case ISO 4217 code.
	LookupCurrency(code string) (Currency, error)

	// LookupTranslation resolves a string table entry for a locale.
	LookupTranslation(locale, key string) (string, error)
}

// TableProvider serves lookups from in-memory tables. Both the static
// default and the file-backed source produce one of these.
type TableProvider struct {
	currencies   map[string]Currency
	translations map[string]map[string]string
}

// LookupCurrency implements Provider.
func (p *TableProvider) LookupCurrency(code string) (Currency, error) {
	cur, ok := p.currencies[code]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrCurrencyNotFound, code)
	}
	return cur, nil
}

// LookupTranslation implements Provider.
func (p *TableProvider) LookupTranslation(locale, key string) (string, error) {
	table, ok := p.translations[locale]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrLocaleNotFound, locale)
	}
	text, ok := table[key]
	if !ok {
		return "", fmt.Errorf("%w: %q (locale %q)", ErrTranslationNotFound, key, locale)
	}
	return text, nil
}

// Currencies returns all known currencies in code order. Used by the
// CLI to list what the configured source supports.
func (p *TableProvider) Currencies() []Currency {
	out := make([]Currency, 0, len(p.currencies))
	for _, code := range sortedKeys(p.currencies) {
		out = append(out, p.currencies[code])
	}
	return out
}

// Locales returns all locales that have a string table, sorted.
func (p *TableProvider) Locales() []string {
	return sortedKeys(p.translations)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
