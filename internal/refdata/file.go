package refdata

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// NewFileProvider loads currency and translation tables from a YAML
// file. Expected layout:
//
//	currencies:
//	  EUR:
//	    symbol_native: "€"
//	    decimal_digits: 2
//	translations:
//	  en:
//	    invoice_title: "Invoice"
//
// Codes are normalized to upper case; the Code field on each currency
// is filled from the map key when the file omits it.
func NewFileProvider(path string) (*TableProvider, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read reference data %s: %w", path, err)
	}

	var raw struct {
		Currencies   map[string]Currency          `mapstructure:"currencies"`
		Translations map[string]map[string]string `mapstructure:"translations"`
	}
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("parse reference data %s: %w", path, err)
	}

	currencies := make(map[string]Currency, len(raw.Currencies))
	for code, cur := range raw.Currencies {
		code = strings.ToUpper(code)
		if cur.Code == "" {
			cur.Code = code
		}
		currencies[code] = cur
	}

	if len(currencies) == 0 {
		return nil, fmt.Errorf("reference data %s: no currencies defined", path)
	}

	return &TableProvider{
		currencies:   currencies,
		translations: raw.Translations,
	}, nil
}
