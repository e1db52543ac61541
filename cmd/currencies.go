package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"invoicer/internal/config"
	"invoicer/internal/logger"
	"invoicer/internal/refdata"
)

var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "List the currencies known to the configured reference data",
	Long: `Print every currency code the configured reference data source
supports, with its native symbol and decimal-digit convention.

The source is the built-in static table unless REFERENCE_DATA_FILE
points at a YAML file with custom tables.`,
	Args: cobra.NoArgs,
	RunE: runCurrencies,
}

// currencyLister is the optional enumeration capability of a provider.
// Lookup-only providers simply cannot be listed.
type currencyLister interface {
	Currencies() []refdata.Currency
}

func init() {
	rootCmd.AddCommand(currenciesCmd)
}

func runCurrencies(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("currencies")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	provider, err := cfg.Provider()
	if err != nil {
		log.Error().Err(err).Msg("Failed to build reference data provider")
		return fmt.Errorf("failed to load reference data: %w", err)
	}

	lister, ok := provider.(currencyLister)
	if !ok {
		return fmt.Errorf("the configured reference data source does not support listing")
	}

	for _, cur := range lister.Currencies() {
		fmt.Printf("%s  %-4s (%d decimal digits)\n", cur.Code, cur.SymbolNative, cur.DecimalDigits)
	}
	return nil
}
