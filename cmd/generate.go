package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"invoicer/internal/config"
	"invoicer/internal/invoice"
	"invoicer/internal/logger"
	"invoicer/internal/refdata"
	"invoicer/pkg/models"
)

var generateCmd = &cobra.Command{
	Use:   "generate [invoice-file]",
	Short: "Render a PDF invoice from a JSON description",
	Long: `Read a JSON invoice description and render it into a single-page A4
PDF document.

The description carries the seller and buyer party blocks, the product
list, currency and locale, and optional payment details. Products with
identical description, tax rate, and net price collapse into one row
with a quantity count.

Dates use the 2006-01-02 format. When taxed items are present a vat_id
is required.`,
	Example: `  # Render to a file
  invoicer generate invoice.json -o invoice.pdf

  # Print the document as base64 to stdout
  invoicer generate invoice.json

  # Override the locale from the description
  invoicer generate invoice.json --locale de -o rechnung.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

// invoiceInput is the JSON description the generate command consumes.
type invoiceInput struct {
	ID       string `json:"id,omitempty"`
	Date     string `json:"date,omitempty"`
	DueDate  string `json:"due_date,omitempty"`
	VATID    string `json:"vat_id,omitempty"`
	Locale   string `json:"locale"`
	Currency string `json:"currency"`

	Seller models.Party `json:"seller"`
	Buyer  models.Party `json:"buyer"`

	Items []itemInput `json:"items"`

	Payment    *paymentInput `json:"payment,omitempty"`
	FooterNote string        `json:"footer_note,omitempty"`
}

type itemInput struct {
	Description string          `json:"description"`
	NetPrice    decimal.Decimal `json:"net_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	GrossPrice  decimal.Decimal `json:"gross_price"`
}

type paymentInput struct {
	IBAN        string `json:"iban"`
	AccountName string `json:"account_name"`
	BIC         string `json:"bic"`
	BankName    string `json:"bank_name"`
	AddToFooter *bool  `json:"add_to_footer,omitempty"`
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("output", "o", "", "Output PDF path (default: base64 to stdout)")
	generateCmd.Flags().String("locale", "", "Override the description's locale")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("generate")

	outputPath, _ := cmd.Flags().GetString("output")
	localeOverride, _ := cmd.Flags().GetString("locale")
	inputPath := args[0]

	log.Info().
		Str("file", inputPath).
		Str("output", outputPath).
		Msg("Starting invoice generation")

	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.Error().Err(err).Str("file", inputPath).Msg("Failed to read invoice description")
		return fmt.Errorf("failed to read invoice description: %w", err)
	}

	var in invoiceInput
	if err := json.Unmarshal(data, &in); err != nil {
		log.Error().Err(err).Str("file", inputPath).Msg("Failed to parse invoice description")
		return fmt.Errorf("failed to parse invoice description: %w", err)
	}
	if localeOverride != "" {
		in.Locale = localeOverride
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if in.Locale == "" {
		in.Locale = cfg.DefaultLocale
	}
	provider, err := cfg.Provider()
	if err != nil {
		log.Error().Err(err).Msg("Failed to build reference data provider")
		return fmt.Errorf("failed to load reference data: %w", err)
	}

	inv, err := buildInvoice(provider, in)
	if err != nil {
		return handleGenerateError(err, log)
	}

	pdfData, err := inv.RenderPDF()
	if err != nil {
		return handleGenerateError(err, log)
	}

	log.Info().
		Str("invoice_id", inv.ID()).
		Str("currency", in.Currency).
		Int("items", len(in.Items)).
		Int("bytes", len(pdfData)).
		Msg("Invoice generated")

	if outputPath == "" {
		encoded, err := inv.Render()
		if err != nil {
			return handleGenerateError(err, log)
		}
		fmt.Println(encoded)
		return nil
	}

	if err := os.WriteFile(outputPath, pdfData, 0644); err != nil {
		log.Error().Err(err).Str("output_file", outputPath).Msg("Failed to write PDF")
		return fmt.Errorf("failed to write output file: %w", err)
	}
	log.Info().Str("output_file", outputPath).Msg("Invoice written")
	return nil
}

// buildInvoice assembles the aggregate from the parsed description,
// in the order its state machine requires (products before payment
// info, footer note before the payment footer line).
func buildInvoice(provider refdata.Provider, in invoiceInput) (*invoice.Invoice, error) {
	inv := invoice.New(provider)
	inv.SetLocale(in.Locale)

	if in.ID != "" {
		inv.SetID(in.ID)
	}
	if in.VATID != "" {
		inv.SetVATID(in.VATID)
	}

	if in.Date != "" || in.DueDate != "" {
		date, err := parseDate(in.Date)
		if err != nil {
			return nil, err
		}
		due, err := parseDate(in.DueDate)
		if err != nil {
			return nil, err
		}
		if err := inv.SetDates(date, due); err != nil {
			return nil, err
		}
	}

	if err := inv.SetCurrency(in.Currency); err != nil {
		return nil, err
	}

	inv.SetSeller(in.Seller)
	inv.SetBuyer(in.Buyer)

	for _, item := range in.Items {
		inv.AddProduct(item.Description, item.NetPrice, item.TaxRate, item.GrossPrice)
	}

	if in.FooterNote != "" {
		if err := inv.SetFooter(in.FooterNote); err != nil {
			return nil, err
		}
	}

	if in.Payment != nil {
		addToFooter := true
		if in.Payment.AddToFooter != nil {
			addToFooter = *in.Payment.AddToFooter
		}
		err := inv.SetPaymentInfo(
			in.Payment.IBAN,
			in.Payment.AccountName,
			in.Payment.BIC,
			in.Payment.BankName,
			addToFooter,
		)
		if err != nil {
			return nil, err
		}
	}

	return inv, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", invoice.ErrInvalidDate)
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected 2006-01-02)", invoice.ErrInvalidDate, s)
	}
	return t, nil
}

// handleGenerateError provides user-friendly messages for invoice
// construction and rendering failures.
func handleGenerateError(err error, log zerolog.Logger) error {
	log.Error().Err(err).Msg("Invoice generation failed")

	switch {
	case errors.Is(err, invoice.ErrCurrencyNotFound):
		return fmt.Errorf("unknown currency code. Run 'invoicer currencies' to list supported codes.\nOriginal error: %w", err)
	case errors.Is(err, invoice.ErrCurrencyNotSet):
		return fmt.Errorf("no currency configured. Set \"currency\" in the invoice description")
	case errors.Is(err, invoice.ErrMissingTaxID):
		return fmt.Errorf("the invoice has taxed items but no \"vat_id\". Add the seller's VAT id and retry")
	case errors.Is(err, invoice.ErrInvalidState):
		return fmt.Errorf("payment info requires at least one item in \"items\": %w", err)
	case errors.Is(err, invoice.ErrLocaleNotSet):
		return fmt.Errorf("no locale configured. Set \"locale\" in the description or INVOICE_LOCALE in the environment")
	case errors.Is(err, invoice.ErrTranslationKeyNotFound):
		return fmt.Errorf("the configured locale is missing translations: %w", err)
	case errors.Is(err, invoice.ErrInvalidDate):
		return fmt.Errorf("invalid date in invoice description: %w", err)
	default:
		return fmt.Errorf("invoice generation failed: %w", err)
	}
}
