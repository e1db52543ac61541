// Package invoice implements the invoice computation core: the
// line-item ledger, the aggregate with its validation rules, and the
// terminal render operation that drives the layout into a PDF.
//
// Each Invoice instance is exclusively owned by its caller for the
// whole construct-configure-render lifecycle. No concurrent mutation
// is supported; Render is a plain blocking call.
package invoice

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"invoicer/internal/layout"
	"invoicer/internal/logger"
	"invoicer/internal/refdata"
	"invoicer/pkg/models"
)

const (
	// LineBreak joins footer segments; the layout splits on it to
	// produce centered footer lines.
	LineBreak = "\n"

	// paymentDelimiter separates the fields of the payment footer line.
	paymentDelimiter = " - "

	defaultDueDays = 14
)

// Invoice is the aggregate root. All state is private; callers go
// through the setters, AddProduct, and Render.
type Invoice struct {
	provider refdata.Provider
	log      zerolog.Logger

	id      string
	date    time.Time
	dueDate time.Time
	vatID   string
	locale  string

	seller   *models.Party
	buyer    *models.Party
	currency *refdata.Currency
	payment  *models.PaymentInfo

	// footerNote is the caller-supplied part of the footer; footer is
	// the composed text including the translated boilerplate.
	footerNote string
	footer     string

	// netEqualsGross starts true and flips to false permanently once
	// any product with a positive tax rate is added.
	netEqualsGross bool

	// paid is carried as a fixed field; there is no setter.
	paid decimal.Decimal

	ledger *Ledger
}

// New creates an invoice with a generated id, today's date, and a due
// date two weeks out. The provider supplies currency metadata and
// locale string tables.
func New(provider refdata.Provider) *Invoice {
	now := time.Now()
	return &Invoice{
		provider:       provider,
		log:            logger.WithComponent("invoice"),
		id:             uuid.NewString(),
		date:           now,
		dueDate:        now.AddDate(0, 0, defaultDueDays),
		netEqualsGross: true,
		paid:           decimal.Zero,
		ledger:         NewLedger(),
	}
}

// Accessors.

func (inv *Invoice) ID() string                { return inv.id }
func (inv *Invoice) Date() time.Time           { return inv.date }
func (inv *Invoice) DueDate() time.Time        { return inv.dueDate }
func (inv *Invoice) VATID() string             { return inv.vatID }
func (inv *Invoice) Locale() string            { return inv.locale }
func (inv *Invoice) Footer() string            { return inv.footer }
func (inv *Invoice) NetEqualsGross() bool      { return inv.netEqualsGross }
func (inv *Invoice) NetSum() decimal.Decimal   { return inv.ledger.NetSum() }
func (inv *Invoice) GrossSum() decimal.Decimal { return inv.ledger.GrossSum() }

// SetID overrides the generated invoice id.
func (inv *Invoice) SetID(id string) { inv.id = id }

// SetLocale selects the string table used for translated output.
func (inv *Invoice) SetLocale(locale string) { inv.locale = locale }

// SetVATID records the seller's tax registration identifier.
func (inv *Invoice) SetVATID(vatID string) { inv.vatID = vatID }

// SetSeller assigns the seller party block.
func (inv *Invoice) SetSeller(seller models.Party) { inv.seller = &seller }

// SetBuyer assigns the buyer party block.
func (inv *Invoice) SetBuyer(buyer models.Party) { inv.buyer = &buyer }

// SetDates assigns the invoice and due dates. Zero values are rejected
// with ErrInvalidDate.
func (inv *Invoice) SetDates(invoiceDate, dueDate time.Time) error {
	if invoiceDate.IsZero() || dueDate.IsZero() {
		return ErrInvalidDate
	}
	inv.date = invoiceDate
	inv.dueDate = dueDate
	return nil
}

// SetCurrency resolves the given code against the reference data.
// The code is upper-cased before lookup; unknown codes fail with
// ErrCurrencyNotFound.
func (inv *Invoice) SetCurrency(code string) error {
	code = strings.ToUpper(code)
	cur, err := inv.provider.LookupCurrency(code)
	if err != nil {
		if errors.Is(err, refdata.ErrCurrencyNotFound) {
			return &CurrencyNotFoundError{Code: code}
		}
		return err
	}
	inv.currency = &cur
	inv.log.Debug().Str("currency", code).Msg("currency set")
	return nil
}

// SetFooter composes the footer text: a translated boilerplate line
// chosen by the net-equals-gross flag (tax-exempt notice while true,
// thank-you note once taxed items exist), then the caller text after a
// line break. Each call overwrites the previous footer; callers that
// need several notices compose them into one call.
func (inv *Invoice) SetFooter(text string) error {
	key := refdata.KeyThankYouNote
	if inv.netEqualsGross {
		key = refdata.KeyTaxExemptNote
	}
	note, err := inv.translate(key)
	if err != nil {
		return err
	}

	inv.footerNote = text
	if text == "" {
		inv.footer = note
	} else {
		inv.footer = note + LineBreak + text
	}
	return nil
}

// SetPaymentInfo records bank details. It must be called after at
// least one product was added; payment info without line items is
// rejected with ErrInvalidState. When addToFooter is set, a formatted
// payment line (account name, IBAN, bank name, BIC) is appended to the
// footer after a line break.
func (inv *Invoice) SetPaymentInfo(iban, accountName, bic, bankName string, addToFooter bool) error {
	if inv.ledger.Empty() {
		return &InvalidStateError{Details: "payment info requires at least one line item"}
	}

	inv.payment = &models.PaymentInfo{
		IBAN:        iban,
		AccountName: accountName,
		BIC:         bic,
		BankName:    bankName,
	}

	if !addToFooter {
		return nil
	}

	line := strings.Join([]string{accountName, iban, bankName, bic}, paymentDelimiter)
	note := line
	if inv.footerNote != "" {
		note = inv.footerNote + LineBreak + line
	}
	return inv.SetFooter(note)
}

// AddProduct appends a line item. Sums accumulate from every call;
// entries with identical description, tax rate, and net price collapse
// into one row at render time. A positive tax rate permanently flips
// the net-equals-gross flag.
func (inv *Invoice) AddProduct(description string, netPrice, taxRate, grossPrice decimal.Decimal) {
	inv.ledger.Add(description, netPrice, taxRate, grossPrice)
	if taxRate.IsPositive() {
		inv.netEqualsGross = false
	}
}

// FormatCurrency renders a monetary value as the currency's native
// symbol followed by the value with exactly two decimal places,
// regardless of the currency's own decimal-digit convention.
func (inv *Invoice) FormatCurrency(value decimal.Decimal) (string, error) {
	if inv.currency == nil {
		return "", ErrCurrencyNotSet
	}
	return inv.currency.SymbolNative + value.StringFixed(2), nil
}

// FormatDate renders a date as day.month.year without zero padding,
// e.g. "5.3.2024".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d", t.Day(), int(t.Month()), t.Year())
}

// Render validates the invoice, finalizes the ledger, lays out the
// document, and returns the encoded PDF as a base64 string.
func (inv *Invoice) Render() (string, error) {
	data, err := inv.RenderPDF()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// RenderPDF is Render without the base64 step, for callers writing the
// document straight to disk.
func (inv *Invoice) RenderPDF() ([]byte, error) {
	if !inv.netEqualsGross && inv.vatID == "" {
		return nil, ErrMissingTaxID
	}
	if inv.currency == nil {
		return nil, ErrCurrencyNotSet
	}

	// A footer is always printed; fall back to the bare boilerplate
	// when the caller never set one.
	if inv.footer == "" {
		if err := inv.SetFooter(""); err != nil {
			return nil, err
		}
	}

	inv.ledger.finalize()

	input, err := inv.layoutInput()
	if err != nil {
		return nil, err
	}

	doc := layout.NewPDFDocument()
	layout.Replay(layout.Compose(input), doc)
	data, err := doc.Bytes()
	if err != nil {
		return nil, err
	}

	inv.log.Info().
		Str("invoice_id", inv.id).
		Int("items", len(input.Items)).
		Int("bytes", len(data)).
		Msg("invoice rendered")
	return data, nil
}

// layoutInput resolves translations and formats every value the layout
// prints, producing the deterministic renderer input.
func (inv *Invoice) layoutInput() (layout.Input, error) {
	var in layout.Input

	labels := map[string]*string{
		refdata.KeyInvoiceTitle:  &in.Title,
		refdata.KeyInvoiceNumber: &in.NumberLabel,
		refdata.KeyInvoiceDate:   &in.DateLabel,
		refdata.KeyBalanceDue:    &in.BalanceDueLabel,
		refdata.KeyVATID:         &in.VATLabel,
		refdata.KeyItem:          &in.ItemLabel,
		refdata.KeyNet:           &in.NetLabel,
		refdata.KeyTotal:         &in.TotalLabel,
		refdata.KeySubtotal:      &in.SubtotalLabel,
	}
	for key, dst := range labels {
		text, err := inv.translate(key)
		if err != nil {
			return layout.Input{}, err
		}
		*dst = text
	}

	if inv.seller != nil {
		in.SellerName = inv.seller.Name
		in.SellerLines = inv.seller.AddressLines()
	}
	if inv.buyer != nil {
		in.BuyerLines = append([]string{inv.buyer.Name}, inv.buyer.AddressLines()...)
	}
	in.VATID = inv.vatID
	in.Number = inv.id
	in.Date = FormatDate(inv.date)

	balance, err := inv.FormatCurrency(inv.GrossSum().Sub(inv.paid))
	if err != nil {
		return layout.Input{}, err
	}
	in.BalanceDue = balance

	for _, item := range inv.ledger.Items() {
		net, err := inv.FormatCurrency(item.TotalNet())
		if err != nil {
			return layout.Input{}, err
		}
		gross, err := inv.FormatCurrency(item.TotalGross())
		if err != nil {
			return layout.Input{}, err
		}
		in.Items = append(in.Items, layout.ItemRow{
			Label: itemLabel(item),
			Net:   net,
			Gross: gross,
		})
	}

	if in.SubtotalNet, err = inv.FormatCurrency(inv.NetSum()); err != nil {
		return layout.Input{}, err
	}
	if in.SubtotalGross, err = inv.FormatCurrency(inv.GrossSum()); err != nil {
		return layout.Input{}, err
	}

	in.FooterLines = strings.Split(inv.footer, LineBreak)
	return in, nil
}

// itemLabel renders a finalized row label as "<quantity>x <description>".
func itemLabel(item models.LineItem) string {
	return fmt.Sprintf("%dx %s", item.Quantity, item.Description)
}

// translate resolves a key through the reference data provider,
// mapping provider errors onto the invoice error taxonomy.
func (inv *Invoice) translate(key string) (string, error) {
	if inv.locale == "" {
		return "", ErrLocaleNotSet
	}
	text, err := inv.provider.LookupTranslation(inv.locale, key)
	if err != nil {
		if errors.Is(err, refdata.ErrTranslationNotFound) || errors.Is(err, refdata.ErrLocaleNotFound) {
			return "", &TranslationKeyError{Locale: inv.locale, Key: key}
		}
		return "", err
	}
	return text, nil
}
