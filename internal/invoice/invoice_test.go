package invoice_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/internal/invoice"
	"invoicer/internal/refdata"
	"invoicer/pkg/models"
)

func newTestInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()
	inv := invoice.New(refdata.NewStaticProvider())
	inv.SetLocale("en")
	return inv
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestInvoice_NetEqualsGrossIsMonotonic(t *testing.T) {
	// GIVEN: a fresh invoice
	// THEN: the flag starts true, flips on the first taxed product,
	//       and never reverts

	inv := newTestInvoice(t)
	assert.True(t, inv.NetEqualsGross())

	inv.AddProduct("Untaxed", dec("50"), dec("0"), dec("50"))
	assert.True(t, inv.NetEqualsGross(), "zero-tax products keep the flag")

	inv.AddProduct("Taxed", dec("100"), dec("19"), dec("119"))
	assert.False(t, inv.NetEqualsGross())

	inv.AddProduct("Untaxed again", dec("10"), dec("0"), dec("10"))
	assert.False(t, inv.NetEqualsGross(), "flag never reverts")
}

func TestInvoice_RenderFailsWithoutTaxID(t *testing.T) {
	// GIVEN: one taxed product and no VAT id
	// WHEN: rendering
	// THEN: ErrMissingTaxID

	inv := newTestInvoice(t)
	require.NoError(t, inv.SetCurrency("EUR"))
	inv.AddProduct("Consulting", dec("100"), dec("19"), dec("119"))

	_, err := inv.Render()
	assert.ErrorIs(t, err, invoice.ErrMissingTaxID)
}

func TestInvoice_RenderFailsWithoutCurrency(t *testing.T) {
	inv := newTestInvoice(t)
	inv.AddProduct("Consulting", dec("50"), dec("0"), dec("50"))

	_, err := inv.Render()
	assert.ErrorIs(t, err, invoice.ErrCurrencyNotSet)
}

func TestInvoice_SetCurrency(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{name: "known code", code: "EUR"},
		{name: "lower case is uppercased", code: "eur"},
		{name: "unknown code", code: "XXX", wantErr: invoice.ErrCurrencyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := newTestInvoice(t)
			err := inv.SetCurrency(tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var notFound *invoice.CurrencyNotFoundError
				assert.ErrorAs(t, err, &notFound)
				assert.Equal(t, strings.ToUpper(tt.code), notFound.Code)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInvoice_FormatCurrency(t *testing.T) {
	inv := newTestInvoice(t)

	// Before SetCurrency any formatting fails.
	_, err := inv.FormatCurrency(dec("12.5"))
	assert.ErrorIs(t, err, invoice.ErrCurrencyNotSet)

	require.NoError(t, inv.SetCurrency("eur"))

	tests := []struct {
		value string
		want  string
	}{
		{value: "12.5", want: "€12.50"},
		{value: "12.5009", want: "€12.50"},
		{value: "50", want: "€50.00"},
		{value: "0", want: "€0.00"},
		{value: "-3.1", want: "€-3.10"},
	}
	for _, tt := range tests {
		got, err := inv.FormatCurrency(dec(tt.value))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "value %s", tt.value)
	}
}

func TestFormatDate_NoZeroPadding(t *testing.T) {
	assert.Equal(t, "5.3.2024", invoice.FormatDate(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31.12.2023", invoice.FormatDate(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestInvoice_SetDatesRejectsZeroValues(t *testing.T) {
	inv := newTestInvoice(t)

	err := inv.SetDates(time.Time{}, time.Now())
	assert.ErrorIs(t, err, invoice.ErrInvalidDate)

	err = inv.SetDates(time.Now(), time.Time{})
	assert.ErrorIs(t, err, invoice.ErrInvalidDate)

	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	due := date.AddDate(0, 0, 14)
	require.NoError(t, inv.SetDates(date, due))
	assert.Equal(t, date, inv.Date())
	assert.Equal(t, due, inv.DueDate())
}

func TestInvoice_SetPaymentInfoRequiresLineItems(t *testing.T) {
	// GIVEN: no products yet
	// THEN: payment info is rejected with ErrInvalidState

	inv := newTestInvoice(t)
	err := inv.SetPaymentInfo("DE02120300000000202051", "Jane Doe", "BYLADEM1001", "Deutsche Kreditbank", true)
	assert.ErrorIs(t, err, invoice.ErrInvalidState)

	inv.AddProduct("Consulting", dec("50"), dec("0"), dec("50"))
	err = inv.SetPaymentInfo("DE02120300000000202051", "Jane Doe", "BYLADEM1001", "Deutsche Kreditbank", true)
	assert.NoError(t, err)
}

func TestInvoice_PaymentFooterLine(t *testing.T) {
	// GIVEN: a product and payment info with addToFooter
	// THEN: the footer gains a line with account name, IBAN, bank
	//       name, and BIC in that order

	inv := newTestInvoice(t)
	inv.AddProduct("Consulting", dec("50"), dec("0"), dec("50"))
	require.NoError(t, inv.SetPaymentInfo("DE02120300000000202051", "Jane Doe", "BYLADEM1001", "Deutsche Kreditbank", true))

	lines := strings.Split(inv.Footer(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Jane Doe - DE02120300000000202051 - Deutsche Kreditbank - BYLADEM1001", lines[1])
}

func TestInvoice_PaymentFooterKeepsCallerNote(t *testing.T) {
	inv := newTestInvoice(t)
	inv.AddProduct("Consulting", dec("50"), dec("0"), dec("50"))
	require.NoError(t, inv.SetFooter("See you next month."))
	require.NoError(t, inv.SetPaymentInfo("DE02120300000000202051", "Jane Doe", "BYLADEM1001", "Deutsche Kreditbank", true))

	lines := strings.Split(inv.Footer(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "See you next month.", lines[1])
	assert.Contains(t, lines[2], "DE02120300000000202051")
}

func TestInvoice_SetFooterBoilerplate(t *testing.T) {
	provider := refdata.NewStaticProvider()
	taxExempt, err := provider.LookupTranslation("en", refdata.KeyTaxExemptNote)
	require.NoError(t, err)
	thankYou, err := provider.LookupTranslation("en", refdata.KeyThankYouNote)
	require.NoError(t, err)

	inv := newTestInvoice(t)

	// Net equals gross: tax-exempt notice is prepended.
	require.NoError(t, inv.SetFooter("Custom note"))
	assert.Equal(t, taxExempt+"\n"+"Custom note", inv.Footer())

	// Each call overwrites the previous footer.
	require.NoError(t, inv.SetFooter("Other note"))
	assert.Equal(t, taxExempt+"\n"+"Other note", inv.Footer())

	// Once a taxed item exists the thank-you note is used instead.
	inv.AddProduct("Taxed", dec("100"), dec("19"), dec("119"))
	require.NoError(t, inv.SetFooter("Other note"))
	assert.Equal(t, thankYou+"\n"+"Other note", inv.Footer())
}

func TestInvoice_TranslationErrors(t *testing.T) {
	inv := invoice.New(refdata.NewStaticProvider())

	// No locale configured at all.
	err := inv.SetFooter("note")
	assert.ErrorIs(t, err, invoice.ErrLocaleNotSet)

	// Locale without a string table.
	inv.SetLocale("fr")
	err = inv.SetFooter("note")
	assert.ErrorIs(t, err, invoice.ErrTranslationKeyNotFound)

	var keyErr *invoice.TranslationKeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "fr", keyErr.Locale)
}

func TestInvoice_SumsAcrossAdditions(t *testing.T) {
	inv := newTestInvoice(t)
	inv.AddProduct("A", dec("10.10"), dec("0"), dec("10.10"))
	inv.AddProduct("A", dec("10.10"), dec("0"), dec("10.10"))
	inv.AddProduct("B", dec("5.25"), dec("19"), dec("6.25"))

	assert.True(t, inv.NetSum().Equal(dec("25.45")), "got %s", inv.NetSum())
	assert.True(t, inv.GrossSum().Equal(dec("26.45")), "got %s", inv.GrossSum())
}

func TestInvoice_RenderEndToEnd(t *testing.T) {
	// GIVEN: one untaxed product, seller and buyer set, currency EUR,
	//        locale "en"
	// WHEN: rendering
	// THEN: a document is produced, the footer begins with the
	//       tax-exempt notice, and the subtotals match

	provider := refdata.NewStaticProvider()
	inv := invoice.New(provider)
	inv.SetLocale("en")
	inv.SetID("2024-001")
	require.NoError(t, inv.SetCurrency("EUR"))
	require.NoError(t, inv.SetDates(
		time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 19, 0, 0, 0, 0, time.UTC),
	))
	inv.SetSeller(testParty("Jane Doe Consulting"))
	inv.SetBuyer(testParty("ACME GmbH"))
	inv.AddProduct("Workshop day", dec("50"), dec("0"), dec("50"))

	encoded, err := inv.Render()
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF-"), "payload is a PDF document")

	taxExempt, err := provider.LookupTranslation("en", refdata.KeyTaxExemptNote)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(inv.Footer(), taxExempt))

	net, err := inv.FormatCurrency(inv.NetSum())
	require.NoError(t, err)
	gross, err := inv.FormatCurrency(inv.GrossSum())
	require.NoError(t, err)
	assert.Equal(t, "€50.00", net)
	assert.Equal(t, "€50.00", gross)
}

func TestInvoice_RenderTaxedWithVATID(t *testing.T) {
	inv := newTestInvoice(t)
	require.NoError(t, inv.SetCurrency("EUR"))
	inv.SetVATID("DE123456789")
	inv.SetSeller(testParty("Jane Doe Consulting"))
	inv.SetBuyer(testParty("ACME GmbH"))
	inv.AddProduct("Consulting", dec("100"), dec("19"), dec("119"))
	inv.AddProduct("Consulting", dec("100"), dec("19"), dec("119"))

	data, err := inv.RenderPDF()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

func testParty(name string) models.Party {
	return models.Party{
		Name:    name,
		Street:  "Example Street 1",
		Zip:     "10115",
		City:    "Berlin",
		Country: "Germany",
	}
}
