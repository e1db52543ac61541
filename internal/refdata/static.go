package refdata

// Translation keys used by the invoice layout and footer composition.
const (
	KeyInvoiceTitle  = "invoice_title"
	KeyInvoiceNumber = "invoice_number"
	KeyInvoiceDate   = "invoice_date"
	KeyBalanceDue    = "balance_due"
	KeyVATID         = "vat_id"
	KeyItem          = "item"
	KeyNet           = "net"
	KeyTotal         = "total"
	KeySubtotal      = "subtotal"
	KeyTaxExemptNote = "tax_exempt_note"
	KeyThankYouNote  = "thank_you_note"
)

// NewStaticProvider returns a provider backed by the built-in tables.
func NewStaticProvider() *TableProvider {
	return &TableProvider{
		currencies:   staticCurrencies,
		translations: staticTranslations,
	}
}

var staticCurrencies = map[string]Currency{
	"AUD": {Code: "AUD", SymbolNative: "$", DecimalDigits: 2},
	"BGN": {Code: "BGN", SymbolNative: "лв.", DecimalDigits: 2},
	"BRL": {Code: "BRL", SymbolNative: "R$", DecimalDigits: 2},
	"CAD": {Code: "CAD", SymbolNative: "$", DecimalDigits: 2},
	"CHF": {Code: "CHF", SymbolNative: "CHF", DecimalDigits: 2},
	"CNY": {Code: "CNY", SymbolNative: "¥", DecimalDigits: 2},
	"CZK": {Code: "CZK", SymbolNative: "Kč", DecimalDigits: 2},
	"DKK": {Code: "DKK", SymbolNative: "kr", DecimalDigits: 2},
	"EUR": {Code: "EUR", SymbolNative: "€", DecimalDigits: 2},
	"GBP": {Code: "GBP", SymbolNative: "£", DecimalDigits: 2},
	"HUF": {Code: "HUF", SymbolNative: "Ft", DecimalDigits: 0},
	"INR": {Code: "INR", SymbolNative: "₹", DecimalDigits: 2},
	"JPY": {Code: "JPY", SymbolNative: "¥", DecimalDigits: 0},
	"NOK": {Code: "NOK", SymbolNative: "kr", DecimalDigits: 2},
	"NZD": {Code: "NZD", SymbolNative: "$", DecimalDigits: 2},
	"PLN": {Code: "PLN", SymbolNative: "zł", DecimalDigits: 2},
	"RON": {Code: "RON", SymbolNative: "lei", DecimalDigits: 2},
	"SEK": {Code: "SEK", SymbolNative: "kr", DecimalDigits: 2},
	"TRY": {Code: "TRY", SymbolNative: "₺", DecimalDigits: 2},
	"USD": {Code: "USD", SymbolNative: "$", DecimalDigits: 2},
	"ZAR": {Code: "ZAR", SymbolNative: "R", DecimalDigits: 2},
}

var staticTranslations = map[string]map[string]string{
	"en": {
		KeyInvoiceTitle:  "Invoice",
		KeyInvoiceNumber: "Invoice number",
		KeyInvoiceDate:   "Date",
		KeyBalanceDue:    "Balance due",
		KeyVATID:         "VAT ID",
		KeyItem:          "Item",
		KeyNet:           "Net",
		KeyTotal:         "Total",
		KeySubtotal:      "Subtotal",
		KeyTaxExemptNote: "All amounts are exempt from VAT under the small business regulation.",
		KeyThankYouNote:  "Thank you for your business.",
	},
	"de": {
		KeyInvoiceTitle:  "Rechnung",
		KeyInvoiceNumber: "Rechnungsnummer",
		KeyInvoiceDate:   "Datum",
		KeyBalanceDue:    "Offener Betrag",
		KeyVATID:         "USt-IdNr.",
		KeyItem:          "Artikel",
		KeyNet:           "Netto",
		KeyTotal:         "Gesamt",
		KeySubtotal:      "Zwischensumme",
		KeyTaxExemptNote: "Gemäß Kleinunternehmerregelung wird keine Umsatzsteuer berechnet.",
		KeyThankYouNote:  "Vielen Dank für Ihren Auftrag.",
	},
}
