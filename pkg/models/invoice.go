// Package models holds the flat value records exchanged between the
// invoice aggregate and the layout renderer.
package models

import "github.com/shopspring/decimal"

// Party identifies one side of the invoice (seller or buyer).
// All fields are required once the party is set.
type Party struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// AddressLines returns the party's address as display lines in the
// order the layout prints them.
func (p Party) AddressLines() []string {
	return []string{p.Street, p.Zip + " " + p.City, p.Country}
}

// PaymentInfo carries the bank details printed into the footer.
type PaymentInfo struct {
	IBAN        string `json:"iban"`
	AccountName string `json:"account_name"`
	BIC         string `json:"bic"`
	BankName    string `json:"bank_name"`
}

// LineItem is one finalized invoice row: a distinct product with the
// number of times it was added. Prices are per unit; the full-quantity
// amounts shown on the document are unit price times quantity.
type LineItem struct {
	Description string
	Quantity    int
	NetPrice    decimal.Decimal
	TaxRate     decimal.Decimal
	GrossPrice  decimal.Decimal
}

// TotalNet is the net amount for the full quantity.
func (li LineItem) TotalNet() decimal.Decimal {
	return li.NetPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// TotalGross is the gross amount for the full quantity.
func (li LineItem) TotalGross() decimal.Decimal {
	return li.GrossPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
