package invoice_test

import (
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"invoicer/internal/invoice"
	"invoicer/internal/refdata"
	"invoicer/pkg/models"
)

// Example demonstrates the construct-configure-render lifecycle.
func Example() {
	inv := invoice.New(refdata.NewStaticProvider())
	inv.SetLocale("en")
	inv.SetID("2024-042")

	if err := inv.SetCurrency("EUR"); err != nil {
		log.Fatal(err)
	}

	inv.SetSeller(models.Party{
		Name: "Jane Doe Consulting", Street: "Example Street 1",
		Zip: "10115", City: "Berlin", Country: "Germany",
	})
	inv.SetBuyer(models.Party{
		Name: "ACME GmbH", Street: "Industrieweg 7",
		Zip: "20095", City: "Hamburg", Country: "Germany",
	})

	// Identical additions collapse into one row with quantity 2.
	inv.AddProduct("Workshop day", decimal.NewFromInt(450), decimal.Zero, decimal.NewFromInt(450))
	inv.AddProduct("Workshop day", decimal.NewFromInt(450), decimal.Zero, decimal.NewFromInt(450))

	if err := inv.SetPaymentInfo("DE02120300000000202051", "Jane Doe", "BYLADEM1001", "Deutsche Kreditbank", true); err != nil {
		log.Fatal(err)
	}

	data, err := inv.RenderPDF()
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile("invoice.pdf", data, 0644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %d bytes\n", len(data))
}
