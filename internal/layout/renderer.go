package layout

// Input is the deterministic, fully formatted view the layout renders.
// Every monetary value and date arrives as a finished string; the
// layout only deals in positions.
type Input struct {
	SellerName  string
	SellerLines []string
	VATLabel    string
	VATID       string

	Title           string
	NumberLabel     string
	Number          string
	DateLabel       string
	Date            string
	BalanceDueLabel string
	BalanceDue      string
	BuyerLines      []string

	ItemLabel     string
	NetLabel      string
	TotalLabel    string
	Items         []ItemRow
	SubtotalLabel string
	SubtotalNet   string
	SubtotalGross string

	FooterLines []string
}

// ItemRow is one finalized product line: the quantity-prefixed label
// and the full-quantity net and gross amounts.
type ItemRow struct {
	Label string
	Net   string
	Gross string
}

// Fixed single-page A4 layout in millimeters. Section offsets are
// hardcoded relative to the page top; long text is not reflowed.
const (
	pageWidth    = 210.0
	marginLeft   = 20.0
	contentRight = pageWidth - marginLeft
	contentWidth = contentRight - marginLeft

	fontFamily = "Helvetica"

	headerNameY    = 22.0
	headerBlockY   = 30.0
	headerLineStep = 5.0
	headerVATY     = 50.0

	titleY     = 64.0
	topRuleY   = 68.0
	infoStartY = 76.0
	infoStep   = 6.0
	lowerRuleY = 98.0

	tableHeaderY = 110.0
	tableRuleGap = 3.0
	tableStartY  = 119.0
	tableRowStep = 9.0

	netColX   = 120.0
	netColW   = 30.0
	totalColX = 155.0
	totalColW = 35.0

	footerStartY = 268.0
	footerStep   = 5.0
)

// Compose lays the invoice view out into the instruction stream. It is
// a pure function: equal inputs yield identical instructions.
func Compose(in Input) []Instruction {
	var out []Instruction

	out = append(out, header(in)...)
	out = append(out, infoBlock(in)...)
	out = append(out, itemTable(in)...)
	out = append(out, footer(in)...)
	return out
}

// header: seller name large and bold, right-aligned contact block,
// then the VAT id line.
func header(in Input) []Instruction {
	out := []Instruction{
		SetTextColor{R: 0, G: 0, B: 0},
		SetFont{Family: fontFamily, Style: "B", Size: 22},
		Text{X: marginLeft, Y: headerNameY, Text: in.SellerName},
		SetFont{Family: fontFamily, Size: 10},
	}
	y := headerBlockY
	for _, line := range in.SellerLines {
		out = append(out, Text{X: marginLeft, Y: y, W: contentWidth, Align: AlignRight, Text: line})
		y += headerLineStep
	}
	if in.VATID != "" {
		out = append(out, Text{X: marginLeft, Y: headerVATY, Text: in.VATLabel + ": " + in.VATID})
	}
	return out
}

// infoBlock: document title, rule, left column with number/date/balance
// due, right column with the buyer block, closing rule.
func infoBlock(in Input) []Instruction {
	out := []Instruction{
		SetFont{Family: fontFamily, Style: "B", Size: 16},
		Text{X: marginLeft, Y: titleY, Text: in.Title},
		Line{X1: marginLeft, Y1: topRuleY, X2: contentRight, Y2: topRuleY},
		SetFont{Family: fontFamily, Size: 10},
	}

	left := []string{
		in.NumberLabel + ": " + in.Number,
		in.DateLabel + ": " + in.Date,
		in.BalanceDueLabel + ": " + in.BalanceDue,
	}
	y := infoStartY
	for _, line := range left {
		out = append(out, Text{X: marginLeft, Y: y, Text: line})
		y += infoStep
	}

	y = infoStartY
	for _, line := range in.BuyerLines {
		out = append(out, Text{X: marginLeft, Y: y, W: contentWidth, Align: AlignRight, Text: line})
		y += infoStep
	}

	out = append(out, Line{X1: marginLeft, Y1: lowerRuleY, X2: contentRight, Y2: lowerRuleY})
	return out
}

// itemTable: translated header row, one row per finalized product with
// a rule underneath, then the bold subtotal row.
func itemTable(in Input) []Instruction {
	out := []Instruction{
		SetFont{Family: fontFamily, Style: "B", Size: 10},
		Text{X: marginLeft, Y: tableHeaderY, Text: in.ItemLabel},
		Text{X: netColX, Y: tableHeaderY, W: netColW, Align: AlignRight, Text: in.NetLabel},
		Text{X: totalColX, Y: tableHeaderY, W: totalColW, Align: AlignRight, Text: in.TotalLabel},
		Line{X1: marginLeft, Y1: tableHeaderY + tableRuleGap, X2: contentRight, Y2: tableHeaderY + tableRuleGap},
		SetFont{Family: fontFamily, Size: 10},
	}

	y := tableStartY
	for _, row := range in.Items {
		out = append(out,
			Text{X: marginLeft, Y: y, Text: row.Label},
			Text{X: netColX, Y: y, W: netColW, Align: AlignRight, Text: row.Net},
			Text{X: totalColX, Y: y, W: totalColW, Align: AlignRight, Text: row.Gross},
			Line{X1: marginLeft, Y1: y + tableRuleGap, X2: contentRight, Y2: y + tableRuleGap},
		)
		y += tableRowStep
	}

	out = append(out,
		SetFont{Family: fontFamily, Style: "B", Size: 10},
		Text{X: marginLeft, Y: y, Text: in.SubtotalLabel},
		Text{X: netColX, Y: y, W: netColW, Align: AlignRight, Text: in.SubtotalNet},
		Text{X: totalColX, Y: y, W: totalColW, Align: AlignRight, Text: in.SubtotalGross},
	)
	return out
}

// footer: centered lines stacked with fixed spacing.
func footer(in Input) []Instruction {
	out := []Instruction{
		SetFont{Family: fontFamily, Size: 9},
		SetTextColor{R: 60, G: 60, B: 60},
	}
	y := footerStartY
	for _, line := range in.FooterLines {
		out = append(out, Text{X: marginLeft, Y: y, W: contentWidth, Align: AlignCenter, Text: line})
		y += footerStep
	}
	return out
}
