// Package export renders the derived reports into the printable artifacts the
// vessel actually files: PDF sheets matching the historic paper forms and an
// Excel workbook for the office. Renderers are pure functions from report
// structs to bytes; they never touch storage.
package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/ledger"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/report"
)

func periodLabel(cfg *model.ReportSettings) string {
	return cfg.ReportMonth + "/" + cfg.ReportYear
}

func newPortrait() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()
	return pdf
}

func newLandscape() *fpdf.Fpdf {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	return pdf
}

func header(pdf *fpdf.Fpdf, cfg *model.ReportSettings, title string) {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	vessel := cfg.VesselName
	if vessel == "" {
		vessel = "M/V"
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, vessel, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Period: "+periodLabel(cfg), "", 1, "C", false, 0, "")
	pdf.Ln(3)
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return buf.Bytes(), nil
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

// PayrollPDF renders the salary deduction sheet: the EUR group, the USD group
// and a signature line per member so the sheet can be countersigned on board.
func PayrollPDF(r *report.PayrollReport, cfg *model.ReportSettings) ([]byte, error) {
	pdf := newPortrait()
	header(pdf, cfg, "Bonded Store - Crew Deduction List")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	colRank := contentW * 0.18
	colName := contentW * 0.37
	colAmount := contentW * 0.20
	colSign := contentW * 0.25

	group := func(label, symbol string, entries []report.PayrollEntry, total decimal.Decimal) {
		if len(entries) == 0 {
			return
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6, label, "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(colRank, 6, "Rank", "B", 0, "L", false, 0, "")
		pdf.CellFormat(colName, 6, "Name", "B", 0, "L", false, 0, "")
		pdf.CellFormat(colAmount, 6, "Amount", "B", 0, "R", false, 0, "")
		pdf.CellFormat(colSign, 6, "Signature", "B", 1, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 8)
		for _, e := range entries {
			name := e.Name
			if !e.IsActive {
				name += " (signed off)"
			}
			pdf.CellFormat(colRank, 7, e.Rank, "", 0, "L", false, 0, "")
			pdf.CellFormat(colName, 7, name, "", 0, "L", false, 0, "")
			pdf.CellFormat(colAmount, 7, symbol+money(e.Deduction), "", 0, "R", false, 0, "")
			pdf.CellFormat(colSign, 7, "", "B", 1, "C", false, 0, "")
		}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(colRank+colName, 7, "Total "+label, "T", 0, "L", false, 0, "")
		pdf.CellFormat(colAmount, 7, symbol+money(total), "T", 0, "R", false, 0, "")
		pdf.CellFormat(colSign, 7, "", "T", 1, "C", false, 0, "")
		pdf.Ln(4)
	}

	group("EUR", "EUR ", r.EUR, r.TotalEUR)
	group("USD", "USD ", r.USD, r.TotalUSD)

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 7, "Grand total (EUR): EUR "+money(r.GrandTotalEUR), "T", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	master := cfg.MasterName
	if master == "" {
		master = "Master"
	}
	pdf.CellFormat(contentW/2, 6, master, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "Signature: ____________________", "", 1, "R", false, 0, "")

	return output(pdf)
}

// InventoryPDF renders the stock movement sheet, one row per product.
func InventoryPDF(rows []report.InventoryRow, cfg *model.ReportSettings) ([]byte, error) {
	pdf := newLandscape()
	header(pdf, cfg, "Bonded Store - Inventory Report")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	headers := []string{"Product", "Category", "Unit", "Initial", "Add 1", "Add 2", "Add 3", "Supplied", "Crew", "Repr.", "Out", "Final"}
	widths := []float64{0.22, 0.14, 0.06, 0.07, 0.06, 0.06, 0.06, 0.08, 0.07, 0.07, 0.06, 0.05}

	pdf.SetFont("Helvetica", "B", 7)
	for i, h := range headers {
		align := "R"
		if i < 3 {
			align = "L"
		}
		pdf.CellFormat(contentW*widths[i], 6, h, "B", 0, align, false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 7)
	for _, row := range rows {
		cells := []string{
			row.Name, row.Category, row.UnitType,
			fmt.Sprint(row.Initial), fmt.Sprint(row.Added1), fmt.Sprint(row.Added2), fmt.Sprint(row.Added3),
			fmt.Sprint(row.TotalAdded), fmt.Sprint(row.SoldToCrew), fmt.Sprint(row.GivenToReps),
			fmt.Sprint(row.TotalOut), fmt.Sprint(row.FinalStock),
		}
		for i, c := range cells {
			align := "R"
			if i < 3 {
				align = "L"
			}
			pdf.CellFormat(contentW*widths[i], 5, c, "", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	return output(pdf)
}

// MonthlyPDF renders the per-category consumption sheet with the value
// columns, ending in the grand total row.
func MonthlyPDF(r *report.MonthlyReport, cfg *model.ReportSettings) ([]byte, error) {
	pdf := newLandscape()
	header(pdf, cfg, "Bonded Store - Monthly Consumption Report")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	headers := []string{"Product", "Unit", "Price/U", "Initial", "Supplied", "Crew", "Chart.", "Owner", "Consumed", "Ending", "Ending Val"}
	widths := []float64{0.22, 0.06, 0.08, 0.08, 0.09, 0.08, 0.08, 0.08, 0.09, 0.07, 0.07}

	writeHeaders := func() {
		pdf.SetFont("Helvetica", "B", 7)
		for i, h := range headers {
			align := "R"
			if i < 2 {
				align = "L"
			}
			pdf.CellFormat(contentW*widths[i], 6, h, "B", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	for _, cat := range r.Categories {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 7, cat.Category, "", 1, "L", false, 0, "")
		writeHeaders()

		pdf.SetFont("Helvetica", "", 7)
		for _, item := range cat.Items {
			cells := []string{
				item.Name, item.UnitType, money(item.PricePerUnit),
				fmt.Sprint(item.InitialQty), fmt.Sprint(item.TotalSupplyQty),
				fmt.Sprint(item.CrewQty), fmt.Sprint(item.ChartQty), fmt.Sprint(item.OwnQty),
				fmt.Sprint(item.ConsumptionQty), fmt.Sprint(item.EndingQty), money(item.EndingVal),
			}
			for i, c := range cells {
				align := "R"
				if i < 2 {
					align = "L"
				}
				pdf.CellFormat(contentW*widths[i], 5, c, "", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW*0.6, 7, "Totals (EUR)", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 7,
		fmt.Sprintf("Consumed %s   Ending %s", money(r.Totals.ConsumptionVal), money(r.Totals.EndingVal)),
		"T", 1, "R", false, 0, "")

	return output(pdf)
}

// RepresentationPDF renders the weekly charterer/owner sheet.
func RepresentationPDF(r *report.RepresentationReport, cfg *model.ReportSettings) ([]byte, error) {
	pdf := newLandscape()
	header(pdf, cfg, "Bonded Store - Representation Report")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	colName := contentW * 0.20
	colPrice := contentW * 0.07
	colWeek := contentW * 0.05
	colQty := contentW * 0.055
	colVal := contentW * 0.08

	writeHeaders := func() {
		pdf.SetFont("Helvetica", "B", 6.5)
		pdf.CellFormat(colName, 6, "Product", "B", 0, "L", false, 0, "")
		pdf.CellFormat(colPrice, 6, "Price", "B", 0, "R", false, 0, "")
		for w := 1; w <= ledger.WeekBuckets; w++ {
			pdf.CellFormat(colWeek, 6, fmt.Sprintf("C W%d", w), "B", 0, "R", false, 0, "")
		}
		pdf.CellFormat(colQty, 6, "C Qty", "B", 0, "R", false, 0, "")
		pdf.CellFormat(colVal, 6, "C Val", "B", 0, "R", false, 0, "")
		pdf.CellFormat(colQty, 6, "O Qty", "B", 0, "R", false, 0, "")
		pdf.CellFormat(colVal, 6, "O Val", "B", 1, "R", false, 0, "")
	}

	for _, cat := range r.Categories {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 7, cat.Category, "", 1, "L", false, 0, "")
		writeHeaders()

		pdf.SetFont("Helvetica", "", 6.5)
		for _, item := range cat.Items {
			pdf.CellFormat(colName, 5, item.Name, "", 0, "L", false, 0, "")
			pdf.CellFormat(colPrice, 5, money(item.Price), "", 0, "R", false, 0, "")
			for _, q := range item.ChartWeeks {
				pdf.CellFormat(colWeek, 5, fmt.Sprint(q), "", 0, "R", false, 0, "")
			}
			pdf.CellFormat(colQty, 5, fmt.Sprint(item.ChartQty), "", 0, "R", false, 0, "")
			pdf.CellFormat(colVal, 5, money(item.ChartVal), "", 0, "R", false, 0, "")
			pdf.CellFormat(colQty, 5, fmt.Sprint(item.OwnQty), "", 0, "R", false, 0, "")
			pdf.CellFormat(colVal, 5, money(item.OwnVal), "", 1, "R", false, 0, "")
		}
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 7,
		fmt.Sprintf("Charterer total: EUR %s    Owner total: EUR %s", money(r.ChartTotal), money(r.OwnTotal)),
		"T", 1, "R", false, 0, "")

	return output(pdf)
}

// HistoryPDF renders the distribution log, one line per transaction with its
// items inlined.
func HistoryPDF(txs []model.Transaction, cfg *model.ReportSettings) ([]byte, error) {
	pdf := newPortrait()
	header(pdf, cfg, "Bonded Store - Distribution History")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	colDate := contentW * 0.14
	colType := contentW * 0.16
	colRecipient := contentW * 0.30
	colItems := contentW * 0.26
	colTotal := contentW * 0.14

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(colDate, 6, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colType, 6, "Type", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colRecipient, 6, "Recipient", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colItems, 6, "Items", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colTotal, 6, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, tx := range txs {
		items := ""
		for i, item := range tx.Items {
			if i > 0 {
				items += ", "
			}
			items += fmt.Sprintf("%s x%d", item.ProductName, item.Quantity)
		}
		if len(items) > 48 {
			items = items[:47] + "…"
		}
		label := tx.Type
		if tx.Type == model.TypeRepresentation && tx.RepresentationType != "" {
			label = tx.RepresentationType
		}
		pdf.CellFormat(colDate, 6, tx.IssuedOn.Format("02/01/2006"), "", 0, "L", false, 0, "")
		pdf.CellFormat(colType, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(colRecipient, 6, tx.RecipientName, "", 0, "L", false, 0, "")
		pdf.CellFormat(colItems, 6, items, "", 0, "L", false, 0, "")
		pdf.CellFormat(colTotal, 6, money(tx.TotalAmount), "", 1, "R", false, 0, "")
	}

	return output(pdf)
}

// OrderSheetPDF renders the blank weekly order grid: crew rows down the left,
// product columns across. Large catalogs continue onto extra column pages.
func OrderSheetPDF(sheet *report.OrderSheet, cfg *model.ReportSettings) ([]byte, error) {
	pdf := newLandscape()

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	colCrew := contentW * 0.22
	colProduct := (contentW - colCrew) / 12 // 12 product columns per page

	for start := 0; start == 0 || start < len(sheet.Products); start += 12 {
		if start > 0 {
			pdf.AddPage()
		}
		header(pdf, cfg, "Bonded Store - Order Sheet  "+sheet.IssueDate.Format("02/01/2006"))

		end := start + 12
		if end > len(sheet.Products) {
			end = len(sheet.Products)
		}
		page := sheet.Products[start:end]

		pdf.SetFont("Helvetica", "B", 6)
		pdf.CellFormat(colCrew, 14, "Crew member", "1", 0, "L", false, 0, "")
		for _, p := range page {
			name := p.Name
			if len(name) > 14 {
				name = name[:13] + "."
			}
			pdf.CellFormat(colProduct, 14, name, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 7)
		for _, m := range sheet.Crew {
			pdf.CellFormat(colCrew, 7, m.Rank+"  "+m.Name, "1", 0, "L", false, 0, "")
			for range page {
				pdf.CellFormat(colProduct, 7, "", "1", 0, "C", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	return output(pdf)
}
