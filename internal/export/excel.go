package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/report"
)

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// Workbook builds the office export: one .xlsx with Inventory, Payroll and
// Monthly sheets. Decimal values are written as floats — the workbook is for
// reading, the EUR-exact numbers live in the JSON reports.
func Workbook(inv []report.InventoryRow, pay *report.PayrollReport, monthly *report.MonthlyReport, cfg *model.ReportSettings) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	_ = f.SetDocProps(&excelize.DocProperties{
		Title:   cfg.VesselName + " bonded store " + periodLabel(cfg),
		Creator: "bonded-stores-manager",
	})

	const invSheet = "Inventory"
	if err := f.SetSheetName("Sheet1", invSheet); err != nil {
		return nil, err
	}
	if err := setRow(f, invSheet, 1, []interface{}{
		"Product", "Category", "Unit", "Initial", "Added 1", "Added 2", "Added 3",
		"Total Added", "Crew", "Representation", "Total Out", "Final",
	}); err != nil {
		return nil, err
	}
	for i, row := range inv {
		if err := setRow(f, invSheet, i+2, []interface{}{
			row.Name, row.Category, row.UnitType, row.Initial, row.Added1, row.Added2, row.Added3,
			row.TotalAdded, row.SoldToCrew, row.GivenToReps, row.TotalOut, row.FinalStock,
		}); err != nil {
			return nil, err
		}
	}

	const paySheet = "Payroll"
	if _, err := f.NewSheet(paySheet); err != nil {
		return nil, err
	}
	if err := setRow(f, paySheet, 1, []interface{}{"Rank", "Name", "Currency", "Deduction", "Deduction EUR", "Active"}); err != nil {
		return nil, err
	}
	row := 2
	for _, entries := range [][]report.PayrollEntry{pay.EUR, pay.USD} {
		for _, e := range entries {
			if err := setRow(f, paySheet, row, []interface{}{
				e.Rank, e.Name, e.Currency,
				e.Deduction.InexactFloat64(), e.DeductionEUR.InexactFloat64(), e.IsActive,
			}); err != nil {
				return nil, err
			}
			row++
		}
	}
	if err := setRow(f, paySheet, row+1, []interface{}{
		"", "Totals", "",
		fmt.Sprintf("EUR %s / USD %s", pay.TotalEUR.StringFixed(2), pay.TotalUSD.StringFixed(2)),
		pay.GrandTotalEUR.InexactFloat64(), "",
	}); err != nil {
		return nil, err
	}

	const monSheet = "Monthly"
	if _, err := f.NewSheet(monSheet); err != nil {
		return nil, err
	}
	if err := setRow(f, monSheet, 1, []interface{}{
		"Category", "Product", "Unit", "Price/Unit", "Initial", "Supplied",
		"Crew", "Charterer", "Owner", "Consumed", "Ending", "Ending Value",
	}); err != nil {
		return nil, err
	}
	row = 2
	for _, cat := range monthly.Categories {
		for _, item := range cat.Items {
			if err := setRow(f, monSheet, row, []interface{}{
				cat.Category, item.Name, item.UnitType, item.PricePerUnit.InexactFloat64(),
				item.InitialQty, item.TotalSupplyQty,
				item.CrewQty, item.ChartQty, item.OwnQty,
				item.ConsumptionQty, item.EndingQty, item.EndingVal.InexactFloat64(),
			}); err != nil {
				return nil, err
			}
			row++
		}
	}
	if err := setRow(f, monSheet, row+1, []interface{}{
		"", "Totals", "", "", "", "", "", "", "", "",
		monthly.Totals.ConsumptionVal.InexactFloat64(), monthly.Totals.EndingVal.InexactFloat64(),
	}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
