// Package export writes the transaction log as an XLSX statement.
package export

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the statement rows.
const SheetName = "Statement"

// ContentType is the MIME type of the written workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var headers = []string{"Date", "Type", "Recipient", "Recipient ID", "Category", "Note", "Status", "Amount"}

var widths = []float64{18, 10, 24, 24, 14, 30, 12, 14}

// SignedAmount is the effect of tx on the balance: receives are positive, everything else negative.
func SignedAmount(tx models.Transaction) decimal.Decimal {
	if tx.Type == models.RECEIVE {
		return tx.Amount
	}
	return tx.Amount.Neg()
}

// Statement writes txs to w as a workbook, newest first. Dates are rendered in loc.
func Statement(w io.Writer, txs []models.Transaction, loc *time.Location) error {
	rows := append([]models.Transaction(nil), txs...)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for i, h := range headers {
		if err := setCell(f, i+1, 1, h); err != nil {
			return err
		}
	}

	for idx, tx := range rows {
		row := idx + 2
		values := []interface{}{
			tx.Date.In(loc).Format("2006-01-02 15:04"),
			string(tx.Type),
			tx.Recipient,
			tx.RecipientId,
			tx.Category,
			tx.Note,
			string(tx.Status),
			SignedAmount(tx).InexactFloat64(),
		}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return err
			}
		}
	}

	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, cell, v); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}
