package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/utils"
)

const exportSheet = "Orders"

var exportHeader = []string{"Order ID", "Date", "Customer", "Table", "Subtotal", "VAT (5%)", "Total", "Items"}

// Exporter turns a filtered slice of the order history into a spreadsheet.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Filename stamps the download name, e.g. orders_20260831_153000.xlsx.
func (e *Exporter) Filename(now time.Time) string {
	return fmt.Sprintf("orders_%s.xlsx", now.Format(utils.FileTimeLayout))
}

// OrdersToExcel builds one worksheet with a row per order.
func (e *Exporter) OrdersToExcel(orders []models.Order) *excelize.File {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", exportSheet)

	for col, title := range exportHeader {
		f.SetCellValue(exportSheet, cellAxis(col, 1), title)
	}

	for i, order := range orders {
		row := i + 2
		f.SetCellValue(exportSheet, cellAxis(0, row), order.ID)
		f.SetCellValue(exportSheet, cellAxis(1, row), utils.FormatDisplayTime(order.Date))
		f.SetCellValue(exportSheet, cellAxis(2, row), order.CustomerName)
		f.SetCellValue(exportSheet, cellAxis(3, row), order.TableNumber)
		f.SetCellValue(exportSheet, cellAxis(4, row), fmt.Sprintf("%.2f", order.Subtotal))
		f.SetCellValue(exportSheet, cellAxis(5, row), fmt.Sprintf("%.2f", order.VAT))
		f.SetCellValue(exportSheet, cellAxis(6, row), fmt.Sprintf("%.2f", order.Total))
		f.SetCellValue(exportSheet, cellAxis(7, row), joinItems(order.Items))
	}
	return f
}

func cellAxis(col, row int) string {
	return fmt.Sprintf("%s%d", excelize.ToAlphaString(col), row)
}

// joinItems renders the line items column: "Soup (x2), Bread (x1)".
func joinItems(lines []models.CartLine) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = fmt.Sprintf("%s (x%d)", line.Item.Name, line.Quantity)
	}
	return strings.Join(parts, ", ")
}
