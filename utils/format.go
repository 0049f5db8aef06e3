package utils

import (
	"fmt"
	"time"
)

// DisplayTimeLayout is the order timestamp layout shown in history rows and
// export columns (DD/MM/YYYY HH:mm).
const DisplayTimeLayout = "02/01/2006 15:04"

// FileTimeLayout stamps export filenames (orders_YYYYMMDD_HHmmss.xlsx).
const FileTimeLayout = "20060102_150405"

// FormatAED formats a money amount the way the POS displays it.
// Example: 25.5 -> "AED 25.50"
func FormatAED(amount float64) string {
	return fmt.Sprintf("AED %.2f", amount)
}

// FormatDisplayTime formats an order timestamp for tables and receipts.
func FormatDisplayTime(t time.Time) string {
	return t.Format(DisplayTimeLayout)
}
