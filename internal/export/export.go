// Package export writes filtered payment rows as CSV, mirroring the
// dashboard's download column set.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"kostmanager/kost/aggregate"
)

var paymentHeader = []string{"Tenant", "Room", "Amount", "Due Date", "Payment Date", "Status", "Payment Method", "Notes"}

// Payments writes one CSV row per payment row, header first.
func Payments(w io.Writer, rows []aggregate.PaymentRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(paymentHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %v", err)
	}
	for _, row := range rows {
		record := []string{
			row.TenantName,
			"Room " + row.RoomNumber,
			strconv.FormatFloat(row.Amount, 'f', -1, 64),
			formatDate(row.DueDate),
			formatDatePtr(row.Date),
			string(row.Status),
			row.PaymentMethod,
			row.Notes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %v", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}
