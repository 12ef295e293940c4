package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"kostmanager/kost"
	"kostmanager/kost/aggregate"
	"kostmanager/kost/engine"
)

// paymentRows joins the session's payments with tenant and room display
// fields and applies the standard filter flags.
func paymentRows(cmd *cobra.Command, e *engine.Engine) ([]aggregate.PaymentRow, error) {
	search, _ := cmd.Flags().GetString("search")
	status, _ := cmd.Flags().GetString("status")
	from, err := parseDateFlag(cmd, "from")
	if err != nil {
		return nil, err
	}
	to, err := parseDateFlag(cmd, "to")
	if err != nil {
		return nil, err
	}

	st := e.Store()
	rows := aggregate.EnhanceWithRelations(st.Payments(), st.Tenants(), st.Rooms())
	return aggregate.FilterPayments(rows, aggregate.PaymentFilter{
		Search: search,
		Status: kost.PaymentStatus(status),
		From:   from,
		To:     to,
	}), nil
}

func addPaymentFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "Match tenant name or room number")
	cmd.Flags().String("status", "", "Filter by status (paid|pending|overdue)")
	cmd.Flags().String("from", "", "Due date range start (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Due date range end (YYYY-MM-DD)")
}

func PaymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "List payments with status totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			rows, err := paymentRows(cmd, e)
			if err != nil {
				return err
			}

			now := time.Now()
			fmt.Printf("%-36s  %-20s  %-6s  %-14s  %-12s  %-12s  %s\n",
				"ID", "Tenant", "Room", "Amount", "Due", "Paid On", "Status")
			for _, row := range rows {
				// The display status is derived per read; the stored
				// status is never mutated by the clock.
				display := engine.DerivePaymentStatus(row.Payment, now)
				fmt.Printf("%-36s  %-20s  %-6s  %-14s  %-12s  %-12s  %s\n",
					row.ID, row.TenantName, row.RoomNumber, formatRupiah(row.Amount),
					formatDate(row.DueDate), formatDatePtr(row.Date), display)
			}

			payments := make([]kost.Payment, len(rows))
			for i, row := range rows {
				payments[i] = row.Payment
			}
			sum := aggregate.Financial(payments, now)
			fmt.Printf("\nTotal paid:    %s\n", formatRupiah(sum.Paid))
			fmt.Printf("Total pending: %s\n", formatRupiah(sum.Pending))
			fmt.Printf("Total overdue: %s\n", formatRupiah(sum.Overdue))
			return nil
		},
	}

	addDataFlags(cmd)
	addPaymentFilterFlags(cmd)

	return cmd
}

func RecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a payment",
		Long:  `Records a payment. With --payment-id pointing at an existing record the record is settled: merged with the given fields and marked paid. Without it a new payment is created.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			paymentID, _ := cmd.Flags().GetString("payment-id")
			tenantID, _ := cmd.Flags().GetString("tenant")
			roomID, _ := cmd.Flags().GetString("room")
			amount, _ := cmd.Flags().GetFloat64("amount")
			method, _ := cmd.Flags().GetString("method")
			notes, _ := cmd.Flags().GetString("notes")
			due, err := parseDateFlag(cmd, "due")
			if err != nil {
				return err
			}
			paid, err := parseDateFlag(cmd, "date")
			if err != nil {
				return err
			}

			in := engine.PaymentInput{
				TenantID:      tenantID,
				RoomID:        roomID,
				Amount:        amount,
				Date:          paid,
				PaymentMethod: method,
				Notes:         notes,
			}
			if due != nil {
				in.DueDate = *due
			}

			p, err := e.RecordPayment(paymentID, in)
			if err != nil {
				return err
			}

			fmt.Printf("Recorded payment %s (%s, %s)\n", p.ID, formatRupiah(p.Amount), p.Status)
			return saveIfRequested(cmd, e)
		},
	}

	addDataFlags(cmd)
	addSaveFlag(cmd)
	cmd.Flags().String("payment-id", "", "Existing payment to settle")
	cmd.Flags().String("tenant", "", "Tenant id")
	cmd.Flags().String("room", "", "Room id (default: the tenant's room)")
	cmd.Flags().Float64("amount", 0, "Amount")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("date", "", "Payment date (YYYY-MM-DD)")
	cmd.Flags().String("method", "", "Payment method")
	cmd.Flags().String("notes", "", "Notes")

	return cmd
}
