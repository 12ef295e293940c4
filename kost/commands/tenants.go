package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"kostmanager/kost"
	"kostmanager/kost/aggregate"
	"kostmanager/kost/engine"
)

func TenantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenants",
		Short: "List tenants",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			search, _ := cmd.Flags().GetString("search")
			status, _ := cmd.Flags().GetString("status")

			tenants := aggregate.FilterTenants(e.Store().Tenants(), aggregate.TenantFilter{
				Search: search,
				Status: kost.TenantStatus(status),
			})

			fmt.Printf("%-36s  %-20s  %-14s  %-8s  %-8s  %-12s  %s\n",
				"ID", "Name", "Phone", "Status", "Payment", "Last Paid", "Room")
			for _, t := range tenants {
				fmt.Printf("%-36s  %-20s  %-14s  %-8s  %-8s  %-12s  %s\n",
					t.ID, t.Name, t.Phone, t.Status, t.PaymentStatus,
					formatDatePtr(t.LastPaymentDate), orDash(t.RoomID))
			}
			return nil
		},
	}

	addDataFlags(cmd)
	cmd.Flags().String("search", "", "Match name, phone or email")
	cmd.Flags().String("status", "", "Filter by status (active|inactive)")

	return cmd
}

func AddTenantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-tenant",
		Short: "Add a new tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("name")
			phone, _ := cmd.Flags().GetString("phone")
			email, _ := cmd.Flags().GetString("email")
			start, err := parseDateFlag(cmd, "start")
			if err != nil {
				return err
			}
			end, err := parseDateFlag(cmd, "end")
			if err != nil {
				return err
			}

			in := engine.TenantInput{Name: name, Phone: phone, Email: email}
			if start != nil {
				in.StartDate = *start
			} else {
				in.StartDate = time.Now()
			}
			if end != nil {
				in.EndDate = *end
			}

			tenant, err := e.CreateTenant(in)
			if err != nil {
				return err
			}

			fmt.Printf("Created tenant %s (%s)\n", tenant.ID, tenant.Name)
			return saveIfRequested(cmd, e)
		},
	}

	addDataFlags(cmd)
	addSaveFlag(cmd)
	cmd.Flags().String("name", "", "Tenant name")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("start", "", "Contract start date (YYYY-MM-DD, default today)")
	cmd.Flags().String("end", "", "Contract end date (YYYY-MM-DD)")

	return cmd
}
