package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kostmanager/kost/notify"
)

func RemindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind [payment-id]",
		Short: "Print the WhatsApp reminder link for a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			property, _ := cmd.Flags().GetString("property")

			p, ok := e.Store().GetPayment(args[0])
			if !ok {
				return fmt.Errorf("payment %s not found", args[0])
			}
			tenant, ok := e.Store().GetTenant(p.TenantID)
			if !ok {
				return fmt.Errorf("payment %s has no resolvable tenant", args[0])
			}

			message := notify.ReminderMessage(property, tenant.Name, p)
			if message == "" {
				fmt.Printf("No reminder template for payment status %q\n", p.Status)
				return nil
			}
			fmt.Println(notify.WhatsAppLink(tenant.Phone, notify.Encode(message)))
			return nil
		},
	}

	addDataFlags(cmd)
	cmd.Flags().String("property", notify.DefaultPropertyName, "Property name signing the message")

	return cmd
}
