package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kostmanager/internal/settings"
)

func SettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change persisted settings",
	}

	cmd.AddCommand(settingsShowCmd(), settingsSetCmd())

	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the persisted settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := settings.Open()
			if err != nil {
				return err
			}
			s, err := settings.Load(db)
			if err != nil {
				return err
			}

			fmt.Printf("Profile:   %s <%s> (%s)\n", s.ProfileName, s.ProfileEmail, s.ProfileRole)
			fmt.Printf("Property:  %s, %s, %s\n", s.PropertyName, s.PropertyAddress, s.PropertyCity)
			fmt.Printf("Contact:   %s / %s\n", s.PropertyPhone, s.PropertyEmail)
			fmt.Printf("Locale:    language=%s currency=%s dates=%s theme=%s\n", s.Language, s.Currency, s.DateFormat, s.Theme)
			fmt.Printf("Notify:    email=%t payments=%t maintenance=%t new-tenants=%t\n",
				s.EmailNotifications, s.PaymentReminders, s.MaintenanceUpdates, s.NewTenantAlerts)
			fmt.Printf("Security:  2fa=%t session-timeout=%dm login-alerts=%t\n",
				s.TwoFactorEnabled, s.SessionTimeoutMinutes, s.LoginNotifications)
			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update persisted settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := settings.Open()
			if err != nil {
				return err
			}
			s, err := settings.Load(db)
			if err != nil {
				return err
			}

			setString := func(flag string, dst *string) {
				if cmd.Flags().Changed(flag) {
					v, _ := cmd.Flags().GetString(flag)
					*dst = v
				}
			}
			setString("profile-name", &s.ProfileName)
			setString("profile-email", &s.ProfileEmail)
			setString("property-name", &s.PropertyName)
			setString("property-address", &s.PropertyAddress)
			setString("property-city", &s.PropertyCity)
			setString("property-phone", &s.PropertyPhone)
			setString("property-email", &s.PropertyEmail)
			setString("language", &s.Language)
			setString("currency", &s.Currency)
			setString("date-format", &s.DateFormat)
			setString("theme", &s.Theme)

			if cmd.Flags().Changed("payment-reminders") {
				s.PaymentReminders, _ = cmd.Flags().GetBool("payment-reminders")
			}
			if cmd.Flags().Changed("session-timeout") {
				s.SessionTimeoutMinutes, _ = cmd.Flags().GetInt("session-timeout")
			}

			if err := settings.Save(db, s); err != nil {
				return err
			}
			fmt.Println("Settings saved")
			return nil
		},
	}

	cmd.Flags().String("profile-name", "", "Profile name")
	cmd.Flags().String("profile-email", "", "Profile email")
	cmd.Flags().String("property-name", "", "Property name")
	cmd.Flags().String("property-address", "", "Property address")
	cmd.Flags().String("property-city", "", "Property city")
	cmd.Flags().String("property-phone", "", "Property phone")
	cmd.Flags().String("property-email", "", "Property email")
	cmd.Flags().String("language", "", "Interface language")
	cmd.Flags().String("currency", "", "Display currency")
	cmd.Flags().String("date-format", "", "Date format")
	cmd.Flags().String("theme", "", "Theme")
	cmd.Flags().Bool("payment-reminders", true, "Enable payment reminders")
	cmd.Flags().Int("session-timeout", 30, "Session timeout in minutes")

	return cmd
}
