package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"kostmanager/kost/aggregate"
)

func SummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show financial and occupancy summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			st := e.Store()
			now := time.Now()

			fin := aggregate.Financial(st.Payments(), now)
			occ := aggregate.Occupancy(st.Rooms())

			fmt.Println("Financial")
			fmt.Printf("  Paid:           %s\n", formatRupiah(fin.Paid))
			fmt.Printf("  Pending:        %s\n", formatRupiah(fin.Pending))
			fmt.Printf("  Overdue:        %s\n", formatRupiah(fin.Overdue))
			fmt.Printf("  Monthly income: %s\n", formatRupiah(fin.MonthlyIncome))

			fmt.Println("Occupancy")
			fmt.Printf("  Total:       %d\n", occ.Total)
			fmt.Printf("  Occupied:    %d\n", occ.Occupied)
			fmt.Printf("  Vacant:      %d\n", occ.Vacant)
			fmt.Printf("  Maintenance: %d\n", occ.Maintenance)
			fmt.Printf("  Rate:        %.0f%%\n", occ.OccupancyRate*100)
			return nil
		},
	}

	addDataFlags(cmd)

	return cmd
}
