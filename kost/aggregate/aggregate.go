// Package aggregate derives read-only views from entity snapshots:
// financial and occupancy summaries, denormalized payment rows and
// conjunctive record filters. Every function is pure and side-effect
// free; dangling references degrade to placeholder text instead of
// failing, because display must not crash on stale data.
package aggregate

import (
	"time"

	"kostmanager/kost"
)

// Financial sums payment amounts grouped by stored status. Monthly
// income counts paid payments whose payment date falls in now's month.
// The result is additive over disjoint payment sets.
func Financial(payments []kost.Payment, now time.Time) kost.FinancialSummary {
	var sum kost.FinancialSummary
	for _, p := range payments {
		switch p.Status {
		case kost.PaymentPaid:
			sum.Paid += p.Amount
			if p.Date != nil && p.Date.Year() == now.Year() && p.Date.Month() == now.Month() {
				sum.MonthlyIncome += p.Amount
			}
		case kost.PaymentPending:
			sum.Pending += p.Amount
		case kost.PaymentOverdue:
			sum.Overdue += p.Amount
		}
	}
	return sum
}

// Occupancy counts rooms by status. The rate is 0 for an empty input,
// never a division error.
func Occupancy(rooms []kost.Room) kost.OccupancySummary {
	sum := kost.OccupancySummary{Total: len(rooms)}
	for _, r := range rooms {
		switch r.Status {
		case kost.RoomOccupied:
			sum.Occupied++
		case kost.RoomVacant:
			sum.Vacant++
		case kost.RoomMaintenance:
			sum.Maintenance++
		}
	}
	if sum.Total > 0 {
		sum.OccupancyRate = float64(sum.Occupied) / float64(sum.Total)
	}
	return sum
}

// PaymentRow is a payment joined with its tenant's display name and
// room's display number.
type PaymentRow struct {
	kost.Payment
	TenantName string `json:"tenantName"`
	RoomNumber string `json:"roomNumber"`
}

// Unknown substitutes for a display field whose foreign key does not
// resolve.
const Unknown = "Unknown"

// EnhanceWithRelations joins each payment to its tenant name and room
// number, substituting Unknown when a reference fails to resolve.
func EnhanceWithRelations(payments []kost.Payment, tenants []kost.Tenant, rooms []kost.Room) []PaymentRow {
	names := make(map[string]string, len(tenants))
	for _, t := range tenants {
		names[t.ID] = t.Name
	}
	numbers := make(map[string]string, len(rooms))
	for _, r := range rooms {
		numbers[r.ID] = r.Number
	}

	out := make([]PaymentRow, 0, len(payments))
	for _, p := range payments {
		row := PaymentRow{Payment: p, TenantName: Unknown, RoomNumber: Unknown}
		if name, ok := names[p.TenantID]; ok {
			row.TenantName = name
		}
		if number, ok := numbers[p.RoomID]; ok {
			row.RoomNumber = number
		}
		out = append(out, row)
	}
	return out
}
