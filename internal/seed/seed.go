// Package seed provides the deterministic demo data set the CLI starts
// from when no snapshot file is given.
package seed

import (
	"time"

	"kostmanager/kost"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// Snapshot returns the demo data set. Tenant/room links are symmetric
// and occupied rooms always carry their tenant id.
func Snapshot() kost.Snapshot {
	return kost.Snapshot{
		Tenants: []kost.Tenant{
			{
				ID: "t1", Name: "Budi Santoso", Phone: "081234567801",
				Email: "budi@example.com", RoomID: "r1",
				StartDate: date(2023, time.June, 1), EndDate: date(2024, time.June, 1),
				Status: kost.TenantActive, PaymentStatus: kost.PaymentPaid,
				LastPaymentDate: datePtr(2024, time.January, 3),
			},
			{
				ID: "t2", Name: "Siti Rahayu", Phone: "081234567802",
				Email: "siti@example.com", RoomID: "r2",
				StartDate: date(2023, time.September, 15), EndDate: date(2024, time.September, 15),
				Status: kost.TenantActive, PaymentStatus: kost.PaymentPending,
			},
			{
				ID: "t3", Name: "Agus Wijaya", Phone: "081234567803",
				Email:     "agus@example.com",
				StartDate: date(2024, time.January, 1), EndDate: date(2025, time.January, 1),
				Status: kost.TenantActive, PaymentStatus: kost.PaymentPending,
			},
			{
				ID: "t4", Name: "Dewi Lestari", Phone: "081234567804",
				Email:     "dewi@example.com",
				StartDate: date(2022, time.March, 1), EndDate: date(2023, time.March, 1),
				Status: kost.TenantInactive, PaymentStatus: kost.PaymentPaid,
				LastPaymentDate: datePtr(2023, time.February, 28),
			},
		},
		Rooms: []kost.Room{
			{
				ID: "r1", Number: "101", Floor: "1", Type: kost.RoomSingle,
				Price: 1500000, Status: kost.RoomOccupied,
				Facilities: []string{"AC", "WiFi"}, TenantID: "t1",
			},
			{
				ID: "r2", Number: "102", Floor: "1", Type: kost.RoomDouble,
				Price: 2000000, Status: kost.RoomOccupied,
				Facilities: []string{"AC", "WiFi", "Bathroom"}, TenantID: "t2",
			},
			{
				ID: "r3", Number: "201", Floor: "2", Type: kost.RoomSingle,
				Price: 1500000, Status: kost.RoomVacant,
				Facilities: []string{"Fan", "WiFi"},
			},
			{
				ID: "r4", Number: "202", Floor: "2", Type: kost.RoomDeluxe,
				Price: 2500000, Status: kost.RoomMaintenance,
				Facilities: []string{"AC", "WiFi", "Bathroom", "TV"},
			},
		},
		Payments: []kost.Payment{
			{
				ID: "p1", TenantID: "t1", RoomID: "r1", Amount: 1500000,
				Date: datePtr(2024, time.January, 3), DueDate: date(2024, time.January, 10),
				Status: kost.PaymentPaid, PaymentMethod: "transfer",
			},
			{
				ID: "p2", TenantID: "t2", RoomID: "r2", Amount: 2000000,
				DueDate: date(2024, time.February, 10), Status: kost.PaymentPending,
			},
			{
				ID: "p3", TenantID: "t2", RoomID: "r2", Amount: 2000000,
				DueDate: date(2024, time.January, 10), Status: kost.PaymentOverdue,
				Notes: "second reminder sent",
			},
			{
				ID: "p4", TenantID: "t1", RoomID: "r1", Amount: 1500000,
				DueDate: date(2024, time.February, 10), Status: kost.PaymentPending,
			},
		},
		MaintenanceRequests: []kost.MaintenanceRequest{
			{
				ID: "m1", RoomID: "r4", Title: "Leaking roof",
				Description: "Water stains on the ceiling after heavy rain",
				Date:        date(2024, time.January, 20),
				Status:      kost.RequestInProgress, Priority: kost.PriorityHigh,
			},
			{
				ID: "m2", RoomID: "r2", TenantID: "t2", Title: "Broken AC remote",
				Date:   date(2024, time.February, 2),
				Status: kost.RequestPending, Priority: kost.PriorityLow,
			},
		},
	}
}
