package aggregate

import (
	"strings"
	"time"

	"kostmanager/kost"
)

// PaymentFilter is a conjunctive predicate set over payment rows. The
// zero value matches everything. The due-date range is inclusive and
// only constrains when both bounds are set; an unset bound lifts the
// whole range check.
type PaymentFilter struct {
	Search string
	Status kost.PaymentStatus
	From   *time.Time
	To     *time.Time
}

// FilterPayments keeps the rows matching every set predicate, in input
// order. Free text matches case-insensitively against the tenant name
// and room number.
func FilterPayments(rows []PaymentRow, f PaymentFilter) []PaymentRow {
	out := make([]PaymentRow, 0, len(rows))
	for _, row := range rows {
		if !matchText(f.Search, row.TenantName, row.RoomNumber) {
			continue
		}
		if f.Status != "" && row.Status != f.Status {
			continue
		}
		if !matchDateRange(row.DueDate, f.From, f.To) {
			continue
		}
		out = append(out, row)
	}
	return out
}

type RoomFilter struct {
	Search string
	Status kost.RoomStatus
}

// FilterRooms matches free text against the room number and floor.
func FilterRooms(rooms []kost.Room, f RoomFilter) []kost.Room {
	out := make([]kost.Room, 0, len(rooms))
	for _, r := range rooms {
		if !matchText(f.Search, r.Number, r.Floor) {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		out = append(out, r)
	}
	return out
}

type TenantFilter struct {
	Search string
	Status kost.TenantStatus
}

// FilterTenants matches free text against name, phone and email.
func FilterTenants(tenants []kost.Tenant, f TenantFilter) []kost.Tenant {
	out := make([]kost.Tenant, 0, len(tenants))
	for _, t := range tenants {
		if !matchText(f.Search, t.Name, t.Phone, t.Email) {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchText(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func matchDateRange(date time.Time, from, to *time.Time) bool {
	if from == nil || to == nil {
		return true
	}
	return !date.Before(*from) && !date.After(*to)
}
