package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostmanager/internal/seed"
	"kostmanager/kost"
)

// The demo data must itself satisfy the consistency invariants the
// engine enforces: symmetric tenant/room links, occupancy statuses
// matching the link, and no dangling payment references.
func TestSeedConsistency(t *testing.T) {
	snap := seed.Snapshot()

	tenants := make(map[string]kost.Tenant)
	for _, tn := range snap.Tenants {
		tenants[tn.ID] = tn
	}
	rooms := make(map[string]kost.Room)
	for _, r := range snap.Rooms {
		rooms[r.ID] = r
	}

	for _, r := range snap.Rooms {
		if r.Status == kost.RoomOccupied {
			require.NotEmpty(t, r.TenantID, "occupied room %s has no tenant", r.ID)
			tn, ok := tenants[r.TenantID]
			require.True(t, ok, "room %s references unknown tenant %s", r.ID, r.TenantID)
			assert.Equal(t, r.ID, tn.RoomID, "room %s link is one-directional", r.ID)
			assert.Equal(t, kost.TenantActive, tn.Status)
		} else {
			assert.Empty(t, r.TenantID, "non-occupied room %s carries a tenant", r.ID)
		}
	}

	for _, tn := range snap.Tenants {
		if tn.RoomID == "" {
			continue
		}
		r, ok := rooms[tn.RoomID]
		require.True(t, ok, "tenant %s references unknown room %s", tn.ID, tn.RoomID)
		assert.Equal(t, tn.ID, r.TenantID, "tenant %s link is one-directional", tn.ID)
	}

	for _, p := range snap.Payments {
		_, ok := tenants[p.TenantID]
		assert.True(t, ok, "payment %s references unknown tenant %s", p.ID, p.TenantID)
		_, ok = rooms[p.RoomID]
		assert.True(t, ok, "payment %s references unknown room %s", p.ID, p.RoomID)
		assert.Positive(t, p.Amount)
		assert.False(t, p.DueDate.IsZero())
	}

	for _, m := range snap.MaintenanceRequests {
		_, ok := rooms[m.RoomID]
		assert.True(t, ok, "request %s references unknown room %s", m.ID, m.RoomID)
	}
}

func TestSeedCoversStatuses(t *testing.T) {
	snap := seed.Snapshot()

	statuses := make(map[kost.PaymentStatus]bool)
	for _, p := range snap.Payments {
		statuses[p.Status] = true
	}
	assert.True(t, statuses[kost.PaymentPaid])
	assert.True(t, statuses[kost.PaymentPending])
	assert.True(t, statuses[kost.PaymentOverdue])

	roomStatuses := make(map[kost.RoomStatus]bool)
	for _, r := range snap.Rooms {
		roomStatuses[r.Status] = true
	}
	assert.True(t, roomStatuses[kost.RoomOccupied])
	assert.True(t, roomStatuses[kost.RoomVacant])
	assert.True(t, roomStatuses[kost.RoomMaintenance])
}
