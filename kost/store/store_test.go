package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostmanager/kost"
	"kostmanager/kost/store"
)

func TestPutPreservesInsertionOrder(t *testing.T) {
	s := store.New()
	s.PutRoom(kost.Room{ID: "r1", Number: "101"})
	s.PutRoom(kost.Room{ID: "r2", Number: "102"})
	s.PutRoom(kost.Room{ID: "r3", Number: "201"})

	// Upserting an existing id keeps its position.
	s.PutRoom(kost.Room{ID: "r1", Number: "101", Status: kost.RoomOccupied})

	rooms := s.Rooms()
	require.Len(t, rooms, 3)
	assert.Equal(t, "r1", rooms[0].ID)
	assert.Equal(t, kost.RoomOccupied, rooms[0].Status)
	assert.Equal(t, "r2", rooms[1].ID)
	assert.Equal(t, "r3", rooms[2].ID)
}

func TestGet(t *testing.T) {
	s := store.New()
	s.PutTenant(kost.Tenant{ID: "t1", Name: "Budi Santoso"})

	tenant, ok := s.GetTenant("t1")
	require.True(t, ok)
	assert.Equal(t, "Budi Santoso", tenant.Name)

	_, ok = s.GetTenant("missing")
	assert.False(t, ok)
}

func TestNewIDUnique(t *testing.T) {
	s := store.New()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := s.NewID()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestReplace(t *testing.T) {
	s := store.New()
	s.PutPayment(kost.Payment{ID: "p1"})
	s.PutPayment(kost.Payment{ID: "p2"})

	s.ReplacePayments([]kost.Payment{{ID: "p3"}})

	payments := s.Payments()
	require.Len(t, payments, 1)
	assert.Equal(t, "p3", payments[0].ID)
	_, ok := s.GetPayment("p1")
	assert.False(t, ok)
}

func TestSnapshotRoundTrip(t *testing.T) {
	due := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	snap := kost.Snapshot{
		Tenants:             []kost.Tenant{{ID: "t1", Name: "Budi Santoso", RoomID: "r1", Status: kost.TenantActive}},
		Rooms:               []kost.Room{{ID: "r1", Number: "101", Status: kost.RoomOccupied, TenantID: "t1"}},
		Payments:            []kost.Payment{{ID: "p1", TenantID: "t1", RoomID: "r1", Amount: 1500000, DueDate: due, Status: kost.PaymentPending}},
		MaintenanceRequests: []kost.MaintenanceRequest{{ID: "m1", RoomID: "r1", Title: "Leaking tap", Status: kost.RequestPending, Priority: kost.PriorityLow}},
	}

	s := store.New()
	s.Restore(snap)
	assert.Equal(t, snap, s.Snapshot())
}

func TestSnapshotFileRoundTrip(t *testing.T) {
	path := t.TempDir() + "/snapshot.json"
	s := store.New()
	s.PutTenant(kost.Tenant{ID: "t1", Name: "Budi Santoso", Status: kost.TenantActive, PaymentStatus: kost.PaymentPending})
	s.PutRoom(kost.Room{ID: "r1", Number: "101", Price: 1500000, Status: kost.RoomVacant})

	require.NoError(t, kost.WriteSnapshotFile(path, s.Snapshot()))

	loaded, err := kost.ReadSnapshotFile(path)
	require.NoError(t, err)

	restored := store.New()
	restored.Restore(loaded)
	tenant, ok := restored.GetTenant("t1")
	require.True(t, ok)
	assert.Equal(t, "Budi Santoso", tenant.Name)
	room, ok := restored.GetRoom("r1")
	require.True(t, ok)
	assert.Equal(t, float64(1500000), room.Price)
}
