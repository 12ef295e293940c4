package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostmanager/kost"
	"kostmanager/kost/commands"
)

func TestRoomsCmd(t *testing.T) {
	cmd := commands.RoomsCmd()
	assert.Equal(t, "rooms", cmd.Use)
	assert.Equal(t, "List rooms", cmd.Short)

	flags := cmd.Flags()
	assert.NotNil(t, flags.Lookup("data"))
	assert.NotNil(t, flags.Lookup("search"))
	assert.NotNil(t, flags.Lookup("status"))
}

func TestAssignCmd(t *testing.T) {
	cmd := commands.AssignCmd()
	assert.Equal(t, "assign [room-id] [tenant-id]", cmd.Use)

	flags := cmd.Flags()
	assert.NotNil(t, flags.Lookup("data"))
	assert.NotNil(t, flags.Lookup("save"))
}

func TestRecordCmd(t *testing.T) {
	cmd := commands.RecordCmd()
	assert.Equal(t, "record", cmd.Use)
	assert.Equal(t, "Record a payment", cmd.Short)

	flags := cmd.Flags()
	assert.NotNil(t, flags.Lookup("payment-id"))
	assert.NotNil(t, flags.Lookup("amount"))
	assert.NotNil(t, flags.Lookup("due"))
	assert.NotNil(t, flags.Lookup("date"))
}

func TestPaymentsCmd(t *testing.T) {
	cmd := commands.PaymentsCmd()
	assert.Equal(t, "payments", cmd.Use)

	flags := cmd.Flags()
	assert.NotNil(t, flags.Lookup("search"))
	assert.NotNil(t, flags.Lookup("status"))
	assert.NotNil(t, flags.Lookup("from"))
	assert.NotNil(t, flags.Lookup("to"))
}

func TestExportCmd(t *testing.T) {
	cmd := commands.ExportCmd()
	assert.Equal(t, "export [file]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("status"))
}

func TestSettingsCmd(t *testing.T) {
	cmd := commands.SettingsCmd()
	assert.Equal(t, "settings", cmd.Use)
	require.Len(t, cmd.Commands(), 2)
}

func TestAssignRunAgainstSnapshot(t *testing.T) {
	// Run assign end-to-end against a seeded snapshot file, saving the
	// result back and checking both sides of the link.
	path := t.TempDir() + "/data.json"

	seedCmd := commands.SeedCmd()
	seedCmd.SetArgs([]string{path})
	require.NoError(t, seedCmd.Execute())

	assign := commands.AssignCmd()
	assign.SetArgs([]string{"r3", "t3", "--data", path, "--save"})
	require.NoError(t, assign.Execute())

	snap, err := kost.ReadSnapshotFile(path)
	require.NoError(t, err)
	for _, r := range snap.Rooms {
		if r.ID == "r3" {
			assert.Equal(t, "t3", r.TenantID)
			assert.Equal(t, kost.RoomOccupied, r.Status)
		}
	}
	for _, tn := range snap.Tenants {
		if tn.ID == "t3" {
			assert.Equal(t, "r3", tn.RoomID)
		}
	}
}

func TestAssignConflictFails(t *testing.T) {
	path := t.TempDir() + "/data.json"

	seedCmd := commands.SeedCmd()
	seedCmd.SetArgs([]string{path})
	require.NoError(t, seedCmd.Execute())

	// r1 is already occupied in the demo data.
	assign := commands.AssignCmd()
	assign.SetArgs([]string{"r1", "t3", "--data", path})
	assign.SilenceErrors = true
	assign.SilenceUsage = true
	assert.Error(t, assign.Execute())
}
