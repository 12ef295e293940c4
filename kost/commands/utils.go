package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"kostmanager/internal/seed"
	"kostmanager/kost"
	"kostmanager/kost/engine"
	"kostmanager/kost/store"
)

// addDataFlags wires the snapshot flags shared by every data command.
func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().String("data", "", "Path to a JSON data snapshot (default: built-in demo data)")
}

// addSaveFlag is added to mutating commands so the session result can
// be written back to the snapshot file.
func addSaveFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("save", false, "Write the mutated snapshot back to the --data file")
}

// loadEngine builds the session store from the --data snapshot, or the
// built-in demo data when none is given.
func loadEngine(cmd *cobra.Command) (*engine.Engine, error) {
	path, _ := cmd.Flags().GetString("data")

	snap := seed.Snapshot()
	if path != "" {
		var err error
		snap, err = kost.ReadSnapshotFile(path)
		if err != nil {
			return nil, err
		}
	}

	st := store.New()
	st.Restore(snap)
	return engine.New(st), nil
}

// saveIfRequested writes the store back to the --data file when --save
// was given. Saving without --data is an error rather than a silent
// no-op.
func saveIfRequested(cmd *cobra.Command, e *engine.Engine) error {
	save, _ := cmd.Flags().GetBool("save")
	if !save {
		return nil
	}
	path, _ := cmd.Flags().GetString("data")
	if path == "" {
		return fmt.Errorf("--save requires --data")
	}
	return kost.WriteSnapshotFile(path, e.Store().Snapshot())
}

// parseDateFlag reads an optional YYYY-MM-DD flag.
func parseDateFlag(cmd *cobra.Command, name string) (*time.Time, error) {
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s date %q (want YYYY-MM-DD): %v", name, v, err)
	}
	return &t, nil
}

// formatRupiah renders an amount the way the dashboard does:
// Rp 1.500.000 with dots as thousand separators.
func formatRupiah(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(ch)
	}
	out := "Rp " + b.String()
	if neg {
		out = "Rp -" + b.String()
	}
	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatDate(*t)
}
