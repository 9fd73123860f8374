package watch

import (
	"io"
	"log/slog"
	"testing"

	"github.com/villert/popthings/internal/testutil"
)

func testConverter(t *testing.T) *Converter {
	t.Helper()
	return &Converter{
		Hist:   testutil.TestDB(t),
		Symbol: "$",
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestHandleFile(t *testing.T) {
	conv := testConverter(t)
	path := testutil.WriteTemplate(t, t.TempDir(), "inbox.taskpaper",
		"Project:\n\t- Task one\n\t- Task two")

	if err := conv.HandleFile(path); err != nil {
		t.Fatalf("HandleFile: %v", err)
	}

	entries, err := conv.Hist.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("history entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Source != path || e.Projects != 1 || e.ToDos != 2 {
		t.Errorf("entry = %+v", e)
	}
	if e.URLLength == 0 {
		t.Errorf("url length not recorded")
	}
}

// Templates with unresolved placeholders are skipped, not failed: the
// watcher has nobody to ask for values.
func TestHandleFile_SkipsPlaceholders(t *testing.T) {
	conv := testConverter(t)
	path := testutil.WriteTemplate(t, t.TempDir(), "tpl.taskpaper",
		"Trip to $where:\n\t$where\n\t- Pack")

	if err := conv.HandleFile(path); err != nil {
		t.Fatalf("HandleFile: %v", err)
	}
	entries, _ := conv.Hist.Recent(10)
	if len(entries) != 0 {
		t.Errorf("history entries = %d, want 0 (skipped)", len(entries))
	}
}

func TestHandleFile_StructuralError(t *testing.T) {
	conv := testConverter(t)
	path := testutil.WriteTemplate(t, t.TempDir(), "bad.taskpaper",
		"- task before any project")

	if err := conv.HandleFile(path); err == nil {
		t.Fatal("expected error for malformed document")
	}
	entries, _ := conv.Hist.Recent(10)
	if len(entries) != 0 {
		t.Errorf("failed conversion must not be recorded")
	}
}
