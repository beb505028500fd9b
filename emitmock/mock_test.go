package emitmock

import (
	"reflect"
	"testing"

	taglog "github.com/taglog-project/taglog"
)

func TestMockRecordsCalls(t *testing.T) {
	t.Parallel()

	m := New(Config{})

	m.Info("Sync", "connected")
	m.Info("Download", "100% done")

	want := []Call{
		{Title: "Sync", Message: "connected"},
		{Title: "Download", Message: "100% done"},
	}
	if !reflect.DeepEqual(m.Calls, want) {
		t.Fatalf("calls mismatch: want %+v, got %+v", want, m.Calls)
	}
}

func TestMockObserver(t *testing.T) {
	t.Parallel()

	var gotTitle, gotMessage string
	m := New(Config{Observer: func(title, message string) {
		gotTitle, gotMessage = title, message
	}})

	m.Info("Sync", "connected")

	if gotTitle != "Sync" || gotMessage != "connected" {
		t.Fatalf("observer saw (%q, %q), want (%q, %q)", gotTitle, gotMessage, "Sync", "connected")
	}
	if len(m.Calls) != 1 {
		t.Fatalf("expected 1 recorded call, got %d", len(m.Calls))
	}
}

func TestMockReset(t *testing.T) {
	t.Parallel()

	m := New(Config{})
	m.Info("Sync", "connected")
	m.Reset()

	if len(m.Calls) != 0 {
		t.Fatalf("expected no calls after Reset, got %d", len(m.Calls))
	}
}

func TestMockAsEmitter(t *testing.T) {
	t.Parallel()

	m := New(Config{})

	// Host applications consume the mock through the Emitter interface.
	var emitter taglog.Emitter = m
	emitter.Info("Sync", "connected")

	if len(m.Calls) != 1 {
		t.Fatalf("expected 1 recorded call, got %d", len(m.Calls))
	}
}
