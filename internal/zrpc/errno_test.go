package zrpc

import (
	"fmt"
	"os"
	"syscall"
	"testing"
)

func TestErrnoTable_Report(t *testing.T) {
	table := NewErrnoTable()
	for i := 0; i < 3; i++ {
		table.Add(syscall.EACCES)
	}
	table.Add(syscall.EIO)

	got := table.Report()
	want := []string{
		fmt.Sprintf(" %s(%d) = 3", syscall.EACCES.Error(), int(syscall.EACCES)),
		fmt.Sprintf(" %s(%d) = 1", syscall.EIO.Error(), int(syscall.EIO)),
	}
	if syscall.EIO < syscall.EACCES {
		want[0], want[1] = want[1], want[0]
	}

	if len(got) != 2 {
		t.Fatalf("Report() returned %d lines, want 2: %q", len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Report()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if table.Count(syscall.ENOENT) != 0 {
		t.Errorf("Count(ENOENT) = %d, want 0", table.Count(syscall.ENOENT))
	}
}

func TestErrnoTable_Empty(t *testing.T) {
	if got := NewErrnoTable().Report(); len(got) != 0 {
		t.Errorf("Report() = %q, want no lines", got)
	}
}

func TestErrnoTable_Record(t *testing.T) {
	table := NewErrnoTable()

	wrapped := &os.PathError{Op: "connect", Path: "/tmp/zmq.sock", Err: syscall.ECONNREFUSED}
	if !table.Record(wrapped) {
		t.Error("Record() should count a wrapped errno")
	}
	if table.Record(fmt.Errorf("plain error")) {
		t.Error("Record() should ignore errors without an errno")
	}
	if table.Record(syscall.Errno(MaxErrno + 1)) {
		t.Error("Record() should ignore out-of-range codes")
	}

	if got := table.Count(syscall.ECONNREFUSED); got != 1 {
		t.Errorf("Count(ECONNREFUSED) = %d, want 1", got)
	}
}

func TestContext_Stats(t *testing.T) {
	ctx := NewContext()
	ctx.NotificationSent()
	ctx.NotificationSent()
	ctx.NotificationLost()
	ctx.ThriftLost()

	want := Stats{Total: 2, Lost: 1, ThriftLost: 1}
	if got := ctx.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}
