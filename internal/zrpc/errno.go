package zrpc

import (
	"errors"
	"fmt"
	"sync/atomic"
	"syscall"
)

// MaxErrno bounds the errno codes tracked by ErrnoTable.
const MaxErrno = 256

// ErrnoTable counts notification socket failures per errno code. Codes at
// or above MaxErrno are not tracked.
type ErrnoTable struct {
	counts [MaxErrno]atomic.Uint32
}

// NewErrnoTable returns an empty table.
func NewErrnoTable() *ErrnoTable {
	return &ErrnoTable{}
}

// Add counts one occurrence of code.
func (t *ErrnoTable) Add(code syscall.Errno) {
	if int(code) < 0 || int(code) >= MaxErrno {
		return
	}
	t.counts[code].Add(1)
}

// Record counts err if it wraps a syscall.Errno. It reports whether err was
// counted.
func (t *ErrnoTable) Record(err error) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) || int(errno) >= MaxErrno {
		return false
	}
	t.Add(errno)
	return true
}

// Count returns the occurrences recorded for code.
func (t *ErrnoTable) Count(code syscall.Errno) uint32 {
	if int(code) < 0 || int(code) >= MaxErrno {
		return 0
	}
	return t.counts[code].Load()
}

// Report formats every nonzero slot as " <error text>(<code>) = <count>",
// in ascending code order.
func (t *ErrnoTable) Report() []string {
	var lines []string
	for i := range t.counts {
		n := t.counts[i].Load()
		if n == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf(" %s(%d) = %d", syscall.Errno(i).Error(), i, n))
	}
	return lines
}
