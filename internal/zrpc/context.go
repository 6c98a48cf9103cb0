// Package zrpc holds the runtime counters that the vty reports on: the
// notification statistics of the vpnservice context and the errno
// histogram of the notification socket.
package zrpc

import "sync/atomic"

// Context is the vpnservice runtime context. Counters are updated by the
// notification path and read by "show debugging zrpc stats".
type Context struct {
	updateTotal      atomic.Uint32
	updateLost       atomic.Uint32
	updateThriftLost atomic.Uint32
}

// Stats is a snapshot of the notification counters.
type Stats struct {
	Total      uint32
	Lost       uint32
	ThriftLost uint32
}

// NewContext returns a context with zeroed counters.
func NewContext() *Context {
	return &Context{}
}

// NotificationSent counts one notification handed to the notification socket.
func (c *Context) NotificationSent() {
	c.updateTotal.Add(1)
}

// NotificationLost counts one notification that could not be delivered.
func (c *Context) NotificationLost() {
	c.updateLost.Add(1)
}

// ThriftLost counts one notification dropped because serialization failed.
func (c *Context) ThriftLost() {
	c.updateThriftLost.Add(1)
}

// Stats returns the current counter values.
func (c *Context) Stats() Stats {
	return Stats{
		Total:      c.updateTotal.Load(),
		Lost:       c.updateLost.Load(),
		ThriftLost: c.updateThriftLost.Load(),
	}
}

// ContextProvider returns the current context, or nil when the vpnservice
// has not been started.
type ContextProvider func() *Context
