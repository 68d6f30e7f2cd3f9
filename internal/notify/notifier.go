// Package notify is the notification side channel: a capability object plus
// a periodic scheduler that reads store state and nudges the user.
package notify

import (
	"fmt"
	"io"
)

type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
	PermissionDefault Permission = "default"
)

// Notifier is the delivery capability. Send must be a no-op unless
// permission has been granted.
type Notifier interface {
	IsSupported() bool
	Permission() Permission
	RequestPermission() Permission
	Send(title, body string)
}

// TerminalNotifier writes notifications to a terminal stream. Permission is
// granted implicitly on request, matching a capability that only needs user
// confirmation once.
type TerminalNotifier struct {
	out     io.Writer
	granted bool
}

func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

func (n *TerminalNotifier) IsSupported() bool { return n.out != nil }

func (n *TerminalNotifier) Permission() Permission {
	if n.granted {
		return PermissionGranted
	}
	return PermissionDefault
}

func (n *TerminalNotifier) RequestPermission() Permission {
	n.granted = true
	return PermissionGranted
}

func (n *TerminalNotifier) Send(title, body string) {
	if !n.granted || n.out == nil {
		return
	}
	fmt.Fprintf(n.out, "🔔 %s — %s\n", title, body)
}

// NopNotifier drops everything. Used when the engine is unavailable.
type NopNotifier struct{}

func (NopNotifier) IsSupported() bool             { return false }
func (NopNotifier) Permission() Permission        { return PermissionDenied }
func (NopNotifier) RequestPermission() Permission { return PermissionDenied }
func (NopNotifier) Send(title, body string)       {}
