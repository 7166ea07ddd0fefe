package proto

import "fmt"

// ProtocolError reports a malformed or out-of-protocol message, or a fault
// on the underlying stream. It is fatal to the connection.
type ProtocolError struct {
	Err    error
	Reason string
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("protocol: %s: %v", e.Reason, e.Err)
	}
	return "protocol: " + e.Reason
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// Fatal marks ProtocolError as run-aborting.
func (*ProtocolError) Fatal() bool { return true }

// RemoteError is a fatal error reported by the peer in an Error message.
type RemoteError struct {
	Code    string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s error: %s", e.Code, e.Message)
}

// Fatal marks RemoteError as run-aborting.
func (*RemoteError) Fatal() bool { return true }

// LinkFailedError is a per-entry failure reported by the responder that
// carries no OS error code, such as content that no longer matched its
// address when copied.
type LinkFailedError struct {
	Dest    string
	Message string
}

func (e *LinkFailedError) Error() string {
	return fmt.Sprintf("remote link %s: %s", e.Dest, e.Message)
}
