package proto

import (
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

// Message is a protocol payload. Payloads are msgpack maps with string keys;
// unknown keys are skipped on decode.
type Message interface {
	msgp.Marshaler
	msgp.Unmarshaler
}

// Encode marshals m into a frame payload.
func Encode(m Message) ([]byte, error) {
	return m.MarshalMsg(nil)
}

// Decode unmarshals f's payload into m. A payload that does not decode, or
// that carries trailing bytes, is a protocol error.
func Decode(f Frame, m Message) error {
	rest, err := m.UnmarshalMsg(f.Payload)
	if err != nil {
		return &ProtocolError{Reason: fmt.Sprintf("decode %s", msgName(f.MsgType)), Err: err}
	}
	if len(rest) != 0 {
		return &ProtocolError{Reason: fmt.Sprintf("%d trailing bytes after %s", len(rest), msgName(f.MsgType))}
	}
	return nil
}

func msgName(t byte) string {
	switch t {
	case MsgHello:
		return "Hello"
	case MsgWelcome:
		return "Welcome"
	case MsgMkdir:
		return "Mkdir"
	case MsgLink:
		return "Link"
	case MsgCopyRequest:
		return "CopyRequest"
	case MsgCopy:
		return "Copy"
	case MsgAck:
		return "Ack"
	case MsgLinkFailed:
		return "LinkFailed"
	case MsgBye:
		return "Bye"
	case MsgSummary:
		return "Summary"
	case MsgError:
		return "Error"
	default:
		return fmt.Sprintf("message 0x%02x", t)
	}
}
