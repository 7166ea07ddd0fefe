package proto

//go:generate msgp

// Protocol version. Bump only on breaking wire changes.
const ProtocolVersion = 1

// Message type constants for the snap sync protocol. D is the driver (the
// side walking the source tree), R the responder (the side holding the
// repository).
const (
	// Session.
	MsgHello   byte = 0x01 // D→R
	MsgWelcome byte = 0x02 // R→D

	// Snapshot entries.
	MsgMkdir       byte = 0x10 // D→R
	MsgLink        byte = 0x11 // D→R
	MsgCopyRequest byte = 0x12 // R→D, echoes the Link's ID
	MsgCopy        byte = 0x13 // D→R, followed by Length raw bytes
	MsgAck         byte = 0x14 // R→D, echoes the Link or Mkdir ID
	MsgLinkFailed  byte = 0x15 // R→D, echoes the Link or Mkdir ID

	// Teardown.
	MsgBye     byte = 0x20 // D→R
	MsgSummary byte = 0x21 // R→D

	MsgError byte = 0xFF // either direction; the connection closes after it
)

// Error codes carried by ErrorMsg.
const (
	CodeProtocol     = "protocol"
	CodePrecondition = "precondition"
	CodeStore        = "store"
)

// Hello opens a session. An empty Digest accepts whatever the repository
// already uses.
type Hello struct {
	Session string `msg:"session"`
	Label   string `msg:"label"`
	Digest  string `msg:"digest"`
	Version int    `msg:"version"`
}

// Welcome accepts a session. Digest is the algorithm the driver must use
// for addresses.
type Welcome struct {
	Session string `msg:"session"`
	Digest  string `msg:"digest"`
	Version int    `msg:"version"`
}

// Mkdir creates a directory relative to the label root.
type Mkdir struct {
	Path string `msg:"path"`
}

// Link asks the responder to hardlink the blob for Address at Path.
type Link struct {
	Address string `msg:"address"`
	Path    string `msg:"path"`
	Size    int64  `msg:"size"`
}

// CopyRequest tells the driver that the responder has no blob for Address.
type CopyRequest struct {
	Address string `msg:"address"`
	Path    string `msg:"path"`
}

// Copy announces Length raw content bytes following the frame.
type Copy struct {
	Address string `msg:"address"`
	Length  int64  `msg:"length"`
}

// Ack completes a Link or Mkdir.
type Ack struct{}

// LinkFailed completes a Link or Mkdir that could not be materialized.
type LinkFailed struct {
	Message string `msg:"message"`
	Errno   int64  `msg:"errno"`
}

// Bye ends the session once every Link has been completed.
type Bye struct{}

// Summary reports the responder's totals for the session.
type Summary struct {
	Links         int64 `msg:"links"`
	BlobsCreated  int64 `msg:"blobs_created"`
	BytesReceived int64 `msg:"bytes_received"`
	Failures      int64 `msg:"failures"`
}

// ErrorMsg reports a fatal error. The sender closes the connection.
type ErrorMsg struct {
	Code    string `msg:"code"`
	Message string `msg:"message"`
}
