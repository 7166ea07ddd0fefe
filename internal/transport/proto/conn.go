package proto

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"
)

// copyBufSize is the buffer used to stream Copy bodies.
const copyBufSize = 256 * 1024

// Conn carries protocol frames over an ordered duplex byte stream such as a
// process pipe, an SSH session or a TCP connection.
//
// Any number of goroutines may send concurrently: every frame, and a Copy
// frame together with its body, is written under one lock so messages never
// interleave. Receiving is single-reader.
type Conn struct {
	rwc     io.ReadWriteCloser
	br      *bufio.Reader
	bw      *bufio.Writer
	flusher WriteFlusher
	wmu     sync.Mutex
	closeMu sync.Once
}

// NewConn wraps rwc. If rwc implements WriteFlusher it is flushed after
// every message.
func NewConn(rwc io.ReadWriteCloser) *Conn {
	c := &Conn{
		rwc: rwc,
		br:  bufio.NewReaderSize(rwc, 64*1024),
		bw:  bufio.NewWriterSize(rwc, 64*1024),
	}
	if f, ok := rwc.(WriteFlusher); ok {
		c.flusher = f
	}
	return c
}

// Send writes one message frame.
func (c *Conn) Send(id uint32, msgType byte, m Message) error {
	payload, err := Encode(m)
	if err != nil {
		return fmt.Errorf("encode %s: %w", msgName(msgType), err)
	}

	c.wmu.Lock()
	defer c.wmu.Unlock()

	if err := WriteFrame(c.bw, Frame{ID: id, MsgType: msgType, Payload: payload}); err != nil {
		return err
	}
	return c.flush()
}

// ErrShortBody is returned by SendCopy when body failed or ended before
// length bytes. The frame was still completed with zero padding.
var ErrShortBody = errors.New("copy body shorter than announced")

// SendCopy writes a Copy frame followed by exactly length bytes from body.
// If body fails or ends early the remainder is zero-filled so the stream
// stays framed, and an error matching ErrShortBody is returned; the
// receiver's digest check then rejects the content. Any other error means
// the connection is unusable. The number of bytes read from body is
// returned.
func (c *Conn) SendCopy(id uint32, addr string, length int64, body io.Reader) (int64, error) {
	payload, err := Encode(&Copy{Address: addr, Length: length})
	if err != nil {
		return 0, fmt.Errorf("encode Copy: %w", err)
	}

	c.wmu.Lock()
	defer c.wmu.Unlock()

	if err := WriteFrame(c.bw, Frame{ID: id, MsgType: MsgCopy, Payload: payload}); err != nil {
		return 0, err
	}

	src := &trackedReader{r: io.LimitReader(body, length)}
	buf := make([]byte, copyBufSize)
	n, err := io.CopyBuffer(c.bw, src, buf)
	if err != nil && src.err == nil {
		// A failed write leaves the stream unusable; a failed read is
		// padded below.
		return n, fmt.Errorf("write Copy body: %w", err)
	}
	if n < length {
		if _, err := io.CopyN(c.bw, zeroReader{}, length-n); err != nil {
			return n, fmt.Errorf("write Copy padding: %w", err)
		}
	}
	if err := c.flush(); err != nil {
		return n, err
	}
	switch {
	case src.err != nil:
		return n, fmt.Errorf("%w: %w", ErrShortBody, src.err)
	case n < length:
		return n, fmt.Errorf("%w: got %d of %d bytes", ErrShortBody, n, length)
	}
	return n, nil
}

// Recv reads the next frame. Only one goroutine may call Recv.
func (c *Conn) Recv() (Frame, error) {
	return ReadFrame(c.br)
}

// Body returns a reader over the next length raw bytes of the stream. The
// caller must consume it fully before calling Recv again.
func (c *Conn) Body(length int64) *io.LimitedReader {
	return &io.LimitedReader{R: c.br, N: length}
}

// SendError writes a fatal Error message. Failures are ignored because the
// connection is about to be closed anyway.
func (c *Conn) SendError(code string, err error) {
	_ = c.Send(0, MsgError, &ErrorMsg{Code: code, Message: err.Error()}) //nolint:errcheck // best effort before close
}

// Close closes the underlying stream. It is safe to call more than once.
func (c *Conn) Close() error {
	var err error
	c.closeMu.Do(func() {
		err = c.rwc.Close()
	})
	return err
}

func (c *Conn) flush() error {
	if err := c.bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if c.flusher != nil {
		if err := c.flusher.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	}
	return nil
}

// trackedReader records the last read error so SendCopy can tell a source
// that failed mid-copy from a broken connection.
type trackedReader struct {
	r   io.Reader
	err error
}

func (t *trackedReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF {
		t.err = err
	}
	return n, err
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
