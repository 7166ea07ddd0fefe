package proto

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/bamsammich/snap/internal/engine"
	"github.com/bamsammich/snap/internal/stats"
	"github.com/bamsammich/snap/internal/store"
)

// ResponderConfig configures the repository side of a sync session.
type ResponderConfig struct {
	Stats     *stats.Collector
	Logger    *slog.Logger
	Repo      string
	BlockSize int
}

// responder holds the state of one session. Frames are handled strictly in
// arrival order on a single goroutine, so none of it needs locking.
type responder struct {
	conn *Conn
	sink *engine.LocalSink
	st   *store.Store
	cfg  ResponderConfig
	log  *slog.Logger

	// copyErr records Copy bodies that could not be stored, keyed by the
	// Link ID they belong to. The re-sent Link then fails instead of
	// asking for the bytes again.
	copyErr map[uint32]error
	summary Summary
}

// Serve runs one responder session over rwc and closes it on return. It
// returns nil once the driver has said Bye and received the Summary.
func Serve(ctx context.Context, rwc io.ReadWriteCloser, cfg ResponderConfig) error {
	if cfg.Stats == nil {
		cfg.Stats = stats.NewCollector()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	conn := NewConn(rwc)
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	r := &responder{conn: conn, cfg: cfg, log: logger, copyErr: make(map[uint32]error)}
	err := r.handshake()
	if err == nil {
		err = r.loop()
	}
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (r *responder) handshake() error {
	f, err := r.conn.Recv()
	if err != nil {
		return &ProtocolError{Reason: "read Hello", Err: err}
	}
	if f.MsgType != MsgHello {
		return r.abort(&ProtocolError{Reason: "expected Hello, got " + msgName(f.MsgType)})
	}
	var hello Hello
	if err := Decode(f, &hello); err != nil {
		return r.abort(err)
	}
	if hello.Version != ProtocolVersion {
		return r.abort(&ProtocolError{
			Reason: fmt.Sprintf("driver speaks version %d, want %d", hello.Version, ProtocolVersion),
		})
	}
	r.log = r.log.With("session", hello.Session)

	sink, err := engine.OpenLocal(r.cfg.Repo, hello.Label, hello.Digest,
		store.WithBlockSize(r.cfg.BlockSize),
		store.WithStats(r.cfg.Stats),
	)
	if err != nil {
		return r.abort(err)
	}
	r.sink = sink
	r.st = sink.Store()
	r.log.Info("session started", "label", hello.Label, "digest", r.st.Digest())

	return r.conn.Send(0, MsgWelcome, &Welcome{
		Version: ProtocolVersion,
		Session: hello.Session,
		Digest:  r.st.Digest(),
	})
}

func (r *responder) loop() error {
	for {
		f, err := r.conn.Recv()
		if err != nil {
			return &ProtocolError{Reason: "read", Err: err}
		}

		switch f.MsgType {
		case MsgMkdir:
			err = r.mkdir(f)
		case MsgLink:
			err = r.link(f)
		case MsgCopy:
			err = r.copy(f)
		case MsgBye:
			return r.bye(f)
		case MsgError:
			return remoteError(f)
		default:
			err = &ProtocolError{Reason: "unexpected " + msgName(f.MsgType)}
		}
		if err != nil {
			return r.abort(err)
		}
	}
}

func (r *responder) mkdir(f Frame) error {
	var m Mkdir
	if err := Decode(f, &m); err != nil {
		return err
	}
	if m.Path != "" && !filepath.IsLocal(m.Path) {
		return &ProtocolError{Reason: fmt.Sprintf("path %q escapes the label root", m.Path)}
	}

	if err := r.sink.Mkdir(context.Background(), m.Path); err != nil {
		return r.failed(f.ID, m.Path, err)
	}
	r.cfg.Stats.AddDirsCreated(1)
	return r.conn.Send(f.ID, MsgAck, &Ack{})
}

func (r *responder) link(f Frame) error {
	var m Link
	if err := Decode(f, &m); err != nil {
		return err
	}
	if !filepath.IsLocal(m.Path) {
		return &ProtocolError{Reason: fmt.Sprintf("path %q escapes the label root", m.Path)}
	}
	addr := store.Address(m.Address)
	if !r.st.ValidAddress(addr) {
		return &ProtocolError{Reason: fmt.Sprintf("invalid address %q", m.Address)}
	}
	if m.Size < 0 {
		return &ProtocolError{Reason: fmt.Sprintf("negative size %d", m.Size)}
	}

	if err, ok := r.copyErr[f.ID]; ok {
		delete(r.copyErr, f.ID)
		return r.failed(f.ID, m.Path, err)
	}

	blob, ok, err := r.st.Lookup(addr, m.Size)
	if err != nil {
		if engine.IsFatal(err) {
			return err
		}
		return r.failed(f.ID, m.Path, err)
	}
	if !ok {
		r.log.Debug("requesting copy", "address", m.Address, "path", m.Path)
		return r.conn.Send(f.ID, MsgCopyRequest, &CopyRequest{Address: m.Address, Path: m.Path})
	}

	if err := engine.Link(blob, filepath.Join(r.sink.Root(), m.Path)); err != nil {
		return r.failed(f.ID, m.Path, err)
	}
	r.summary.Links++
	r.cfg.Stats.AddFilesLinked(1)
	return r.conn.Send(f.ID, MsgAck, &Ack{})
}

// copy ingests a Copy body. The body is always consumed in full so the
// stream stays framed even when the content is rejected.
func (r *responder) copy(f Frame) error {
	var m Copy
	if err := Decode(f, &m); err != nil {
		return err
	}
	if m.Length < 0 {
		return &ProtocolError{Reason: fmt.Sprintf("negative Copy length %d", m.Length)}
	}

	body := r.conn.Body(m.Length)
	blob, err := r.st.Ingest(store.Address(m.Address), body, m.Length)
	if _, derr := io.Copy(io.Discard, body); derr != nil || body.N > 0 {
		return &ProtocolError{Reason: "truncated Copy body", Err: derr}
	}
	r.summary.BytesReceived += m.Length
	r.cfg.Stats.AddBytesReceived(m.Length)

	if err != nil {
		var swe *store.StoreWriteError
		if errors.As(err, &swe) {
			return err
		}
		r.log.Warn("rejected copy", "address", m.Address, "error", err)
		r.copyErr[f.ID] = err
		return nil
	}
	if blob.Created {
		r.summary.BlobsCreated++
	}
	return nil
}

func (r *responder) bye(f Frame) error {
	var m Bye
	if err := Decode(f, &m); err != nil {
		return r.abort(err)
	}
	r.log.Info("session finished",
		"links", r.summary.Links,
		"blobs", r.summary.BlobsCreated,
		"received", r.summary.BytesReceived,
		"failures", r.summary.Failures,
	)
	return r.conn.Send(0, MsgSummary, &r.summary)
}

// failed completes request id with LinkFailed. The session continues.
func (r *responder) failed(id uint32, path string, err error) error {
	r.summary.Failures++
	r.cfg.Stats.AddFilesFailed(1)
	r.log.Warn("entry failed", "path", path, "error", err)

	m := &LinkFailed{Message: err.Error()}
	var errno unix.Errno
	if errors.As(err, &errno) {
		m.Errno = int64(errno)
	}
	return r.conn.Send(id, MsgLinkFailed, m)
}

// abort reports a fatal error to the driver and returns it.
func (r *responder) abort(err error) error {
	code := CodeStore
	var (
		pe  *ProtocolError
		pre *engine.PreconditionError
	)
	switch {
	case errors.As(err, &pe):
		code = CodeProtocol
	case errors.As(err, &pre):
		code = CodePrecondition
	}
	r.log.Error("session aborted", "error", err)
	r.conn.SendError(code, err)
	return err
}
