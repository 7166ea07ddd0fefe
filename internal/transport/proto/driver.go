package proto

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
	"golang.org/x/time/rate"

	"github.com/bamsammich/snap/internal/engine"
	"github.com/bamsammich/snap/internal/stats"
	"github.com/bamsammich/snap/internal/store"
)

// DriverConfig configures the sending side of a sync session.
type DriverConfig struct {
	Stats     *stats.Collector
	Logger    *slog.Logger
	Limiter   *rate.Limiter // caps Copy body bytes; nil for unlimited
	Label     string
	Digest    string // empty accepts the repository's digest
	BlockSize int
}

// Driver is the local end of a sync session. It implements engine.Sink:
// every Put hashes the file, sends a Link and waits for the responder to
// complete it, transferring the bytes only when the responder asks.
type Driver struct {
	conn    *Conn
	cfg     DriverConfig
	hasher  *store.Hasher
	log     *slog.Logger
	group   *errgroup.Group
	session string
	digest  string

	mu       sync.Mutex
	nextID   uint32
	inflight map[uint32]*request
	copies   []copyJob
	copyWake chan struct{}
	readDone chan struct{}
	summary  chan Summary
	dead     chan struct{}
	err      error
	closing  bool
}

// request is a Link or Mkdir awaiting its terminal reply.
type request struct {
	done   chan error // buffered; receives exactly once
	src    string
	rel    string
	addr   store.Address
	size   int64
	copied bool
}

type copyJob struct {
	id   uint32
	addr string
}

// Dial opens a session over rwc. The responder checks the label and
// repository preconditions before replying, so a PreconditionError from Dial
// means nothing was created remotely.
func Dial(ctx context.Context, rwc io.ReadWriteCloser, cfg DriverConfig) (*Driver, error) {
	if cfg.Stats == nil {
		cfg.Stats = stats.NewCollector()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	conn := NewConn(rwc)
	session := uuid.NewString()
	logger = logger.With("session", session)

	hello := &Hello{
		Version: ProtocolVersion,
		Session: session,
		Label:   cfg.Label,
		Digest:  cfg.Digest,
	}
	if err := conn.Send(0, MsgHello, hello); err != nil {
		conn.Close()
		return nil, &ProtocolError{Reason: "send Hello", Err: err}
	}

	welcome, err := awaitWelcome(ctx, conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if welcome.Version != ProtocolVersion {
		conn.Close()
		return nil, &ProtocolError{Reason: fmt.Sprintf("responder speaks version %d, want %d", welcome.Version, ProtocolVersion)}
	}

	hasher, err := store.NewHasher(welcome.Digest, cfg.BlockSize, cfg.Stats)
	if err != nil {
		conn.Close()
		return nil, &ProtocolError{Reason: "responder digest", Err: err}
	}
	logger.Debug("session established", "label", cfg.Label, "digest", welcome.Digest)

	g, gctx := errgroup.WithContext(context.Background())
	d := &Driver{
		conn:     conn,
		cfg:      cfg,
		hasher:   hasher,
		log:      logger,
		group:    g,
		session:  session,
		digest:   welcome.Digest,
		nextID:   1,
		inflight: make(map[uint32]*request),
		copyWake: make(chan struct{}, 1),
		readDone: make(chan struct{}),
		summary:  make(chan Summary, 1),
		dead:     make(chan struct{}),
	}
	g.Go(func() error {
		defer close(d.readDone)
		return d.readLoop()
	})
	g.Go(func() error { return d.serveCopies(gctx) })
	go func() {
		d.fail(g.Wait())
	}()
	return d, nil
}

// awaitWelcome reads the responder's reply to Hello, honouring ctx.
func awaitWelcome(ctx context.Context, conn *Conn) (Welcome, error) {
	type reply struct {
		f   Frame
		err error
	}
	ch := make(chan reply, 1)
	go func() {
		f, err := conn.Recv()
		ch <- reply{f, err}
	}()

	var r reply
	select {
	case r = <-ch:
	case <-ctx.Done():
		return Welcome{}, ctx.Err()
	}
	if r.err != nil {
		return Welcome{}, &ProtocolError{Reason: "read Welcome", Err: r.err}
	}

	switch r.f.MsgType {
	case MsgWelcome:
		var w Welcome
		if err := Decode(r.f, &w); err != nil {
			return Welcome{}, err
		}
		return w, nil
	case MsgError:
		return Welcome{}, remoteError(r.f)
	default:
		return Welcome{}, &ProtocolError{Reason: "expected Welcome, got " + msgName(r.f.MsgType)}
	}
}

// Session returns the session ID sent in Hello.
func (d *Driver) Session() string { return d.session }

// Digest returns the digest algorithm the responder's repository uses.
func (d *Driver) Digest() string { return d.digest }

// Mkdir implements engine.Sink.
func (d *Driver) Mkdir(ctx context.Context, rel string) error {
	req := &request{rel: rel, done: make(chan error, 1)}
	id, err := d.register(req)
	if err != nil {
		return err
	}
	if err := d.conn.Send(id, MsgMkdir, &Mkdir{Path: rel}); err != nil {
		d.fail(&ProtocolError{Reason: "send Mkdir", Err: err})
	}
	return d.wait(ctx, req)
}

// Put implements engine.Sink.
func (d *Driver) Put(ctx context.Context, src, rel string) (engine.PutResult, error) {
	addr, size, err := d.hasher.AddressOf(src)
	if err != nil {
		return engine.PutResult{}, err
	}
	res := engine.PutResult{Address: addr, Size: size}

	req := &request{src: src, rel: rel, addr: addr, size: size, done: make(chan error, 1)}
	id, err := d.register(req)
	if err != nil {
		return res, err
	}
	if err := d.conn.Send(id, MsgLink, &Link{Address: string(addr), Path: rel, Size: size}); err != nil {
		d.fail(&ProtocolError{Reason: "send Link", Err: err})
	}

	err = d.wait(ctx, req)
	d.mu.Lock()
	res.Copied = req.copied
	res.Created = req.copied
	d.mu.Unlock()
	return res, err
}

// Close waits for the responder's Summary and closes the connection. The
// caller must not call Mkdir or Put concurrently with or after Close.
func (d *Driver) Close(ctx context.Context) (Summary, error) {
	d.mu.Lock()
	d.closing = true
	d.mu.Unlock()

	var sum Summary
	err := d.conn.Send(0, MsgBye, &Bye{})
	if err == nil {
		select {
		case sum = <-d.summary:
		case <-d.dead:
			select {
			case sum = <-d.summary:
			default:
				err = d.deadErr()
			}
		case <-ctx.Done():
			err = ctx.Err()
		}
	} else {
		err = &ProtocolError{Reason: "send Bye", Err: err}
	}

	d.conn.Close()
	<-d.dead
	if err == nil {
		d.log.Debug("session closed", "links", sum.Links, "blobs", sum.BlobsCreated,
			"received", sum.BytesReceived, "failures", sum.Failures)
	}
	return sum, err
}

func (d *Driver) register(req *request) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return 0, d.err
	}
	id := d.nextID
	d.nextID++
	if d.nextID == 0 {
		d.nextID = 1
	}
	d.inflight[id] = req
	return id, nil
}

func (d *Driver) wait(ctx context.Context, req *request) error {
	select {
	case err := <-req.done:
		return err
	case <-d.dead:
		return d.deadErr()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// complete delivers the terminal reply for id.
func (d *Driver) complete(id uint32, err error) error {
	d.mu.Lock()
	req, ok := d.inflight[id]
	delete(d.inflight, id)
	d.mu.Unlock()
	if !ok {
		return &ProtocolError{Reason: fmt.Sprintf("reply for unknown request %d", id)}
	}
	req.done <- err
	return nil
}

func (d *Driver) readLoop() error {
	for {
		f, err := d.conn.Recv()
		if err != nil {
			d.mu.Lock()
			closing := d.closing
			d.mu.Unlock()
			if closing && (errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed)) {
				return nil
			}
			return &ProtocolError{Reason: "read", Err: err}
		}

		switch f.MsgType {
		case MsgAck:
			var m Ack
			if err := Decode(f, &m); err != nil {
				return err
			}
			if err := d.complete(f.ID, nil); err != nil {
				return err
			}

		case MsgLinkFailed:
			var m LinkFailed
			if err := Decode(f, &m); err != nil {
				return err
			}
			if err := d.complete(f.ID, d.linkFailure(f.ID, m)); err != nil {
				return err
			}

		case MsgCopyRequest:
			var m CopyRequest
			if err := Decode(f, &m); err != nil {
				return err
			}
			d.mu.Lock()
			d.copies = append(d.copies, copyJob{id: f.ID, addr: m.Address})
			d.mu.Unlock()
			select {
			case d.copyWake <- struct{}{}:
			default:
			}

		case MsgSummary:
			var m Summary
			if err := Decode(f, &m); err != nil {
				return err
			}
			d.summary <- m
			return nil

		case MsgError:
			return remoteError(f)

		default:
			return &ProtocolError{Reason: "unexpected " + msgName(f.MsgType)}
		}
	}
}

// linkFailure converts a LinkFailed reply into the per-entry error for the
// request it completes.
func (d *Driver) linkFailure(id uint32, m LinkFailed) error {
	d.mu.Lock()
	req := d.inflight[id]
	d.mu.Unlock()

	var rel, addr string
	if req != nil {
		rel, addr = req.rel, string(req.addr)
	}
	if m.Errno == 0 {
		return &LinkFailedError{Dest: rel, Message: m.Message}
	}
	return &engine.LinkError{Blob: addr, Dest: rel, Errno: unix.Errno(m.Errno)} //nolint:gosec // errno values are small
}

// serveCopies answers CopyRequests. It runs apart from readLoop so the
// reader never blocks on a large write while the responder is itself
// blocked writing to us.
func (d *Driver) serveCopies(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-d.readDone:
			return nil
		case <-d.copyWake:
		}

		for {
			d.mu.Lock()
			if len(d.copies) == 0 {
				d.mu.Unlock()
				break
			}
			job := d.copies[0]
			d.copies = d.copies[1:]
			req := d.inflight[job.id]
			d.mu.Unlock()

			if err := d.sendCopy(ctx, job, req); err != nil {
				return err
			}
		}
	}
}

func (d *Driver) sendCopy(ctx context.Context, job copyJob, req *request) error {
	if req == nil || req.src == "" || string(req.addr) != job.addr {
		return &ProtocolError{Reason: fmt.Sprintf("CopyRequest for unknown link %d", job.id)}
	}

	d.mu.Lock()
	again := req.copied
	req.copied = true
	d.mu.Unlock()
	if again {
		// The responder lost the blob we already sent; give up on this entry
		// rather than loop.
		return d.complete(job.id, &LinkFailedError{
			Dest:    req.rel,
			Message: "responder requested " + job.addr + " again after copy",
		})
	}

	f, err := os.Open(req.src)
	if err != nil {
		return d.complete(job.id, &store.SourceReadError{Path: req.src, Err: err})
	}
	defer f.Close()

	body := engine.RateLimitReader(ctx, f, d.cfg.Limiter)
	n, err := d.conn.SendCopy(job.id, job.addr, req.size, body)
	d.cfg.Stats.AddBytesSent(n)
	if err != nil {
		if !errors.Is(err, ErrShortBody) {
			return &ProtocolError{Reason: "send Copy", Err: err}
		}
		// The body was padded; the responder will reject the content and
		// fail the re-sent Link.
		d.log.Warn("source changed during copy", "path", req.src, "error", err)
	}

	if err := d.conn.Send(job.id, MsgLink, &Link{Address: job.addr, Path: req.rel, Size: req.size}); err != nil {
		return &ProtocolError{Reason: "send Link", Err: err}
	}
	return nil
}

// fail records the first fatal session error and wakes every waiter.
func (d *Driver) fail(err error) {
	d.mu.Lock()
	select {
	case <-d.dead:
		d.mu.Unlock()
		return
	default:
	}
	if err == nil {
		err = &ProtocolError{Reason: "session closed"}
	}
	d.err = err
	close(d.dead)
	d.mu.Unlock()
	d.conn.Close()
}

func (d *Driver) deadErr() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

func remoteError(f Frame) error {
	var m ErrorMsg
	if err := Decode(f, &m); err != nil {
		return err
	}
	if m.Code == CodePrecondition {
		return &engine.PreconditionError{Path: "remote", Reason: m.Message}
	}
	return &RemoteError{Code: m.Code, Message: m.Message}
}
