package stats

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

const ringSize = 60

// Collector tracks snapshot statistics using lock-free atomic counters.
// One Collector belongs to one run; it is never shared between walks.
type Collector struct {
	dirsCreated   atomic.Int64
	filesScanned  atomic.Int64
	filesLinked   atomic.Int64
	filesSkipped  atomic.Int64
	filesFailed   atomic.Int64
	bytesHashed   atomic.Int64
	bytesStored   atomic.Int64
	blobsCreated  atomic.Int64
	blobsReused   atomic.Int64
	bytesSent     atomic.Int64
	bytesReceived atomic.Int64
	startTime     time.Time

	// Ring buffer, written only by Tick.
	mu         sync.Mutex
	copiedRing [ringSize]int64 // stored+sent+received bytes delta per tick
	hashedRing [ringSize]int64 // hashed bytes delta per tick
	ringIdx    int
	ringCount  int
	lastCopied int64
	lastHashed int64
}

// NewCollector creates a Collector with startTime set to now.
func NewCollector() *Collector {
	return &Collector{startTime: time.Now()}
}

// Snapshot is a point-in-time read of all counters.
type Snapshot struct {
	DirsCreated   int64
	FilesScanned  int64
	FilesLinked   int64
	FilesSkipped  int64
	FilesFailed   int64
	BytesHashed   int64
	BytesStored   int64
	BlobsCreated  int64
	BlobsReused   int64
	BytesSent     int64
	BytesReceived int64
	Elapsed       time.Duration
}

func (c *Collector) AddDirsCreated(n int64)   { c.dirsCreated.Add(n) }
func (c *Collector) AddFilesScanned(n int64)  { c.filesScanned.Add(n) }
func (c *Collector) AddFilesLinked(n int64)   { c.filesLinked.Add(n) }
func (c *Collector) AddFilesSkipped(n int64)  { c.filesSkipped.Add(n) }
func (c *Collector) AddFilesFailed(n int64)   { c.filesFailed.Add(n) }
func (c *Collector) AddBytesHashed(n int64)   { c.bytesHashed.Add(n) }
func (c *Collector) AddBytesStored(n int64)   { c.bytesStored.Add(n) }
func (c *Collector) AddBlobsCreated(n int64)  { c.blobsCreated.Add(n) }
func (c *Collector) AddBlobsReused(n int64)   { c.blobsReused.Add(n) }
func (c *Collector) AddBytesSent(n int64)     { c.bytesSent.Add(n) }
func (c *Collector) AddBytesReceived(n int64) { c.bytesReceived.Add(n) }

// BytesHashed returns the running total of bytes fed through the digest.
func (c *Collector) BytesHashed() int64 { return c.bytesHashed.Load() }

// Snapshot returns a point-in-time read of all counters.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		DirsCreated:   c.dirsCreated.Load(),
		FilesScanned:  c.filesScanned.Load(),
		FilesLinked:   c.filesLinked.Load(),
		FilesSkipped:  c.filesSkipped.Load(),
		FilesFailed:   c.filesFailed.Load(),
		BytesHashed:   c.bytesHashed.Load(),
		BytesStored:   c.bytesStored.Load(),
		BlobsCreated:  c.blobsCreated.Load(),
		BlobsReused:   c.blobsReused.Load(),
		BytesSent:     c.bytesSent.Load(),
		BytesReceived: c.bytesReceived.Load(),
		Elapsed:       c.Elapsed(),
	}
}

func (c *Collector) copied() int64 {
	return c.bytesStored.Load() + c.bytesSent.Load() + c.bytesReceived.Load()
}

// Tick snapshots byte deltas into the ring buffer. Called 1/sec by the
// progress reporter.
func (c *Collector) Tick() {
	currentCopied := c.copied()
	currentHashed := c.bytesHashed.Load()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.copiedRing[c.ringIdx] = currentCopied - c.lastCopied
	c.hashedRing[c.ringIdx] = currentHashed - c.lastHashed
	c.lastCopied = currentCopied
	c.lastHashed = currentHashed

	c.ringIdx = (c.ringIdx + 1) % ringSize
	if c.ringCount < ringSize {
		c.ringCount++
	}
}

// CopyRate returns average copied bytes/sec over the last n ticks.
func (c *Collector) CopyRate(seconds int) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rollingAvg(c.copiedRing[:], seconds)
}

// HashRate returns average hashed bytes/sec over the last n ticks.
func (c *Collector) HashRate(seconds int) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rollingAvg(c.hashedRing[:], seconds)
}

func (c *Collector) rollingAvg(buf []int64, n int) float64 {
	count := min(n, c.ringCount)
	if count == 0 {
		return 0
	}
	var sum int64
	for i := range count {
		idx := (c.ringIdx - 1 - i + ringSize) % ringSize
		sum += buf[idx]
	}
	return float64(sum) / float64(count)
}

// Elapsed returns time since collector creation.
func (c *Collector) Elapsed() time.Duration {
	return time.Since(c.startTime)
}

func (s Snapshot) String() string {
	return fmt.Sprintf(
		"dirs=%d scanned=%d linked=%d skipped=%d failed=%d hashed=%d stored=%d blobs=%d reused=%d sent=%d received=%d",
		s.DirsCreated, s.FilesScanned, s.FilesLinked, s.FilesSkipped, s.FilesFailed,
		s.BytesHashed, s.BytesStored, s.BlobsCreated, s.BlobsReused, s.BytesSent, s.BytesReceived,
	)
}
