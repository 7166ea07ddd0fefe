package proto

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// WriteFlusher is implemented by streams that buffer writes and require
// explicit flushing (e.g. compressed streams). Conn flushes it after every
// message so the peer never waits on buffered bytes.
type WriteFlusher interface {
	Flush() error
}

// compressedStream wraps a duplex stream with zstd streaming compression.
// Writes are compressed by the encoder; reads are decompressed by the decoder.
type compressedStream struct {
	rwc     io.ReadWriteCloser
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewCompressedStream wraps rwc with zstd streaming compression. Both ends
// of a connection must agree to compress. The encoder uses level 1
// (SpeedFastest) with single-threaded encoding.
func NewCompressedStream(rwc io.ReadWriteCloser) (io.ReadWriteCloser, error) {
	encoder, err := zstd.NewWriter(rwc,
		zstd.WithEncoderLevel(zstd.SpeedFastest),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(rwc, zstd.WithDecoderConcurrency(1))
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}

	return &compressedStream{
		rwc:     rwc,
		encoder: encoder,
		decoder: decoder,
	}, nil
}

func (c *compressedStream) Read(p []byte) (int, error) {
	return c.decoder.Read(p)
}

func (c *compressedStream) Write(p []byte) (int, error) {
	return c.encoder.Write(p)
}

// Flush emits a syncable zstd frame so the decoder can consume buffered data
// immediately.
func (c *compressedStream) Flush() error {
	return c.encoder.Flush()
}

// Close shuts down the encoder, closes the underlying stream (to unblock the
// decoder's background reader goroutine), then releases the decoder.
func (c *compressedStream) Close() error {
	c.encoder.Close()
	err := c.rwc.Close()
	c.decoder.Close()
	return err
}
