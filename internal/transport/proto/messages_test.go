package proto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinylib/msgp/msgp"

	"github.com/bamsammich/snap/internal/transport/proto"
)

func TestMessageRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   proto.Message
		out  proto.Message
	}{
		{
			name: "hello",
			in:   &proto.Hello{Session: "s-1", Label: "2026.01.02.03.04.05", Digest: "blake3", Version: 1},
			out:  &proto.Hello{},
		},
		{
			name: "welcome",
			in:   &proto.Welcome{Session: "s-1", Digest: "sha1", Version: 1},
			out:  &proto.Welcome{},
		},
		{
			name: "link",
			in:   &proto.Link{Address: "da39a3ee5e6b4b0d3255bfef95601890afd80709", Path: "a/b.txt", Size: 1 << 40},
			out:  &proto.Link{},
		},
		{
			name: "link failed",
			in:   &proto.LinkFailed{Message: "no space left on device", Errno: 28},
			out:  &proto.LinkFailed{},
		},
		{
			name: "summary",
			in:   &proto.Summary{Links: 3, BlobsCreated: 2, BytesReceived: 4096, Failures: 1},
			out:  &proto.Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := proto.Encode(tt.in)
			require.NoError(t, err)
			require.NoError(t, proto.Decode(proto.Frame{Payload: data}, tt.out))
			assert.Equal(t, tt.in, tt.out)
		})
	}
}

func TestMapEncoding(t *testing.T) {
	t.Parallel()

	data, err := proto.Encode(&proto.Copy{Address: "ab", Length: 10})
	require.NoError(t, err)

	// fixmap 0x80-0x8f, map16 0xde, map32 0xdf
	require.NotEmpty(t, data)
	b := data[0]
	isMap := (b >= 0x80 && b <= 0x8f) || b == 0xde || b == 0xdf
	assert.True(t, isMap, "expected map encoding, got first byte 0x%02x", b)
}

func TestUnknownFieldsIgnored(t *testing.T) {
	t.Parallel()

	var buf []byte
	buf = msgp.AppendMapHeader(buf, 3)
	buf = msgp.AppendString(buf, "path")
	buf = msgp.AppendString(buf, "sub")
	buf = msgp.AppendString(buf, "mode")
	buf = msgp.AppendUint32(buf, 0o755)
	buf = msgp.AppendString(buf, "owner")
	buf = msgp.AppendString(buf, "root")

	var m proto.Mkdir
	require.NoError(t, proto.Decode(proto.Frame{MsgType: proto.MsgMkdir, Payload: buf}, &m))
	assert.Equal(t, "sub", m.Path)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	t.Parallel()

	t.Run("wrong type for field", func(t *testing.T) {
		t.Parallel()
		var buf []byte
		buf = msgp.AppendMapHeader(buf, 1)
		buf = msgp.AppendString(buf, "size")
		buf = msgp.AppendString(buf, "big")

		var m proto.Link
		err := proto.Decode(proto.Frame{MsgType: proto.MsgLink, Payload: buf}, &m)
		var pe *proto.ProtocolError
		require.ErrorAs(t, err, &pe)
		assert.Contains(t, pe.Error(), "decode Link")
	})

	t.Run("trailing bytes", func(t *testing.T) {
		t.Parallel()
		data, err := proto.Encode(&proto.Ack{})
		require.NoError(t, err)

		var m proto.Ack
		err = proto.Decode(proto.Frame{MsgType: proto.MsgAck, Payload: append(data, 0xc0)}, &m)
		var pe *proto.ProtocolError
		require.ErrorAs(t, err, &pe)
		assert.Contains(t, pe.Error(), "trailing")
	})

	t.Run("not a map", func(t *testing.T) {
		t.Parallel()
		var m proto.Hello
		err := proto.Decode(proto.Frame{MsgType: proto.MsgHello, Payload: msgp.AppendArrayHeader(nil, 0)}, &m)
		var pe *proto.ProtocolError
		assert.ErrorAs(t, err, &pe)
	})
}
