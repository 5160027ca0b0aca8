package dtls

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"
)

var (
	errHandshakeFormat = errors.New("dtls: handshake format error")
)

// handshakeHeaderLen is the fixed size of the DTLS handshake fragment
// header: type(1) length(3) message_seq(2) fragment_offset(3)
// fragment_length(3).
const handshakeHeaderLen = 12

// handshake is one fragment of a handshake message. length is the
// total length of the reassembled message; raw carries the fragment
// payload starting at off.
type handshake struct {
	typ    uint8
	length int
	seq    uint16
	off    int
	raw    []byte
}

// marshal appends the 12-byte header followed by the fragment payload.
func (h *handshake) marshal(b []byte) []byte {
	bb := cryptobyte.NewBuilder(b)
	bb.AddUint8(h.typ)
	bb.AddUint24(uint32(h.length))
	bb.AddUint16(h.seq)
	bb.AddUint24(uint32(h.off))
	bb.AddUint24(uint32(len(h.raw)))
	bb.AddBytes(h.raw)
	return bb.BytesOrPanic()
}

func parseHandshake(b []byte) (*handshake, error) {
	var (
		s       = cryptobyte.String(b)
		h       handshake
		length  uint32
		off     uint32
		payload cryptobyte.String
	)
	if !s.ReadUint8(&h.typ) ||
		!s.ReadUint24(&length) ||
		!s.ReadUint16(&h.seq) ||
		!s.ReadUint24(&off) ||
		!s.ReadUint24LengthPrefixed(&payload) {
		return nil, errHandshakeFormat
	}
	h.length, h.off, h.raw = int(length), int(off), payload
	if h.off+len(h.raw) > h.length {
		return nil, errHandshakeFormat
	}
	return &h, nil
}
