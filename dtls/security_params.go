package dtls

import (
	"encoding/binary"
	"io"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

// securityParameters holds the client-generated randomness and the
// values fixed over the course of one handshake attempt. A new
// instance is created per attempt; there is no reset.
type securityParameters struct {
	clientRandom []byte
	version      uint16
}

// newSecurityParameters fills a 32-byte client random from rnd and
// then overwrites the first 4 bytes with the current Unix time in
// seconds, big-endian. The random fill happens first so the
// timestamp never widens the random region.
func newSecurityParameters(rnd io.Reader, clk clock.Clock) (*securityParameters, error) {
	p := &securityParameters{
		clientRandom: make([]byte, 32),
	}
	if _, err := io.ReadFull(rnd, p.clientRandom); err != nil {
		return nil, errors.Wrap(err, "dtls: short read from random source")
	}
	binary.BigEndian.PutUint32(p.clientRandom, uint32(clk.Now().Unix()))
	return p, nil
}
