package dtls

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var errSendLimit = errors.New("dtls: transport send limit cannot carry a handshake fragment")

// sendHandshakeMessage splits body into fragments that fit the
// transport's send limit and delivers them in increasing offset
// order, one Send call per fragment. An empty body is still sent as a
// single zero-length fragment so the peer observes the message. The
// first transport failure aborts the remaining fragments; the error
// is returned as-is and says nothing about fragments already handed
// to the transport.
func sendHandshakeMessage(transport DatagramTransport, log logrus.FieldLogger, seq uint16, typ uint8, body []byte) error {
	limit := transport.SendLimit() - handshakeHeaderLen
	if limit < 1 {
		return errSendLimit
	}
	off := 0
	for {
		n := len(body) - off
		if n > limit {
			n = limit
		}
		h := &handshake{
			typ:    typ,
			length: len(body),
			seq:    seq,
			off:    off,
			raw:    body[off : off+n],
		}
		log.WithFields(logrus.Fields{
			"type":   typ,
			"seq":    seq,
			"offset": off,
			"length": n,
		}).Debug("sending handshake fragment")
		if err := transport.Send(h.marshal(nil)); err != nil {
			return err
		}
		if off += n; off >= len(body) {
			return nil
		}
	}
}
