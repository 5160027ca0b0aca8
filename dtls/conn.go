package dtls

import (
	"github.com/sirupsen/logrus"
)

// Conn is a handshake attempt in progress. It owns the transport for
// the duration of the attempt and hands out the message sequence
// numbers for outgoing handshake messages. It is not safe for
// concurrent use; the handshake flow is strictly sequential.
type Conn struct {
	transport DatagramTransport
	params    *securityParameters
	log       logrus.FieldLogger
	seq       uint16
}

// writeHandshake fragments body and sends it under the next message
// sequence number. The sequence number is consumed even when a send
// fails part-way: the message was (possibly partially) on the wire
// and must not be reused for different content.
func (c *Conn) writeHandshake(typ uint8, body []byte) error {
	seq := c.seq
	c.seq++
	return sendHandshakeMessage(c.transport, c.log, seq, typ, body)
}

// ClientRandom returns a copy of the 32-byte client random generated
// for this attempt.
func (c *Conn) ClientRandom() []byte {
	return append([]byte(nil), c.params.clientRandom...)
}

// Version returns the protocol version offered in the ClientHello.
func (c *Conn) Version() uint16 {
	return c.params.version
}

// SendLimit reports the transport's maximum datagram size.
func (c *Conn) SendLimit() int {
	return c.transport.SendLimit()
}

// Send passes a datagram straight to the transport.
func (c *Conn) Send(p []byte) error {
	return c.transport.Send(p)
}

// Receive passes a read straight to the transport.
func (c *Conn) Receive(p []byte) (int, error) {
	return c.transport.Receive(p)
}
