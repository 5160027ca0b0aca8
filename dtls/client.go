package dtls

import (
	"crypto/rand"
	"io"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
)

// Client initiates DTLS handshakes. The zero value uses the
// crypto/rand reader, the wall clock and the logrus standard logger;
// all three can be replaced, which the tests rely on.
type Client struct {
	Rand  io.Reader
	Clock clock.Clock
	Log   logrus.FieldLogger
}

// Connect generates fresh security parameters, builds the ClientHello
// from config and sends it over transport as handshake message zero.
// The returned Conn carries the transport and the attempt's
// parameters for the layers that run the rest of the handshake.
//
// The hello goes out with an empty cookie; answering a
// HelloVerifyRequest with the server's cookie is the state machine's
// job and reuses the same builder.
func (c *Client) Connect(config ClientConfig, transport DatagramTransport) (*Conn, error) {
	if config == nil {
		return nil, errNilConfig
	}

	params, err := newSecurityParameters(c.getRand(), c.getClock())
	if err != nil {
		return nil, err
	}

	hello, err := buildClientHello(config, params, []byte{})
	if err != nil {
		return nil, err
	}

	conn := &Conn{
		transport: transport,
		params:    params,
		log:       c.getLog(),
	}
	if err := conn.writeHandshake(handshakeClientHello, hello); err != nil {
		return nil, err
	}
	return conn, nil
}

func (c *Client) getRand() io.Reader {
	if c.Rand != nil {
		return c.Rand
	}
	return rand.Reader
}

func (c *Client) getClock() clock.Clock {
	if c.Clock != nil {
		return c.Clock
	}
	return clock.New()
}

func (c *Client) getLog() logrus.FieldLogger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}
