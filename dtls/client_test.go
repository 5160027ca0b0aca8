package dtls

import (
	"bytes"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

func testClient() (*Client, *clock.Mock) {
	clk := clock.NewMock()
	clk.Set(time.Date(2018, 3, 7, 12, 2, 58, 0, time.UTC))
	return &Client{
		Rand:  bytes.NewReader(body(64)),
		Clock: clk,
		Log:   discardLog(),
	}, clk
}

func TestConnect(t *testing.T) {
	tr := &scriptTransport{limit: 1400}
	client, clk := testClient()
	conn, err := client.Connect(&Config{}, tr)
	if err != nil {
		t.Fatal(err)
	}
	if len(tr.sent) != 1 {
		t.Fatalf("datagrams: %d", len(tr.sent))
	}
	h, err := parseHandshake(tr.sent[0])
	if err != nil {
		t.Fatal(err)
	}
	if h.typ != handshakeClientHello || h.seq != 0 || h.off != 0 || h.length != len(h.raw) {
		t.Fatalf("handshake header: %#v", h)
	}
	m, err := parseClientHello(h.raw)
	if err != nil {
		t.Fatal(err)
	}
	if m.ver != VersionDTLS12 {
		t.Fatalf("version: %04x", m.ver)
	}
	if len(m.sessionID) != 0 || len(m.cookie) != 0 {
		t.Fatalf("session %d cookie %d", len(m.sessionID), len(m.cookie))
	}
	if !bytes.Equal(m.random, conn.ClientRandom()) {
		t.Fatal("client random mismatch")
	}
	if got := int64(uint32(m.random[0])<<24 | uint32(m.random[1])<<16 | uint32(m.random[2])<<8 | uint32(m.random[3])); got != clk.Now().Unix() {
		t.Fatalf("random timestamp: %d", got)
	}
	// No extensions configured, so the SCSV rides along.
	if m.cipherSuites[len(m.cipherSuites)-1] != scsvRenegotiation {
		t.Fatalf("suites: %04x", m.cipherSuites)
	}
	if m.extensions != nil {
		t.Fatalf("extensions: %#v", m.extensions)
	}
	if conn.Version() != VersionDTLS12 {
		t.Fatalf("conn version: %04x", conn.Version())
	}
}

func TestConnectFragmented(t *testing.T) {
	tr := &scriptTransport{limit: 40}
	client, _ := testClient()
	if _, err := client.Connect(&Config{}, tr); err != nil {
		t.Fatal(err)
	}
	if len(tr.sent) < 2 {
		t.Fatalf("datagrams: %d", len(tr.sent))
	}
	var joined []byte
	total := -1
	for _, p := range tr.sent {
		h, err := parseHandshake(p)
		if err != nil {
			t.Fatal(err)
		}
		if h.off != len(joined) {
			t.Fatalf("offset %d at %d bytes", h.off, len(joined))
		}
		total = h.length
		joined = append(joined, h.raw...)
	}
	if len(joined) != total {
		t.Fatalf("reassembled %d of %d bytes", len(joined), total)
	}
	if _, err := parseClientHello(joined); err != nil {
		t.Fatal(err)
	}
}

func TestConnectNilConfig(t *testing.T) {
	tr := &scriptTransport{limit: 1400}
	client, _ := testClient()
	if _, err := client.Connect(nil, tr); err != errNilConfig {
		t.Fatalf("nil config: %v", err)
	}
	if len(tr.sent) != 0 {
		t.Fatal("hello sent despite nil config")
	}
}

func TestConnSequenceNumbers(t *testing.T) {
	tr := &scriptTransport{limit: 1400}
	client, _ := testClient()
	conn, err := client.Connect(&Config{}, tr)
	if err != nil {
		t.Fatal(err)
	}
	if err := conn.writeHandshake(handshakeClientKeyExchange, body(48)); err != nil {
		t.Fatal(err)
	}
	h, err := parseHandshake(tr.sent[len(tr.sent)-1])
	if err != nil {
		t.Fatal(err)
	}
	if h.typ != handshakeClientKeyExchange || h.seq != 1 {
		t.Fatalf("second message header: %#v", h)
	}
}

func TestClientRandomIsCopied(t *testing.T) {
	tr := &scriptTransport{limit: 1400}
	client, _ := testClient()
	conn, err := client.Connect(&Config{}, tr)
	if err != nil {
		t.Fatal(err)
	}
	r := conn.ClientRandom()
	r[0] ^= 0xff
	if bytes.Equal(r, conn.ClientRandom()) {
		t.Fatal("ClientRandom exposes internal state")
	}
}
