package dtls

import (
	"github.com/pkg/errors"
)

var (
	errNilConfig            = errors.New("dtls: config cannot be nil")
	errNoCipherSuites       = errors.New("dtls: no cipher suites configured")
	errNoCompressionMethods = errors.New("dtls: no compression methods configured")
)

// ClientConfig supplies the client policy for the initial handshake
// message: protocol version, offered cipher suites in preference
// order, compression methods and an optional extension set. A nil
// extension map means no extensions block is emitted at all; an empty
// non-nil map emits an empty block. The builder treats all returned
// values as read-only.
type ClientConfig interface {
	Version() uint16
	CipherSuites() []uint16
	CompressionMethods() []uint8
	Extensions() map[uint16][]byte
}

// Config is the default ClientConfig. The zero value offers DTLS 1.2
// with the default cipher suites and null compression.
type Config struct {
	ProtocolVersion uint16
	Suites          []uint16
	Compression     []uint8
	Exts            map[uint16][]byte
}

var defaultCipherSuites = []uint16{
	0xc02b, // TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256
	0xc02f, // TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256
	0x009c, // TLS_RSA_WITH_AES_128_GCM_SHA256
	0x002f, // TLS_RSA_WITH_AES_128_CBC_SHA
	0x0035, // TLS_RSA_WITH_AES_256_CBC_SHA
}

func (c *Config) Version() uint16 {
	if c.ProtocolVersion != 0 {
		return c.ProtocolVersion
	}
	return VersionDTLS12
}

func (c *Config) CipherSuites() []uint16 {
	if c.Suites != nil {
		return c.Suites
	}
	return defaultCipherSuites
}

func (c *Config) CompressionMethods() []uint8 {
	if c.Compression != nil {
		return c.Compression
	}
	return supportedCompression
}

func (c *Config) Extensions() map[uint16][]byte {
	return c.Exts
}

func (c *Config) Clone() *Config {
	if c != nil {
		r := *c
		return &r
	}
	return nil
}
