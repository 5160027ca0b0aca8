// Package dtls implements the client-side initiation of a DTLS
// handshake: security parameter generation, ClientHello construction
// and fragmentation of handshake messages over an MTU-limited
// datagram transport.
//
// The handshake state machine, record-layer protection and
// retransmission scheduling belong to the layers above; this package
// only builds and sends.
package dtls

const (
	VersionTLS10 uint16 = 0x0301
	VersionTLS11 uint16 = 0x0302
	VersionTLS12 uint16 = 0x0303

	VersionDTLS10 uint16 = 0xfeff
	VersionDTLS12 uint16 = 0xfefd
)

const (
	handshakeClientHello        uint8 = 1
	handshakeServerHello        uint8 = 2
	handshakeHelloVerifyRequest uint8 = 3
	handshakeCertificate        uint8 = 11
	handshakeServerKeyExchange  uint8 = 12
	handshakeCertificateRequest uint8 = 13
	handshakeServerHelloDone    uint8 = 14
	handshakeCertificateVerify  uint8 = 15
	handshakeClientKeyExchange  uint8 = 16
	handshakeFinished           uint8 = 20
)

const (
	// RFC 5746 3.4: the client offers either an empty renegotiation_info
	// extension or the SCSV, never both.
	scsvRenegotiation    uint16 = 0x00ff
	extRenegotiationInfo uint16 = 0xff01
)

const (
	compressionNone uint8 = 0
)

var supportedCompression = []uint8{
	compressionNone,
}
