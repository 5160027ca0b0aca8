package dtls

// DatagramTransport abstracts the unreliable channel the handshake
// runs over. SendLimit reports the maximum number of bytes accepted
// by a single Send call, inclusive of the handshake fragment header.
// Send delivers one datagram or fails; delivery is not guaranteed and
// a returned error leaves the delivery status of earlier datagrams
// unknown.
type DatagramTransport interface {
	SendLimit() int
	Send(p []byte) error
	Receive(p []byte) (int, error)
}
