package dtls

import (
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"
)

var errClientHelloFormat = errors.New("dtls: client_hello format error")

// buildClientHello serializes the ClientHello body from the client
// policy and the attempt's security parameters. As a side effect it
// fixes params.version to the offered version; this is the only place
// the field is set.
//
// cookie distinguishes the initial hello from the reply to a
// HelloVerifyRequest: nil omits the cookie entirely, a non-nil slice
// (possibly empty) is emitted with its length byte. The config's
// cipher-suite slice and extension map are never modified; when the
// renegotiation_info extension is absent the SCSV is written as an
// extra trailing suite on the wire only.
func buildClientHello(config ClientConfig, params *securityParameters, cookie []byte) ([]byte, error) {
	suites := config.CipherSuites()
	if suites == nil {
		return nil, errNoCipherSuites
	}
	comp := config.CompressionMethods()
	if comp == nil {
		return nil, errNoCompressionMethods
	}
	exts := config.Extensions()

	params.version = config.Version()

	var bb cryptobyte.Builder
	bb.AddUint16(params.version)
	bb.AddBytes(params.clientRandom)

	// Session id, always empty: resumption is not supported here.
	bb.AddUint8(0)

	if cookie != nil {
		bb.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes(cookie)
		})
	}

	_, renegExt := exts[extRenegotiationInfo]
	n := len(suites)
	if !renegExt {
		n++
	}
	bb.AddUint16(uint16(2 * n))
	for _, s := range suites {
		bb.AddUint16(s)
	}
	if !renegExt {
		bb.AddUint16(scsvRenegotiation)
	}

	bb.AddUint8(uint8(len(comp)))
	for _, m := range comp {
		bb.AddUint8(m)
	}

	// The extensions block is controlled by map presence, not size:
	// a nil map writes nothing, an empty one writes a zero-length
	// block. Entries go out in ascending type order so the output is
	// reproducible.
	if exts != nil {
		types := make([]uint16, 0, len(exts))
		for typ := range exts {
			types = append(types, typ)
		}
		sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
		bb.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			for _, typ := range types {
				b.AddUint16(typ)
				b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
					b.AddBytes(exts[typ])
				})
			}
		})
	}

	return bb.Bytes()
}

// clientHello is the decoded form of a ClientHello body. It exists
// for the test side of this package; peers do their own parsing.
type clientHello struct {
	ver          uint16
	random       []byte
	sessionID    []byte
	cookie       []byte
	cipherSuites []uint16
	compMethods  []uint8
	extensions   map[uint16][]byte
}

func parseClientHello(b []byte) (*clientHello, error) {
	var (
		s                       = cryptobyte.String(b)
		h                       clientHello
		random                  []byte
		session, cookie, suites cryptobyte.String
		comp, exts, value       cryptobyte.String
	)
	if !s.ReadUint16(&h.ver) ||
		!s.ReadBytes(&random, 32) ||
		!s.ReadUint8LengthPrefixed(&session) ||
		!s.ReadUint8LengthPrefixed(&cookie) ||
		!s.ReadUint16LengthPrefixed(&suites) ||
		!s.ReadUint8LengthPrefixed(&comp) {
		return nil, errClientHelloFormat
	}
	h.random, h.sessionID, h.cookie, h.compMethods = random, session, cookie, comp
	for !suites.Empty() {
		var id uint16
		if !suites.ReadUint16(&id) {
			return nil, errClientHelloFormat
		}
		h.cipherSuites = append(h.cipherSuites, id)
	}
	if s.Empty() {
		return &h, nil
	}
	if !s.ReadUint16LengthPrefixed(&exts) || !s.Empty() {
		return nil, errClientHelloFormat
	}
	h.extensions = map[uint16][]byte{}
	for !exts.Empty() {
		var typ uint16
		if !exts.ReadUint16(&typ) || !exts.ReadUint16LengthPrefixed(&value) {
			return nil, errClientHelloFormat
		}
		h.extensions[typ] = value
	}
	return &h, nil
}
