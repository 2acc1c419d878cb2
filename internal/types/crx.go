// File: internal/types/crx.go
package types

// CrxMagic is the 4-byte marker at the start of every CRX container
// ("Cr24" in ASCII).
var CrxMagic = [4]byte{0x43, 0x72, 0x32, 0x34}

// Fixed header field offsets. All multi-byte fields are little-endian
// 32-bit values.
const (
	// CrxMagicOffset is the start of the magic marker.
	CrxMagicOffset = 0
	// CrxVersionOffset is the start of the format version field.
	CrxVersionOffset = 4
	// CrxPublicKeyLengthOffset is the start of the public-key length field.
	CrxPublicKeyLengthOffset = 8
	// CrxSignatureLengthOffset is the start of the signature length
	// field. Only meaningful for format versions 2 and below.
	CrxSignatureLengthOffset = 12

	// CrxKeyDataOffset is where the public key (and, for version <= 2,
	// the signature) region begins. Fixed at 16 for every format
	// version, independent of the header size.
	CrxKeyDataOffset = 16

	// CrxHeaderSizeV2 is the header size for format versions <= 2,
	// which carry a signature length field.
	CrxHeaderSizeV2 = 16
	// CrxHeaderSizeV3 is the header size for format versions >= 3.
	CrxHeaderSizeV3 = 12
)

// CrxExtension is the decoded form of a CRX container. All byte slices
// are owned copies of the corresponding input ranges; the input buffer
// may be discarded after decoding.
type CrxExtension struct {
	// Version is the container format version from the header.
	Version uint32

	// PublicKey is the embedded key material.
	PublicKey []byte

	// Signature is the embedded signature, or nil when the container
	// carries none (signature length zero, or format version >= 3).
	Signature []byte

	// Zip is the inner archive payload: the exact suffix of the input
	// following the header, key, and signature region. May be empty.
	Zip []byte
}
