package crx

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/crxtools/go-crx/internal/interfaces"
	"github.com/crxtools/go-crx/internal/types"
)

// Decode failure classes. Both are terminal: no partial result is ever
// returned. Wrap sites add context; callers classify with errors.Is.
var (
	// ErrInvalidFormat means the magic marker does not identify a CRX
	// container.
	ErrInvalidFormat = errors.New("invalid crx format")

	// ErrTooShort means the buffer ends before a required field or
	// region.
	ErrTooShort = errors.New("crx data too short")
)

// crxReader implements the CrxReader interface over a parsed container
type crxReader struct {
	extension *types.CrxExtension
}

// NewCrxReader decodes data as a CRX container and returns a reader
// over its fields
func NewCrxReader(data []byte) (interfaces.CrxReader, error) {
	extension, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return &crxReader{extension: extension}, nil
}

// Parse decodes a CRX container from a raw byte buffer.
//
// Layout (all fields little-endian uint32):
//
//	[0,4)   magic marker "Cr24"
//	[4,8)   format version
//	[8,12)  public-key length
//	[12,16) signature length (versions <= 2 only)
//
// The header occupies 16 bytes for versions <= 2 and 12 bytes for
// versions >= 3. The public key — and the signature, when present —
// is always read from offset 16 regardless of header size, while the
// payload offset is computed from the version-dependent header size.
// That asymmetry is how the canonical decoder behaves and is kept for
// compatibility; see the version 3 offset test.
//
// Parse is pure: it reads only from data and returns owned copies, so
// concurrent calls on independent buffers need no coordination.
func Parse(data []byte) (*types.CrxExtension, error) {
	magic, err := readRange(data, types.CrxMagicOffset, 4, "magic marker")
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, types.CrxMagic[:]) {
		return nil, fmt.Errorf("%w: magic % X, want % X", ErrInvalidFormat, magic, types.CrxMagic[:])
	}

	version, err := readUint32(data, types.CrxVersionOffset, "format version")
	if err != nil {
		return nil, err
	}

	publicKeyLength, err := readUint32(data, types.CrxPublicKeyLengthOffset, "public-key length")
	if err != nil {
		return nil, err
	}

	// Versions >= 3 have no signature length field; the header ends at
	// byte 12 and the signature length is taken as zero.
	var signatureLength uint32
	if version <= 2 {
		signatureLength, err = readUint32(data, types.CrxSignatureLengthOffset, "signature length")
		if err != nil {
			return nil, err
		}
	}

	publicKey, err := readRange(data, types.CrxKeyDataOffset, int64(publicKeyLength), "public key")
	if err != nil {
		return nil, err
	}

	var signature []byte
	if signatureLength > 0 {
		signature, err = readRange(data, types.CrxKeyDataOffset, int64(signatureLength), "signature")
		if err != nil {
			return nil, err
		}
	}

	headerSize := int64(types.CrxHeaderSizeV3)
	if version <= 2 {
		headerSize = int64(types.CrxHeaderSizeV2)
	}

	payloadOffset := headerSize + int64(signatureLength) + int64(publicKeyLength)
	if payloadOffset > int64(len(data)) {
		return nil, fmt.Errorf("%w: payload starts at %d but data is %d bytes", ErrTooShort, payloadOffset, len(data))
	}

	zip := make([]byte, int64(len(data))-payloadOffset)
	copy(zip, data[payloadOffset:])

	return &types.CrxExtension{
		Version:   version,
		PublicKey: publicKey,
		Signature: signature,
		Zip:       zip,
	}, nil
}

// readRange returns an owned copy of data[offset, offset+length),
// failing with ErrTooShort when the range extends past the buffer
func readRange(data []byte, offset, length int64, field string) ([]byte, error) {
	end := offset + length
	if int64(len(data)) < end {
		return nil, fmt.Errorf("%w: %s needs bytes [%d,%d) but data is %d bytes", ErrTooShort, field, offset, end, len(data))
	}
	buf := make([]byte, length)
	copy(buf, data[offset:end])
	return buf, nil
}

// readUint32 reads a little-endian uint32 at offset
func readUint32(data []byte, offset int64, field string) (uint32, error) {
	slice, err := readRange(data, offset, 4, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(slice), nil
}

// FormatVersion returns the container format version
func (r *crxReader) FormatVersion() uint32 {
	return r.extension.Version
}

// PublicKey returns the embedded public key material
func (r *crxReader) PublicKey() []byte {
	return r.extension.PublicKey
}

// HasSignature reports whether the container carries a signature
func (r *crxReader) HasSignature() bool {
	return r.extension.Signature != nil
}

// Signature returns the embedded signature, or nil when absent
func (r *crxReader) Signature() []byte {
	return r.extension.Signature
}

// Archive returns the inner zip archive payload
func (r *crxReader) Archive() []byte {
	return r.extension.Zip
}
