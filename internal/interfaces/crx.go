// File: internal/interfaces/crx.go
package interfaces

// CrxReader provides access to the decoded fields of a CRX container
type CrxReader interface {
	// FormatVersion returns the container format version
	FormatVersion() uint32

	// PublicKey returns the embedded public key material
	PublicKey() []byte

	// HasSignature reports whether the container carries a signature
	HasSignature() bool

	// Signature returns the embedded signature, or nil when absent
	Signature() []byte

	// Archive returns the inner zip archive payload
	Archive() []byte
}

// ArchiveExtractor materializes a zip archive payload into a
// destination directory
type ArchiveExtractor interface {
	// ExtractArchive unpacks zipData under destDir and returns the
	// number of files written
	ExtractArchive(zipData []byte, destDir string) (int, error)
}
