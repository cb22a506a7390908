package gateways

import (
	"context"
)

// IntegrityGateway checks input files before they are read
type IntegrityGateway interface {
	// Checksums
	VerifyChecksum(ctx context.Context, filePath, expectedSum string) error
	VerifyChecksumFile(ctx context.Context, filePath, checksumPath string) error

	// Signatures
	ImportGPGKeyFromFile(keyPath string) error
	ImportGPGKeysFromURL(ctx context.Context, keysURL string) error
	VerifyGPGSignatureFromFile(ctx context.Context, filePath, sigPath string) error
	KeyringSize() int
}
