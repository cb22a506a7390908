// Package gateways provides implementations of domain gateway interfaces.
package gateways

import (
	"context"

	"github.com/ochairo/solcheck/internal/domain/interfaces/gateways"
)

// compositeIntegrityGateway implements IntegrityGateway by composing the
// checksum and GPG gateways
type compositeIntegrityGateway struct {
	checksumVerifier *checksumVerifier
	gpgVerifier      *gpgVerifier
}

// NewCompositeIntegrityGateway creates a new composite integrity gateway with all dependencies
func NewCompositeIntegrityGateway() gateways.IntegrityGateway {
	return &compositeIntegrityGateway{
		checksumVerifier: NewChecksumVerifier(),
		gpgVerifier:      NewGPGVerifier(),
	}
}

// NewCompositeIntegrityGatewayWithDeps creates a composite gateway with custom dependencies
func NewCompositeIntegrityGatewayWithDeps(checksum *checksumVerifier, gpg *gpgVerifier) gateways.IntegrityGateway {
	return &compositeIntegrityGateway{
		checksumVerifier: checksum,
		gpgVerifier:      gpg,
	}
}

// VerifyChecksum verifies a file's SHA-256 checksum
func (c *compositeIntegrityGateway) VerifyChecksum(ctx context.Context, filePath, expectedSum string) error {
	return c.checksumVerifier.VerifyChecksum(ctx, filePath, expectedSum)
}

// VerifyChecksumFile verifies a file against a sha256sum-style file
func (c *compositeIntegrityGateway) VerifyChecksumFile(ctx context.Context, filePath, checksumPath string) error {
	return c.checksumVerifier.VerifyChecksumFile(ctx, filePath, checksumPath)
}

// ImportGPGKeyFromFile imports public keys from a local file
func (c *compositeIntegrityGateway) ImportGPGKeyFromFile(keyPath string) error {
	return c.gpgVerifier.ImportGPGKeyFromFile(keyPath)
}

// ImportGPGKeysFromURL imports public keys from a KEYS file URL
func (c *compositeIntegrityGateway) ImportGPGKeysFromURL(ctx context.Context, keysURL string) error {
	return c.gpgVerifier.ImportGPGKeysFromURL(ctx, keysURL)
}

// VerifyGPGSignatureFromFile verifies a detached signature
func (c *compositeIntegrityGateway) VerifyGPGSignatureFromFile(ctx context.Context, filePath, sigPath string) error {
	return c.gpgVerifier.VerifyGPGSignatureFromFile(ctx, filePath, sigPath)
}

// KeyringSize returns the number of imported keys
func (c *compositeIntegrityGateway) KeyringSize() int {
	return c.gpgVerifier.KeyringSize()
}
