package gateways

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// checksumVerifier implements SHA-256 checksum verification using pure Go
type checksumVerifier struct{}

// NewChecksumVerifier creates a new checksum verifier
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewChecksumVerifier() *checksumVerifier {
	return &checksumVerifier{}
}

// VerifyChecksum verifies a file's SHA-256 checksum
func (v *checksumVerifier) VerifyChecksum(ctx context.Context, filePath, expectedSum string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	actualSum, err := v.CalculateChecksum(filePath)
	if err != nil {
		return err
	}

	if !strings.EqualFold(actualSum, expectedSum) {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", expectedSum, actualSum)
	}
	return nil
}

// VerifyChecksumFile verifies filePath against a sha256sum-style file.
// The checksum file holds either a bare hash or "hash  name" lines; with
// several lines the one naming filePath's base name is used.
func (v *checksumVerifier) VerifyChecksumFile(ctx context.Context, filePath, checksumPath string) error {
	//nolint:gosec // G304: checksumPath is user-provided for verification
	data, err := os.ReadFile(checksumPath)
	if err != nil {
		return fmt.Errorf("failed to read checksum file: %w", err)
	}

	expected, err := expectedChecksum(string(data), filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("%s: %w", checksumPath, err)
	}
	return v.VerifyChecksum(ctx, filePath, expected)
}

// CalculateChecksum calculates the SHA-256 checksum of a file
func (v *checksumVerifier) CalculateChecksum(filePath string) (string, error) {
	//nolint:gosec // G304: File path is user-provided for checksum calculation
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func expectedChecksum(content, name string) (string, error) {
	var first string
	for _, line := range strings.Split(content, "\n") {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if first == "" {
			first = parts[0]
		}
		// "hash  name" or "hash *name" (binary mode marker)
		if len(parts) >= 2 && strings.TrimPrefix(parts[1], "*") == name {
			return parts[0], nil
		}
	}
	if first == "" {
		return "", fmt.Errorf("invalid checksum file format")
	}
	return first, nil
}
