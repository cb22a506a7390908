package orchestrators

import (
	"context"
	"fmt"
	"os"

	"github.com/ochairo/solcheck/internal/domain/entities"
	"github.com/ochairo/solcheck/internal/domain/interfaces"
	"github.com/ochairo/solcheck/internal/domain/interfaces/gateways"
)

// Signature file suffixes tried next to each input, in order
var signatureSuffixes = []string{".asc", ".sig"}

// IntegrityOrchestrator checks input files before a batch reads them
type IntegrityOrchestrator struct {
	gateway gateways.IntegrityGateway
	logger  interfaces.Logger
}

// NewIntegrityOrchestrator creates a new integrity orchestrator
func NewIntegrityOrchestrator(gateway gateways.IntegrityGateway, logger interfaces.Logger) *IntegrityOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &IntegrityOrchestrator{gateway: gateway, logger: logger}
}

// FileIntegrity lists the checks that passed for one file
type FileIntegrity struct {
	Path              string
	ChecksumVerified  bool
	SignatureVerified bool
	SignaturePath     string
}

// VerifyInputs runs the configured checks on every file and stops at the first failure.
// Checksums come from "<file>.sha256"; signatures from "<file>.asc" or "<file>.sig".
func (o *IntegrityOrchestrator) VerifyInputs(ctx context.Context, cfg entities.IntegrityConfig, files ...string) ([]FileIntegrity, error) {
	// Step 1: Load keys
	if cfg.GPGKeyFile != "" {
		if err := o.gateway.ImportGPGKeyFromFile(cfg.GPGKeyFile); err != nil {
			return nil, err
		}
	}
	if cfg.GPGKeysURL != "" {
		if err := o.gateway.ImportGPGKeysFromURL(ctx, cfg.GPGKeysURL); err != nil {
			return nil, err
		}
	}
	if cfg.RequireSignatures && o.gateway.KeyringSize() == 0 {
		return nil, fmt.Errorf("signatures required but no GPG keys were imported")
	}

	// Step 2: Check each file
	results := make([]FileIntegrity, 0, len(files))
	for _, file := range files {
		res := FileIntegrity{Path: file}

		if cfg.Checksums {
			if err := o.gateway.VerifyChecksumFile(ctx, file, file+".sha256"); err != nil {
				return results, fmt.Errorf("%s: %w", file, err)
			}
			res.ChecksumVerified = true
			o.logger.Info("checksum verified", interfaces.F("file", file))
		}

		if o.gateway.KeyringSize() > 0 {
			sigPath := findSignature(file)
			switch {
			case sigPath != "":
				if err := o.gateway.VerifyGPGSignatureFromFile(ctx, file, sigPath); err != nil {
					return results, fmt.Errorf("%s: %w", file, err)
				}
				res.SignatureVerified = true
				res.SignaturePath = sigPath
				o.logger.Info("signature verified", interfaces.F("file", file), interfaces.F("signature", sigPath))
			case cfg.RequireSignatures:
				return results, fmt.Errorf("%s: no detached signature found (.asc or .sig)", file)
			default:
				o.logger.Warn("no signature found", interfaces.F("file", file))
			}
		}

		results = append(results, res)
	}
	return results, nil
}

func findSignature(file string) string {
	for _, suffix := range signatureSuffixes {
		if _, err := os.Stat(file + suffix); err == nil {
			return file + suffix
		}
	}
	return ""
}
