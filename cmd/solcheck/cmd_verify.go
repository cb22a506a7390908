package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ochairo/solcheck/internal/domain-adapters/gateways"
	ifgateways "github.com/ochairo/solcheck/internal/domain/interfaces/gateways"
)

func runVerify(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	var (
		checksumFile = fs.String("checksum", "", "Checksum file to verify against (sha256sum format)")
		gpgSig       = fs.String("gpg-sig", "", "Detached GPG signature (.asc or .sig)")
		gpgKeyFile   = fs.String("gpg-key-file", "", "Public key file (armored or binary)")
		gpgKeysURL   = fs.String("gpg-keys-url", "", "URL to KEYS file for GPG verification")
		verifyAll    = fs.Bool("all", false, "Pick up <file>.sha256, <file>.asc and <file>.sig automatically")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: solcheck verify <file> [options]

Verify checksums and GPG signatures of input files.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Verify checksum
  solcheck verify systems.txt --checksum systems.txt.sha256

  # Verify GPG signature
  solcheck verify systems.txt --gpg-sig systems.txt.asc --gpg-key-file maintainer.asc

  # Verify everything found next to the file
  solcheck verify solutions.txt --all --gpg-keys-url https://example.org/KEYS
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: file path is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	filePath := fs.Arg(0)

	if err := executeVerify(ctx, gateways.NewCompositeIntegrityGateway(), filePath,
		*checksumFile, *gpgSig, *gpgKeyFile, *gpgKeysURL, *verifyAll); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func executeVerify(ctx context.Context, gw ifgateways.IntegrityGateway, filePath, checksumFile, gpgSig,
	gpgKeyFile, gpgKeysURL string, verifyAll bool) error {

	verified := 0
	failed := 0

	// Auto-detect files if --all is specified
	if verifyAll {
		if checksumFile == "" && fileExists(filePath+".sha256") {
			checksumFile = filePath + ".sha256"
		}
		if gpgSig == "" {
			if fileExists(filePath + ".asc") {
				gpgSig = filePath + ".asc"
			} else if fileExists(filePath + ".sig") {
				gpgSig = filePath + ".sig"
			}
		}
	}

	fmt.Printf("🔍 Verifying %s\n\n", filepath.Base(filePath))

	// Verify checksum
	if checksumFile != "" {
		fmt.Printf("📋 Verifying checksum...\n")
		if err := gw.VerifyChecksumFile(ctx, filePath, checksumFile); err != nil {
			fmt.Printf("❌ Checksum verification FAILED: %v\n\n", err)
			failed++
		} else {
			fmt.Printf("✅ Checksum verified\n\n")
			verified++
		}
	}

	// Verify GPG signature
	if gpgSig != "" {
		fmt.Printf("🔐 Verifying GPG signature...\n")
		if err := verifyGPGSignature(ctx, gw, filePath, gpgSig, gpgKeyFile, gpgKeysURL); err != nil {
			fmt.Printf("❌ GPG signature verification FAILED: %v\n\n", err)
			failed++
		} else {
			fmt.Printf("✅ GPG signature verified\n\n")
			verified++
		}
	}

	// Print summary
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✅ Verified: %d checks\n", verified)
	if failed > 0 {
		fmt.Printf("❌ Failed: %d checks\n", failed)
	}
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	if failed > 0 {
		return fmt.Errorf("%d verification checks failed", failed)
	}

	if verified == 0 {
		return fmt.Errorf("no verification checks performed (specify --checksum, --gpg-sig, or --all)")
	}

	return nil
}

func verifyGPGSignature(ctx context.Context, gw ifgateways.IntegrityGateway, filePath, gpgSig, gpgKeyFile, gpgKeysURL string) error {
	if gpgKeyFile != "" {
		if err := gw.ImportGPGKeyFromFile(gpgKeyFile); err != nil {
			return err
		}
	}
	if gpgKeysURL != "" {
		if err := gw.ImportGPGKeysFromURL(ctx, gpgKeysURL); err != nil {
			return err
		}
	}

	if gw.KeyringSize() == 0 {
		return fmt.Errorf("no GPG keys imported for verification (use --gpg-key-file or --gpg-keys-url)")
	}

	return gw.VerifyGPGSignatureFromFile(ctx, filePath, gpgSig)
}
