package utils

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	PrivateKeyFile = "private.pem"
	PublicKeyFile  = "public.pem"
)

var (
	ErrKeysDirExists = errors.New("keys directory already exists")
	ErrNoPEMBlock    = errors.New("no PEM block found")
	ErrNotRSAKey     = errors.New("key is not an RSA key")
)

// GenerateRSAKeyPair returns a PKCS#8 private key and an SPKI public key,
// both PEM encoded.
func GenerateRSAKeyPair(bits int) (privatePEM, publicPEM []byte, err error) {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, nil, fmt.Errorf("error generating RSA key: %w", err)
	}

	privateDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding private key: %w", err)
	}
	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding public key: %w", err)
	}

	privatePEM = pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privateDER})
	publicPEM = pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	return privatePEM, publicPEM, nil
}

// WriteRSAKeyPair creates dir and writes private.pem and public.pem into it.
// If dir already exists nothing is written and ErrKeysDirExists is returned.
func WriteRSAKeyPair(dir string, bits int) error {
	if _, err := os.Stat(dir); err == nil {
		return ErrKeysDirExists
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error checking keys directory: %w", err)
	}

	privatePEM, publicPEM, err := GenerateRSAKeyPair(bits)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("error creating keys directory: %w", err)
	}
	if err = os.WriteFile(filepath.Join(dir, PrivateKeyFile), privatePEM, 0o600); err != nil {
		return fmt.Errorf("error writing private key: %w", err)
	}
	if err = os.WriteFile(filepath.Join(dir, PublicKeyFile), publicPEM, 0o644); err != nil {
		return fmt.Errorf("error writing public key: %w", err)
	}

	return nil
}

// ParseRSAPrivateKey accepts PKCS#8 and PKCS#1 PEM blocks.
func ParseRSAPrivateKey(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrNoPEMBlock
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("error parsing private key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrNotRSAKey
	}
	return key, nil
}

// ParseRSAPublicKey accepts SPKI and PKCS#1 PEM blocks.
func ParseRSAPublicKey(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrNoPEMBlock
	}

	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("error parsing public key: %w", err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, ErrNotRSAKey
	}
	return key, nil
}

func LoadRSAPrivateKey(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading private key file: %w", err)
	}
	return ParseRSAPrivateKey(data)
}

func LoadRSAPublicKey(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading public key file: %w", err)
	}
	return ParseRSAPublicKey(data)
}
