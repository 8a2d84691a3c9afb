package certs

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	certPEM, keyPEM, err := Generate([]string{"localhost", "127.0.0.1"}, DefaultValidity)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := tls.X509KeyPair(certPEM, keyPEM); err != nil {
		t.Fatalf("generated pair does not load as a key pair: %v", err)
	}

	block, _ := pem.Decode(certPEM)
	if block == nil || block.Type != "CERTIFICATE" {
		t.Fatalf("cert PEM block missing or wrong type")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		t.Fatalf("parsing certificate: %v", err)
	}

	if len(cert.DNSNames) != 1 || cert.DNSNames[0] != "localhost" {
		t.Errorf("DNSNames = %v, want [localhost]", cert.DNSNames)
	}
	if len(cert.IPAddresses) != 1 || !cert.IPAddresses[0].Equal([]byte{127, 0, 0, 1}) {
		t.Errorf("IPAddresses = %v, want [127.0.0.1]", cert.IPAddresses)
	}
	if !cert.NotAfter.After(time.Now().Add(300 * 24 * time.Hour)) {
		t.Errorf("NotAfter = %v, expected roughly a year out", cert.NotAfter)
	}
}

func TestWritePair(t *testing.T) {
	certPEM, keyPEM, err := Generate([]string{"localhost"}, time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "certificates")
	if err := WritePair(dir, certPEM, keyPEM); err != nil {
		t.Fatalf("WritePair: %v", err)
	}

	if _, err := tls.LoadX509KeyPair(filepath.Join(dir, "cert.pem"), filepath.Join(dir, "key.pem")); err != nil {
		t.Fatalf("written pair does not load: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "key.pem"))
	if err != nil {
		t.Fatalf("stat key.pem: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("key.pem permissions = %o, want 600", perm)
	}
}
