// Package ca implements spec.md §4.4's two certificate operations:
// createCaKeyCert and signLeaf. There's no pack library that exposes raw
// CA/leaf issuance as a standalone API -- cert-controller's
// rotator.CertRotator (wired into the admission webhook's own serving
// certificate, see cmd/cnm-admission) owns its CA end-to-end and doesn't
// expose a signLeaf entry point for unrelated identities like per-pod
// gRPC certs, so this package talks to crypto/x509 directly, the way
// cert-controller's own internals do under the hood.
package ca

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"time"
)

// KeyCert is a PEM-encoded private key and certificate pair.
type KeyCert struct {
	KeyPEM  []byte
	CertPEM []byte
}

const keyBits = 2048

// CreateCaKeyCert generates a self-signed, unconstrained CA for
// commonName, per spec.md §4.4.
func CreateCaKeyCert(commonName string) (KeyCert, error) {
	key, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return KeyCert{}, err
	}
	serial, err := randomSerial()
	if err != nil {
		return KeyCert{}, err
	}
	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: commonName},
		NotBefore:             time.Unix(0, 0),
		NotAfter:              time.Unix(0, 0).AddDate(100, 0, 0),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature | x509.KeyUsageCRLSign,
		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return KeyCert{}, err
	}
	return KeyCert{KeyPEM: encodeKey(key), CertPEM: encodeCert(der)}, nil
}

// SignLeaf builds and signs a leaf certificate for commonName/sanAddress
// under ca, per spec.md §4.4. sanAddress may be an IP literal or a DNS
// name; both are accepted as SANs so the leaf validates whichever form
// the gRPC dial target uses.
func SignLeaf(commonName, sanAddress string, ca KeyCert) (KeyCert, error) {
	caCert, caKey, err := parseKeyCert(ca)
	if err != nil {
		return KeyCert{}, err
	}

	key, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return KeyCert{}, err
	}
	serial, err := randomSerial()
	if err != nil {
		return KeyCert{}, err
	}
	template := &x509.Certificate{
		SerialNumber: serial,
		Subject:      pkix.Name{CommonName: commonName},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().AddDate(1, 0, 0),
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
	}
	if ip := net.ParseIP(sanAddress); ip != nil {
		template.IPAddresses = []net.IP{ip}
	} else if sanAddress != "" {
		template.DNSNames = []string{sanAddress}
	}

	der, err := x509.CreateCertificate(rand.Reader, template, caCert, &key.PublicKey, caKey)
	if err != nil {
		return KeyCert{}, err
	}
	return KeyCert{KeyPEM: encodeKey(key), CertPEM: encodeCert(der)}, nil
}

func randomSerial() (*big.Int, error) {
	limit := new(big.Int).Lsh(big.NewInt(1), 128)
	return rand.Int(rand.Reader, limit)
}

func encodeKey(key *rsa.PrivateKey) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
}

func encodeCert(der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

func parseKeyCert(kc KeyCert) (*x509.Certificate, *rsa.PrivateKey, error) {
	certBlock, _ := pem.Decode(kc.CertPEM)
	cert, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return nil, nil, err
	}
	keyBlock, _ := pem.Decode(kc.KeyPEM)
	key, err := x509.ParsePKCS1PrivateKey(keyBlock.Bytes)
	if err != nil {
		return nil, nil, err
	}
	return cert, key, nil
}
