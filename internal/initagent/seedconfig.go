package initagent

import (
	"compress/gzip"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"

	"github.com/juniper/cnm/internal/junosconfig"
)

const (
	seedUsername   = "cnm"
	seedPassword   = "cnm123"
	seedConfigPath = "/tmp/juniper.conf"
	gzipConfigPath = "/config/juniper.conf.gz"
)

// WriteSeedConfig renders the bootstrap Junos configuration, writes it to
// /tmp/juniper.conf, and gzips a copy to /config/juniper.conf.gz, per
// spec.md §4.5. certLocalName is the local-certificate identifier the
// config's grpc-ssl stanza references (WriteCertFiles's tls.crt).
func WriteSeedConfig(certLocalName string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	doc, err := junosconfig.BuildSeedConfig(seedUsername, string(hash), certLocalName)
	if err != nil {
		return err
	}

	if err := os.WriteFile(seedConfigPath, []byte(doc), 0o644); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(gzipConfigPath), 0o755); err != nil {
		return err
	}
	out, err := os.Create(gzipConfigPath)
	if err != nil {
		return err
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	if _, err := gz.Write([]byte(doc)); err != nil {
		return err
	}
	return gz.Close()
}
