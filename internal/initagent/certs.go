package initagent

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/client-go/util/retry"
	"sigs.k8s.io/controller-runtime/pkg/client"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/ca"
	"github.com/juniper/cnm/internal/k8sutil"
)

const (
	caSecretName = "cnm-ca"
	certDir      = "/etc/certs"
)

// SignOwnLeaf fetches the cluster cnm-ca Secret and signs a leaf
// certificate identifying this pod, using podIP as the certificate's SAN
// per spec.md §4.5.
func SignOwnLeaf(ctx context.Context, c client.Client, namespace, podName, podIP string) (ca.KeyCert, error) {
	found, err := k8sutil.Get(ctx, c, namespace, caSecretName, &corev1.Secret{})
	if err != nil {
		return ca.KeyCert{}, err
	}
	secret, ok := found.Get()
	if !ok {
		return ca.KeyCert{}, errMissingCASecret{}
	}
	caKeyCert := ca.KeyCert{
		CertPEM: secret.Data[corev1.TLSCertKey],
		KeyPEM:  secret.Data[corev1.TLSPrivateKeyKey],
	}
	return ca.SignLeaf(podName, podIP, caKeyCert)
}

// fetchCACert returns the cluster CA's own certificate PEM, for writing
// alongside the leaf as ca.crt.
func fetchCACert(ctx context.Context, c client.Client, namespace string) ([]byte, error) {
	found, err := k8sutil.Get(ctx, c, namespace, caSecretName, &corev1.Secret{})
	if err != nil {
		return nil, err
	}
	secret, ok := found.Get()
	if !ok {
		return nil, errMissingCASecret{}
	}
	return secret.Data[corev1.TLSCertKey], nil
}

// WriteCertFiles writes tls.crt, tls.key, and a concatenated tls.pem
// under /etc/certs, plus the CA's own cert as ca.crt, per spec.md §4.5.
func WriteCertFiles(leaf ca.KeyCert, caCertPEM []byte) error {
	if err := os.MkdirAll(certDir, 0o755); err != nil {
		return err
	}
	files := map[string][]byte{
		"tls.crt": leaf.CertPEM,
		"tls.key": leaf.KeyPEM,
		"tls.pem": bytes.Join([][]byte{leaf.CertPEM, leaf.KeyPEM}, nil),
		"ca.crt":  caCertPEM,
	}
	for name, data := range files {
		mode := os.FileMode(0o644)
		if name == "tls.key" {
			mode = 0o600
		}
		if err := os.WriteFile(filepath.Join(certDir, name), data, mode); err != nil {
			return err
		}
	}
	return nil
}

// PublishSecret creates or updates a kubernetes.io/tls Secret named after
// the pod, carrying ca.crt/tls.crt/tls.key, retrying on update conflicts
// the way the original init agent does (SPEC_FULL.md's supplemented
// features: retry.RetryOnConflict).
func PublishSecret(ctx context.Context, c client.Client, namespace, podName string, leaf ca.KeyCert, caCertPEM []byte) error {
	return retry.RetryOnConflict(retry.DefaultBackoff, func() error {
		return k8sutil.CreateOrUpdate(ctx, c, namespace, podName,
			func() *corev1.Secret { return &corev1.Secret{} },
			func(s *corev1.Secret) {
				s.Type = corev1.SecretTypeTLS
				s.Data = map[string][]byte{
					"ca.crt":                caCertPEM,
					corev1.TLSCertKey:       leaf.CertPEM,
					corev1.TLSPrivateKeyKey: leaf.KeyPEM,
				}
				if s.ObjectMeta.Labels == nil {
					s.ObjectMeta.Labels = map[string]string{}
				}
				s.ObjectMeta.Labels[cnmv1.LabelInstanceSelector] = podName
			})
	})
}

type errMissingCASecret struct{}

func (errMissingCASecret) Error() string { return "cnm-ca secret not yet published" }
