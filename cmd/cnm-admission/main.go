// Command cnm-admission runs spec.md §4.3's mutating admission webhook
// and §4.4's certificate authority: cert-controller owns the webhook's
// own serving certificate and keeps the MutatingWebhookConfiguration's
// CA bundle current; this binary separately mints the cluster's cnm-ca
// identity used to issue mTLS leaves for the gRPC management channel
// (internal/ca, since no pack library exposes that as a public API).
package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"path/filepath"

	"github.com/open-policy-agent/cert-controller/pkg/rotator"
	"github.com/spf13/cobra"
	admissionregv1 "k8s.io/api/admissionregistration/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/ca"
	"github.com/juniper/cnm/internal/cnmlog"
	"github.com/juniper/cnm/internal/config"
	"github.com/juniper/cnm/internal/k8sutil"
	"github.com/juniper/cnm/internal/webhook"
)

const (
	servingSecretName  = "cnm-admission-serving-cert"
	webhookConfigName  = "cnm-mutating-webhook-config"
	webhookServiceName = "cnm-admission"
	cnmCASecretName    = "cnm-ca"
	cnmCACommonName    = "cnm-ca"
	servingCertDir     = "/tmp/cnm-admission-certs"
)

var (
	kubeconfig string
	configPath string
	namespace  string
)

func main() {
	root := &cobra.Command{
		Use:   "cnm-admission",
		Short: "Runs the cnm.juniper.net mutating admission webhook",
		RunE:  run,
	}
	root.Flags().StringVar(&kubeconfig, "kubeconfig", filepath.Join(homedir.HomeDir(), ".kube", "config"), "path to the kubeconfig file; empty for in-cluster config")
	root.Flags().StringVar(&configPath, "config", "/etc/cnm/cnm.conf", "path to the controller's static configuration file")
	root.Flags().StringVar(&namespace, "namespace", "default", "namespace this webhook and its CA secrets are published into")

	if err := root.Execute(); err != nil {
		cnmlog.Errorf("cnm-admission: %v", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	restCfg, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return fmt.Errorf("building kubeconfig: %w", err)
	}

	scheme := runtime.NewScheme()
	_ = clientgoscheme.AddToScheme(scheme)
	_ = cnmv1.AddToScheme(scheme)

	mgr, err := ctrl.NewManager(restCfg, ctrl.Options{Scheme: scheme, Logger: cnmlog.Logr()})
	if err != nil {
		return fmt.Errorf("creating manager: %w", err)
	}

	if err := publishCnmCA(cmd.Context(), mgr.GetClient(), namespace); err != nil {
		return fmt.Errorf("publishing %s: %w", cnmCASecretName, err)
	}

	if err := ensureWebhookConfig(cmd.Context(), mgr.GetClient(), namespace); err != nil {
		return fmt.Errorf("registering %s: %w", webhookConfigName, err)
	}

	readyCh := make(chan struct{})
	if err := rotator.AddRotator(mgr, &rotator.CertRotator{
		SecretKey:      types.NamespacedName{Namespace: namespace, Name: servingSecretName},
		CertDir:        servingCertDir,
		CAName:         "cnm-admission-ca",
		CAOrganization: "Juniper Networks",
		DNSName:        fmt.Sprintf("%s.%s.svc", webhookServiceName, namespace),
		IsReady:        readyCh,
		Webhooks: []rotator.WebhookInfo{
			{Type: rotator.Mutating, Name: webhookConfigName},
		},
		FieldOwner: cnmv1.FieldManager,
	}); err != nil {
		return fmt.Errorf("adding cert rotator: %w", err)
	}

	go func() {
		<-readyCh
		cnmlog.Verbosef("cnm-admission: serving certificate ready")
	}()

	srv := &webhook.Server{GetCertificate: certFromDir(servingCertDir)}
	go func() {
		if err := srv.Serve(cmd.Context(), cfg.AdmissionBindAddr); err != nil {
			cnmlog.Errorf("admission server: %v", err)
		}
	}()

	cnmlog.Verbosef("cnm-admission starting")
	return mgr.Start(ctrl.SetupSignalHandler())
}

// certFromDir returns a tls.Config.GetCertificate callback that reloads
// the serving keypair from dir on every handshake, so cert-controller's
// in-place rotation takes effect without a process restart.
func certFromDir(dir string) func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
	return func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
		cert, err := tls.LoadX509KeyPair(filepath.Join(dir, "tls.crt"), filepath.Join(dir, "tls.key"))
		if err != nil {
			return nil, err
		}
		return &cert, nil
	}
}

// ensureWebhookConfig registers spec.md §4.3's cluster-scoped
// MutatingWebhookConfiguration -- cnm-mutating-webhook-config, Namespaced
// scope, CREATE|UPDATE|DELETE, failurePolicy=Fail, timeoutSeconds=5,
// sideEffects=None, apiGroups cnm.juniper.net/v1 -- idempotently, before
// cert-controller's rotator takes over keeping its CABundle current. The
// service reference (this namespace's cnm-admission Service, path /mutate)
// is set here; rotator.AddRotator patches only the CA bundle on every
// certificate rotation.
func ensureWebhookConfig(ctx context.Context, c client.Client, namespace string) error {
	failurePolicy := admissionregv1.Fail
	sideEffects := admissionregv1.SideEffectClassNone
	scope := admissionregv1.NamespacedScope
	timeout := int32(5)
	servicePath := "/mutate"

	return k8sutil.CreateOrUpdate(ctx, c, "", webhookConfigName,
		func() *admissionregv1.MutatingWebhookConfiguration { return &admissionregv1.MutatingWebhookConfiguration{} },
		func(w *admissionregv1.MutatingWebhookConfiguration) {
			w.Webhooks = []admissionregv1.MutatingWebhook{
				{
					Name: "cnm-mutating-webhook-config.cnm.juniper.net",
					ClientConfig: admissionregv1.WebhookClientConfig{
						Service: &admissionregv1.ServiceReference{
							Namespace: namespace,
							Name:      webhookServiceName,
							Path:      &servicePath,
						},
					},
					Rules: []admissionregv1.RuleWithOperations{
						{
							Operations: []admissionregv1.OperationType{
								admissionregv1.Create, admissionregv1.Update, admissionregv1.Delete,
							},
							Rule: admissionregv1.Rule{
								APIGroups:   []string{cnmv1.GroupName},
								APIVersions: []string{cnmv1.GroupVersion},
								Resources:   []string{"*"},
								Scope:       &scope,
							},
						},
					},
					FailurePolicy:           &failurePolicy,
					SideEffects:             &sideEffects,
					TimeoutSeconds:          &timeout,
					AdmissionReviewVersions: []string{"v1"},
				},
			}
		})
}

// publishCnmCA mints a fresh cnm-ca identity and (re)publishes it as a
// kubernetes.io/tls Secret, per spec.md §4.4: "no revocation list and no
// renewal -- certs are regenerated on controller restart".
func publishCnmCA(ctx context.Context, c client.Client, namespace string) error {
	keyCert, err := ca.CreateCaKeyCert(cnmCACommonName)
	if err != nil {
		return err
	}
	return k8sutil.CreateOrUpdate(ctx, c, namespace, cnmCASecretName,
		func() *corev1.Secret { return &corev1.Secret{} },
		func(s *corev1.Secret) {
			s.Type = corev1.SecretTypeTLS
			s.Data = map[string][]byte{
				corev1.TLSCertKey:       keyCert.CertPEM,
				corev1.TLSPrivateKeyKey: keyCert.KeyPEM,
			}
		})
}
