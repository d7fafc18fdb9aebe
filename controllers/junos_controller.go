package controllers

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/ca"
	"github.com/juniper/cnm/internal/junosclient"
	"github.com/juniper/cnm/internal/junosconfig"
	"github.com/juniper/cnm/internal/k8sutil"
	"github.com/juniper/cnm/internal/reconcile"
)

const (
	caSecretName = "cnm-ca"
	controllerCN = "cnm-controller"
)

// ReconcileJunosConfiguration implements spec.md §4.2's
// JunosConfigurationController: for every BgpRouter labeled
// bgpRouterManaged=true and instanceType=Crpd, build a Junos configuration
// document and ConfigSet it over mTLS to the owning pod's management port.
// Field-selector-equivalent filtering is done on the labels the admission
// webhook already injects (spec.md §6's selector-label contract), since
// controller-runtime watches dispatch by label predicate the same way a
// field selector would.
func ReconcileJunosConfiguration(ctx context.Context, rc *reconcile.Context, key client.ObjectKey) reconcile.Outcome {
	found, err := k8sutil.Get(ctx, rc.Client, key.Namespace, key.Name, &cnmv1.BgpRouter{})
	if err != nil {
		return reconcile.Error(err)
	}
	router, ok := found.Get()
	if !ok {
		return reconcile.AwaitChange()
	}

	if router.Labels[cnmv1.LabelBgpRouterManaged] != "true" || router.Labels[cnmv1.LabelInstanceType] != cnmv1.InstanceTypeCrpd {
		return reconcile.AwaitChange()
	}

	podName := router.Labels[cnmv1.LabelInstanceSelector]
	if podName == "" {
		return reconcile.Error(fmt.Errorf("bgprouter %s/%s is managed but has no instanceSelector label", key.Namespace, key.Name))
	}

	podFound, err := k8sutil.Get(ctx, rc.Client, key.Namespace, podName, &corev1.Pod{})
	if err != nil {
		return reconcile.Error(err)
	}
	pod, ok := podFound.Get()
	if !ok {
		return reconcile.RequeueAfter(time.Second)
	}
	if pod.Status.PodIP == "" {
		return reconcile.RequeueAfter(time.Second)
	}

	caSecretFound, err := k8sutil.Get(ctx, rc.Client, key.Namespace, caSecretName, &corev1.Secret{})
	if err != nil {
		return reconcile.Error(err)
	}
	caSecret, ok := caSecretFound.Get()
	if !ok {
		return reconcile.Error(fmt.Errorf("%s secret not yet published", caSecretName))
	}
	caKeyCert := ca.KeyCert{CertPEM: caSecret.Data[corev1.TLSCertKey], KeyPEM: caSecret.Data[corev1.TLSPrivateKeyKey]}

	clientCert, err := ca.SignLeaf(controllerCN, pod.Status.PodIP, caKeyCert)
	if err != nil {
		return reconcile.Error(err)
	}

	jsonConfig, err := junosconfig.BuildBgpRouterConfig(router)
	if err != nil {
		return reconcile.Error(err)
	}

	addr := fmt.Sprintf("%s:%d", pod.Status.PodIP, grpcManagementPort)
	conn, err := junosclient.Dial(ctx, addr, caKeyCert.CertPEM, clientCert.CertPEM, clientCert.KeyPEM)
	if err != nil {
		return reconcile.Error(err)
	}
	defer conn.Close()

	if err := conn.ConfigSet(ctx, jsonConfig); err != nil {
		return reconcile.Error(err)
	}
	return reconcile.AwaitChange()
}
