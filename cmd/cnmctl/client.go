package main

import (
	"path/filepath"

	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
	"sigs.k8s.io/controller-runtime/pkg/client"

	cnmv1 "github.com/juniper/cnm/api/v1"
)

var (
	kubeconfig string
	namespace  string
)

func defaultKubeconfig() string {
	return filepath.Join(homedir.HomeDir(), ".kube", "config")
}

// newClient builds a non-cached client.Client against whatever
// --kubeconfig names; cnmctl runs as a one-shot CLI so a manager's
// cache machinery would only add startup latency for no benefit.
func newClient() (client.Client, error) {
	restCfg, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return nil, err
	}

	scheme := runtime.NewScheme()
	_ = clientgoscheme.AddToScheme(scheme)
	_ = cnmv1.AddToScheme(scheme)

	return client.New(restCfg, client.Options{Scheme: scheme})
}
