// Command cnm-init is spec.md §4.5's per-pod init agent: run once from
// a StatefulSet pod's init container.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
	"sigs.k8s.io/controller-runtime/pkg/client"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/cnmlog"
	"github.com/juniper/cnm/internal/initagent"
)

var kubeconfig string

func main() {
	root := &cobra.Command{
		Use:   "cnm-init",
		Short: "Registers this pod's host interfaces and mTLS identity with its parent Crpd",
		RunE:  run,
	}
	root.Flags().StringVar(&kubeconfig, "kubeconfig", filepath.Join(homedir.HomeDir(), ".kube", "config"), "path to the kubeconfig file; empty for in-cluster config")

	if err := root.Execute(); err != nil {
		cnmlog.Errorf("cnm-init: %v", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	env, err := initagent.LoadEnv()
	if err != nil {
		return err
	}

	restCfg, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return err
	}

	scheme := runtime.NewScheme()
	_ = clientgoscheme.AddToScheme(scheme)
	_ = cnmv1.AddToScheme(scheme)

	c, err := client.New(restCfg, client.Options{Scheme: scheme})
	if err != nil {
		return err
	}

	return initagent.Run(cmd.Context(), c, env)
}
