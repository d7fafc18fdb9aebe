// Command cnmctl is an operator CLI over the cnm.juniper.net CRDs,
// grounded on jumpstarter-dev/jumpstarter's own `jmpctl` admin CLI
// shape: a cobra root command with persistent --kubeconfig/--namespace
// flags, two read subcommands (get-pool, get-crpdgroup) and one write
// subcommand (drain).
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/juniper/cnm/internal/cnmlog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		cnmlog.Errorf("cnmctl: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cnmctl",
		Short: "Operator CLI for the cnm.juniper.net control plane",
	}
	root.PersistentFlags().StringVar(&kubeconfig, "kubeconfig", defaultKubeconfig(), "path to the kubeconfig file; empty for in-cluster config")
	root.PersistentFlags().StringVar(&namespace, "namespace", "default", "namespace to operate on")

	root.AddCommand(newGetPoolCmd())
	root.AddCommand(newGetCrpdGroupCmd())
	root.AddCommand(newDrainCmd())
	return root
}
