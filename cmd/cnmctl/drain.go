package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/types"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/k8sutil"
)

// newDrainCmd forgets one pod's entry in Crpd.status.instances ahead of a
// planned scale-down, so InterfaceGroup fan-out and CrpdGroup's interface
// discovery (the readers of Crpd.status.instances) stop expecting that pod
// before its StatefulSet ordinal is actually
// removed -- the init agent republishes the entry on the next restart, so
// this is always safe to run against a pod that is staying up.
func newDrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drain CRPD POD",
		Short: "Remove one pod's entry from a Crpd's reported instance status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			crpdName, podName := args[0], args[1]

			c, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var crpd cnmv1.Crpd
			if err := c.Get(ctx, types.NamespacedName{Namespace: namespace, Name: crpdName}, &crpd); err != nil {
				return err
			}

			if _, ok := crpd.Status.Instances[podName]; !ok {
				return fmt.Errorf("crpd %s/%s has no reported instance %q", namespace, crpdName, podName)
			}
			delete(crpd.Status.Instances, podName)

			return k8sutil.PatchStatus(ctx, c, &crpd)
		},
	}
}
