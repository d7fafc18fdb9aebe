package main

import (
	"os"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/cli-runtime/pkg/printers"
	"sigs.k8s.io/controller-runtime/pkg/client"

	cnmv1 "github.com/juniper/cnm/api/v1"
)

// newGetPoolCmd lists Pools through cli-runtime's default table printer,
// which prints each object's NAME and AGE only; the allocator counters in
// Pool.status (maxSize, nextAvailable, inUse, releasedNumbers) are not
// printed.
func newGetPoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-pool [NAME]",
		Short: "List Pools (name and age)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var pools cnmv1.PoolList
			if len(args) == 1 {
				var p cnmv1.Pool
				if err := c.Get(ctx, types.NamespacedName{Namespace: namespace, Name: args[0]}, &p); err != nil {
					return err
				}
				pools.Items = []cnmv1.Pool{p}
			} else {
				if err := c.List(ctx, &pools, client.InNamespace(namespace)); err != nil {
					return err
				}
			}
			return printers.NewTablePrinter(printers.PrintOptions{}).PrintObj(&pools, os.Stdout)
		},
	}
}

// newGetCrpdGroupCmd lists CrpdGroups through cli-runtime's default table
// printer, which prints each object's NAME and AGE only; replica rollout
// and the child reference lists in CrpdGroup.status are not printed.
func newGetCrpdGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-crpdgroup [NAME]",
		Short: "List CrpdGroups (name and age)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var groups cnmv1.CrpdGroupList
			if len(args) == 1 {
				var g cnmv1.CrpdGroup
				if err := c.Get(ctx, types.NamespacedName{Namespace: namespace, Name: args[0]}, &g); err != nil {
					return err
				}
				groups.Items = []cnmv1.CrpdGroup{g}
			} else {
				if err := c.List(ctx, &groups, client.InNamespace(namespace)); err != nil {
					return err
				}
			}
			return printers.NewTablePrinter(printers.PrintOptions{}).PrintObj(&groups, os.Stdout)
		},
	}
}
