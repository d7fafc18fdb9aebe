package controllers

import (
	"context"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/k8sutil"
	"github.com/juniper/cnm/internal/reconcile"
)

// vaddrResult is what resolveVirtualAddress produces for one family (v4 or
// v6) of a VirtualAddress: either a resolved literal/allocated address, or
// an instruction for the caller to requeue while allocation completes.
type vaddrResult struct {
	value   string
	pending bool
}

// resolveVirtualAddress implements the virtualAddress half of spec.md
// §4.2's InterfaceGroupController/VrrpGroupController derivation: a
// literal is used as-is; a PoolRef is materialized as an IpAddress named
// ipAddressName the first time it's seen, and its status.address is
// inlined once allocation completes.
func resolveVirtualAddress(ctx context.Context, rc *reconcile.Context, namespace, ipAddressName, family string, av *cnmv1.AddressValue) (vaddrResult, *reconcile.Outcome, bool) {
	if av == nil || av.IsZero() {
		return vaddrResult{}, nil, false
	}
	if av.Literal != "" {
		return vaddrResult{value: av.Literal}, nil, true
	}

	found, err := k8sutil.Get(ctx, rc.Client, namespace, ipAddressName, &cnmv1.IpAddress{})
	if err != nil {
		out := reconcile.Error(err)
		return vaddrResult{}, &out, true
	}
	if existing, ok := found.Get(); ok {
		if existing.Status.Address != "" {
			return vaddrResult{value: addressWithoutPrefix(existing.Status.Address)}, nil, true
		}
		out := reconcile.RequeueAfter(time.Second)
		return vaddrResult{pending: true}, &out, true
	}

	poolFound, err := k8sutil.Get(ctx, rc.Client, namespace, av.PoolRef.Name, &cnmv1.Pool{})
	if err != nil {
		out := reconcile.Error(err)
		return vaddrResult{}, &out, true
	}
	if _, ok := poolFound.Get(); !ok {
		out := reconcile.Error(errMissingPool(av.PoolRef.Name))
		return vaddrResult{}, &out, true
	}

	ipAddress := &cnmv1.IpAddress{
		ObjectMeta: metav1.ObjectMeta{
			Namespace: namespace,
			Name:      ipAddressName,
		},
		Spec: cnmv1.IpAddressSpec{
			Pool:   *av.PoolRef,
			Family: cnmv1.AddressFamily(family),
		},
	}
	if err := k8sutil.Create(ctx, rc.Client, ipAddress); err != nil {
		out := reconcile.Error(err)
		return vaddrResult{}, &out, true
	}
	out := reconcile.RequeueAfter(time.Second)
	return vaddrResult{pending: true}, &out, true
}

// addressWithoutPrefix strips the "/len" suffix IpAddress.status.address
// carries, since a virtual address is used as a bare interface address
// (e.g. "10.10.0.0"), not the CIDR form the Pool allocated it from.
func addressWithoutPrefix(address string) string {
	if i := strings.IndexByte(address, '/'); i >= 0 {
		return address[:i]
	}
	return address
}
