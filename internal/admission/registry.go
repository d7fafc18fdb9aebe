// Package admission computes the canonical label set spec.md §6's
// selector-label contract says the admission webhook writes, per CR
// kind. The original source dispatches through a static table keyed by
// kind rather than reflection (see SPEC_FULL.md's supplemented-features
// note); this package keeps that shape as an explicit Go map literal.
package admission

import (
	"encoding/json"
	"strconv"

	cnmv1 "github.com/juniper/cnm/api/v1"
)

// Labeler computes the labels admission should ensure are present on a
// freshly-decoded CR, given its raw spec JSON.
type Labeler func(rawSpec []byte) (map[string]string, error)

var registry = map[string]Labeler{
	"IpAddress":            labelIpAddress,
	"BgpRouter":            labelBgpRouter,
	"BgpRouterGroup":       labelParentRefGroup,
	"InterfaceGroup":       labelParentRefGroup,
	"RoutingInstanceGroup": labelParentRefGroup,
	"Crpd":                 labelFixedInstanceType,
	"CrpdGroup":            labelFixedInstanceType,
}

// LabelerFor returns the registered Labeler for kind, if any. Kinds with
// no entry (Vrrp, VrrpGroup, Interface, Pool, RoutingInstance,
// VirtualNetwork) are left entirely to controller-written labels -- the
// original's dispatch table has no case for them either.
func LabelerFor(kind string) (Labeler, bool) {
	l, ok := registry[kind]
	return l, ok
}

func labelIpAddress(rawSpec []byte) (map[string]string, error) {
	var spec cnmv1.IpAddressSpec
	if err := json.Unmarshal(rawSpec, &spec); err != nil {
		return nil, err
	}
	if spec.Pool.Name == "" {
		return nil, nil
	}
	return map[string]string{cnmv1.LabelPool: spec.Pool.Name}, nil
}

func labelBgpRouter(rawSpec []byte) (map[string]string, error) {
	var spec cnmv1.BgpRouterSpec
	if err := json.Unmarshal(rawSpec, &spec); err != nil {
		return nil, err
	}
	labels := map[string]string{cnmv1.LabelBgpRouterManaged: strconv.FormatBool(spec.Managed)}
	if spec.InstanceParent != nil {
		labels[cnmv1.LabelInstanceType] = spec.InstanceParent.Type
		labels[cnmv1.LabelInstanceSelector] = spec.InstanceParent.Reference
	} else {
		labels[cnmv1.LabelInstanceType] = cnmv1.InstanceTypeGeneric
	}
	return labels, nil
}

// parentRefSpec is the shape shared by every *Group kind whose spec
// carries an InstanceParent field.
type parentRefSpec struct {
	InstanceParent *cnmv1.ParentRef `json:"instanceParent,omitempty"`
}

func labelParentRefGroup(rawSpec []byte) (map[string]string, error) {
	var spec parentRefSpec
	if err := json.Unmarshal(rawSpec, &spec); err != nil {
		return nil, err
	}
	if spec.InstanceParent == nil {
		return nil, nil
	}
	return map[string]string{
		cnmv1.LabelInstanceType:     spec.InstanceParent.Type,
		cnmv1.LabelInstanceSelector: spec.InstanceParent.Reference,
	}, nil
}

func labelFixedInstanceType(_ []byte) (map[string]string, error) {
	return map[string]string{cnmv1.LabelInstanceType: cnmv1.InstanceTypeCrpd}, nil
}
