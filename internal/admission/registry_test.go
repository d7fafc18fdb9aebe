package admission

import (
	"testing"

	cnmv1 "github.com/juniper/cnm/api/v1"
)

func TestLabelerForKnownKinds(t *testing.T) {
	for _, kind := range []string{"IpAddress", "BgpRouter", "BgpRouterGroup", "InterfaceGroup", "RoutingInstanceGroup", "Crpd", "CrpdGroup"} {
		if _, ok := LabelerFor(kind); !ok {
			t.Errorf("expected a registered Labeler for kind %q", kind)
		}
	}
}

func TestLabelerForUnregisteredKinds(t *testing.T) {
	for _, kind := range []string{"Vrrp", "VrrpGroup", "Interface", "Pool", "RoutingInstance", "VirtualNetwork"} {
		if _, ok := LabelerFor(kind); ok {
			t.Errorf("kind %q should have no registered Labeler", kind)
		}
	}
}

func TestLabelIpAddress(t *testing.T) {
	labeler, _ := LabelerFor("IpAddress")
	labels, err := labeler([]byte(`{"pool":{"name":"v4-default"}}`))
	if err != nil {
		t.Fatalf("labeler: %v", err)
	}
	if labels[cnmv1.LabelPool] != "v4-default" {
		t.Fatalf("labels = %+v, want %s=v4-default", labels, cnmv1.LabelPool)
	}
}

func TestLabelIpAddressEmptyPoolNameYieldsNoLabels(t *testing.T) {
	labeler, _ := LabelerFor("IpAddress")
	labels, err := labeler([]byte(`{}`))
	if err != nil {
		t.Fatalf("labeler: %v", err)
	}
	if labels != nil {
		t.Fatalf("expected no labels for an empty pool reference, got %+v", labels)
	}
}

func TestLabelBgpRouterGeneric(t *testing.T) {
	labeler, _ := LabelerFor("BgpRouter")
	labels, err := labeler([]byte(`{"managed":true}`))
	if err != nil {
		t.Fatalf("labeler: %v", err)
	}
	if labels[cnmv1.LabelBgpRouterManaged] != "true" {
		t.Fatalf("labels = %+v, want managed=true", labels)
	}
	if labels[cnmv1.LabelInstanceType] != cnmv1.InstanceTypeGeneric {
		t.Fatalf("labels = %+v, want instanceType=%s", labels, cnmv1.InstanceTypeGeneric)
	}
}

func TestLabelBgpRouterWithInstanceParent(t *testing.T) {
	labeler, _ := LabelerFor("BgpRouter")
	labels, err := labeler([]byte(`{"managed":false,"instanceParent":{"type":"crpd","reference":"edge-1"}}`))
	if err != nil {
		t.Fatalf("labeler: %v", err)
	}
	if labels[cnmv1.LabelInstanceType] != "crpd" || labels[cnmv1.LabelInstanceSelector] != "edge-1" {
		t.Fatalf("labels = %+v, want instanceType=crpd instanceSelector=edge-1", labels)
	}
}

func TestLabelParentRefGroupNilParentYieldsNoLabels(t *testing.T) {
	labeler, _ := LabelerFor("InterfaceGroup")
	labels, err := labeler([]byte(`{}`))
	if err != nil {
		t.Fatalf("labeler: %v", err)
	}
	if labels != nil {
		t.Fatalf("expected no labels with no instanceParent, got %+v", labels)
	}
}

func TestLabelFixedInstanceType(t *testing.T) {
	labeler, _ := LabelerFor("Crpd")
	labels, err := labeler([]byte(`anything, ignored`))
	if err != nil {
		t.Fatalf("labeler: %v", err)
	}
	if labels[cnmv1.LabelInstanceType] != cnmv1.InstanceTypeCrpd {
		t.Fatalf("labels = %+v, want instanceType=%s", labels, cnmv1.InstanceTypeCrpd)
	}
}
