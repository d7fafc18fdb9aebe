package topology

import (
	"reflect"
	"testing"
)

func TestDerivePeersGroupsBySubnet(t *testing.T) {
	members := []Member{
		{Name: "a", V4: "10.0.0.1/24"},
		{Name: "b", V4: "10.0.0.2/24"},
		{Name: "c", V4: "10.1.0.1/24"}, // different subnet, never a peer of a/b
	}
	peers, err := DerivePeers(members, "10.0.0.0/24", "")
	if err != nil {
		t.Fatalf("DerivePeers: %v", err)
	}

	want := map[string][]Peer{
		"a": {{Name: "b", V4: "10.0.0.2/24"}},
		"b": {{Name: "a", V4: "10.0.0.1/24"}},
		"c": nil,
	}
	if !reflect.DeepEqual(peers, want) {
		t.Fatalf("DerivePeers() = %+v, want %+v", peers, want)
	}
}

func TestDerivePeersDerivesLocalSubnetWithoutFilter(t *testing.T) {
	// No v4SubnetFilter set: peers are still derived from each member's own
	// CIDR network, matching spec.md's "against the local subnet" clause.
	members := []Member{
		{Name: "a", V4: "10.10.0.1/24"},
		{Name: "b", V4: "10.10.0.2/24"},
		{Name: "c", V4: "10.10.0.3/24"},
	}
	peers, err := DerivePeers(members, "", "")
	if err != nil {
		t.Fatalf("DerivePeers: %v", err)
	}
	if len(peers["a"]) != 2 || len(peers["b"]) != 2 || len(peers["c"]) != 2 {
		t.Fatalf("every member should peer with the other two sharing its subnet, got %+v", peers)
	}
	if peers["a"][0].Name != "b" || peers["a"][1].Name != "c" {
		t.Fatalf("a's peers = %+v, want [b, c] in that order", peers["a"])
	}
}

func TestDerivePeersExcludesMembersOutsideFilter(t *testing.T) {
	members := []Member{
		{Name: "a", V4: "10.0.0.1/24"},
		{Name: "b"}, // no address at all
	}
	peers, err := DerivePeers(members, "10.0.0.0/24", "")
	if err != nil {
		t.Fatalf("DerivePeers: %v", err)
	}
	if peers["a"] != nil {
		t.Fatalf("a should have no peers, got %+v", peers["a"])
	}
	if peers["b"] != nil {
		t.Fatalf("b is outside every filter and should be excluded entirely, got %+v", peers["b"])
	}
}

func TestDerivePeersFilterExcludesDifferentSubnet(t *testing.T) {
	// The filter is an additional constraint on top of local-subnet
	// matching: a member whose own subnet falls outside the filter's
	// network never matches, even though it still has a local subnet.
	members := []Member{
		{Name: "a", V4: "10.0.0.1/24"},
		{Name: "b", V4: "10.0.0.2/24"},
		{Name: "c", V4: "192.168.0.1/24"},
	}
	peers, err := DerivePeers(members, "10.0.0.0/24", "")
	if err != nil {
		t.Fatalf("DerivePeers: %v", err)
	}
	if peers["c"] != nil {
		t.Fatalf("c falls outside the filter and should be excluded, got %+v", peers["c"])
	}
	if len(peers["a"]) != 1 || peers["a"][0].Name != "b" {
		t.Fatalf("a's peers = %+v, want [b]", peers["a"])
	}
}

func TestDerivePeersOrdersByName(t *testing.T) {
	members := []Member{
		{Name: "z", V4: "10.0.0.9/24"},
		{Name: "a", V4: "10.0.0.1/24"},
		{Name: "m", V4: "10.0.0.5/24"},
	}
	peers, err := DerivePeers(members, "10.0.0.0/24", "")
	if err != nil {
		t.Fatalf("DerivePeers: %v", err)
	}
	got := peers["z"]
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "m" {
		t.Fatalf("peers of z = %+v, want [a, m] in that order", got)
	}
}

func TestDerivePeersCombinesV4AndV6(t *testing.T) {
	members := []Member{
		{Name: "a", V4: "10.0.0.1/24", V6: "2001:db8::1/64"},
		{Name: "b", V6: "2001:db8::2/64"}, // v6-only, still peers with a over v6
	}
	peers, err := DerivePeers(members, "10.0.0.0/24", "2001:db8::/64")
	if err != nil {
		t.Fatalf("DerivePeers: %v", err)
	}
	if len(peers["a"]) != 1 || peers["a"][0].Name != "b" {
		t.Fatalf("a's peers = %+v, want [b] (shared v6 subnet)", peers["a"])
	}
}

func TestDerivePeersV6LocalSubnetWithoutFilter(t *testing.T) {
	members := []Member{
		{Name: "a", V6: "2001:db8::1/64"},
		{Name: "b", V6: "2001:db8::2/64"},
		{Name: "c", V6: "2001:db8:1::1/64"},
	}
	peers, err := DerivePeers(members, "", "")
	if err != nil {
		t.Fatalf("DerivePeers: %v", err)
	}
	if len(peers["a"]) != 1 || peers["a"][0].Name != "b" {
		t.Fatalf("a's peers = %+v, want [b]", peers["a"])
	}
	if peers["c"] != nil {
		t.Fatalf("c is on a different /64 and should have no peers, got %+v", peers["c"])
	}
}

func TestDerivePeersInvalidFilter(t *testing.T) {
	if _, err := DerivePeers(nil, "not-a-cidr", ""); err == nil {
		t.Fatal("expected error for malformed v4Filter")
	}
}

func TestDerivePeersInvalidMemberAddress(t *testing.T) {
	members := []Member{{Name: "a", V4: "not-a-cidr"}}
	if _, err := DerivePeers(members, "", ""); err == nil {
		t.Fatal("expected error for malformed member address")
	}
}
