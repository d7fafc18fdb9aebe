package webhook

import (
	"encoding/json"
	"testing"

	jsonpatch "gomodules.xyz/jsonpatch/v2"
)

func opsByPath(ops []jsonpatch.JsonPatchOperation) map[string]jsonpatch.JsonPatchOperation {
	m := make(map[string]jsonpatch.JsonPatchOperation, len(ops))
	for _, op := range ops {
		m[op.Path] = op
	}
	return m
}

func TestBuildLabelPatchNoLabelsMapAtAll(t *testing.T) {
	ops, err := buildLabelPatch(nil, map[string]string{"cnm.juniper.net/pool": "v4-pool"})
	if err != nil {
		t.Fatalf("buildLabelPatch: %v", err)
	}
	byPath := opsByPath(ops)

	root, ok := byPath["/metadata/labels"]
	if !ok || root.Operation != "add" {
		t.Fatalf("expected an add of the whole labels map, got %+v", ops)
	}

	leaf, ok := byPath["/metadata/labels/cnm.juniper.net~1pool"]
	if !ok || leaf.Operation != "add" || leaf.Value != "v4-pool" {
		t.Fatalf("expected an add of the escaped label key, got %+v", ops)
	}
}

func TestBuildLabelPatchReplacesChangedValue(t *testing.T) {
	existing, _ := json.Marshal(map[string]string{"cnm.juniper.net/pool": "old-pool"})
	ops, err := buildLabelPatch(existing, map[string]string{"cnm.juniper.net/pool": "new-pool"})
	if err != nil {
		t.Fatalf("buildLabelPatch: %v", err)
	}
	if len(ops) != 1 {
		t.Fatalf("expected exactly one op, got %+v", ops)
	}
	if ops[0].Operation != "replace" || ops[0].Value != "new-pool" {
		t.Fatalf("expected a replace to new-pool, got %+v", ops[0])
	}
}

func TestBuildLabelPatchNoOpWhenAlreadyCorrect(t *testing.T) {
	existing, _ := json.Marshal(map[string]string{"cnm.juniper.net/pool": "v4-pool"})
	ops, err := buildLabelPatch(existing, map[string]string{"cnm.juniper.net/pool": "v4-pool"})
	if err != nil {
		t.Fatalf("buildLabelPatch: %v", err)
	}
	if len(ops) != 0 {
		t.Fatalf("expected no ops when nothing changed, got %+v", ops)
	}
}

func TestBuildLabelPatchNilWantIsNoOp(t *testing.T) {
	ops, err := buildLabelPatch(nil, nil)
	if err != nil {
		t.Fatalf("buildLabelPatch: %v", err)
	}
	if ops != nil {
		t.Fatalf("expected nil ops, got %+v", ops)
	}
}

func TestEscapeJSONPointerToken(t *testing.T) {
	cases := map[string]string{
		"cnm.juniper.net/pool": "cnm.juniper.net~1pool",
		"a~b":                  "a~0b",
		"plain":                "plain",
	}
	for in, want := range cases {
		if got := escapeJSONPointerToken(in); got != want {
			t.Errorf("escapeJSONPointerToken(%q) = %q, want %q", in, got, want)
		}
	}
}
