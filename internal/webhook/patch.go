// Package webhook is spec.md §4.3's admission webhook: a single
// /mutate endpoint that labels newly-admitted CRs per the selector-label
// contract, served over TLS with cert-controller managing the webhook's
// own CA and leaf certificate (the same library whereabouts' admission
// counterparts in this corpus use for that exact job).
package webhook

import (
	"encoding/json"

	jsonpatch "gomodules.xyz/jsonpatch/v2"
)

// buildLabelPatch diffs want against the object's current labels
// (decoded from its raw metadata.labels, possibly absent) and returns
// the RFC 6902 operations needed to add/replace every entry in want,
// per spec.md §6's concrete example: an object with no labels map at
// all gets an "add /metadata/labels {}" op ahead of the per-key adds.
func buildLabelPatch(existingLabelsRaw json.RawMessage, want map[string]string) ([]jsonpatch.JsonPatchOperation, error) {
	if len(want) == 0 {
		return nil, nil
	}

	var existing map[string]string
	hasLabelsMap := len(existingLabelsRaw) > 0 && string(existingLabelsRaw) != "null"
	if hasLabelsMap {
		if err := json.Unmarshal(existingLabelsRaw, &existing); err != nil {
			return nil, err
		}
	}

	var ops []jsonpatch.JsonPatchOperation
	if !hasLabelsMap {
		ops = append(ops, jsonpatch.JsonPatchOperation{
			Operation: "add",
			Path:      "/metadata/labels",
			Value:     map[string]string{},
		})
	}

	for k, v := range want {
		if existing[k] == v {
			continue
		}
		op := "add"
		if _, present := existing[k]; present {
			op = "replace"
		}
		ops = append(ops, jsonpatch.JsonPatchOperation{
			Operation: op,
			Path:      "/metadata/labels/" + escapeJSONPointerToken(k),
			Value:     v,
		})
	}
	return ops, nil
}

// escapeJSONPointerToken escapes "~" and "/" per RFC 6901 so label keys
// like cnm.juniper.net/pool address correctly inside a JSON Pointer path.
func escapeJSONPointerToken(token string) string {
	out := make([]byte, 0, len(token))
	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '~':
			out = append(out, '~', '0')
		case '/':
			out = append(out, '~', '1')
		default:
			out = append(out, token[i])
		}
	}
	return string(out)
}
