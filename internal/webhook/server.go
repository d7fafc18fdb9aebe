package webhook

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	admissionv1 "k8s.io/api/admission/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/serializer"

	"github.com/juniper/cnm/internal/admission"
	"github.com/juniper/cnm/internal/cnmlog"
)

var (
	scheme = runtime.NewScheme()
	codecs = serializer.NewCodecFactory(scheme)
)

func init() {
	_ = admissionv1.AddToScheme(scheme)
}

// Server is spec.md §4.3's single /mutate HTTPS endpoint. It holds no
// Kubernetes client of its own -- every decision is derived purely from
// the AdmissionRequest's embedded object, matching the original's
// stateless admission handler.
type Server struct {
	GetCertificate func(*tls.ClientHelloInfo) (*tls.Certificate, error)
}

// NewServeMux builds the handler, exposing /mutate and a /healthz probe
// the same way whereabouts' own webhook binary does for its readiness
// check.
func (s *Server) NewServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/mutate", s.handleMutate)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func (s *Server) handleMutate(w http.ResponseWriter, r *http.Request) {
	review, err := decodeReview(r)
	if err != nil {
		cnmlog.Errorf("admission: decoding request: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := s.review(review.Request)
	resp.UID = review.Request.UID
	review.Response = resp
	review.Request = nil

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(review); err != nil {
		cnmlog.Errorf("admission: encoding response: %v", err)
	}
}

func decodeReview(r *http.Request) (*admissionv1.AdmissionReview, error) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	var review admissionv1.AdmissionReview
	if _, _, err := codecs.UniversalDeserializer().Decode(body, nil, &review); err != nil {
		return nil, err
	}
	if review.Request == nil {
		return nil, fmt.Errorf("admission review carries no request")
	}
	return &review, nil
}

// review computes the admission decision for one request: look up the
// object's kind in the registry, compute its desired labels, and diff
// them against the object's current labels to produce a JSON patch.
func (s *Server) review(req *admissionv1.AdmissionRequest) *admissionv1.AdmissionResponse {
	labeler, ok := admission.LabelerFor(req.Kind.Kind)
	if !ok {
		return allowed()
	}

	var meta struct {
		Metadata struct {
			Labels json.RawMessage `json:"labels"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(req.Object.Raw, &meta); err != nil {
		return denied(fmt.Sprintf("decoding object metadata: %v", err))
	}

	var spec struct {
		Spec json.RawMessage `json:"spec"`
	}
	if err := json.Unmarshal(req.Object.Raw, &spec); err != nil {
		return denied(fmt.Sprintf("decoding object spec: %v", err))
	}

	want, err := labeler(spec.Spec)
	if err != nil {
		return denied(fmt.Sprintf("computing labels for %s: %v", req.Kind.Kind, err))
	}

	ops, err := buildLabelPatch(meta.Metadata.Labels, want)
	if err != nil {
		return denied(fmt.Sprintf("building patch for %s: %v", req.Kind.Kind, err))
	}
	if len(ops) == 0 {
		return allowed()
	}

	patch, err := json.Marshal(ops)
	if err != nil {
		return denied(fmt.Sprintf("marshaling patch for %s: %v", req.Kind.Kind, err))
	}

	patchType := admissionv1.PatchTypeJSONPatch
	return &admissionv1.AdmissionResponse{
		Allowed:   true,
		Patch:     patch,
		PatchType: &patchType,
	}
}

func allowed() *admissionv1.AdmissionResponse {
	return &admissionv1.AdmissionResponse{Allowed: true}
}

func denied(reason string) *admissionv1.AdmissionResponse {
	return &admissionv1.AdmissionResponse{
		Allowed: false,
		Result:  &metav1.Status{Message: reason},
	}
}

// Serve blocks, serving TLS on addr until ctx is canceled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.NewServeMux(),
		TLSConfig: &tls.Config{
			GetCertificate: s.GetCertificate,
			MinVersion:     tls.VersionTLS12,
		},
	}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	cnmlog.Verbosef("admission webhook listening on %s", addr)
	err := srv.ListenAndServeTLS("", "")
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
