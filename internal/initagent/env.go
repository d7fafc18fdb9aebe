// Package initagent is spec.md §4.5's per-pod init agent: a one-shot
// program (run from the StatefulSet pod's init container) that signs
// itself a leaf certificate, writes a seed Junos configuration, records
// discovered host interfaces into the parent Crpd's status, and
// optionally materializes per-interface Interface CRs.
package initagent

import (
	"fmt"
	"os"
)

// Env is the downward-API environment spec.md §4.5 names. All five
// fields are required; LoadEnv returns an error naming whichever is unset
// rather than proceeding with an empty identity.
type Env struct {
	PodIP        string
	PodName      string
	PodNamespace string
	PodUUID      string
	CrpdGroup    string
}

// LoadEnv reads the five downward-API variables from the process
// environment.
func LoadEnv() (Env, error) {
	e := Env{
		PodIP:        os.Getenv("POD_IP"),
		PodName:      os.Getenv("POD_NAME"),
		PodNamespace: os.Getenv("POD_NAMESPACE"),
		PodUUID:      os.Getenv("POD_UUID"),
		CrpdGroup:    os.Getenv("CRPD_GROUP"),
	}
	for name, val := range map[string]string{
		"POD_IP": e.PodIP, "POD_NAME": e.PodName, "POD_NAMESPACE": e.PodNamespace,
		"POD_UUID": e.PodUUID, "CRPD_GROUP": e.CrpdGroup,
	} {
		if val == "" {
			return Env{}, fmt.Errorf("required downward-API env %s is unset", name)
		}
	}
	return e, nil
}
