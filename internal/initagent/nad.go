package initagent

import (
	corev1 "k8s.io/api/core/v1"

	nadutils "github.com/k8snetworkplumbingwg/network-attachment-definition-client/pkg/utils"

	cnmv1 "github.com/juniper/cnm/api/v1"
)

// cniAnnotatedInterfaces cross-checks the pod's k8s.cni.cncf.io/networks
// annotation against discovered host interfaces, per spec.md §4.5's
// "cross-checks ... to decide which discovered NICs are CNI-attached
// versus the pod sandbox's primary interface". Interfaces the annotation
// names an InterfaceRequest for are reported; a malformed or absent
// annotation means nothing is CNI-attached, not an error.
func cniAnnotatedInterfaces(pod *corev1.Pod, discovered map[string]cnmv1.CrpdInterfaceStatus) map[string]bool {
	annotated := make(map[string]bool)
	raw, ok := pod.Annotations["k8s.cni.cncf.io/networks"]
	if !ok || raw == "" {
		return annotated
	}

	selections, err := nadutils.ParsePodNetworkAnnotation(raw, pod.Namespace)
	if err != nil {
		return annotated
	}
	for _, sel := range selections {
		if sel.InterfaceRequest == "" {
			continue
		}
		if _, present := discovered[sel.InterfaceRequest]; present {
			annotated[sel.InterfaceRequest] = true
		}
	}
	return annotated
}
