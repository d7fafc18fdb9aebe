package controllers

import (
	"sort"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// podOwnerReference builds the OwnerReference spec.md §3 requires on every
// child produced from a pod-linked template, so pod deletion GC-collapses
// the subtree.
func podOwnerReference(pod *corev1.Pod) metav1.OwnerReference {
	return metav1.OwnerReference{
		APIVersion: "v1",
		Kind:       "Pod",
		Name:       pod.Name,
		UID:        pod.UID,
	}
}

func sortedNames(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}

// errMissingParent reports spec.md §7's invariant-violation error kind
// when a CR's *Parent reference names an object that does not exist.
type errMissingParentType struct {
	kind, name string
}

func (e errMissingParentType) Error() string {
	return "referenced " + e.kind + " " + e.name + " does not exist"
}

func errMissingParent(kind, name string) error {
	return errMissingParentType{kind: kind, name: name}
}
