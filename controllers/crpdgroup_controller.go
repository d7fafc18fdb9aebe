package controllers

import (
	"context"
	"regexp"
	"sort"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	rbacv1 "k8s.io/api/rbac/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"sigs.k8s.io/controller-runtime/pkg/client"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/k8sutil"
	"github.com/juniper/cnm/internal/reconcile"
)

const (
	rbacName      = "crpd"
	rbacNamespace = "default"

	grpcManagementPort = 50051
	bgpPort            = 179
)

// ReconcileCrpdGroup implements spec.md §4.2's CrpdGroupController, the
// primary controller in the Crpd subtree: bootstrap RBAC, republish the
// four child-group reference lists, build the StatefulSet, fan a Crpd CR
// out per pod, and auto-derive InterfaceGroups from discovered interfaces
// matching spec.interfaceGroups regexes.
func ReconcileCrpdGroup(ctx context.Context, rc *reconcile.Context, key client.ObjectKey) reconcile.Outcome {
	found, err := k8sutil.Get(ctx, rc.Client, key.Namespace, key.Name, &cnmv1.CrpdGroup{})
	if err != nil {
		return reconcile.Error(err)
	}
	group, ok := found.Get()
	if !ok {
		return reconcile.AwaitChange()
	}

	if err := ensureRBAC(ctx, rc); err != nil {
		return reconcile.Error(err)
	}

	sel := labels.SelectorFromSet(map[string]string{cnmv1.LabelInstanceSelector: group.Name})

	var bgpRouterGroups cnmv1.BgpRouterGroupList
	if err := k8sutil.List(ctx, rc.Client, key.Namespace, sel, &bgpRouterGroups); err != nil {
		return reconcile.Error(err)
	}
	var routingInstanceGroups cnmv1.RoutingInstanceGroupList
	if err := k8sutil.List(ctx, rc.Client, key.Namespace, sel, &routingInstanceGroups); err != nil {
		return reconcile.Error(err)
	}
	var vrrpGroups cnmv1.VrrpGroupList
	if err := k8sutil.List(ctx, rc.Client, key.Namespace, sel, &vrrpGroups); err != nil {
		return reconcile.Error(err)
	}
	var interfaceGroups cnmv1.InterfaceGroupList
	if err := k8sutil.List(ctx, rc.Client, key.Namespace, sel, &interfaceGroups); err != nil {
		return reconcile.Error(err)
	}

	group.Status.BgpRouterGroupReferences = sortedNames(namesOf(bgpRouterGroups.Items, func(g cnmv1.BgpRouterGroup) string { return g.Name }))
	group.Status.RoutingInstanceGroupReferences = sortedNames(namesOf(routingInstanceGroups.Items, func(g cnmv1.RoutingInstanceGroup) string { return g.Name }))
	group.Status.VrrpGroupReferences = sortedNames(namesOf(vrrpGroups.Items, func(g cnmv1.VrrpGroup) string { return g.Name }))
	group.Status.InterfaceGroupReferences = sortedNames(namesOf(interfaceGroups.Items, func(g cnmv1.InterfaceGroup) string { return g.Name }))

	sts, err := reconcileStatefulSet(ctx, rc, key.Namespace, group)
	if err != nil {
		return reconcile.Error(err)
	}
	group.Status.StatefulSet = cnmv1.CrpdGroupStatefulSetStatus{
		Replicas:      sts.Status.Replicas,
		ReadyReplicas: sts.Status.ReadyReplicas,
	}

	var pods corev1.PodList
	if err := k8sutil.List(ctx, rc.Client, key.Namespace, sel, &pods); err != nil {
		return reconcile.Error(err)
	}

	var crpdRefs []string
	allInterfaces := map[string]struct{}{}
	for i := range pods.Items {
		pod := &pods.Items[i]
		if err := k8sutil.CreateOrUpdate(ctx, rc.Client, key.Namespace, pod.Name,
			func() *cnmv1.Crpd { return &cnmv1.Crpd{} },
			func(obj *cnmv1.Crpd) {
				obj.Labels = map[string]string{cnmv1.LabelInstanceSelector: group.Name, cnmv1.LabelInstanceType: cnmv1.InstanceTypeCrpd}
				obj.OwnerReferences = []metav1.OwnerReference{podOwnerReference(pod)}
				obj.Spec = group.Spec.CrpdTemplate
			}); err != nil {
			return reconcile.Error(err)
		}
		crpdRefs = append(crpdRefs, pod.Name)

		crpdFound, err := k8sutil.Get(ctx, rc.Client, key.Namespace, pod.Name, &cnmv1.Crpd{})
		if err != nil {
			return reconcile.Error(err)
		}
		if crpd, ok := crpdFound.Get(); ok {
			for _, inst := range crpd.Status.Instances {
				for iface := range inst.Interfaces {
					allInterfaces[iface] = struct{}{}
				}
			}
		}
	}
	sort.Strings(crpdRefs)
	group.Status.CrpdReferences = crpdRefs

	if err := deriveInterfaceGroups(ctx, rc, key.Namespace, group, allInterfaces); err != nil {
		return reconcile.Error(err)
	}

	if err := k8sutil.PatchStatus(ctx, rc.Client, group); err != nil {
		return reconcile.Error(err)
	}
	return reconcile.AwaitChange()
}

func namesOf[T any](items []T, name func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, name(it))
	}
	return out
}

// deriveInterfaceGroups implements the interfaceGroups regex union derived
// from all pods' discovered interfaces, creating or updating one
// InterfaceGroup per matched interface name (an interface matched by
// several patterns is written once per matching pattern).
func deriveInterfaceGroups(ctx context.Context, rc *reconcile.Context, ns string, group *cnmv1.CrpdGroup, interfaces map[string]struct{}) error {
	for _, pattern := range group.Spec.InterfaceGroups {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return err
		}
		for iface := range interfaces {
			if !re.MatchString(iface) {
				continue
			}
			name := group.Name + "-" + iface + "-ig"
			if err := k8sutil.CreateOrUpdate(ctx, rc.Client, ns, name,
				func() *cnmv1.InterfaceGroup { return &cnmv1.InterfaceGroup{} },
				func(obj *cnmv1.InterfaceGroup) {
					obj.Labels = map[string]string{cnmv1.LabelInstanceSelector: group.Name}
					obj.Spec.InterfaceName = iface
					obj.Spec.InstanceParent = &cnmv1.ParentRef{Type: cnmv1.InstanceTypeCrpd, Reference: group.Name}
				}); err != nil {
				return err
			}
		}
	}
	return nil
}

// reconcileStatefulSet builds spec.md §4.2's pod template -- init
// container with downward-API env, emptyDir certs/config volumes,
// privileged main container exposing the BGP port -- and createOrUpdates
// it keyed on the group's own name.
func reconcileStatefulSet(ctx context.Context, rc *reconcile.Context, ns string, group *cnmv1.CrpdGroup) (*appsv1.StatefulSet, error) {
	selector := map[string]string{cnmv1.LabelInstanceSelector: group.Name, cnmv1.LabelInstanceType: cnmv1.InstanceTypeCrpd}
	privileged := true

	desired := &appsv1.StatefulSet{
		ObjectMeta: metav1.ObjectMeta{Namespace: ns, Name: group.Name},
		Spec: appsv1.StatefulSetSpec{
			Replicas:    &group.Spec.Replicas,
			ServiceName: group.Name,
			Selector:    &metav1.LabelSelector{MatchLabels: selector},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: selector},
				Spec: corev1.PodSpec{
					ServiceAccountName: rbacName,
					InitContainers: []corev1.Container{
						{
							Name:  "init-agent",
							Image: group.Spec.CrpdTemplate.Image,
							Env:   downwardAPIEnv(group.Name),
							VolumeMounts: []corev1.VolumeMount{
								{Name: "certs", MountPath: "/etc/certs"},
								{Name: "config", MountPath: "/config"},
							},
						},
					},
					Containers: []corev1.Container{
						{
							Name:  "crpd",
							Image: group.Spec.CrpdTemplate.Image,
							Env:   downwardAPIEnv(group.Name),
							Ports: []corev1.ContainerPort{
								{Name: "bgp", ContainerPort: bgpPort},
								{Name: "grpc-mgmt", ContainerPort: grpcManagementPort},
							},
							SecurityContext: &corev1.SecurityContext{Privileged: &privileged},
							VolumeMounts: []corev1.VolumeMount{
								{Name: "certs", MountPath: "/etc/certs"},
								{Name: "config", MountPath: "/config"},
							},
						},
					},
					Volumes: []corev1.Volume{
						{Name: "certs", VolumeSource: corev1.VolumeSource{EmptyDir: &corev1.EmptyDirVolumeSource{}}},
						{Name: "config", VolumeSource: corev1.VolumeSource{EmptyDir: &corev1.EmptyDirVolumeSource{}}},
					},
				},
			},
		},
	}

	existingFound, err := k8sutil.Get(ctx, rc.Client, ns, group.Name, &appsv1.StatefulSet{})
	if err != nil {
		return nil, err
	}
	if existing, ok := existingFound.Get(); ok {
		desired.ResourceVersion = existing.ResourceVersion
		if err := k8sutil.Replace(ctx, rc.Client, desired); err != nil {
			return nil, err
		}
		return desired, nil
	}
	if err := k8sutil.Create(ctx, rc.Client, desired); err != nil {
		return nil, err
	}
	return desired, nil
}

// downwardAPIEnv builds the POD_IP/POD_NAME/POD_NAMESPACE/POD_UUID/
// CRPD_GROUP env set spec.md §4.5 says the init agent reads.
func downwardAPIEnv(groupName string) []corev1.EnvVar {
	fieldRef := func(path string) *corev1.EnvVarSource {
		return &corev1.EnvVarSource{FieldRef: &corev1.ObjectFieldSelector{FieldPath: path}}
	}
	return []corev1.EnvVar{
		{Name: "POD_IP", ValueFrom: fieldRef("status.podIP")},
		{Name: "POD_NAME", ValueFrom: fieldRef("metadata.name")},
		{Name: "POD_NAMESPACE", ValueFrom: fieldRef("metadata.namespace")},
		{Name: "POD_UUID", ValueFrom: fieldRef("metadata.uid")},
		{Name: "CRPD_GROUP", Value: groupName},
	}
}

// ensureRBAC creates the process-wide Role/ServiceAccount/RoleBinding
// spec.md §4.2 requires before any CrpdGroup reconciles, idempotently.
func ensureRBAC(ctx context.Context, rc *reconcile.Context) error {
	sa := &corev1.ServiceAccount{ObjectMeta: metav1.ObjectMeta{Namespace: rbacNamespace, Name: rbacName}}
	if err := k8sutil.Create(ctx, rc.Client, sa); err != nil {
		return err
	}

	role := &rbacv1.Role{
		ObjectMeta: metav1.ObjectMeta{Namespace: rbacNamespace, Name: rbacName},
		Rules: []rbacv1.PolicyRule{
			{
				APIGroups: []string{cnmv1.GroupName},
				Resources: []string{"*"},
				Verbs:     []string{"get", "list", "watch", "create", "update", "patch", "delete"},
			},
			{
				APIGroups: []string{""},
				Resources: []string{"pods", "secrets"},
				Verbs:     []string{"get", "list", "watch", "patch"},
			},
		},
	}
	if err := k8sutil.Create(ctx, rc.Client, role); err != nil {
		return err
	}

	binding := &rbacv1.RoleBinding{
		ObjectMeta: metav1.ObjectMeta{Namespace: rbacNamespace, Name: rbacName},
		Subjects:   []rbacv1.Subject{{Kind: "ServiceAccount", Name: rbacName, Namespace: rbacNamespace}},
		RoleRef:    rbacv1.RoleRef{APIGroup: rbacv1.GroupName, Kind: "Role", Name: rbacName},
	}
	return k8sutil.Create(ctx, rc.Client, binding)
}
