package initagent

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/cnmlog"
	"github.com/juniper/cnm/internal/k8sutil"
)

// Run performs the full one-shot sequence spec.md §4.5 describes: sign
// and write this pod's own certificate material, publish it as a Secret,
// render the seed Junos configuration, discover host interfaces, and
// record them into the parent Crpd's status (optionally materializing
// per-interface Interface CRs).
func Run(ctx context.Context, c client.Client, env Env) error {
	leaf, err := SignOwnLeaf(ctx, c, env.PodNamespace, env.PodName, env.PodIP)
	if err != nil {
		return fmt.Errorf("signing own leaf: %w", err)
	}

	caCertPEM, err := fetchCACert(ctx, c, env.PodNamespace)
	if err != nil {
		return fmt.Errorf("fetching ca cert: %w", err)
	}

	if err := WriteCertFiles(leaf, caCertPEM); err != nil {
		return fmt.Errorf("writing cert files: %w", err)
	}

	if err := PublishSecret(ctx, c, env.PodNamespace, env.PodName, leaf, caCertPEM); err != nil {
		return fmt.Errorf("publishing secret: %w", err)
	}

	if err := WriteSeedConfig("tls.crt"); err != nil {
		return fmt.Errorf("writing seed config: %w", err)
	}

	discovered, err := DiscoverInterfaces()
	if err != nil {
		return fmt.Errorf("discovering interfaces: %w", err)
	}

	crpdFound, err := k8sutil.Get(ctx, c, env.PodNamespace, env.PodName, &cnmv1.Crpd{})
	if err != nil {
		return fmt.Errorf("fetching parent crpd: %w", err)
	}
	crpd, ok := crpdFound.Get()
	if !ok {
		return fmt.Errorf("parent crpd %s/%s does not exist", env.PodNamespace, env.PodName)
	}

	if crpd.Status.Instances == nil {
		crpd.Status.Instances = map[string]cnmv1.CrpdInstanceStatus{}
	}
	crpd.Status.Instances[env.PodName] = cnmv1.CrpdInstanceStatus{
		UUID:       env.PodUUID,
		Interfaces: discovered,
	}
	if err := k8sutil.PatchStatus(ctx, c, crpd); err != nil {
		return fmt.Errorf("patching crpd status: %w", err)
	}

	if crpd.Spec.SetupInterfaces {
		podFound, err := k8sutil.Get(ctx, c, env.PodNamespace, env.PodName, &corev1.Pod{})
		if err != nil {
			return fmt.Errorf("fetching own pod: %w", err)
		}
		pod, ok := podFound.Get()
		if !ok {
			return fmt.Errorf("own pod %s/%s does not exist", env.PodNamespace, env.PodName)
		}
		attached := cniAnnotatedInterfaces(pod, discovered)
		cniAttached := make(map[string]cnmv1.CrpdInterfaceStatus, len(attached))
		for name := range attached {
			cniAttached[name] = discovered[name]
		}
		if err := createInterfaceCRs(ctx, c, env.PodNamespace, env.PodName, cniAttached); err != nil {
			return fmt.Errorf("creating interface CRs: %w", err)
		}
	}

	cnmlog.Verbosef("init-agent: %s/%s registered %d interfaces", env.PodNamespace, env.PodName, len(discovered))
	return nil
}

func createInterfaceCRs(ctx context.Context, c client.Client, namespace, podName string, discovered map[string]cnmv1.CrpdInterfaceStatus) error {
	for ifaceName, status := range discovered {
		name := podName + "-" + ifaceName
		err := k8sutil.CreateOrUpdate(ctx, c, namespace, name,
			func() *cnmv1.Interface { return &cnmv1.Interface{} },
			func(obj *cnmv1.Interface) {
				obj.Spec.Device = ifaceName
				obj.Spec.V4Address = status.V4
				obj.Spec.V6Address = status.V6
				if obj.ObjectMeta.Labels == nil {
					obj.ObjectMeta.Labels = map[string]string{}
				}
				obj.ObjectMeta.Labels[cnmv1.LabelInstanceSelector] = podName
			})
		if err != nil {
			return err
		}
	}
	return nil
}
