package v1

// Selector-label keys. All recognized keys are prefixed with the API
// group so they can't collide with labels applied by anything else in the
// cluster. The admission webhook and the controllers are the only writers.
const (
	LabelInstanceType         = GroupName + "/instanceType"
	LabelInstanceSelector     = GroupName + "/instanceSelector"
	LabelBgpRouterManaged     = GroupName + "/bgpRouterManaged"
	LabelInterfaceGroup       = GroupName + "/interfaceGroup"
	LabelBgpRouterGroup       = GroupName + "/bgpRouterGroup"
	LabelRoutingInstanceGroup = GroupName + "/routingInstanceGroup"
	LabelVrrpGroup            = GroupName + "/vrrpGroup"
	LabelPool                 = GroupName + "/pool"
	LabelInterfaceParent      = GroupName + "/interfaceParent"
)

// InstanceType values written into LabelInstanceType.
const (
	InstanceTypeCrpd    = "Crpd"
	InstanceTypeGeneric = "Generic"
	InstanceTypeMetalLb = "MetalLb"
	InstanceTypeTgw     = "Tgw"
)

// FinalizerName is the single field-manager/finalizer token this control
// plane uses across every CR kind that needs return-on-delete semantics.
const FinalizerName = "crpd"

// FieldManager is the server-side-apply field manager used by every patch
// issued by the CR I/O helpers in internal/k8sutil.
const FieldManager = "crpd"
