// Package junospb is a hand-authored stand-in for the generated
// protoc-gen-go / protoc-gen-go-grpc stubs spec.md §2 excludes from the
// line budget ("generated gRPC stubs excluded"). It reproduces the shape
// those tools emit for the Junos JET management service (§6:
// ConfigSet/OpCommandGet) closely enough that internal/junosclient can be
// written exactly as it would be against real generated code, grounded on
// the client/server wiring in GoogleCloudPlatform/prometheus-engine's
// gRPC-heavy services.
package junospb

import (
	"context"

	"google.golang.org/grpc"
)

// ConfigSetRequest carries a full or partial Junos configuration document
// in JSON form, per spec.md §6.
type ConfigSetRequest struct {
	JsonConfig string
	LoadType   LoadType
}

// LoadType mirrors Junos' load-configuration semantics.
type LoadType int32

const (
	LoadTypeMerge LoadType = iota
	LoadTypeOverride
	LoadTypeReplace
)

// ConfigSetResponse reports whether the configuration was committed.
type ConfigSetResponse struct {
	Success bool
	Message string
}

// OpCommandGetRequest wraps a Junos XML RPC operational command.
type OpCommandGetRequest struct {
	XmlCommand string
	OutFormat  OutFormat
}

// OutFormat selects the operational-command reply encoding.
type OutFormat int32

const (
	OutFormatXML OutFormat = iota
	OutFormatJSON
	OutFormatText
)

// OpCommandGetResponse is one chunk of a streamed operational-command
// reply.
type OpCommandGetResponse struct {
	Output []byte
}

// ManagementClient is the client half of the JET management service, in
// the shape protoc-gen-go-grpc emits for a service with one unary and one
// server-streaming RPC.
type ManagementClient interface {
	ConfigSet(ctx context.Context, in *ConfigSetRequest, opts ...grpc.CallOption) (*ConfigSetResponse, error)
	OpCommandGet(ctx context.Context, in *OpCommandGetRequest, opts ...grpc.CallOption) (Management_OpCommandGetClient, error)
}

// Management_OpCommandGetClient streams OpCommandGetResponse chunks.
type Management_OpCommandGetClient interface {
	Recv() (*OpCommandGetResponse, error)
}

type managementClient struct {
	cc grpc.ClientConnInterface
}

// NewManagementClient constructs a ManagementClient bound to cc, mirroring
// the generated constructor's signature exactly.
func NewManagementClient(cc grpc.ClientConnInterface) ManagementClient {
	return &managementClient{cc: cc}
}

const (
	serviceName     = "juniper.jet.management.Management"
	configSetMethod = "/" + serviceName + "/ConfigSet"
	opCommandMethod = "/" + serviceName + "/OpCommandGet"
)

func (c *managementClient) ConfigSet(ctx context.Context, in *ConfigSetRequest, opts ...grpc.CallOption) (*ConfigSetResponse, error) {
	out := new(ConfigSetResponse)
	if err := c.cc.Invoke(ctx, configSetMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *managementClient) OpCommandGet(ctx context.Context, in *OpCommandGetRequest, opts ...grpc.CallOption) (Management_OpCommandGetClient, error) {
	stream, err := c.cc.NewStream(ctx, &grpc.StreamDesc{StreamName: "OpCommandGet", ServerStreams: true}, opCommandMethod, opts...)
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}
	return &managementOpCommandGetClient{stream}, nil
}

type managementOpCommandGetClient struct {
	grpc.ClientStream
}

func (c *managementOpCommandGetClient) Recv() (*OpCommandGetResponse, error) {
	m := new(OpCommandGetResponse)
	if err := c.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
