// Package junosclient dials a cRPD instance's gRPC management channel
// over mTLS and issues ConfigSet/OpCommandGet calls, per spec.md §6. The
// dial/credential wiring follows the pattern
// GoogleCloudPlatform/prometheus-engine uses for its own gRPC clients:
// grpc.DialContext with a tls.Config-backed transport credential, no
// custom retry/backoff beyond what JunosConfigurationController's fixed
// 5-minute error penalty already provides at the reconcile layer.
package junosclient

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/juniper/cnm/internal/junospb"
	"github.com/juniper/cnm/internal/metrics"
)

// Client wraps a dialed gRPC connection to one cRPD instance's management
// port.
type Client struct {
	conn *grpc.ClientConn
	mgmt junospb.ManagementClient
}

// Dial connects to addr (host:port) presenting clientCert/clientKey and
// trusting caCert, all PEM-encoded, per spec.md §6's mTLS requirement.
func Dial(ctx context.Context, addr string, caCertPEM, clientCertPEM, clientKeyPEM []byte) (*Client, error) {
	cert, err := tls.X509KeyPair(clientCertPEM, clientKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parsing client cert/key: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caCertPEM) {
		return nil, fmt.Errorf("no CA certificates found in bundle")
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS12,
	}

	conn, err := grpc.DialContext(ctx, addr,
		grpc.WithTransportCredentials(credentials.NewTLS(tlsConfig)),
		grpc.WithBlock(),
	)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", addr, err)
	}
	return &Client{conn: conn, mgmt: junospb.NewManagementClient(conn)}, nil
}

// Close tears down the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// ConfigSet pushes jsonConfig in load-merge mode, per spec.md §4.2/§6.
func (c *Client) ConfigSet(ctx context.Context, jsonConfig string) error {
	start := time.Now()
	resp, err := c.mgmt.ConfigSet(ctx, &junospb.ConfigSetRequest{
		JsonConfig: jsonConfig,
		LoadType:   junospb.LoadTypeMerge,
	})
	if err == nil && !resp.Success {
		err = fmt.Errorf("configSet rejected: %s", resp.Message)
	}
	metrics.ObservePush(time.Since(start), err)
	return err
}

// OpCommandGet issues an operational-mode RPC command and collects every
// streamed chunk of the JSON-formatted reply.
func (c *Client) OpCommandGet(ctx context.Context, xmlCommand string) ([]byte, error) {
	stream, err := c.mgmt.OpCommandGet(ctx, &junospb.OpCommandGetRequest{
		XmlCommand: xmlCommand,
		OutFormat:  junospb.OutFormatJSON,
	})
	if err != nil {
		return nil, err
	}
	var out []byte
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, chunk.Output...)
	}
	return out, nil
}
