package cluster

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/routeaudit/routeaudit/internal/util"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
)

// NewClient creates a cluster client from a REST config. Both the typed and
// the dynamic client share the configuration; the connection itself is safe
// for concurrent use by many simultaneous queries.
func NewClient(contextName string, restConfig *rest.Config, logger *slog.Logger) (*Client, error) {
	if restConfig == nil {
		return nil, fmt.Errorf("rest config cannot be nil")
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}

	dyn, err := dynamic.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic client: %w", err)
	}

	client := &Client{
		Context:    contextName,
		Clientset:  clientset,
		Dynamic:    dyn,
		RestConfig: restConfig,
		Healthy:    false, // set by health check
	}

	logger.Debug("created cluster client",
		"context", contextName,
		"server", restConfig.Host)

	return client, nil
}

// HealthCheck pings the API server via the Discovery API, the lightest
// query the control plane offers.
func (c *Client) HealthCheck(ctx context.Context) error {
	healthCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	type result struct {
		version string
		err     error
	}
	resultCh := make(chan result, 1)

	// Discovery calls do not take a context; run in a goroutine so the
	// timeout is still honored
	go func() {
		version, err := c.Clientset.Discovery().ServerVersion()
		if err != nil {
			resultCh <- result{err: err}
			return
		}
		resultCh <- result{version: version.String(), err: nil}
	}()

	select {
	case <-healthCtx.Done():
		c.Healthy = false
		return fmt.Errorf("%w: health check: %v", util.ErrTimeout, healthCtx.Err())
	case res := <-resultCh:
		if res.err != nil {
			c.Healthy = false
			return fmt.Errorf("failed to get server version: %w", res.err)
		}
		c.Healthy = true
		return nil
	}
}

// IsHealthy returns the current health status
func (c *Client) IsHealthy() bool {
	return c.Healthy
}

// String returns a string representation of the client
func (c *Client) String() string {
	return fmt.Sprintf("Client{Context: %s, Healthy: %v}", c.Context, c.Healthy)
}
