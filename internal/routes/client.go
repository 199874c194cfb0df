package routes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/routeaudit/routeaudit/internal/util"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
)

// RouteGVR identifies the OpenShift route resource queried per namespace
var RouteGVR = schema.GroupVersionResource{
	Group:    "route.openshift.io",
	Version:  "v1",
	Resource: "routes",
}

// Client queries the cluster control plane for namespaces and route objects.
// It is safe for concurrent use: both clients share a read-only REST
// configuration and support simultaneous requests.
type Client struct {
	core    kubernetes.Interface
	dynamic dynamic.Interface
	logger  *slog.Logger
}

// NewClient creates a control-plane query client
func NewClient(core kubernetes.Interface, dyn dynamic.Interface, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		core:    core,
		dynamic: dyn,
		logger:  logger,
	}
}

// ListNamespaces returns the identifiers of every namespace in the cluster.
// A control-plane or transport failure wraps util.ErrNamespaceListing, the
// only run-fatal error class in the tool.
func (c *Client) ListNamespaces(ctx context.Context) ([]string, error) {
	list, err := c.core.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrNamespaceListing, err)
	}

	names := make([]string, 0, len(list.Items))
	for _, ns := range list.Items {
		names = append(names, ns.Name)
	}

	c.logger.Debug("listed namespaces", "count", len(names))

	return names, nil
}

// FetchRoutes queries the route objects in one namespace and normalizes them.
// All failure modes are returned as typed, namespace-scoped errors
// (TransportError for query failures, ParseError for malformed payloads);
// it never panics and holds no mutable state, so arbitrarily many namespaces
// may be fetched concurrently.
func (c *Client) FetchRoutes(ctx context.Context, namespace string) ([]Record, error) {
	list, err := c.dynamic.Resource(RouteGVR).Namespace(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, &TransportError{Namespace: namespace, Err: err}
	}

	records, err := normalizeList(namespace, list)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched routes", "namespace", namespace, "count", len(records))

	return records, nil
}
