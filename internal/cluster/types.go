package cluster

import (
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
)

// Client represents a connection to the audited cluster
type Client struct {
	// Context is the kubeconfig context name the connection was built from
	Context string

	// Clientset is the typed Kubernetes client interface
	Clientset kubernetes.Interface

	// Dynamic is the dynamic client used for route objects, which have no
	// typed client in client-go
	Dynamic dynamic.Interface

	// RestConfig is the underlying REST configuration
	RestConfig *rest.Config

	// Healthy indicates if the last health check passed
	Healthy bool
}
