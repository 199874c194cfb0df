package routes

// ValueMissing is the placeholder rendered for route fields absent from the
// control-plane object.
const ValueMissing = "N/A"

// Record is the normalized view of a single routing object: the externally
// exposed binding from a hostname/path to a backing service, plus the
// hostnames the ingress tier has actually admitted for it.
type Record struct {
	// Name is the route's object name, unique within its namespace
	Name string `json:"name" yaml:"name"`

	// Host is the requested external hostname ("N/A" when absent)
	Host string `json:"host" yaml:"host"`

	// Path is the HTTP path prefix ("N/A" when absent)
	Path string `json:"path" yaml:"path"`

	// Service is the backing service name ("N/A" when the target is absent or unnamed)
	Service string `json:"service" yaml:"service"`

	// TLS reports whether a TLS termination block is present on the route
	TLS bool `json:"tls" yaml:"tls"`

	// IngressHosts are the hostnames admitted by the ingress tier, in
	// status order; entries without a host are recorded as "N/A"
	IngressHosts []string `json:"ingressHosts" yaml:"ingressHosts"`
}
