package routes

import (
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// normalizeList converts a raw route list into normalized records,
// preserving the source order of the payload. A route object without a
// name makes the whole payload malformed for its namespace.
func normalizeList(namespace string, list *unstructured.UnstructuredList) ([]Record, error) {
	records := make([]Record, 0, len(list.Items))

	for i := range list.Items {
		record, err := normalizeRoute(&list.Items[i])
		if err != nil {
			return nil, &ParseError{
				Namespace: namespace,
				Reason:    fmt.Sprintf("item %d: %v", i, err),
			}
		}
		records = append(records, record)
	}

	return records, nil
}

// normalizeRoute maps one raw route object into a Record, applying the
// "N/A" defaults for absent spec fields.
func normalizeRoute(obj *unstructured.Unstructured) (Record, error) {
	name := obj.GetName()
	if name == "" {
		return Record{}, fmt.Errorf("route object missing metadata.name")
	}

	record := Record{
		Name:    name,
		Host:    stringOrMissing(obj, "spec", "host"),
		Path:    stringOrMissing(obj, "spec", "path"),
		Service: stringOrMissing(obj, "spec", "to", "name"),
	}

	// TLS is derived from the presence of a non-empty tls block, not its contents
	tls, found, err := unstructured.NestedMap(obj.Object, "spec", "tls")
	record.TLS = err == nil && found && len(tls) > 0

	record.IngressHosts = ingressHosts(obj)

	return record, nil
}

// ingressHosts extracts the admitted hostnames from the route's status
// section in source order. Entries without a host become "N/A".
func ingressHosts(obj *unstructured.Unstructured) []string {
	entries, found, err := unstructured.NestedSlice(obj.Object, "status", "ingress")
	if err != nil || !found {
		return nil
	}

	hosts := make([]string, 0, len(entries))
	for _, entry := range entries {
		host := ValueMissing
		if m, ok := entry.(map[string]interface{}); ok {
			if h, ok := m["host"].(string); ok && h != "" {
				host = h
			}
		}
		hosts = append(hosts, host)
	}

	return hosts
}

func stringOrMissing(obj *unstructured.Unstructured, fields ...string) string {
	value, found, err := unstructured.NestedString(obj.Object, fields...)
	if err != nil || !found || value == "" {
		return ValueMissing
	}
	return value
}
