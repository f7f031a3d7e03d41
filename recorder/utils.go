package recorder

import "go.opentelemetry.io/otel/attribute"

// attributeSet converts a tag mapping into an OpenTelemetry attribute set.
// NewSet sorts and deduplicates, so iteration order of the map does not
// matter.
func attributeSet(tags map[string]string) attribute.Set {
	kvs := make([]attribute.KeyValue, 0, len(tags))
	for k, v := range tags {
		kvs = append(kvs, attribute.String(k, v))
	}
	return attribute.NewSet(kvs...)
}
