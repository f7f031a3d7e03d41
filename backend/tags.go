package backend

import "sync"

// TagKey is the interned identity of a dimensional label key.
//
// Keys are process-wide: RegisterTagKey returns the same TagKey for the same
// name no matter which package registers it first. The zero TagKey has an
// empty name and belongs to no registry; always obtain keys through
// RegisterTagKey.
type TagKey struct {
	name string
}

// Name returns the key's registered name.
func (k TagKey) Name() string {
	return k.name
}

// Tag pairs a registered key with a value for one observation.
type Tag struct {
	Key   TagKey
	Value string
}

// TagSet is an ordered list of tags. Order is significant: when the same key
// appears more than once, later entries override earlier ones wherever the
// set collapses into a flat attribute map.
type TagSet []Tag

// tagKeyRegistry interns tag keys by name for the lifetime of the process.
// Keys are registered at metric construction and read on every record, so the
// registry favors lock-free reads over the rare first registration.
var tagKeyRegistry sync.Map

// RegisterTagKey interns a tag key by name and returns its identity.
//
// Registration is idempotent: concurrent callers registering the same name
// all receive the same TagKey. Keys are never unregistered.
//
// Parameters:
//   - name: the label key, e.g. "Component" or "node_id"
//
// Returns:
//   - TagKey: the interned identity for name
//
// Example:
//
//	component := backend.RegisterTagKey("Component")
//	tags := backend.TagSet{{Key: component, Value: "scheduler"}}
func RegisterTagKey(name string) TagKey {
	if existing, ok := tagKeyRegistry.Load(name); ok {
		return existing.(TagKey)
	}
	key, _ := tagKeyRegistry.LoadOrStore(name, TagKey{name: name})
	return key.(TagKey)
}

// RegisterTagKeys interns every name in names and returns the keys in the
// same order.
func RegisterTagKeys(names []string) []TagKey {
	keys := make([]TagKey, 0, len(names))
	for _, name := range names {
		keys = append(keys, RegisterTagKey(name))
	}
	return keys
}

// NewTag registers the key by name and pairs it with value.
func NewTag(key, value string) Tag {
	return Tag{Key: RegisterTagKey(key), Value: value}
}

// ToMap collapses the set into a flat map. Later entries win when a key
// repeats, which makes appended override tags take effect.
func (ts TagSet) ToMap() map[string]string {
	m := make(map[string]string, len(ts))
	for _, t := range ts {
		m[t.Key.Name()] = t.Value
	}
	return m
}
