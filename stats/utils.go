package stats

import (
	"sort"

	"github.com/Abolfazl-Alemi/stats-lab/backend"
)

// tagSetFromMap converts a plain tag map into an ordered TagSet. Map
// iteration order is random, so keys are sorted first to keep repeated
// conversions of equal maps identical.
func tagSetFromMap(tags map[string]string) backend.TagSet {
	if len(tags) == 0 {
		return nil
	}
	keys := make([]string, 0, len(tags))
	for key := range tags {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	set := make(backend.TagSet, 0, len(keys))
	for _, key := range keys {
		set = append(set, backend.NewTag(key, tags[key]))
	}
	return set
}

// tagSetKeys extracts the keys of a tag set in order.
func tagSetKeys(tags backend.TagSet) []backend.TagKey {
	if len(tags) == 0 {
		return nil
	}
	keys := make([]backend.TagKey, 0, len(tags))
	for _, t := range tags {
		keys = append(keys, t.Key)
	}
	return keys
}
