package proto

import (
	"reflect"
	"sort"
)

// mapEntry is one (key, value) pair of a map field, normalized for the
// encoder's classify/emit pipeline.
type mapEntry struct {
	Key, Val interface{}
}

// sortedMapEntries returns value's entries in ascending key order. The
// encoder always sorts map keys before emitting them so that "encoding a
// message twice produces identical bytes" (§8) holds even though Go
// randomizes map iteration order on every range.
func sortedMapEntries(value interface{}) []mapEntry {
	if m, ok := value.(map[interface{}]interface{}); ok {
		entries := make([]mapEntry, 0, len(m))
		for k, v := range m {
			entries = append(entries, mapEntry{k, v})
		}
		sortEntries(entries)
		return entries
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map {
		return nil
	}
	entries := make([]mapEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, mapEntry{iter.Key().Interface(), iter.Value().Interface()})
	}
	sortEntries(entries)
	return entries
}

func sortEntries(entries []mapEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return lessKey(entries[i].Key, entries[j].Key)
	})
}

func lessKey(a, b interface{}) bool {
	switch av := a.(type) {
	case string:
		return av < b.(string)
	case int32:
		return av < b.(int32)
	case int64:
		return av < b.(int64)
	case uint32:
		return av < b.(uint32)
	case uint64:
		return av < b.(uint64)
	case int:
		return av < b.(int)
	case uint:
		return av < b.(uint)
	case bool:
		return !av && b.(bool)
	}
	return reflect.ValueOf(a).String() < reflect.ValueOf(b).String()
}
