package utils

// GroupBy partitions items into a multimap keyed by the given function. Used
// to turn a single batched child-record read into per-parent buckets instead
// of issuing one query per parent.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	grouped := make(map[K][]T, len(items))
	for _, item := range items {
		k := key(item)
		grouped[k] = append(grouped[k], item)
	}
	return grouped
}
