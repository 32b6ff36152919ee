// Package page applies client-requested offset/limit to an already
// materialized result set. Scans always read the full collection; slicing
// happens in memory afterwards.
package page

// NoLimit disables the limit cap.
const NoLimit = -1

// Slice returns items[offset : offset+limit], clamped to the slice bounds
// and preserving order. A negative offset is treated as 0; limit NoLimit
// returns everything from offset on. The result always has
// min(limit, max(0, len(items)-offset)) elements.
func Slice[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	rest := items[offset:]
	if limit == NoLimit || limit >= len(rest) {
		return rest
	}
	if limit < 0 {
		limit = 0
	}
	return rest[:limit]
}
