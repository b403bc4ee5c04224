package form

import (
	"strings"
)

// List primitives shared by every list-valued draft field. All of them return
// a new slice and leave the input untouched; the owning form applies the
// result through its field setter.
//
// The primitives assume i addresses an existing entry; the owning controller
// rejects any other index before they run.

// Append adds one empty entry to the end of a text list.
func Append(list []string) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, "")
}

// UpdateAt replaces the entry at index i.
func UpdateAt(list []string, i int, value string) []string {
	out := make([]string, len(list))
	copy(out, list)
	out[i] = value
	return out
}

// RemoveAt removes the entry at index i unless the list would become empty.
// The floor of one is enforced here, not only by disabling the control in the
// UI.
func RemoveAt(list []string, i int) []string {
	if len(list) <= 1 {
		return list
	}
	out := make([]string, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// AddID appends an id to an id list capped at max entries. The second return
// reports whether the id was added; a full list is returned unchanged.
func AddID(list []int64, id int64, max int) ([]int64, bool) {
	if len(list) >= max {
		return list, false
	}
	out := make([]int64, 0, len(list)+1)
	out = append(out, list...)
	return append(out, id), true
}

// RemoveIDAt removes the id at index i with the same floor-of-one rule as
// RemoveAt.
func RemoveIDAt(list []int64, i int) []int64 {
	if len(list) <= 1 {
		return list
	}
	out := make([]int64, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// CleanText drops blank and whitespace-only entries. The draft keeps blanks
// until submit time so the editor never loses a field mid-typing; only the
// submission payload is cleaned.
func CleanText(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
