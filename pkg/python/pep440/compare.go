// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"sort"
)

// Cmp compares two public versions, returning -1, 0, or 1.
func (a PublicVersion) Cmp(b PublicVersion) int {
	return a.Key().Cmp(b.Key())
}

// Cmp compares two versions, returning -1, 0, or 1.
func (a LocalVersion) Cmp(b LocalVersion) int {
	return a.Key().Cmp(b.Key())
}

// Equal returns whether two versions have the same comparison key; "1.0" and "v1.0.0" are
// equal.
func (a LocalVersion) Equal(b LocalVersion) bool {
	return a.Cmp(b) == 0
}

// Hash returns a hash of the version's comparison key, consistent with Equal.
func (ver LocalVersion) Hash() uint64 {
	return ver.Key().Hash()
}

// Compare returns -1 if a sorts before b, 1 if a sorts after b, or 0 if they are equal.  It is
// suitable for use as a sort comparator.
func Compare(a, b Version) int {
	return a.Cmp(b)
}

// Equal returns whether two versions are equal; see LocalVersion.Equal.
func Equal(a, b Version) bool {
	return a.Equal(b)
}

// Versions implements sort.Interface, sorting in ascending order.
type Versions []Version

func (vs Versions) Len() int           { return len(vs) }
func (vs Versions) Less(i, j int) bool { return vs[i].Cmp(vs[j]) < 0 }
func (vs Versions) Swap(i, j int)      { vs[i], vs[j] = vs[j], vs[i] }

// Sort sorts versions in ascending order.  The sort is stable, so versions that are equal
// but spelled differently keep their relative order.
func Sort(vers []Version) {
	sort.Stable(Versions(vers))
}

// Unique returns the versions with all but the first of each set of equal versions removed,
// otherwise preserving order.
func Unique(vers []Version) []Version {
	seen := make(map[string]struct{}, len(vers))
	ret := make([]Version, 0, len(vers))
	for _, ver := range vers {
		key := ver.Key().String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ret = append(ret, ver)
	}
	return ret
}

// Max returns the greatest of the versions (the first one, if several are equal), or false if
// the list is empty.
func Max(vers []Version) (Version, bool) {
	if len(vers) == 0 {
		return Version{}, false
	}
	best := vers[0]
	for _, ver := range vers[1:] {
		if ver.Cmp(best) > 0 {
			best = ver
		}
	}
	return best, true
}

// TryParseAll parses each of the strings, silently skipping any that are not valid versions.
func TryParseAll(strs []string) []Version {
	ret := make([]Version, 0, len(strs))
	for _, str := range strs {
		if ver, ok := TryParse(str); ok {
			ret = append(ret, ver)
		}
	}
	return ret
}
