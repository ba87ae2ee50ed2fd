// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readinglist

// Contains reports whether candidate is an element of list. Comparison is
// exact: no trimming, case folding or Unicode normalization.
func Contains(candidate string, list []string) bool {
	for _, entry := range list {
		if entry == candidate {
			return true
		}
	}
	return false
}
