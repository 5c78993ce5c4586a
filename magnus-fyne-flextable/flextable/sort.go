// Copyright 2025 Magnus Pierre
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package flextable

import (
	"sort"
	"strings"
)

// SortRows returns a new slice of rows ordered by the given sort state.
// The input is never modified. An empty sort key preserves dataset order.
// Rows with equal sort-key values keep their relative input order for either
// direction.
func SortRows(rows []Row, state SortState) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)

	if !state.IsSorted() {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a := out[i].Fields[state.Key]
		b := out[j].Fields[state.Key]
		if state.Direction == SortDescending {
			return compareValues(b, a) < 0
		}
		return compareValues(a, b) < 0
	})

	return out
}

// compareValues orders two cell values: numerically when both are
// numeric-like, lexically on the formatted text otherwise.
func compareValues(a, b Value) int {
	af, aok := a.numericValue()
	bf, bok := b.numericValue()
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(a.Formatted, b.Formatted)
}
