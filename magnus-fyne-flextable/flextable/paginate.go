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

// EffectivePagination reports whether pagination actually applies: it must be
// enabled and the dataset must not fit on a single page.
func EffectivePagination(rowCount, size int, enabled bool) bool {
	return enabled && size > 0 && rowCount > size
}

// TotalPages returns the number of pages for a row count and page size,
// never less than 1.
func TotalPages(rowCount, size int) int {
	if size <= 0 || rowCount <= 0 {
		return 1
	}
	pages := (rowCount + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// PaginateRows returns the slice of rows for one page. When pagination is not
// effective the full sequence is returned regardless of page. The page is
// clamped into [1, TotalPages] before slicing, so concatenating pages
// 1..TotalPages always reproduces the input exactly.
func PaginateRows(rows []Row, page, size int, enabled bool) []Row {
	if !EffectivePagination(len(rows), size, enabled) {
		return rows
	}

	total := TotalPages(len(rows), size)
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	start := (page - 1) * size
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}

	return rows[start:end]
}
