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

package windows

// isSupportedDataFile reports whether a file name has an extension the
// loaders can handle
func isSupportedDataFile(name string) bool {
	return DetectFileType(name) != FileTypeUnknown
}

// cleanFilename removes spaces and special characters from a filename.
func cleanFilename(name string) string {
	// Simple implementation - replace spaces with underscores
	result := ""
	for _, r := range name {
		if r == ' ' {
			result += "_"
		} else if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			result += string(r)
		}
	}
	return result
}
