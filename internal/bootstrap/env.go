// SPDX-License-Identifier: AGPL-3.0-or-later

package bootstrap

import (
	"path/filepath"
	"strings"
)

// ExtendSearchPath returns a copy of env whose search-path variable starts
// with dir. Earlier occurrences of dir are dropped so the entry appears
// exactly once no matter how often the call is repeated. env itself is
// left untouched.
func ExtendSearchPath(env []string, dir string) []string {
	return GetPlatformInfo().extendSearchPath(env, dir)
}

func (p *PlatformInfo) extendSearchPath(env []string, dir string) []string {
	out := make([]string, 0, len(env)+1)
	found := false

	for _, kv := range env {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !p.isPathKey(key) {
			out = append(out, kv)
			continue
		}
		if found {
			// Duplicate keys: the first one wins for the child, drop the rest.
			continue
		}
		found = true
		out = append(out, key+"="+p.prependEntry(value, dir))
	}

	if !found {
		out = append(out, p.PathKey+"="+dir)
	}
	return out
}

// SearchPathValue returns the search-path value from env, or "" when it is
// not set.
func SearchPathValue(env []string) string {
	p := GetPlatformInfo()
	for _, kv := range env {
		key, value, ok := strings.Cut(kv, "=")
		if ok && p.isPathKey(key) {
			return value
		}
	}
	return ""
}

func (p *PlatformInfo) isPathKey(key string) bool {
	if p.CaseFoldPaths {
		return strings.EqualFold(key, "PATH")
	}
	return key == "PATH"
}

func (p *PlatformInfo) prependEntry(value, dir string) string {
	sep := p.ListSep
	entries := []string{dir}
	for _, entry := range strings.Split(value, sep) {
		if entry == "" || p.samePath(entry, dir) {
			continue
		}
		entries = append(entries, entry)
	}
	return strings.Join(entries, sep)
}

func (p *PlatformInfo) samePath(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	if p.CaseFoldPaths {
		return strings.EqualFold(a, b)
	}
	return a == b
}
