// Package pathutil canonicalizes the slash-delimited paths used to address
// containers and entries inside a store. Store paths are logical addresses,
// not filesystem paths, so POSIX semantics apply on every platform.
package pathutil

import (
	"path"
	"strings"
)

// Simplify collapses redundant separators and relative segments, returning
// an absolute POSIX-form path. The root is "/". The store trusts the result
// to be well formed for splitting on "/".
func Simplify(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// Split canonicalizes p and separates it into its parent path and final
// element. Splitting the root yields ("/", "").
func Split(p string) (parent, leaf string) {
	p = Simplify(p)
	if p == "/" {
		return "/", ""
	}
	parent, leaf = path.Split(p)
	if parent != "/" {
		parent = strings.TrimSuffix(parent, "/")
	}
	return parent, leaf
}

// Segments returns the non-empty segments of the canonical form of p, in
// walk order from the root. The root path has no segments.
func Segments(p string) []string {
	p = Simplify(p)
	if p == "/" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(p, "/"), "/")
}
