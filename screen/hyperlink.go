// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/hyperlink.go
// Summary: Hyperlink registry — the OSC 8 (id, uri) pair cells attach to.
// Grounded on: spec §9 design note ("model the registry as the owner and
// cells as holders of a stable handle"); no teacher file implements OSC 8,
// so the registry shape itself is original to this package, wired to
// github.com/google/uuid for surrogate-key generation.

package screen

import "github.com/google/uuid"

// Hyperlink is an OSC 8 (id, uri) pair. Cells never hold a *Hyperlink
// directly; they hold the registry key that resolves to one (spec §9).
type Hyperlink struct {
	ID  string
	URI string
}

// maxHyperlinks bounds the registry; the spec leaves eviction policy and
// bound implementation-defined (§9 Open Questions).
const maxHyperlinks = 4096

// hyperlinkRegistry owns Hyperlink values; Cells hold only a key into it.
// Insertion-ordered eviction (a ring of keys) keeps the registry bounded.
type hyperlinkRegistry struct {
	byKey  map[string]*Hyperlink
	byURI  map[string]string // uri -> key, for empty-id dedup
	order  []string
}

func newHyperlinkRegistry() *hyperlinkRegistry {
	return &hyperlinkRegistry{
		byKey: make(map[string]*Hyperlink),
		byURI: make(map[string]string),
	}
}

// lookupOrInsert finds the key for (id, uri), inserting a new registry
// entry if none exists. Per spec §3: "Cells with the same identifier (or
// identical URI when id empty) share one Hyperlink."
func (r *hyperlinkRegistry) lookupOrInsert(id, uri string) string {
	if id != "" {
		if _, ok := r.byKey[id]; !ok {
			r.insert(id, &Hyperlink{ID: id, URI: uri})
		}
		return id
	}
	if key, ok := r.byURI[uri]; ok {
		return key
	}
	key := uuid.NewString()
	r.byURI[uri] = key
	r.insert(key, &Hyperlink{URI: uri})
	return key
}

func (r *hyperlinkRegistry) insert(key string, link *Hyperlink) {
	r.byKey[key] = link
	r.order = append(r.order, key)
	for len(r.order) > maxHyperlinks {
		oldest := r.order[0]
		r.order = r.order[1:]
		if old := r.byKey[oldest]; old != nil && old.ID == "" {
			delete(r.byURI, old.URI)
		}
		delete(r.byKey, oldest)
	}
}

// resolve returns the Hyperlink for key, or nil if it was evicted or key
// is empty.
func (r *hyperlinkRegistry) resolve(key string) *Hyperlink {
	if key == "" {
		return nil
	}
	return r.byKey[key]
}
