// Package ident synthesizes stable numeric identifiers for feed entities
// whose only natural key is a composite of free-text fields.
package ident

import "strings"

// Key is the natural key an identifier is derived from. It deliberately
// requires both the partner's raw identifier and the display name: entities
// that share a displayed name (two "Manhã" shifts at different units) must
// never be hashed on the name alone, and the constructor makes that
// structurally impossible.
type Key struct {
	rawID string
	name  string
}

// NewKey builds a composite natural key.
func NewKey(rawID, name string) Key {
	return Key{rawID: rawID, name: name}
}

// String returns the exact byte sequence that is hashed.
func (k Key) String() string {
	return k.rawID + k.name
}

// Fold returns a lower-cased form of the key for node lookups that must
// absorb casing differences in the feed.
func (k Key) Fold() string {
	return strings.ToLower(k.rawID) + "|" + strings.ToLower(k.name)
}

// Synthesize derives a 32-bit surrogate identifier from a composite key
// using a DJB2-style rolling hash: seed 5381, then hash = hash*33 XOR code
// for each character, kept in unsigned 32-bit arithmetic. There is no random
// seed, so the same key yields the same identifier across runs — clients
// round-trip these IDs through URLs.
//
// Collisions are not handled: a 32-bit hash over one institution's catalog
// is an accepted trade-off, not an oversight.
func Synthesize(k Key) uint32 {
	h := uint32(5381)
	for _, r := range k.String() {
		h = h*33 ^ uint32(r)
	}
	return h
}
