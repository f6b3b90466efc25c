package dedup

import (
	"strings"
)

// Key identifies a posting in the output file.
// Two postings with the same trimmed title and company are the same job.
type Key struct {
	Title   string
	Company string
}

func NewKey(title, company string) Key {
	return Key{
		Title:   strings.TrimSpace(title),
		Company: strings.TrimSpace(company),
	}
}

// KeySet remembers which keys were already written.
// Not safe for concurrent use, the pipeline is sequential.
type KeySet struct {
	seen map[Key]struct{}
}

func NewKeySet() *KeySet {
	return &KeySet{seen: make(map[Key]struct{})}
}

func (s *KeySet) Has(k Key) bool {
	_, ok := s.seen[k]
	return ok
}

// Add reports whether k was new.
func (s *KeySet) Add(k Key) bool {
	if s.Has(k) {
		return false
	}
	s.seen[k] = struct{}{}
	return true
}

func (s *KeySet) Len() int {
	return len(s.seen)
}
