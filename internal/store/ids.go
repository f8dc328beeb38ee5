package store

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

// newRandomID returns prefix-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space.
func newRandomID(prefix string) (string, error) {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b[:]))
	return prefix + "-" + suffix, nil
}

func idExists(db *DB, id string) bool {
	for _, p := range db.Projects {
		if p.ID == id {
			return true
		}
	}
	for _, d := range db.Documents {
		if d.ID == id {
			return true
		}
	}
	return false
}

// NextID generates a fresh id that does not collide with any entity in
// either collection. Prefixes keep ids readable: proj-xxx, doc-xxx.
func (s Store) NextID(db *DB, prefix string) string {
	for i := 0; i < 10; i++ {
		id, err := newRandomID(prefix)
		if err != nil {
			break
		}
		if !idExists(db, id) {
			return id
		}
	}
	// crypto/rand failing (or 10 collisions in a 40-bit space) should not
	// happen in practice; fall back to a counter suffix so we never block.
	n := len(db.Projects) + len(db.Documents)
	for {
		id := prefix + "-fallback-" + itoa(n)
		if !idExists(db, id) {
			return id
		}
		n++
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
