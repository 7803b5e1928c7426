package pkguid

import (
	"strings"

	"github.com/shandysiswandi/paywatch/internal/pkg/pkgrand"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Base36 generates prefix + length random base-36 characters.
type Base36 struct {
	src    pkgrand.Source
	prefix string
	length int
}

// NewBase36 returns a Base36 generator, e.g. NewBase36(src, "txn_", 10).
func NewBase36(src pkgrand.Source, prefix string, length int) *Base36 {
	if length < 1 {
		length = 1
	}

	return &Base36{src: src, prefix: prefix, length: length}
}

// Generate returns a new identifier.
func (b *Base36) Generate() string {
	var sb strings.Builder
	sb.Grow(len(b.prefix) + b.length)
	sb.WriteString(b.prefix)
	for i := 0; i < b.length; i++ {
		sb.WriteByte(base36Alphabet[b.src.IntN(len(base36Alphabet))])
	}
	return sb.String()
}
