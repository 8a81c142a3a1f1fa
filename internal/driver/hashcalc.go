package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"slices"
)

// Digest is a sha256 sum used as a cache key.
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether d was never computed.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// CheckKey: H(schema || content || max_depth || sorted tags).
// Всё, что влияет на результат проверки файла, должно попасть в ключ.
func CheckKey(content [32]byte, maxDepth int, tags []string) Digest {
	h := sha256.New()
	var buf [8]byte
	binary.LittleEndian.PutUint16(buf[:2], diskCacheSchemaVersion)
	_, _ = h.Write(buf[:2])
	_, _ = h.Write(content[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(max(maxDepth, 0))) // #nosec G115 -- clamped
	_, _ = h.Write(buf[:])
	sorted := slices.Clone(tags)
	slices.Sort(sorted)
	for _, t := range sorted {
		_, _ = h.Write([]byte(t))
		_, _ = h.Write([]byte{0})
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
