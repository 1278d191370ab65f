// Package hasher derives short content hashes for output file names and
// pixel-level fingerprints of dithered buffers.
package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to the given length (0 keeps all 16 characters).
func ContentHash(data []byte, hexLen int) string {
	return truncHex(xxhash.Sum64(data), hexLen)
}

// ContentHashReader computes xxHash64 from a reader, streaming.
func ContentHashReader(r io.Reader, hexLen int) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return truncHex(h.Sum64(), hexLen), nil
}

// PixelFingerprint hashes a pixel buffer together with its dimensions, so
// equal bytes at different geometries do not collide.
func PixelFingerprint(pix []byte, width, height int) string {
	h := xxhash.New()
	var dims [16]byte
	binary.BigEndian.PutUint64(dims[:8], uint64(width))
	binary.BigEndian.PutUint64(dims[8:], uint64(height))
	h.Write(dims[:])
	h.Write(pix)
	return truncHex(h.Sum64(), 0)
}

func truncHex(v uint64, hexLen int) string {
	full := hex.EncodeToString(binary.BigEndian.AppendUint64(nil, v))
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}
