package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKey builds the key of one rendered artifact: the hash of the chart
// description, the output format and the raster scale.
func ArtifactKey(chartHash, format string, scale float64) string {
	var b strings.Builder
	b.WriteString("artifact:")
	b.WriteString(format)
	b.WriteByte(':')
	b.WriteString(strconv.FormatFloat(scale, 'g', -1, 64))
	b.WriteByte(':')
	b.WriteString(chartHash)
	return b.String()
}
