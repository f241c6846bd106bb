package generator

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"io"
	"math/rand/v2"
)

const (
	// BlockSize must divide 1 MiB so that files are whole megabytes.
	BlockSize   = 8 * 1024
	BlocksPerMB = (1024 * 1024) / BlockSize
	BytesPerMB  = 1024 * 1024
)

// NewSource returns a random source owned by a single unit. Each unit gets
// its own so no generator state is shared between goroutines.
func NewSource() *rand.ChaCha8 {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// runtime-seeded global generator
		for i := range seed {
			seed[i] = byte(rand.Uint32())
		}
	}
	return rand.NewChaCha8(seed)
}

// PickSizeMB draws a size uniformly from [min, max). A degenerate range
// returns min.
func PickSizeMB(r *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.IntN(max-min)
}

// WriteRandom writes sizeMB megabytes to w in BlockSize chunks, refilling
// the block from src before every write. It returns the number of bytes
// written, which is sizeMB*BytesPerMB on success.
func WriteRandom(ctx context.Context, w io.Writer, sizeMB int, src io.Reader) (int64, error) {
	buf := make([]byte, BlockSize)
	blocks := sizeMB * BlocksPerMB

	var written int64
	for i := 0; i < blocks; i++ {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if _, err := io.ReadFull(src, buf); err != nil {
			return written, fmt.Errorf("fill block: %w", err)
		}
		n, err := w.Write(buf)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
