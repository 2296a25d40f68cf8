package cpufeat

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gosimd/simdkernel/simd"
)

var (
	once   sync.Once
	cached simd.Tier
)

func init() {
	// Keep the one-shot selection line quiet unless the caller has
	// opted into debug-level logging; this probe never logs on the hot
	// kernel path, only once here at first use.
	if os.Getenv("SIMDKERNEL_DEBUG") == "" {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// Capabilities returns the bitmask of simd.Tier bits supported by the host
// CPU. serial is always set. Detection runs at most once per process; the
// result is memoized and safe for unsynchronized concurrent reads
// thereafter.
func Capabilities() simd.Tier {
	once.Do(func() {
		cached = simd.TierSerial | detect()
		log.Debug().Str("tiers", cached.String()).Msg("cpufeat: capability probe resolved")
	})
	return cached
}

// Reset clears the memoized result, forcing the next Capabilities call to
// re-run detection. Exposed for tests only; production callers rely on
// the one-shot cache.
func Reset() {
	once = sync.Once{}
	cached = 0
}
