package collections

import (
	"math/rand"
	"sync"

	"github.com/rs/zerolog"
)

// Config holds the package-wide settings used by every Collection.
type Config struct {
	// Logger receives non-fatal warnings such as reads of undefined
	// offsets. Defaults to a disabled logger.
	Logger zerolog.Logger

	// Rand is the source used by Random, RandomN and Shuffle. When nil the
	// math/rand global source is used.
	Rand *rand.Rand
}

// DefaultConfig returns a [Config] that logs nothing and uses the global
// random source.
func DefaultConfig() Config {
	return Config{Logger: zerolog.Nop()}
}

var config = struct {
	mu  sync.RWMutex
	cfg Config
}{cfg: DefaultConfig()}

// Configure replaces the package configuration. Safe to call from multiple
// goroutines, though it is usually called once from init code.
//
//	collections.Configure(collections.Config{
//	    Logger: zerolog.New(os.Stderr).With().Timestamp().Logger(),
//	    Rand:   rand.New(rand.NewSource(1)),
//	})
func Configure(cfg Config) {
	config.mu.Lock()
	defer config.mu.Unlock()
	config.cfg = cfg
}

// CurrentConfig returns the active configuration.
func CurrentConfig() Config {
	config.mu.RLock()
	defer config.mu.RUnlock()
	return config.cfg
}

func logger() *zerolog.Logger {
	l := CurrentConfig().Logger
	return &l
}

// intn returns a random int in [0, n) from the configured source.
func intn(n int) int {
	if r := CurrentConfig().Rand; r != nil {
		return r.Intn(n)
	}
	return rand.Intn(n)
}

// perm returns a random permutation of [0, n) from the configured source.
func perm(n int) []int {
	if r := CurrentConfig().Rand; r != nil {
		return r.Perm(n)
	}
	return rand.Perm(n)
}
