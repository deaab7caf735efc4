package testlog

import (
	"testing"

	"github.com/danmuck/grpcdeframe/internal/logging"
	"github.com/rs/zerolog/log"
)

// Start configures the test logging profile and emits a single debug line
// naming the running test, so log output interleaved across -run matches
// is still attributable.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	log.Debug().Str("test", t.Name()).Msg("start")
}
