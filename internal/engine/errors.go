package engine

import (
	"github.com/litetable/litetable-go/internal/store"
)

// newError reports sentinel with context. Engine errors carry no kind; the client layer
// classifies them whether the engine is embedded or behind the gRPC server.
func newError(sentinel error, format string, args ...any) error {
	return store.Errorf(store.KindUnknown, "", sentinel, format, args...)
}
