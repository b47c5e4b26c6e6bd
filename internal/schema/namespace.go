package schema

import (
	"context"
	"time"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/store"
)

// CreateNamespace creates a namespace carrying config. An existing namespace is reported as a
// schema error wrapping store.ErrNamespaceExists.
func (a *Admin) CreateNamespace(ctx context.Context, name string, config map[string]string) (err error) {
	const op = "create_namespace"
	defer func(start time.Time) { a.finish(op, start, err) }(time.Now())

	return a.withAdmin(ctx, op, func(adm store.Admin) error {
		if err := adm.CreateNamespace(ctx, litetable.NewNamespaceDescriptor(name, config)); err != nil {
			return schemaError(op, err)
		}
		return nil
	})
}
