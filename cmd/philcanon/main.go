// Command philcanon rewrites football philosophy names in HTML documents
// into canonical identifiers.
package main

import (
	"context"
	"os"

	"github.com/custodia-labs/philcanon/internal/adapters/driven/config/file"
	"github.com/custodia-labs/philcanon/internal/adapters/driving/cli"
	"github.com/custodia-labs/philcanon/internal/bootstrap"
	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
	"github.com/custodia-labs/philcanon/internal/core/ports/driving"
	"github.com/custodia-labs/philcanon/internal/core/services"
)

func main() {
	if err := cli.Execute(context.Background(), wiring()); err != nil {
		os.Exit(1)
	}
}

func wiring() cli.Wiring {
	return cli.Wiring{
		Settings: func(configPath string) (driving.SettingsService, error) {
			store, err := file.NewConfigStore(configPath)
			if err != nil {
				return nil, err
			}
			return services.NewSettingsService(store), nil
		},
		Canonicaliser: func(ctx context.Context, settings domain.AppSettings) (driving.Canonicaliser, func() error, error) {
			app, err := bootstrap.New(ctx, settings)
			if err != nil {
				return nil, nil, err
			}
			return app.Canonicaliser, app.Close, nil
		},
		Watcher: func(settings domain.AppSettings, root string) (driven.ChangeWatcher, error) {
			w, err := bootstrap.NewWatcher(settings, root)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
	}
}
