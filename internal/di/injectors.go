//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"htbnotes/internal"
	"htbnotes/internal/htb"
	"htbnotes/internal/providers"
	"htbnotes/internal/services"
	"htbnotes/internal/structures"
	"htbnotes/internal/template"
	"htbnotes/internal/vault"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewCacheProvider,
		providers.NewHttpProvider,

		services.NewZstdCompressor,
		services.NewSettingsFileManager,
		services.NewSettingsService,
		services.NewCacheService,

		vault.NewManager,
		wire.Bind(new(template.Loader), new(*vault.Manager)),
		template.NewResolver,

		htb.NewAuthService,
		htb.NewMachineHandler,
		htb.NewChallengeHandler,
		htb.NewSherlockHandler,
		internal.NewApp,
	)

	return nil, nil
}
