package internal

import (
	"htbnotes/internal/htb"
	"htbnotes/internal/providers"
	"htbnotes/internal/services"
	"htbnotes/internal/structures"
	"htbnotes/internal/vault"
)

// App bundles the wired services behind the CLI commands.
type App struct {
	Conf       *structures.Config
	Logger     providers.Logger
	Store      services.SettingsServiceInterface
	Notes      *vault.Manager
	Auth       htb.AuthServiceInterface
	Machines   htb.MachineHandlerInterface
	Challenges htb.ChallengeHandlerInterface
	Sherlocks  htb.SherlockHandlerInterface

	files *services.SettingsFileManager
}

func NewApp(conf *structures.Config, logger providers.Logger, store services.SettingsServiceInterface, files *services.SettingsFileManager, notes *vault.Manager, auth htb.AuthServiceInterface, machines htb.MachineHandlerInterface, challenges htb.ChallengeHandlerInterface, sherlocks htb.SherlockHandlerInterface) (*App, error) {
	logger.Debugf(providers.TypeApp, "Starting %s", conf.AppName)
	return &App{
		Conf:       conf,
		Logger:     logger,
		Store:      store,
		Notes:      notes,
		Auth:       auth,
		Machines:   machines,
		Challenges: challenges,
		Sherlocks:  sherlocks,
		files:      files,
	}, nil
}

// Close flushes the settings writer and the log file.
func (a *App) Close() {
	a.files.Close()
	a.Logger.Close()
}
