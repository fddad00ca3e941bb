// Package cli implements the interactive terminal front end of weighttrack:
// a small REPL with register/login and weight CRUD commands, standing in for
// the screens of a mobile app.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/weighttrack/internal/app"
	"github.com/dmitrijs2005/weighttrack/internal/config"
	"github.com/dmitrijs2005/weighttrack/internal/logging"
	"github.com/dmitrijs2005/weighttrack/internal/repositories/settings"
	"github.com/dmitrijs2005/weighttrack/internal/services"
)

type App struct {
	config   *config.Config
	auth     *services.AuthService
	weight   *services.WeightService
	settings settings.Repository
	log      logging.Logger

	// session state; zero userID means not logged in
	userID   int64
	userName string

	reader *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := app.NewLogger(cfg)

	db, err := app.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	installID, err := app.EnsureInstallationID(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("error initializing installation id: %w", err)
	}
	log.Debug(ctx, "store opened", "path", cfg.DatabasePath, "installation_id", installID)

	repos := app.NewRepositories(db)
	svcs := app.NewServices(repos, log)

	return &App{
		config:   cfg,
		auth:     svcs.Auth,
		weight:   svcs.Weight,
		settings: repos.Settings,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userID != 0
}

// status renders the prompt fragment showing who is logged in.
func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "not logged in"
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("weighttrack CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
