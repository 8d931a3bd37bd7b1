// Package cli is the interactive presentation collaborator of the task
// vault: a small REPL that invokes the data-layer services and renders
// their results and error notifications.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/dbelyaev/taskvault/internal/client/config"
	"github.com/dbelyaev/taskvault/internal/client/models"
	"github.com/dbelyaev/taskvault/internal/client/services"
	"github.com/dbelyaev/taskvault/internal/client/storage"
	"github.com/dbelyaev/taskvault/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	users    *services.UserService
	tasks    *services.TaskService
	sessions *services.SessionService
	log      logging.Logger

	// session mirrors the persisted markers; it is a cache reconciled
	// after every login/logout, not a binding.
	session models.Session
	reader  *bufio.Reader
	db      *sql.DB
}

// NewApp wires the store, the services, and the REPL together, and
// restores the session from the persisted markers so a cold start lands
// logged in when valid markers exist.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var (
		kv storage.KVStore
		db *sql.DB
	)
	if c.InMemory {
		kv = storage.NewMemoryStore()
	} else {
		var err error
		db, err = storage.Open(ctx, c.DatabasePath)
		if err != nil {
			log.Error(ctx, "error initializing database", "error", err)
			return nil, err
		}
		kv = storage.NewSQLiteStore(db)
	}

	sessions := services.NewSessionService(kv)
	app := &App{
		config:   c,
		users:    services.NewUserService(kv),
		tasks:    services.NewTaskService(kv, sessions),
		sessions: sessions,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		db:       db,
	}

	session, err := sessions.Current(ctx)
	if err != nil {
		log.Error(ctx, "error restoring session", "error", err)
	} else {
		app.session = session
	}
	return app, nil
}

func (a *App) Run(ctx context.Context) {
	if a.db != nil {
		defer a.db.Close()
	}
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Active()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Email)
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Task vault CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
