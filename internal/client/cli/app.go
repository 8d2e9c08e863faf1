// Package cli is the terminal front-end: a small REPL over the session and
// feature services. It owns the one authorized reaction to an expired
// session (drop to the logged-out prompt) so no feature code ever has to.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/buperadmin/kwitansi-cli/internal/client/api"
	"github.com/buperadmin/kwitansi-cli/internal/client/config"
	"github.com/buperadmin/kwitansi-cli/internal/client/receipt"
	"github.com/buperadmin/kwitansi-cli/internal/client/repositories/credentials"
	"github.com/buperadmin/kwitansi-cli/internal/client/services"
	"github.com/buperadmin/kwitansi-cli/internal/client/session"
	"github.com/buperadmin/kwitansi-cli/internal/client/storage"
	"github.com/buperadmin/kwitansi-cli/internal/logging"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	session   session.Service
	kwitansi  services.KwitansiService
	mahasiswa services.MahasiswaService
	users     services.UserService

	db     *sql.DB
	reader *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init local database: %w", err)
	}

	creds := credentials.NewSQLiteRepository(db)
	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, session.NewStore(creds), log)

	return &App{
		config:    cfg,
		log:       log,
		session:   session.NewService(apiClient, creds, log),
		kwitansi:  services.NewKwitansiService(apiClient, receipt.NewRenderer(), log),
		mahasiswa: services.NewMahasiswaService(apiClient, log),
		users:     services.NewUserService(apiClient, log),
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.CurrentUser() != nil
}

// startup runs the once-per-launch protocol: with no stored credential we
// stay logged out without touching the network; with one, a single
// keep-login attempt either restores the session or drops it for good.
func (a *App) startup(ctx context.Context) {
	token, err := a.session.LoadCredential(ctx)
	if err != nil {
		a.log.Error(ctx, "reading stored credential", "error", err)
		return
	}
	if token == "" {
		printlnFn("Sign in first (type 'login').")
		return
	}

	user, err := a.session.KeepAlive(ctx)
	if err != nil {
		printlnFn("Stored session is no longer valid, please sign in again.")
		return
	}
	printlnFn(fmt.Sprintf("Welcome back, %s!", user.Fullname))
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Kwitansi Admin CLI (type 'help' for commands)")
	a.startup(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) status() string {
	if user := a.session.CurrentUser(); user != nil {
		return "(" + user.Username + ")"
	}
	return "(signed out)"
}

// handleErr centralizes user-facing error reporting. An expired session
// resets the app to the logged-out state here and nowhere else.
func (a *App) handleErr(ctx context.Context, err error) {
	switch {
	case errors.Is(err, api.ErrSessionExpired):
		_ = a.session.Logout(ctx)
		printlnFn("Session expired, please sign in again.")
	case errors.Is(err, api.ErrUnavailable):
		printlnFn("Server unavailable, try again later.")
	default:
		var verr *services.ValidationError
		var authErr *api.AuthError
		switch {
		case errors.As(err, &verr):
			printlnFn("Invalid input —", verr.Error())
		case errors.As(err, &authErr):
			printlnFn("Login failed:", authErr.Reason)
		default:
			printlnFn("Error:", err.Error())
		}
	}
}
