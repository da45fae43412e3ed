package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/homeboard/internal/client/activity"
	"github.com/dmitrijs2005/homeboard/internal/client/api"
	"github.com/dmitrijs2005/homeboard/internal/client/browse"
	"github.com/dmitrijs2005/homeboard/internal/client/config"
	"github.com/dmitrijs2005/homeboard/internal/client/kvstore"
	"github.com/dmitrijs2005/homeboard/internal/client/orgstore"
	"github.com/dmitrijs2005/homeboard/internal/client/profilesvc"
	"github.com/dmitrijs2005/homeboard/internal/common"
	"github.com/dmitrijs2005/homeboard/internal/filex"
	"github.com/dmitrijs2005/homeboard/internal/logging"
)

// App wires the client services together and implements every REPL
// command.
type App struct {
	config  *config.Config
	logger  logging.Logger
	store   kvstore.Store
	gateway *api.Client
	org     *orgstore.Store
	profile *profilesvc.Service
	bus     *activity.Bus
	viewer  *activity.Viewer

	countdown *browse.DeleteCountdown
	filter    browse.Filter

	userName string
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the local store and builds the service graph.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	dataDir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	store, err := kvstore.Open(ctx, filepath.Join(dataDir, "homeboard.db"))
	if err != nil {
		return nil, fmt.Errorf("local store: %w", err)
	}

	gateway, err := api.New(ctx, cfg, api.NewKVTokenStore(store), logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	bus, err := activity.NewBus(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	org, err := orgstore.Open(ctx, store,
		orgstore.WithSaver(gateway), orgstore.WithActivityBus(bus))
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	a := &App{
		config:  cfg,
		logger:  logger,
		store:   store,
		gateway: gateway,
		org:     org,
		profile: profilesvc.New(gateway, store, bus),
		bus:     bus,
		viewer:  activity.NewViewer(bus, 0),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	a.countdown = browse.NewDeleteCountdown(0, a.deleteExpired)
	return a, nil
}

// Run greets the user, restores the saved session if the server still
// accepts it, and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "homeboard CLI (type 'help' for commands)")

	user, err := a.gateway.VerifySession(ctx)
	switch {
	case err == nil:
		a.userName = user.Username
		fmt.Fprintf(a.out, "Welcome back, %s\n", user.Username)
	case errors.Is(err, common.ErrUnauthenticated):
		// no saved session, start signed out
	case api.IsNetworkError(err):
		fmt.Fprintln(a.out, "Server unreachable, continuing with the saved session")
	default:
		a.logger.Warn(ctx, "session check failed", "error", err)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// Close cancels any pending delete and releases the local store.
func (a *App) Close() {
	a.countdown.Close()
	a.viewer.Close()
	if err := a.store.Close(); err != nil {
		a.logger.Warn(context.Background(), "failed to close local store", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.gateway.Token() != ""
}

func (a *App) getStatus() string {
	if a.userName != "" {
		return fmt.Sprintf("(%s) ", a.userName)
	}
	if a.isLoggedIn() {
		return "(signed in) "
	}
	return ""
}

// printErr reports a command failure to the user in one consistent shape.
func (a *App) printErr(err error) error {
	if errors.Is(err, common.ErrUnauthenticated) {
		fmt.Fprintln(a.out, "You need to login first")
		return err
	}
	fmt.Fprintf(a.out, "Error: %v\n", err)
	return err
}
