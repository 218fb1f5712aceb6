package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/common-nighthawk/go-figure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tradesage/tradesage-client/authapi"
	"github.com/tradesage/tradesage-client/internal/config"
	"github.com/tradesage/tradesage-client/internal/tui/app"
	"github.com/tradesage/tradesage-client/internal/tui/nav"
	"github.com/tradesage/tradesage-client/market"
	"github.com/tradesage/tradesage-client/session"
	"github.com/tradesage/tradesage-client/storage"
)

const (
	configFileName = "config.yaml"
	logFileName    = "client.log"

	startupTimeout = 15 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running client: %s\n", err)
		os.Exit(1)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			returnError = errors.Errorf("panic recovered: %v", r)
		}
	}()

	c, err := config.NewFromFile(filepath.Join(config.New().GetDataFolder(), configFileName))
	if err != nil {
		return errors.Wrap(err, "[run] load config")
	}

	logFile, err := setupLogging(c)
	if err != nil {
		return errors.Wrap(err, "[run] setup logging")
	}
	defer logFile.Close()

	displayAppname(c.GetAppName())

	api := authapi.NewClient(c.GetAPIBaseURL(),
		authapi.WithTimeouts(c.GetRequestTimeout(), c.GetHealthTimeout()))
	store := storage.NewFileStore(c.GetDataFolder())
	navigator := nav.New()

	options := []session.ManagerOption{session.WithPollInterval(c.GetHealthPollInterval())}
	if c.GetDemoMode() {
		options = append(options, session.WithDemoMode(c.GetDemoEmail(), c.GetDemoPassword()))
	}

	manager, err := session.NewManager(session.Deps{API: api, Store: store, Nav: navigator}, options...)
	if err != nil {
		return errors.Wrap(err, "[run] session manager")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	initCtx, initCancel := context.WithTimeout(ctx, startupTimeout)
	err = manager.Initialize(initCtx)
	initCancel()
	if err != nil {
		return errors.Wrap(err, "[run] initialize session")
	}

	go manager.PollHealth(ctx)

	program := tea.NewProgram(
		app.New(c.GetAppName(), manager, navigator, market.NewFeed()),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return errors.Wrap(err, "[run] run program")
	}
	return nil
}

// setupLogging routes the global logger to a file in the data folder. Writing
// to stderr would corrupt the alternate screen.
func setupLogging(c config.Config) (*os.File, error) {
	if err := os.MkdirAll(c.GetDataFolder(), 0o700); err != nil {
		return nil, errors.Wrap(err, "[setupLogging] create data folder")
	}
	logFile, err := os.OpenFile(filepath.Join(c.GetDataFolder(), logFileName),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, errors.Wrap(err, "[setupLogging] open log file")
	}

	level := zerolog.InfoLevel
	if c.GetEnv() == "DEV" {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(logFile).Level(level).With().Timestamp().Logger()
	return logFile, nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
