// Package app wires the pieces a command needs: config, logger, database,
// stores and the session lifecycle manager.
package app

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/studywiz/studywiz/internal/config"
	"github.com/studywiz/studywiz/internal/db"
	"github.com/studywiz/studywiz/internal/identity"
	"github.com/studywiz/studywiz/internal/library"
	"github.com/studywiz/studywiz/internal/logger"
	"github.com/studywiz/studywiz/internal/notify"
	"github.com/studywiz/studywiz/internal/session"
	"github.com/studywiz/studywiz/internal/stats"
	"github.com/studywiz/studywiz/internal/store"
)

type App struct {
	Cfg     config.Config
	Log     *zap.Logger
	DB      *gorm.DB
	Store   *store.Store
	Binder  *identity.Binder
	Manager *session.Manager
	Library *library.Service
	Stats   *stats.Service
}

// New loads configuration, opens the local database and builds the session
// manager bound to the persisted login session, if any.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	gdb, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	st := store.New(gdb)
	binder := identity.NewBinder(st)
	statsSvc := stats.New(gdb)
	manager := session.New(st, binder, statsSvc, notify.NewConsole(), log)

	return &App{
		Cfg:     cfg,
		Log:     log,
		DB:      gdb,
		Store:   st,
		Binder:  binder,
		Manager: manager,
		Library: library.New(gdb),
		Stats:   statsSvc,
	}, nil
}

func (a *App) Close() error {
	_ = a.Log.Sync()
	return db.Close(a.DB)
}
