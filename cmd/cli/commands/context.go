package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/pietbarber/soar-duty-roster/internal/config"
	"github.com/pietbarber/soar-duty-roster/pkg/db"
)

// Migrator applies pending schema migrations
type Migrator interface {
	RunMigrations(ctx context.Context) error
}

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Migrator Migrator
	Logger   *zap.Logger
	Ctx      context.Context
}
