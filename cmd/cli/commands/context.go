package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/hernanbarrientos/escala-connect/internal/config"
	"github.com/hernanbarrientos/escala-connect/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
}
