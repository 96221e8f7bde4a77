package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/AlphaBravo227/CrewOps360-sub001/internal/config"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Store  *postgres.DB
	Logger *zap.Logger
	Ctx    context.Context
}
