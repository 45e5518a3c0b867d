package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"reelpub/internal/config"
	"reelpub/internal/fileutil"
	"reelpub/internal/logging"
	"reelpub/internal/services"
)

type commandContext struct {
	configFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(c.configFlagValue())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		fileutil.SetLockDir(cfg.Paths.LogDir)
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

// runScope is the per-invocation state shared by the pipeline commands.
type runScope struct {
	cfg *config.Config
	ctx context.Context
	// base carries no context fields; components add their own per call.
	base   *slog.Logger
	logger *slog.Logger
	runID  string
}

// newRunScope tags the command context with a fresh run id and stage and
// builds a logger that writes to the log file and the command's stderr.
func (c *commandContext) newRunScope(cmd *cobra.Command, stage string) (*runScope, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	base, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr(), shouldColorize(cmd.ErrOrStderr()))
	if err != nil {
		return nil, err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	runID := uuid.NewString()
	ctx := services.WithStage(services.WithRunID(parent, runID), stage)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(base, stage))

	return &runScope{cfg: cfg, ctx: ctx, base: base, logger: logger, runID: runID}, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
