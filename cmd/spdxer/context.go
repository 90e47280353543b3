package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"spdxer/internal/config"
	"spdxer/internal/license"
	"spdxer/internal/logging"
	"spdxer/internal/operations"
	"spdxer/internal/project"
)

type commandContext struct {
	configFlag   *string
	pathFlag     *string
	dataFileFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	registryOnce sync.Once
	registry     *license.Registry
	registryErr  error
}

func newCommandContext(configFlag, pathFlag, dataFileFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		pathFlag:     pathFlag,
		dataFileFlag: dataFileFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.dataFileFlag != nil && strings.TrimSpace(*c.dataFileFlag) != "" {
			expanded, err := config.ExpandPath(strings.TrimSpace(*c.dataFileFlag))
			if err != nil {
				c.configErr = err
				return
			}
			cfg.Data.File = expanded
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err == nil {
			if logger, logErr := logging.NewFromConfig(cfg); logErr == nil {
				c.logger = logger
				return
			}
		}
		if logger, logErr := logging.New(logging.Options{}); logErr == nil {
			c.logger = logger
			return
		}
		c.logger = logging.NewNop()
	})
	return c.logger
}

func (c *commandContext) ensureRegistry() (*license.Registry, error) {
	c.registryOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.registryErr = err
			return
		}
		c.registry, c.registryErr = license.Load(cfg.Data.File)
	})
	return c.registry, c.registryErr
}

// repoRoot resolves the --path flag, defaulting to the current directory.
func (c *commandContext) repoRoot() (string, error) {
	path := "."
	if c.pathFlag != nil && strings.TrimSpace(*c.pathFlag) != "" {
		path = strings.TrimSpace(*c.pathFlag)
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", err
	}
	return expanded, nil
}

// sourceFiles resolves the files a batch operation visits. A --path that
// names a file selects exactly that file; a directory is narrowed to its
// source subdirectory and walked.
func (c *commandContext) sourceFiles() ([]string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	root, err := c.repoRoot()
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		return []string{root}, nil
	}
	dir := project.FindSourceDir(root, cfg.Scan.Extensions)
	return operations.FindSourceFiles(dir, cfg.Scan.Extensions, cfg.Scan.IgnoreDirs)
}

func (c *commandContext) newBatch(dryRun bool) (*operations.Batch, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	reg, err := c.ensureRegistry()
	if err != nil {
		return nil, err
	}
	root, err := c.repoRoot()
	if err != nil {
		return nil, err
	}
	holderRoot := root
	if info, statErr := os.Stat(root); statErr == nil && !info.IsDir() {
		holderRoot = filepath.Dir(root)
	}
	return &operations.Batch{
		Registry: reg,
		Info:     project.CopyrightInfo(holderRoot, cfg, c.ensureLogger()),
		Logger:   c.ensureLogger(),
		DryRun:   dryRun,
	}, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
