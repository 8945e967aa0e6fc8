package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"model-mapper/examples/user"
	"model-mapper/internal/config"
	"model-mapper/internal/mapping"
	"model-mapper/modelmap"
)

var errMissingSpec = errors.New("no mapping file given (use --spec or MODELMAP_SPEC)")

// app is the state shared by all subcommands once flags are parsed.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	reg    *mapping.Registry
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "modelmap",
		Short: "Map records between wire format and model form",
		Long: `modelmap applies YAML mapping files to JSON records.

Settings come from flags, MODELMAP_* environment variables, a .env file
in the working directory, and an optional --config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Config file (yaml, json or toml)")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.String("log-format", config.FormatText, "Log format: text or json")

	cmd.AddCommand(
		newMapCommand(a),
		newCheckCommand(a),
		newSuggestCommand(a),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	reg, err := builtinRegistry()
	if err != nil {
		return err
	}

	a.cfg, a.logger, a.reg = cfg, logger, reg

	return nil
}

// builtinRegistry holds the Go transforms mapping files may name.
func builtinRegistry() (*mapping.Registry, error) {
	reg := mapping.NewRegistry()
	if err := user.Register(reg); err != nil {
		return nil, fmt.Errorf("failed to register user transforms: %w", err)
	}

	return reg, nil
}

// loadFile reads the configured mapping file.
func (a *app) loadFile() (*mapping.File, error) {
	if a.cfg.Spec == "" {
		return nil, errMissingSpec
	}

	return mapping.LoadFile(a.cfg.Spec)
}

// specification builds the configured mapping. The mapping name may be
// omitted when the file holds exactly one mapping.
func (a *app) specification() (modelmap.Specification, error) {
	f, err := a.loadFile()
	if err != nil {
		return nil, err
	}

	name := a.cfg.Mapping
	if name == "" {
		if len(f.Mappings) != 1 {
			return nil, fmt.Errorf("%s holds %d mappings, choose one with --mapping", a.cfg.Spec, len(f.Mappings))
		}

		name = f.Mappings[0].Name
	}

	spec, err := mapping.Build(f, name, a.reg)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("built specification",
		slog.String("file", a.cfg.Spec),
		slog.String("mapping", name),
		slog.Int("entries", len(spec)),
	)

	return spec, nil
}
