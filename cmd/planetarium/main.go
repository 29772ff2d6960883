package main

import (
	"fmt"
	"io"
	"os"

	"cosmossdk.io/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/oxygene76/planetarium/internal/types"
	"github.com/oxygene76/planetarium/pkg/astronomy/solarsystem"
	"github.com/oxygene76/planetarium/pkg/client"
	"github.com/oxygene76/planetarium/pkg/utils"
)

const (
	appName = "planetarium"
	version = "v1.0.0"
)

// app holds what the commands of one invocation share
type app struct {
	cfgFile  string
	scenario string
	verbose  bool

	config   *utils.Config
	logger   log.Logger
	registry *prometheus.Registry
	client   *client.PlanetariumClient
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints the error message only. Formatting registered errors with
// %v would append the source location where they were wrapped.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", err.Error())
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Planetarium manages a solar system of stars, planets and moons",
		Long: `Planetarium keeps a single star with its planets and their moons in memory.
It can list the bodies, describe one of them, compute the route between two
bodies, the center of mass of the system and the bodies that may collide.

Every invocation starts from the configured star, optionally seeded with a
scenario file. Use the shell command to edit a system interactively.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "init" {
				return nil
			}
			return a.initialize(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.planetarium/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.scenario, "scenario", "", "YAML scenario used to seed the system")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newInitCmd(a), newShellCmd(a))
	addSystemCommands(rootCmd, a)

	return rootCmd
}

// initialize loads the configuration and builds the client for this invocation
func (a *app) initialize(cmd *cobra.Command) error {
	config, err := utils.LoadConfig(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.verbose {
		config.Log.Level = "debug"
	}

	logger, err := utils.NewLogger(config.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.config = config
	a.logger = logger.With("module", appName)
	a.registry = prometheus.NewRegistry()

	a.client, err = client.NewPlanetariumClient(config, a.logger, solarsystem.NewMetrics(a.registry))
	if err != nil {
		return fmt.Errorf("failed to initialize client: %w", err)
	}

	if a.scenario != "" {
		scenario, err := types.LoadScenario(a.scenario)
		if err != nil {
			return err
		}
		if err := a.client.LoadScenario(scenario); err != nil {
			return fmt.Errorf("failed to load scenario %s: %w", a.scenario, err)
		}
	}

	return nil
}

func newInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Long: `Write the default configuration to the file given by --config, or to
$HOME/.planetarium/config.yaml. An existing file is kept unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfgFile
			if path == "" {
				var err error
				if path, err = utils.GetConfigPath(); err != nil {
					return fmt.Errorf("failed to resolve config path: %w", err)
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists, use --force to overwrite it", path)
			}

			if err := utils.SaveConfig(utils.DefaultConfig(), path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
