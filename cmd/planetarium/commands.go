package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// addSystemCommands attaches the commands working on the current system to parent.
// They are shared by the root command and by the interactive shell.
func addSystemCommands(parent *cobra.Command, a *app) {
	parent.AddCommand(
		newTreeCmd(a),
		newInfoCmd(a),
		newPathCmd(a),
		newCollisionsCmd(a),
		newCenterCmd(a),
		newGraphCmd(a),
		newAddPlanetCmd(a),
		newAddMoonCmd(a),
		newRemovePlanetCmd(a),
		newRemoveMoonCmd(a),
		newGenerateCmd(a),
		newResetCmd(a),
	)
}

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "List every body of the system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), a.client.Tree())
			return nil
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info [id]",
		Short: "Describe a celestial body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.client.Info(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "path [from] [to]",
		Aliases: []string{"route"},
		Short:   "Show the route between two bodies",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.client.Route(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Length: %.3f\n", path.Length())
			return nil
		},
	}
}

func newCollisionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "collisions",
		Short: "Show the bodies that may collide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			collisions := a.client.Collisions()
			if len(collisions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "All quiet. No collisions detected.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "WARNING: possible collisions between celestial bodies!")
			for _, c := range collisions {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", c)
			}
			return nil
		},
	}
}

func newCenterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "center",
		Short: "Show the center of mass of the system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Center of mass: %s\n", a.client.CenterOfMass())
			fmt.Fprintf(cmd.OutOrStdout(), "Total mass: %s\n", a.client.System().TotalMass())
			return nil
		},
	}
}

func newGraphCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the system as a Graphviz DOT graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.client.System().Graph().MarshalDOT(name)
			if err != nil {
				return fmt.Errorf("failed to marshal graph: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", appName, "graph name")
	return cmd
}

func newAddPlanetCmd(a *app) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "add-planet [x] [y] [mass]",
		Short: "Add a planet, positioned relative to the star",
		Long: `Add a planet, positioned relative to the star. Flags go before the
coordinates, and a negative first coordinate needs "--" in front of it.`,
		Example: `  planetarium add-planet 1 0 5
  planetarium add-planet --id Mars -- -2 0.5 3`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, mass, err := parseBody(args)
			if err != nil {
				return err
			}

			if id == "" {
				planet, err := a.client.AddPlanet(x, y, mass)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", planet)
				return nil
			}

			planet, err := a.client.AddNamedPlanet(id, x, y, mass)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", planet)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "identifier of the planet (generated when empty)")
	// negative coordinates after the first argument are not flags
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newAddMoonCmd(a *app) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "add-moon [planet] [x] [y] [mass]",
		Short: "Add a moon, positioned relative to its planet",
		Long: `Add a moon, positioned relative to its planet. Flags go before the
planet identifier.`,
		Example: `  planetarium add-moon S1P1 0 1 1
  planetarium add-moon --id Phobos Mars -- -0.1 0 0`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, mass, err := parseBody(args[1:])
			if err != nil {
				return err
			}

			if id == "" {
				moon, err := a.client.AddMoon(args[0], x, y, mass)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", moon)
				return nil
			}

			moon, err := a.client.AddNamedMoon(args[0], id, x, y, mass)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", moon)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "identifier of the moon (generated when empty)")
	// negative coordinates after the first argument are not flags
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newRemovePlanetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-planet [id]",
		Short: "Remove a planet together with its moons",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planet, err := a.client.RemovePlanet(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed planet %s\n", planet.Identifier())
			return nil
		},
	}
}

func newRemoveMoonCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-moon [id]",
		Short: "Remove a moon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moon, err := a.client.RemoveMoon(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed moon %s\n", moon.Identifier())
			return nil
		},
	}
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		planets int
		moons   int
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Add random planets and moons",
		Long: `Add planets at random positions around the star, each with the same number of
random moons. The same seed always generates the same bodies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			generated, err := a.client.GenerateRandom(planets, moons, seed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d bodies\n", len(generated))
			fmt.Fprint(cmd.OutOrStdout(), a.client.Tree())
			return nil
		},
	}

	cmd.Flags().IntVar(&planets, "planets", 3, "number of planets to generate")
	cmd.Flags().IntVar(&moons, "moons", 2, "number of moons per planet")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove every planet and moon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All planets and moons have been removed!")
			return nil
		},
	}
}

// parseBody reads the x, y and mass arguments of the add commands
func parseBody(args []string) (float64, float64, int64, error) {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid x coordinate %q", args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid y coordinate %q", args[1])
	}
	mass, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid mass %q", args[2])
	}
	return x, y, mass, nil
}
