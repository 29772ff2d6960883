package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cosmossdk.io/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const (
	shellPrompt     = "planetarium> "
	shutdownTimeout = 5 * time.Second
)

func newShellCmd(a *app) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Edit the system interactively",
		Long: `Read commands from standard input, one per line, and run them against the
same system until "quit" or the end of the input. Every command of the CLI except
init and shell is available, for example:

  add-planet --id Earth 1 0 5
  add-moon --id Luna Earth 0 1 1
  path Luna S1

Flags of add-planet and add-moon go before the coordinates. A negative first
coordinate needs "--" in front of it: add-planet --id Mars -- -2 0.5 3

With --metrics-addr (or metrics.enabled in the config) the prometheus metrics of
the session are served on /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if metricsAddr == "" && a.config.Metrics.Enabled {
				metricsAddr = a.config.Metrics.Addr
			}
			if metricsAddr != "" {
				server := serveMetrics(metricsAddr, a.registry, a.logger)
				defer func() {
					ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
					defer cancel()
					if err := server.Shutdown(ctx); err != nil {
						a.logger.Error("failed to stop metrics server", "err", err)
					}
				}()
			}

			return runShell(cmd, a)
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	return cmd
}

func runShell(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Welcome to %s %s\n", appName, version)
	fmt.Fprintln(out, `Type "help" for the list of commands, "quit" to leave.`)
	fmt.Fprintln(out, `Put "--" before a negative first coordinate: add-planet -- -2 0 3`)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, shellPrompt)
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			break
		}

		line := newShellRoot(a)
		line.SetArgs(fields)
		line.SetIn(cmd.InOrStdin())
		line.SetOut(out)
		line.SetErr(cmd.ErrOrStderr())
		if err := line.Execute(); err != nil {
			reportError(out, err)
		}
	}
	fmt.Fprintln(out)

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// newShellRoot builds a fresh command tree for one shell line so flag values do
// not leak from one line to the next.
func newShellRoot(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	addSystemCommands(root, a)
	return root
}

func serveMetrics(addr string, registry *prometheus.Registry, logger log.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: shutdownTimeout,
	}

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", addr, "err", err)
		}
	}()

	return server
}
