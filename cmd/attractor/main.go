package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	logLevel string
	logFile  string
	logger   = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "attractor"})
	logSink  io.Closer
)

// main registers every command and launches the window when no subcommand
// is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root, _ := newInteractiveCmd("attractor", "animated Lorenz attractor", guiBackend)
	root.Use = "attractor"
	root.Long = "attractor animates a swarm of points through the Lorenz system.\n" +
		"Without a subcommand it opens the graphical window."
	root.SilenceUsage = true
	root.PersistentPreRunE = setupLogger

	root.PersistentFlags().StringVar(&dataDir, "data", ".attractor", "data directory for saved runs")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	guiCmd, _ := newInteractiveCmd("gui", "open the raylib window", guiBackend)
	tuiCmd, _ := newInteractiveCmd("tui", "draw the attractor in the terminal", tuiBackend)

	root.AddCommand(
		guiCmd,
		tuiCmd,
		newRunCmd(),
		newScenarioCmd(),
		newListCmd(),
		newPlotCmd(),
		newPhaseCmd(),
		newAnalyzeCmd(),
		newBifurcateCmd(),
		newExportJSONCmd(),
		newExportSVGCmd(),
		newSnapshotCmd(),
		newPresetsCmd(),
		newConfigCmd(),
	)
	return root
}

func setupLogger(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger.SetLevel(level)

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		logger.SetOutput(f)
		logSink = f
	}
	return nil
}
