package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"solarsim/internal/app"
	"solarsim/internal/config"
	"solarsim/internal/logger"
	"solarsim/internal/shutdown"
)

var (
	configFile     string
	stepHours      int
	durationDays   int
	integratorName string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "solarsim",
		Short: "N-body solar system simulator",
		RunE:  runGUI,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a stored preset without the GUI",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&stepHours, "step", 10, "simulation step in hours")
	runCmd.Flags().IntVar(&durationDays, "duration", 300, "simulation duration in days")
	runCmd.Flags().StringVar(&integratorName, "integrator", "", "integrator (rk4, euler)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list stored presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	log := logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel))

	application, err := app.New(cfg, log)
	if err != nil {
		return err
	}

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register(application)
	shutdownManager.Listen()

	return application.Run()
}
