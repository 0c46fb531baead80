package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pders01/poddeck/internal/catalog"
	"github.com/pders01/poddeck/internal/config"
	"github.com/pders01/poddeck/internal/controller"
	"github.com/pders01/poddeck/internal/debuglog"
	"github.com/pders01/poddeck/internal/search"
	"github.com/pders01/poddeck/internal/tui"
)

// Version is set at build time.
var Version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		dataPath   string
		quiet      bool
	)

	rootCmd := &cobra.Command{
		Use:           "poddeck",
		Short:         "Browse a podcast catalog in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(configPath, dataPath, quiet)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&dataPath, "data", "", "Catalog TOML file (overrides the built-in sample)")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Skip the startup banner")

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("poddeck %s\n", Version)
			fmt.Println("Podcast catalog browser")
		},
	}
}

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Generate a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolving home directory: %w", err)
			}
			path := home + "/.config/poddeck/config.toml"
			if err := config.GenerateDefaultConfig(path); err != nil {
				return fmt.Errorf("generating config: %w", err)
			}
			fmt.Printf("Generated default configuration at: %s\n", path)
			return nil
		},
	})

	return configCmd
}

func runBrowser(configPath, dataPath string, quiet bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := debuglog.Setup(debuglog.ParseLogLevel(cfg.Log.Level), cfg.Log.Path); err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer debuglog.Close()

	if dataPath != "" {
		cfg.Catalog.Path = dataPath
	}

	var cat *catalog.Catalog
	if cfg.Catalog.Path != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.Path)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	matcher, err := search.NewMatcher(cfg.Search.Engine, cat)
	if err != nil {
		return fmt.Errorf("configuring search: %w", err)
	}

	ctrl := controller.New(cat, controller.WithMatcher(matcher))
	defer ctrl.Close()

	if !quiet {
		tui.ShowBanner(Version)
	}

	app := tui.NewApp(ctrl, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
