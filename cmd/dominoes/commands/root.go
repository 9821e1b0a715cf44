package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/dominoes"
)

var (
	configPath    string
	scriptPath    string
	debug         bool
	screenshotDir string
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "dominoes",
		Short:        "Draw domino tiles that follow the mouse",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			app, err := dominoes.NewApp(cfg)
			if err != nil {
				return err
			}
			if scriptPath != "" {
				data, err := os.ReadFile(scriptPath)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				runner, err := dominoes.LoadTestScript(data)
				if err != nil {
					return err
				}
				app.SetTestRunner(runner)
			}
			return app.Run()
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "dominoes.yaml", "YAML config file (missing file means defaults)")
	root.Flags().StringVar(&scriptPath, "script", "", "JSON test script to play back")
	root.Flags().BoolVar(&debug, "debug", false, "log pointer events and render stats to stderr")
	root.Flags().StringVar(&screenshotDir, "screenshots", "", "directory for screenshots (overrides config)")

	root.AddCommand(configCmd())
	return root
}

// resolveConfig loads the config file and applies flags that were set.
func resolveConfig(cmd *cobra.Command) (dominoes.RunConfig, error) {
	cfg, err := dominoes.LoadRunConfig(configPath)
	if err != nil {
		return dominoes.RunConfig{}, err
	}
	if f := cmd.Flags().Lookup("debug"); f != nil && f.Changed {
		cfg.Debug = debug
	}
	if f := cmd.Flags().Lookup("screenshots"); f != nil && f.Changed {
		cfg.ScreenshotDir = screenshotDir
	}
	return cfg, nil
}
