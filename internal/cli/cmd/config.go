package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tempo/internal/cli/styles"
	"github.com/bnema/tempo/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the config file location and the effective configuration.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config, database and log file paths",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, the config file and TEMPO_*
environment variables have been applied.`,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	logFile := a.Config().Logging.File
	if logFile == "" {
		logFile = "stderr"
	}

	fmt.Println(a.Theme.RenderKeyValue(styles.IconConfig, "Config  ", a.Manager.GetConfigFile()))
	fmt.Println(a.Theme.RenderKeyValue(styles.IconDatabase, "Database", a.Config().Database.Path))
	fmt.Println(a.Theme.RenderKeyValue(styles.IconFolder, "Log     ", logFile))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	return config.Encode(os.Stdout, a.Config())
}
