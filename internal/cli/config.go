package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Urantij/ass-parser/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the assparser configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a sample configuration file",
	Long: `Write the default configuration to path, or to the default location
when no path is given. An existing file is left alone unless --force is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s (use --force)", path)
	}

	if err := config.CreateSample(path); err != nil {
		return err
	}

	absPath, _ := filepath.Abs(path)
	logger.Debugw("Wrote sample configuration", "path", absPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Config file written: %s\n", absPath)
	return nil
}
