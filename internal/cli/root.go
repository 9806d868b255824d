package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Urantij/ass-parser/internal/config"
	"github.com/Urantij/ass-parser/internal/logging"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "assparser",
	Short: "Read, write and convert Advanced SubStation Alpha subtitles",
	Long: `assparser reads and writes Advanced SubStation Alpha (.ass) subtitle files.

It can create new documents, convert SubRip (.srt) files to .ass, recolor
styles and dialogue lines, and burn subtitles into a video with ffmpeg.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, resolved, exists, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded

		logger, err = logging.NewWithLevel(cfg.Logging.Level, verbose)
		if err != nil {
			return err
		}
		logger.Debugw("Loaded configuration",
			"path", resolved,
			"exists", exists,
		)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default ~/.config/assparser/config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
