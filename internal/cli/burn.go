package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Urantij/ass-parser/internal/ffmpeg"
	"github.com/Urantij/ass-parser/internal/subtitle"
	"github.com/Urantij/ass-parser/internal/video"
)

var burnCmd = &cobra.Command{
	Use:   "burn [video_file] [subtitle_file]",
	Short: "Render subtitles into a video",
	Long: `Render an .ass (or .srt) subtitle file into the frames of a video.

SubRip input is converted to .ass with the configured style first.
ffmpeg is looked up on PATH, or taken from ASSPARSER_FFMPEG_PATH.

Examples:
  assparser burn movie.mp4 movie.ass
  assparser burn movie.mp4 movie.srt -o movie_subbed.mp4 --crf 20`,
	Args: cobra.ExactArgs(2),
	RunE: runBurn,
}

func init() {
	rootCmd.AddCommand(burnCmd)

	burnCmd.Flags().String("fonts-dir", "", "Directory with fonts used by the style")
	burnCmd.Flags().String("codec", "", "Video codec (e.g., libx264)")
	burnCmd.Flags().Int("crf", 0, "Constant rate factor (0 for encoder default)")
}

func runBurn(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	subtitlePath := args[1]

	fontsDir, _ := cmd.Flags().GetString("fonts-dir")
	codec, _ := cmd.Flags().GetString("codec")
	crf, _ := cmd.Flags().GetInt("crf")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}
	if crf < 0 || crf > 51 {
		return fmt.Errorf("--crf must be between 0 and 51, got %d", crf)
	}

	if outputPath == "" {
		outputPath = burnOutputPath(videoPath)
	}

	ffmpegPath, err := ffmpeg.Path()
	if err != nil {
		return err
	}

	switch subtitle.GetFormatFromExtension(subtitlePath) {
	case subtitle.FormatASS:
	case subtitle.FormatSRT:
		tempDir, err := os.MkdirTemp("", "assparser-*")
		if err != nil {
			return fmt.Errorf("failed to create temp directory: %w", err)
		}
		defer func() {
			_ = os.RemoveAll(tempDir)
		}()

		converted, err := convertForBurn(subtitlePath, tempDir)
		if err != nil {
			return err
		}
		subtitlePath = converted
	default:
		return fmt.Errorf(
			"unsupported subtitle format %q: use .ass or .srt",
			filepath.Ext(subtitlePath),
		)
	}

	logger.Infow("Burning subtitles",
		"video", videoPath,
		"subtitles", subtitlePath,
		"output", outputPath,
		"ffmpeg", ffmpegPath,
	)

	processor := video.NewProcessor(ffmpegPath)
	if err := processor.BurnSubtitles(
		cmd.Context(),
		videoPath,
		subtitlePath,
		outputPath,
		video.BurnOptions{FontsDir: fontsDir, VideoCodec: codec, CRF: crf},
	); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles burned successfully: %s\n", absOutput)
	return nil
}

func burnOutputPath(videoPath string) string {
	ext := filepath.Ext(videoPath)
	return strings.TrimSuffix(videoPath, ext) + "_subbed" + ext
}

// converts a SubRip file into an .ass file under dir using the configured
// style and returns its path
func convertForBurn(srtPath, dir string) (string, error) {
	doc, err := documentFromConfig()
	if err != nil {
		return "", err
	}
	doc.Events = subtitle.Events{}

	srt, err := subtitle.ReadSRTFile(srtPath)
	if err != nil {
		return "", err
	}
	if err := doc.ImportSRT(srt, subtitle.ImportOptions{
		ConvertTimestamps: true,
		Style:             doc.Style.Name.String(),
	}); err != nil {
		return "", fmt.Errorf("conversion failed: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(srtPath), filepath.Ext(srtPath))
	assPath := filepath.Join(dir, base+subtitle.GetExtensionForFormat(subtitle.FormatASS))
	if err := doc.WriteFile(assPath); err != nil {
		return "", err
	}
	return assPath, nil
}
