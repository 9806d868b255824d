package cli

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Urantij/ass-parser/internal/subtitle"
)

var convertCmd = &cobra.Command{
	Use:   "convert [srt_file]",
	Short: "Convert a SubRip file to Advanced SubStation Alpha",
	Long: `Convert a SubRip (.srt) file to an .ass file.

Every SubRip block becomes one dialogue line using the configured style.
Timestamps are rewritten to the ASS form unless --raw-timestamps is set.
Lines can be given one color (--color) or a random color each (--random-colors).

Examples:
  assparser convert movie.srt
  assparser convert movie.srt -o movie.ass --color yellow
  assparser convert song.srt --random-colors --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		String("color", "", "Color attached to every line (#rrggbb or name)")
	convertCmd.Flags().
		Bool("random-colors", false, "Attach a random color to every line")
	convertCmd.Flags().
		Uint64("seed", 0, "Seed for --random-colors (0 picks one from the clock)")
	convertCmd.Flags().
		Bool("raw-timestamps", false, "Copy SubRip timestamps verbatim")
}

func runConvert(cmd *cobra.Command, args []string) error {
	srtPath := args[0]

	colorFlag, _ := cmd.Flags().GetString("color")
	randomColors, _ := cmd.Flags().GetBool("random-colors")
	seed, _ := cmd.Flags().GetUint64("seed")
	rawTimestamps, _ := cmd.Flags().GetBool("raw-timestamps")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(srtPath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", srtPath)
	}
	if subtitle.GetFormatFromExtension(srtPath) != subtitle.FormatSRT {
		return fmt.Errorf(
			"unsupported subtitle format %q: use .srt",
			filepath.Ext(srtPath),
		)
	}

	if !cmd.Flags().Changed("color") {
		colorFlag = cfg.Convert.Color
	}
	if !cmd.Flags().Changed("random-colors") {
		randomColors = cfg.Convert.RandomColors
	}
	if !cmd.Flags().Changed("seed") {
		seed = cfg.Convert.Seed
	}
	convertTimestamps := cfg.Convert.ConvertTimestamps
	if cmd.Flags().Changed("raw-timestamps") {
		convertTimestamps = !rawTimestamps
	}

	if colorFlag != "" && randomColors {
		return fmt.Errorf("--color and --random-colors cannot be combined")
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(srtPath, filepath.Ext(srtPath)) +
			subtitle.GetExtensionForFormat(subtitle.FormatASS)
	}

	colorize, err := lineColorizer(colorFlag, randomColors, seed)
	if err != nil {
		return err
	}

	logger.Infow("Converting subtitles",
		"input", srtPath,
		"output", outputPath,
		"convert_timestamps", convertTimestamps,
		"color", colorFlag,
		"random_colors", randomColors,
	)

	srt, err := subtitle.ReadSRTFile(srtPath)
	if err != nil {
		return err
	}
	if srt.Len() == 0 {
		return fmt.Errorf("subtitle file contains no entries")
	}

	doc, err := documentFromConfig()
	if err != nil {
		return err
	}
	doc.Events = subtitle.Events{}

	if err := doc.ImportSRT(srt, subtitle.ImportOptions{
		ConvertTimestamps: convertTimestamps,
		Style:             doc.Style.Name.String(),
		Color:             colorize,
	}); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	logger.Debugw("Imported SubRip entries", "entries", srt.Len())

	if err := doc.WriteFile(outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Subtitles converted successfully: %s\n", absOutput)
	fmt.Fprintf(out, "  Dialogues: %d\n", doc.Events.Len())
	return nil
}

func lineColorizer(
	colorFlag string,
	randomColors bool,
	seed uint64,
) (func(int, subtitle.SRTEntry) (subtitle.RGB, bool), error) {
	switch {
	case colorFlag != "":
		color, err := subtitle.ParseHexColor(colorFlag)
		if err != nil {
			return nil, err
		}
		return func(int, subtitle.SRTEntry) (subtitle.RGB, bool) {
			return color, true
		}, nil
	case randomColors:
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng := rand.New(rand.NewPCG(seed, seed>>32))
		return func(int, subtitle.SRTEntry) (subtitle.RGB, bool) {
			return subtitle.RandomColor(rng), true
		}, nil
	default:
		return nil, nil
	}
}
