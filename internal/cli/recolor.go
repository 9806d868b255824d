package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Urantij/ass-parser/internal/subtitle"
)

var recolorCmd = &cobra.Command{
	Use:   "recolor [ass_file]",
	Short: "Change the colors of an .ass file",
	Long: `Change the style primary color and/or the color of dialogue lines.

A dialogue color is written as a leading {\c&H..&} override tag. By default
an existing leading color tag is replaced; --prepend stacks a new tag in
front of it instead.

Examples:
  assparser recolor subtitles.ass --primary-color "#ffcc00"
  assparser recolor subtitles.ass --color red --index 3 -o out.ass`,
	Args: cobra.ExactArgs(1),
	RunE: runRecolor,
}

func init() {
	rootCmd.AddCommand(recolorCmd)

	recolorCmd.Flags().
		String("primary-color", "", "Style primary color (#rrggbb or name)")
	recolorCmd.Flags().
		String("color", "", "Dialogue color (#rrggbb or name)")
	recolorCmd.Flags().
		Int("index", -1, "Only recolor the dialogue at this index (-1 for all)")
	recolorCmd.Flags().
		Bool("prepend", false, "Prepend the color tag instead of replacing it")
}

func runRecolor(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	primary, _ := cmd.Flags().GetString("primary-color")
	colorFlag, _ := cmd.Flags().GetString("color")
	index, _ := cmd.Flags().GetInt("index")
	prepend, _ := cmd.Flags().GetBool("prepend")
	outputPath, _ := cmd.Flags().GetString("output")

	if primary == "" && colorFlag == "" {
		return fmt.Errorf("nothing to do: set --primary-color and/or --color")
	}
	if outputPath == "" {
		outputPath = inputPath
	}

	doc, err := subtitle.ReadFile(inputPath)
	if err != nil {
		return err
	}

	if primary != "" {
		color, err := subtitle.ParseHexColor(primary)
		if err != nil {
			return err
		}
		doc.Style.SetPrimaryColour(subtitle.StyleColor(color))
		logger.Debugw("Set style primary color",
			"style", doc.Style.Name.String(),
			"color", subtitle.StyleColor(color),
		)
	}

	recolored := 0
	if colorFlag != "" {
		color, err := subtitle.ParseHexColor(colorFlag)
		if err != nil {
			return err
		}
		recolored, err = recolorDialogues(&doc.Events, color, index, prepend)
		if err != nil {
			return err
		}
	}

	logger.Infow("Writing recolored subtitles",
		"input", inputPath,
		"output", outputPath,
		"dialogues", recolored,
	)
	if err := doc.WriteFile(outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles recolored successfully: %s\n", absOutput)
	return nil
}

// recolors the dialogue at index, or every dialogue when index is negative,
// and reports how many were changed
func recolorDialogues(
	events *subtitle.Events,
	color subtitle.RGB,
	index int,
	prepend bool,
) (int, error) {
	apply := func(d subtitle.Dialogue) subtitle.Dialogue {
		b := d.Edit()
		if prepend {
			b.PrependColor(color)
		} else {
			b.SetColor(color)
		}
		return b.Build()
	}

	if index >= 0 {
		d, ok := events.At(index)
		if !ok {
			return 0, &subtitle.IndexError{Index: index, Len: events.Len()}
		}
		if _, err := events.ReplaceAt(index, apply(d)); err != nil {
			return 0, err
		}
		return 1, nil
	}

	for i, d := range events.Dialogues() {
		if _, err := events.ReplaceAt(i, apply(d)); err != nil {
			return i, err
		}
	}
	return events.Len(), nil
}
