package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Urantij/ass-parser/internal/subtitle"
)

var newCmd = &cobra.Command{
	Use:   "new [output_file]",
	Short: "Create a new .ass file",
	Long: `Create a new .ass file from the configured script info and style.

The document holds a single dialogue line, filled from the flags.

Examples:
  assparser new subtitles.ass
  assparser new subtitles.ass --text "Hello Friend" --end 0:00:01.00
  assparser new subtitles.ass --primary-color yellow`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().String("text", "", "Text of the dialogue line")
	newCmd.Flags().String("start", "0:00:00.00", "Start time of the dialogue line")
	newCmd.Flags().String("end", "0:00:00.00", "End time of the dialogue line")
	newCmd.Flags().
		String("primary-color", "", "Style primary color (#rrggbb or name), overrides the config")
}

func runNew(cmd *cobra.Command, args []string) error {
	outputPath := args[0]

	text, _ := cmd.Flags().GetString("text")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	primary, _ := cmd.Flags().GetString("primary-color")

	doc, err := documentFromConfig()
	if err != nil {
		return err
	}

	if primary != "" {
		color, err := subtitle.ParseHexColor(primary)
		if err != nil {
			return err
		}
		doc.Style.SetPrimaryColour(subtitle.StyleColor(color))
	}

	dialogue := subtitle.NewDialogue().
		Style(doc.Style.Name.String()).
		Start(start).
		End(end)
	if text != "" {
		dialogue.Text(text)
	}
	if _, err := doc.Events.ReplaceFirst(dialogue.Build()); err != nil {
		return err
	}

	logger.Infow("Writing new subtitle file",
		"output", outputPath,
		"style", doc.Style.Name.String(),
	)
	if err := doc.WriteFile(outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitle file created: %s\n", absOutput)
	return nil
}

// document with config-derived script info and style and one blank dialogue
func documentFromConfig() (*subtitle.Document, error) {
	style, err := cfg.StyleRecord()
	if err != nil {
		return nil, fmt.Errorf("invalid style config: %w", err)
	}

	doc := subtitle.New()
	doc.ScriptInfo.Set(cfg.ScriptInfoRecord())
	doc.Style.Set(style)
	return doc, nil
}
