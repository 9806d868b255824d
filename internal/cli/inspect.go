package cli

import (
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/spf13/cobra"

	"github.com/Urantij/ass-parser/internal/subtitle"
)

var overrideBlock = regexp.MustCompile(`\{[^}]*\}`)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "Show the contents of a subtitle file",
	Long: `Show the script info, style and dialogue lines of a subtitle file.

SubRip files are shown as they would be converted to .ass.

Examples:
  assparser inspect subtitles.ass
  assparser inspect movie.srt --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().
		Int("limit", 20, "Maximum number of dialogue lines to show (0 for all)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	limit, _ := cmd.Flags().GetInt("limit")

	if subtitle.GetFormatFromExtension(path) == "" {
		return fmt.Errorf("unsupported subtitle format: %s", path)
	}

	logger.Debugw("Inspecting subtitle file", "path", path)

	doc, err := subtitle.Open(path, subtitle.ImportOptions{
		ConvertTimestamps: true,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	fmt.Fprintln(out, renderTable(
		[]string{"Script Info", "Value"},
		fieldRows(doc.ScriptInfo.Fields()),
		nil,
		colorize,
	))
	fmt.Fprintln(out, renderTable(
		[]string{"Style", "Value"},
		fieldRows(doc.Style.Fields()),
		nil,
		colorize,
	))
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Start", "End", "Style", "Color", "Text"},
		dialogueRows(&doc.Events, limit),
		[]columnAlignment{alignRight},
		colorize,
	))

	fmt.Fprintf(out, "Dialogues: %d\n", doc.Events.Len())
	if lang, ok := detectLanguage(&doc.Events); ok {
		fmt.Fprintf(out, "Language:  %s\n", lang)
	}
	return nil
}

func fieldRows(fields iter.Seq2[string, subtitle.Field]) [][]string {
	var rows [][]string
	for name, field := range fields {
		value, ok := field.Get()
		if !ok {
			value = "(absent)"
		}
		rows = append(rows, []string{name, value})
	}
	return rows
}

func dialogueRows(events *subtitle.Events, limit int) [][]string {
	var rows [][]string
	for i, d := range events.All() {
		if limit > 0 && i >= limit {
			break
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			d.Start().String(),
			d.End().String(),
			d.Style().String(),
			d.Color().String(),
			plainText(d.Text().String()),
		})
	}
	return rows
}

// dialogue text without override blocks and with ASS line breaks as spaces
func plainText(text string) string {
	text = overrideBlock.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, `\N`, " ")
	text = strings.ReplaceAll(text, `\n`, " ")
	return strings.TrimSpace(text)
}

func detectLanguage(events *subtitle.Events) (string, bool) {
	var sb strings.Builder
	for _, d := range events.All() {
		sb.WriteString(plainText(d.Text().String()))
		sb.WriteString(" ")
	}
	sample := strings.TrimSpace(sb.String())
	if sample == "" {
		return "", false
	}

	info := whatlanggo.Detect(sample)
	if !info.IsReliable() {
		return "", false
	}
	return fmt.Sprintf("%s (%s)", info.Lang.String(), info.Lang.Iso6391()), true
}
