package video

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// holds options for burning subtitles into a video
type BurnOptions struct {
	// directory searched for fonts referenced by the style, optional
	FontsDir string
	// video codec for the re-encoded stream, ffmpeg picks one when empty
	VideoCodec string
	// x264/x265 constant rate factor, 0 leaves the encoder default
	CRF int
}

// renders subtitle files into video frames with ffmpeg's ass filter
type Processor struct {
	ffmpegPath string
}

func NewProcessor(ffmpegPath string) *Processor {
	return &Processor{ffmpegPath: ffmpegPath}
}

// writes videoPath with subtitlePath rendered on top to outputPath; audio
// is copied unchanged
func (p *Processor) BurnSubtitles(
	ctx context.Context,
	videoPath, subtitlePath, outputPath string,
	opts BurnOptions,
) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}
	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	args := burnArgs(videoPath, subtitlePath, outputPath, opts)
	cmd := exec.CommandContext(ctx, p.ffmpegPath, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf(
			"ffmpeg burn failed: %w: %s",
			err,
			lastLines(string(out), 5),
		)
	}

	return nil
}

func burnArgs(
	videoPath, subtitlePath, outputPath string,
	opts BurnOptions,
) []string {
	filter := "ass=" + escapeFilterValue(subtitlePath)
	if opts.FontsDir != "" {
		filter += ":fontsdir=" + escapeFilterValue(opts.FontsDir)
	}

	kwargs := ffmpeg.KwArgs{
		"vf":  filter,
		"c:a": "copy",
	}
	if opts.VideoCodec != "" {
		kwargs["c:v"] = opts.VideoCodec
	}
	if opts.CRF > 0 {
		kwargs["crf"] = opts.CRF
	}

	return ffmpeg.Input(videoPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		GetArgs()
}

// quotes a filter option value; ':' and '\' would otherwise be read as
// filtergraph syntax
func escapeFilterValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `:`, `\:`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return v
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
