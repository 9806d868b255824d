// Package ffmpeg locates the ffmpeg executable used to render subtitles
// into video.
package ffmpeg

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
)

// PathEnv overrides the ffmpeg executable lookup.
const PathEnv = "ASSPARSER_FFMPEG_PATH"

// ErrNotFound is returned when no ffmpeg executable is available.
var ErrNotFound = errors.New("ffmpeg not found")

var (
	locateOnce sync.Once
	locatePath string
	locateErr  error
)

// Path returns the ffmpeg executable, resolved once per process.
func Path() (string, error) {
	locateOnce.Do(func() {
		locatePath, locateErr = locate(os.Getenv(PathEnv), exec.LookPath)
	})
	return locatePath, locateErr
}

func locate(
	override string,
	lookPath func(string) (string, error),
) (string, error) {
	if override != "" {
		info, err := os.Stat(override)
		if err != nil {
			return "", fmt.Errorf("%s=%s: %w", PathEnv, override, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("%s=%s: is a directory", PathEnv, override)
		}
		return override, nil
	}

	found, err := lookPath("ffmpeg")
	if err != nil {
		return "", fmt.Errorf(
			"%w: install ffmpeg or set %s",
			ErrNotFound,
			PathEnv,
		)
	}
	return found, nil
}
