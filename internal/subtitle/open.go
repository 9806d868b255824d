package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Urantij/ass-parser/internal/charset"
)

// Open loads path as a document. A .ass file is parsed; a .srt file is
// imported into a default document whose dialogue table holds one entry per
// SubRip block.
func Open(path string, opts ImportOptions) (*Document, error) {
	switch GetFormatFromExtension(path) {
	case FormatASS:
		return ReadFile(path)
	case FormatSRT:
		srt, err := ReadSRTFile(path)
		if err != nil {
			return nil, err
		}
		doc := Default()
		doc.Events = Events{}
		if err := doc.ImportSRT(srt, opts); err != nil {
			return nil, fmt.Errorf("failed to import SRT file: %w", err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf(
			"unsupported subtitle format: %s",
			strings.ToLower(filepath.Ext(path)),
		)
	}
}

// ReadFile reads and parses an .ass file. A missing file yields an error
// matching fs.ErrNotExist.
func ReadFile(path string) (*Document, error) {
	text, err := readText(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ASS file: %w", err)
	}
	doc, err := Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// ReadSRTFile reads and parses a SubRip file.
func ReadSRTFile(path string) (*SRT, error) {
	text, err := readText(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}
	srt, err := ParseSRT(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return srt, nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	data, err = charset.AnyToUTF8(data)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
