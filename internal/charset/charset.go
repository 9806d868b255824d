// Package charset converts subtitle bytes of unknown encoding to UTF-8.
package charset

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// AnyToUTF8 returns data decoded as UTF-8. Valid UTF-8 input is returned
// unchanged apart from a leading byte order mark.
func AnyToUTF8(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}
	if utf8.Valid(data) {
		return bytes.TrimPrefix(data, utf8BOM), nil
	}

	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return nil, fmt.Errorf("failed to detect charset: %w", err)
	}

	encoding, err := ianaindex.IANA.Encoding(result.Charset)
	if err != nil || encoding == nil {
		encoding, err = ianaindex.MIB.Encoding(result.Charset)
	}
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %s: %w", result.Charset, err)
	}
	if encoding == nil {
		return nil, fmt.Errorf("unsupported charset %s", result.Charset)
	}

	transformed, err := io.ReadAll(
		transform.NewReader(bytes.NewReader(data), encoding.NewDecoder()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", result.Charset, err)
	}

	return bytes.TrimPrefix(transformed, utf8BOM), nil
}
