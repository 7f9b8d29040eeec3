// Package reader decodes the bytes of a chart file into text. Charts are
// commonly Shift-JIS, sometimes EUC-KR, and the newer ones UTF-8.
package reader

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type Charset string

const (
	UTF8     Charset = "UTF-8"
	ShiftJIS Charset = "Shift_JIS"
	EUCKR    Charset = "EUC-KR"
)

var forcedByName = []struct {
	pattern *regexp.Regexp
	charset Charset
}{
	{regexp.MustCompile(`(?i)\.sjis\.\w+$`), ShiftJIS},
	{regexp.MustCompile(`(?i)\.euc_kr\.\w+$`), EUCKR},
	{regexp.MustCompile(`(?i)\.utf8\.\w+$`), UTF8},
}

// CharsetFromFilename returns the charset forced by a name such as
// "song.sjis.bms".
func CharsetFromFilename(filename string) (Charset, bool) {
	for _, f := range forcedByName {
		if f.pattern.MatchString(filename) {
			return f.charset, true
		}
	}
	return "", false
}

// Detect guesses the charset, UTF-8 when the bytes are valid as such and
// Shift-JIS otherwise.
func Detect(data []byte) Charset {
	if utf8.Valid(data) {
		return UTF8
	}
	return ShiftJIS
}

func decoder(charset Charset) encoding.Encoding {
	switch charset {
	case ShiftJIS:
		return japanese.ShiftJIS
	case EUCKR:
		return korean.EUCKR
	}
	return unicode.UTF8
}

// Read decodes data, with the charset forced by filename when it names
// one. A leading byte order mark is dropped.
func Read(data []byte, filename string) (string, error) {
	charset, ok := CharsetFromFilename(filename)
	if !ok {
		charset = Detect(data)
	}
	text, _, err := transform.Bytes(decoder(charset).NewDecoder(), data)
	if nil != err {
		return "", errors.Wrapf(err, "unable to decode %v as %v", filename, charset)
	}
	return strings.TrimPrefix(string(text), "\uFEFF"), nil
}
