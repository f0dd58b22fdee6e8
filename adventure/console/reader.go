// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package console

import (
	"bufio"
	"io"
	"strings"
)

// LineReader is a source of input lines.
//
// ReadLine returns the next line without its line terminator. A source that
// cannot make progress yet returns iox.ErrWouldBlock; the interpreter then
// retries later without repeating output. Any other error is fatal.
type LineReader interface {
	ReadLine() (string, error)
}

// reader is a blocking LineReader over an io.Reader.
type reader struct {
	br *bufio.Reader
}

// NewReader returns a blocking LineReader reading lines from r.
// A final line without terminator is returned before io.EOF.
func NewReader(r io.Reader) LineReader {
	return &reader{br: bufio.NewReader(r)}
}

func (r *reader) ReadLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
