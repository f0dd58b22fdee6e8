// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package console_test

import (
	"io"
	"strings"
	"testing"

	"code.hybscloud.com/free/adventure/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderLines(t *testing.T) {
	r := console.NewReader(strings.NewReader("a\r\nb\nlast"))
	for _, want := range []string{"a", "b", "last"} {
		got, err := r.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}
