package polysect

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestWritePlot(t *testing.T) {
	t.Run("With root marker", func(t *testing.T) {
		var buf bytes.Buffer

		root := 2.0
		err := WritePlot(&buf, Polynomial{1, 0, -4}, 0, 3, &root)

		assert.Nil(t, err, "WritePlot returned an error")
		assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "Output is not a PNG")
	})
	t.Run("Without root marker", func(t *testing.T) {
		var buf bytes.Buffer

		err := WritePlot(&buf, Polynomial{1, 1}, 0, 5, nil)

		assert.Nil(t, err, "WritePlot returned an error")
		assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "Output is not a PNG")
	})
}
