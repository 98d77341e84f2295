package safe_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/m-mizutani/relsum/pkg/utils/safe"
)

func TestClose(t *testing.T) {
	t.Run("close valid reader", func(t *testing.T) {
		reader := io.NopCloser(bytes.NewReader([]byte("test")))
		safe.Close(reader)
	})

	t.Run("close nil reader", func(t *testing.T) {
		safe.Close(nil)
	})

	t.Run("close reader that returns error", func(t *testing.T) {
		safe.Close(&errorCloser{})
	})

	t.Run("close reader that returns EOF", func(t *testing.T) {
		safe.Close(&eofCloser{})
	})
}

type errorCloser struct{}

func (e *errorCloser) Close() error {
	return io.ErrUnexpectedEOF
}

type eofCloser struct{}

func (e *eofCloser) Close() error {
	return io.EOF
}
