package usecase_test

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/m-mizutani/gt"
)

type zipEntry struct {
	name    string
	content string
}

// buildZip creates an archive with entries in the given order. Names ending with "/" are
// stored as directories.
func buildZip(t *testing.T, entries ...zipEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		fw := gt.R1(w.Create(e.name)).NoError(t)
		if e.content != "" {
			gt.R1(fw.Write([]byte(e.content))).NoError(t)
		}
	}
	gt.NoError(t, w.Close())
	return buf.Bytes()
}
