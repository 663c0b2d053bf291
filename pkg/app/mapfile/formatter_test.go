package mapfile

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResponse() *Response {
	return &Response{
		Files: []FileReport{
			{
				ReportID: "6d1a3d5e-0000-0000-0000-000000000000",
				Path:     "/data/huge.bin",
				FileSize: 8192,
				Extents: []ExtentResult{
					{Index: 0, Logical: 0, Physical: 0x10000, Length: 4096, Flags: 0},
					{Index: 1, Logical: 4096, Physical: 0x90000, Length: 4096, Flags: 0x0001,
						FlagNames: []string{"last"}},
				},
				ExtentCount: 2,
				Chunks:      1,
				MapTime:     3 * time.Second,
			},
		},
		TotalExtents: 2,
		TotalTime:    3 * time.Second,
	}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatOutputTo(&buf, sampleResponse(), "table"))
	out := buf.String()

	assert.Contains(t, out, "File /data/huge.bin has 2 extents:")
	assert.Contains(t, out, "Logical          Physical         Length           Flags")
	// Fixed-width zero-padded hex columns.
	assert.Contains(t, out, "0:\t0000000000000000 0000000000010000 0000000000001000 0000")
	assert.Contains(t, out, "1:\t0000000000001000 0000000000090000 0000000000001000 0001 (last)")
	assert.Contains(t, out, "retrieved 2 extents in 1 chunks (3 seconds)")
	assert.Contains(t, out, "Mapped 1 file, 2 extents")
}

func TestFormatTableWithFailures(t *testing.T) {
	resp := sampleResponse()
	resp.Failures = []FileFailure{{Path: "/gone", Code: "OPEN_FAILURE", Error: "no such file"}}

	var buf bytes.Buffer
	require.NoError(t, FormatOutputTo(&buf, resp, "table"))

	assert.Contains(t, buf.String(), "1 failed")
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatOutputTo(&buf, sampleResponse(), "json"))

	var decoded Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Files, 1)
	assert.Equal(t, "/data/huge.bin", decoded.Files[0].Path)
	assert.Equal(t, uint64(0x90000), decoded.Files[0].Extents[1].Physical)
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatOutputTo(&buf, sampleResponse(), "yaml"))
	assert.Contains(t, buf.String(), "path: /data/huge.bin")
}

func TestFormatUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := FormatOutputTo(&buf, sampleResponse(), "xml")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unsupported output format"))
}

func TestFormatSummary(t *testing.T) {
	assert.Equal(t, "No files mapped", FormatSummary(&Response{}))

	summary := FormatSummary(sampleResponse())
	assert.Contains(t, summary, "Mapped 1 file")
	assert.Contains(t, summary, "2 extents")
}
