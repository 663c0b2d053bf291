package mapfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-fiemap/pkg/app"
)

// FormatOutput formats mapping results according to output format
func FormatOutput(response *Response, format string) error {
	return FormatOutputTo(os.Stdout, response, format)
}

// FormatOutputTo writes formatted results to w
func FormatOutputTo(w io.Writer, response *Response, format string) error {
	switch format {
	case "json":
		return formatJSON(w, response)
	case "yaml":
		return formatYAML(w, response)
	case "table":
		return formatTable(w, response)
	default:
		return app.NewError(app.ErrCodeUnsupportedFormat,
			fmt.Sprintf("unsupported output format: %s", format), nil)
	}
}

// formatTable renders one fixed-width hexadecimal row per extent, in the
// layout filefrag-style tools use, followed by a per-file summary line.
func formatTable(w io.Writer, response *Response) error {
	for _, file := range response.Files {
		fmt.Fprintf(w, "File %s has %d extents:\n", file.Path, file.ExtentCount)
		fmt.Fprintf(w, "#\tLogical          Physical         Length           Flags\n")

		for _, e := range file.Extents {
			fmt.Fprintf(w, "%d:\t%-16.16x %-16.16x %-16.16x %-4.4x",
				e.Index, e.Logical, e.Physical, e.Length, e.Flags)
			if len(e.FlagNames) > 0 {
				fmt.Fprintf(w, " (%s)", strings.Join(e.FlagNames, ","))
			}
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "retrieved %d extents in %d chunks (%d seconds)\n",
			file.ExtentCount, file.Chunks, int64(file.MapTime.Seconds()))

		if file.Analysis != nil {
			fmt.Fprintf(w, "fragmentation: %.1f%% (%d extents, avg %.0f bytes, largest %d, smallest %d)\n",
				file.Analysis.FragmentationLevel,
				file.Analysis.ExtentCount,
				file.Analysis.AverageExtentSize,
				file.Analysis.LargestExtent,
				file.Analysis.SmallestExtent)
			if file.Analysis.SparseBytes > 0 {
				fmt.Fprintf(w, "sparse: %d bytes unmapped\n", file.Analysis.SparseBytes)
			}
		}
		fmt.Fprintln(w)
	}

	// Summary
	fmt.Fprintf(w, "Mapped %d file", len(response.Files))
	if len(response.Files) != 1 {
		fmt.Fprint(w, "s")
	}
	fmt.Fprintf(w, ", %d extents", response.TotalExtents)
	if len(response.Failures) > 0 {
		fmt.Fprintf(w, ", %d failed", len(response.Failures))
	}
	fmt.Fprintf(w, " in %v\n", response.TotalTime)

	return nil
}

// formatJSON formats results as JSON
func formatJSON(w io.Writer, response *Response) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// formatYAML formats results as YAML
func formatYAML(w io.Writer, response *Response) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(response)
}

// FormatSummary provides a brief summary for verbose output
func FormatSummary(response *Response) string {
	if len(response.Files) == 0 {
		return "No files mapped"
	}

	summary := fmt.Sprintf("Mapped %d file", len(response.Files))
	if len(response.Files) != 1 {
		summary += "s"
	}
	summary += fmt.Sprintf(" with %d extents", response.TotalExtents)
	if len(response.Failures) > 0 {
		summary += fmt.Sprintf(" (%d failed)", len(response.Failures))
	}
	summary += fmt.Sprintf(" in %v", response.TotalTime)
	return summary
}
