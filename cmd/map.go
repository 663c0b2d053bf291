package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-fiemap/internal/config"
	"github.com/deploymenttheory/go-fiemap/pkg/app/mapfile"
)

var (
	// Retrieval options (map command only)
	mapMaxExtents uint32
	mapNoSync     bool
	mapFlagNames  bool
)

var mapCmd = &cobra.Command{
	Use:   "map [file]...",
	Short: "Print the extent table of one or more files",
	Long: `Print the physical extent layout of each file.

Each extent is reported as a fixed-width hexadecimal row: index, logical
offset, physical offset, length, and flags. Files that cannot be opened
or mapped are reported to the error stream and skipped; the rest of the
batch is still processed.

Examples:
  # Map a single file
  go-fiemap map /var/lib/db/huge.ibd

  # Map several files with flag names spelled out
  go-fiemap map --flag-names *.img

  # Smaller query chunks, JSON output
  go-fiemap map --max-extents 256 -o json bigfile`,

	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMap(args, false); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)

	mapCmd.Flags().Uint32Var(&mapMaxExtents, "max-extents", 0, "extent capacity per query chunk (default from config)")
	mapCmd.Flags().BoolVar(&mapNoSync, "no-sync", false, "do not flush pending writes before mapping")
	mapCmd.Flags().BoolVar(&mapFlagNames, "flag-names", false, "render extent flags as names")
}

func runMap(paths []string, analyze bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	maxExtents := cfg.MaxExtentsPerChunk
	if mapMaxExtents != 0 {
		maxExtents = mapMaxExtents
	}
	sync := cfg.SyncBeforeMap
	if mapNoSync {
		sync = false
	}
	format := cfg.OutputFormat
	if outputFormat != "" {
		format = outputFormat
	}

	ctx := newAppContext(format)

	req := &mapfile.Request{
		Paths:              paths,
		MaxExtentsPerChunk: maxExtents,
		SyncBeforeMap:      sync,
		ShowFlagNames:      mapFlagNames || cfg.ShowFlagNames,
		Analyze:            analyze,
	}

	response, err := mapfile.Handle(ctx, req)
	if err != nil {
		return err
	}

	if ctx.Verbose {
		ctx.Log(mapfile.FormatSummary(response))
	}

	return mapfile.FormatOutput(response, format)
}
