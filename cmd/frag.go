package cmd

import (
	"github.com/spf13/cobra"
)

var fragCmd = &cobra.Command{
	Use:   "frag [file]...",
	Short: "Analyze file fragmentation",
	Long: `Map each file's extents and report fragmentation metrics: extent
count, average/largest/smallest extent size, the share of extent
boundaries that are physical discontinuities, and unmapped (sparse)
bytes.

Examples:
  # Fragmentation summary for a database file
  go-fiemap frag /var/lib/db/huge.ibd

  # Machine-readable report
  go-fiemap frag -o json /var/log/journal/*`,

	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMap(args, true); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(fragCmd)
}
