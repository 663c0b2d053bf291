package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-fiemap/pkg/app"
)

var (
	// Global output flags only
	verbose      bool
	quiet        bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "go-fiemap",
	Short: "File extent layout and fragmentation inspector",
	Long: `go-fiemap is a read-only command-line tool for inspecting the physical
layout of files on Linux filesystems through the FS_IOC_FIEMAP ioctl.

It reports every extent backing a file (logical offset, physical offset,
length, flags) and handles filesystems such as XFS that return extents
one allocation group at a time, so large fragmented files are always
reported completely.

Commands:
  map     Print the extent table of one or more files
  frag    Analyze file fragmentation`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Only global output control flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (table, json, yaml)")
}

// newAppContext builds the application context from the global flags.
func newAppContext(format string) *app.Context {
	ctx := app.NewContext()
	ctx.Verbose = verbose
	ctx.Quiet = quiet
	ctx.OutputFormat = format
	ctx.ConfigureLogging()
	return ctx
}
