package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kentta",
	Short: "Kenttä - pesäpallo field diagrams and measurements",
	Long: `Kenttä renders parametric pesäpallo (Finnish baseball) field diagrams:
an interactive viewer with draggable home-path handles, hitting-angle
readout and measurement tooltips, plus file export.

Examples:
  kentta ui                               # Launch the interactive diagram
  kentta ui --view angle --profile women  # Hitting-angle view, women's field
  kentta export svg -o field.svg          # Export the blueprint as SVG
  kentta field list                       # List known field profiles
  kentta field check juniors.field        # Validate a custom profile file`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
