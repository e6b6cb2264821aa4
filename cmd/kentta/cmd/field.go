package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pesislab/kentta/pkg/field"
	"github.com/pesislab/kentta/pkg/fieldfile"
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Inspect field profiles",
	Long:  `Commands for listing, inspecting and validating field profiles.`,
}

var fieldListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered field profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range field.List() {
			fmt.Println(name)
		}
		return nil
	},
}

var fieldInfoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show a profile's dimensions and derived measurements",
	Args:  cobra.ExactArgs(1),
	RunE:  runFieldInfo,
}

var fieldCheckCmd = &cobra.Command{
	Use:   "check <file.field>",
	Short: "Validate a custom profile file",
	Long: `Parse a .field file, map every declared profile onto the field model
and run full validation, without registering anything.`,
	Args: cobra.ExactArgs(1),
	RunE: runFieldCheck,
}

func init() {
	rootCmd.AddCommand(fieldCmd)
	fieldCmd.AddCommand(fieldListCmd)
	fieldCmd.AddCommand(fieldInfoCmd)
	fieldCmd.AddCommand(fieldCheckCmd)
}

func runFieldInfo(cmd *cobra.Command, args []string) error {
	p, err := field.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Profile: %s\n", p.Name)
	fmt.Printf("  Home plate radius:      %.2f m\n", p.HomePlate.Radius)
	fmt.Printf("  Home line at:           %.2f m\n", p.HomePlate.CenterToHomeLine)
	fmt.Printf("  Sector angles:          %.1f° to %.1f°\n", p.BattingSector.LeftAngleDeg, p.BattingSector.RightAngleDeg)
	fmt.Printf("  Diagonal line length:   %.3f m\n", p.DiagonalLines.LengthFromHomeLine)
	fmt.Printf("  Back boundary:          %.1f m deep, %.1f m wide\n",
		p.BackBoundary.DistanceFromHomeLine, p.BackBoundary.Width)
	fmt.Printf("  Base radius:            %.2f m\n", p.BaseRadius)

	g, err := field.Calculate(p, field.EditablePoints{}, 1.0)
	if err != nil {
		return err
	}
	fmt.Println("Measurements:")
	keys := make([]string, 0, len(g.Measurements))
	for k := range g.Measurements {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-10s %8.3f m\n", k, g.Measurements[k])
	}
	return nil
}

func runFieldCheck(cmd *cobra.Command, args []string) error {
	profiles, err := fieldfile.LoadProfiles(args[0])
	if err != nil {
		return err
	}
	for _, p := range profiles {
		fmt.Printf("✓ %s\n", p.Name)
	}
	fmt.Printf("%d profile(s) valid\n", len(profiles))
	return nil
}

// registerProfileFile loads a .field file and adds its profiles to the
// registry for this run.
func registerProfileFile(path string) error {
	profiles, err := fieldfile.LoadProfiles(path)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		if err := field.Register(p); err != nil {
			return err
		}
	}
	return nil
}
