package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pesislab/kentta/pkg/export"
	"github.com/pesislab/kentta/pkg/field"
	"github.com/pesislab/kentta/pkg/render"
)

var (
	exportOut         string
	exportProfile     string
	exportProfileFile string
	exportTheme       string
	exportWidth       int
	exportHeight      int
	exportSupersample int
	exportBare        bool
)

var exportCmd = &cobra.Command{
	Use:   "export <svg|png|webp>",
	Short: "Export the field diagram to a file",
	Long: `Render the field diagram of a profile into a file.

Formats:
  svg    Vector document, good for print and further editing
  png    Supersampled raster
  webp   Supersampled raster, WebP container

Examples:
  kentta export svg -o field.svg --profile women
  kentta export png -o field.png --width 2000 --theme contrast
  kentta export webp -o field.webp --bare`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (required)")
	exportCmd.Flags().StringVar(&exportProfile, "profile", "men", "field profile name")
	exportCmd.Flags().StringVar(&exportProfileFile, "profile-file", "", "register custom profiles from a .field file")
	exportCmd.Flags().StringVar(&exportTheme, "theme", "classic", "color theme: classic, blueprint, dark or contrast")
	exportCmd.Flags().IntVar(&exportWidth, "width", 1000, "output width in pixels")
	exportCmd.Flags().IntVar(&exportHeight, "height", 1400, "output height in pixels")
	exportCmd.Flags().IntVar(&exportSupersample, "supersample", 2, "raster supersampling factor")
	exportCmd.Flags().BoolVar(&exportBare, "bare", false, "draw boundary and bases only, no labels or arcs")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format := args[0]
	switch format {
	case "svg", "png", "webp":
	default:
		return fmt.Errorf("unknown format %q (want svg, png or webp)", format)
	}
	if exportWidth < 1 || exportHeight < 1 {
		return fmt.Errorf("width and height must be positive")
	}
	if exportSupersample < 1 || exportSupersample > 8 {
		return fmt.Errorf("supersample must be between 1 and 8")
	}
	if exportProfileFile != "" {
		if err := registerProfileFile(exportProfileFile); err != nil {
			return err
		}
	}
	theme, err := parseTheme(exportTheme)
	if err != nil {
		return err
	}
	render.SetTheme(theme)

	profile, err := field.Get(exportProfile)
	if err != nil {
		return err
	}

	dims := render.CalculateCanvasDimensions(profile, exportWidth, exportHeight)
	geometry, err := field.Calculate(profile, field.EditablePoints{}, dims.Scale)
	if err != nil {
		return err
	}

	var config *render.LayerConfig
	if exportBare {
		config = render.NewLayerConfig()
		config.ShowOnly(render.LayerBoundary, render.LayerBases, render.LayerBasePaths, render.LayerHomePath)
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "svg":
		doc, err := export.SVG(profile, geometry, dims, config)
		if err != nil {
			return err
		}
		if _, err := f.WriteString(doc); err != nil {
			return err
		}
	default:
		img, err := export.Raster(profile, geometry, dims, config, exportSupersample)
		if err != nil {
			return err
		}
		if format == "png" {
			err = export.EncodePNG(f, img)
		} else {
			err = export.EncodeWebP(f, img)
		}
		if err != nil {
			return err
		}
	}

	if verbose {
		fmt.Printf("Wrote %s (%dx%d, %s profile)\n", exportOut, dims.Width, dims.Height, profile.Name)
	}
	return nil
}

func parseTheme(name string) (render.ColorTheme, error) {
	switch name {
	case "classic":
		return render.ThemeClassic, nil
	case "blueprint":
		return render.ThemeBlueprint, nil
	case "dark":
		return render.ThemeDark, nil
	case "contrast":
		return render.ThemeHighContrast, nil
	}
	return render.ThemeClassic, fmt.Errorf("unknown theme %q (want classic, blueprint, dark or contrast)", name)
}
