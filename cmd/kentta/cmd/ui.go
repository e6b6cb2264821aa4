package cmd

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"github.com/spf13/cobra"

	"github.com/pesislab/kentta/internal/ui"
	"github.com/pesislab/kentta/internal/underlay"
	"github.com/pesislab/kentta/pkg/field"
	"github.com/pesislab/kentta/pkg/render"
)

var (
	uiView        string
	uiProfile     string
	uiProfileFile string
	uiUnderlay    string
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive field diagram",
	Long: `Launch the Gio-based diagram window.

Views:
  blueprint   Full-field blueprint with measurement labels (default)
  edit        Editable home path with draggable, snapping handles
  angle       Hitting-angle calculator: click to place the ball

Controls:
  Scroll            - Zoom at the cursor
  Middle-drag       - Pan
  Right-click twice - Draw a measurement line
  Space             - Refit the field to the window
  R / M / C         - Reset path / toggle measurements / clear measures
  1 / 2             - Switch to the men's / women's field`,
	RunE: runUI,
}

func init() {
	uiCmd.Flags().StringVar(&uiView, "view", "blueprint", "view to open: blueprint, edit or angle")
	uiCmd.Flags().StringVar(&uiProfile, "profile", "", "field profile name (default from saved config)")
	uiCmd.Flags().StringVar(&uiProfileFile, "profile-file", "", "register custom profiles from a .field file")
	uiCmd.Flags().StringVar(&uiUnderlay, "underlay", "", "aerial photo (PNG/JPEG) to show under the diagram")
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	mode, err := ui.ParseViewMode(uiView)
	if err != nil {
		return err
	}
	if uiProfileFile != "" {
		if err := registerProfileFile(uiProfileFile); err != nil {
			return err
		}
	}

	config, err := ui.LoadConfig()
	if err != nil && verbose {
		fmt.Fprintf(os.Stderr, "config not loaded: %v\n", err)
	}
	if config == nil {
		config = &ui.AppConfig{Profile: "men", ShowMeasurements: true}
	}

	name := uiProfile
	if name == "" {
		name = config.Profile
	}
	profile, err := field.Get(name)
	if err != nil {
		return err
	}

	render.SetTheme(render.ColorTheme(config.ColorTheme))
	state := ui.NewState(profile)
	state.SetShowMeasurements(config.ShowMeasurements)

	if uiUnderlay != "" {
		u, err := underlay.Load(uiUnderlay)
		if err != nil {
			return err
		}
		state.SetUnderlay(u)
	}

	go func() {
		w := new(app.Window)
		a := ui.New(w, state, mode.Config())
		if err := a.Run(); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}
