package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"elbow/internal/logging"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(loadConfig()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	config *Config
	log    *slog.Logger

	tolerance    float64
	snapDistance float64
	logLevel     string
}

func newRootCmd(config *Config) *cobra.Command {
	a := &app{config: config, log: logging.NewNop()}

	root := &cobra.Command{
		Use:   "elbow",
		Short: "Validate connection points on two rectangles and route an elbow connector between them",
		Long: `elbow reads a scene of two rectangles with one connection point each,
checks that every point sits on its rectangle's edge with an outward
perpendicular angle, and builds the orthogonal route between them.

Without a scene file the built-in demo scene is used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.Float64Var(&a.tolerance, "tolerance", config.Tolerance, "Absolute tolerance for edge and alignment checks")
	flags.Float64Var(&a.snapDistance, "snap-distance", config.SnapDistance, "Maximum distance a point may snap to an edge")
	flags.StringVar(&a.logLevel, "log-level", config.LogLevel.String(), "Log level: debug, info, warn, error")

	root.AddCommand(
		a.routeCmd(),
		a.checkCmd(),
		a.snapCmd(),
		a.renderCmd(),
		a.exportCmd(),
		a.previewCmd(),
	)
	return root
}

func (a *app) setup() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.logLevel, err)
	}
	if !(a.tolerance > 0) || math.IsInf(a.tolerance, 0) {
		return fmt.Errorf("tolerance must be a positive finite number, got %g", a.tolerance)
	}
	if !(a.snapDistance > 0) || math.IsInf(a.snapDistance, 0) {
		return fmt.Errorf("snap distance must be a positive finite number, got %g", a.snapDistance)
	}
	a.config.Tolerance = a.tolerance
	a.config.SnapDistance = a.snapDistance
	a.config.LogLevel = level
	a.log = logging.New(level)
	return nil
}

// load reads the scene named by args, or the demo scene, and routes it.
func (a *app) load(args []string) (*Scene, Result, error) {
	filename := ""
	if len(args) > 0 {
		filename = args[0]
	}
	scene, err := LoadScene(filename)
	if err != nil {
		return nil, Result{}, err
	}
	result := scene.Route(a.config.Builder())
	if result.Err != nil {
		a.log.Debug("route rejected", "scene", sourceName(filename), "error", result.Err)
	} else {
		a.log.Debug("route built", "scene", sourceName(filename), "points", len(result.Route))
	}
	return scene, result, nil
}

func sourceName(filename string) string {
	if filename == "" {
		return "demo"
	}
	return filename
}

func (a *app) routeCmd() *cobra.Command {
	var copyRoute bool
	cmd := &cobra.Command{
		Use:   "route [scene]",
		Short: "Print the route as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, result, err := a.load(args)
			if err != nil {
				return err
			}
			if result.Err != nil {
				return result.Err
			}
			data, err := routeJSON(result)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			if copyRoute {
				if err := writeClipboardText(string(data)); err != nil {
					return fmt.Errorf("copy route: %w", err)
				}
				a.log.Info("route copied to clipboard")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyRoute, "copy", false, "Also copy the route JSON to the clipboard")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [scene]",
		Short: "Validate the connection points only",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, result, err := a.load(args)
			if err != nil {
				return err
			}
			if result.Err != nil {
				return result.Err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: route with %d points\n", len(result.Route))
			return nil
		},
	}
}

func (a *app) snapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snap [scene]",
		Short: "Snap connection points to the nearest edge and print the scene",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, _, err := a.load(args)
			if err != nil {
				return err
			}
			n := scene.Snap(a.config.SnapDistance)
			a.log.Info("snapped connection points", "count", n)
			data, err := scene.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func (a *app) renderCmd() *cobra.Command {
	var plain bool
	var cellWidth, cellHeight float64
	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Draw the scene and its route as text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, result, err := a.load(args)
			if err != nil {
				return err
			}
			canvas := NewCanvas(scene, result)
			canvas.SetScale(cellWidth, cellHeight)
			lines, err := canvas.Render()
			if err != nil {
				return err
			}
			lines = trimLines(lines)
			if !plain {
				lines = styleRender(lines, result)
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable colours")
	cmd.Flags().Float64Var(&cellWidth, "cell-width", defaultCellWidth, "World units per character column")
	cmd.Flags().Float64Var(&cellHeight, "cell-height", defaultCellHeight, "World units per character row")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export [scene] -o file",
		Short: "Write the scene as .png, .txt or the route as .json",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, result, err := a.load(args)
			if err != nil {
				return err
			}
			path, err := a.config.GetSavePath(output)
			if err != nil {
				return err
			}
			if err := exportFile(NewCanvas(scene, result), result, path); err != nil {
				return fmt.Errorf("export %s: %w", path, err)
			}
			a.log.Info("exported", "file", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file; the extension selects the format")
	cobra.CheckErr(cmd.MarkFlagRequired("output"))
	return cmd
}

func (a *app) previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [scene]",
		Short: "Show the rendered scene full screen",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, result, err := a.load(args)
			if err != nil {
				return err
			}
			filename := ""
			if len(args) > 0 {
				filename = args[0]
			}
			return runPreview(NewCanvas(scene, result), result, sourceName(filename))
		},
	}
}
