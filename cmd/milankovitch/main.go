package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/milankovitch/internal/analysis"
	"github.com/san-kum/milankovitch/internal/config"
	"github.com/san-kum/milankovitch/internal/export"
	"github.com/san-kum/milankovitch/internal/gui"
	"github.com/san-kum/milankovitch/internal/insolation"
	"github.com/san-kum/milankovitch/internal/logging"
	"github.com/san-kum/milankovitch/internal/render"
	"github.com/san-kum/milankovitch/internal/scene"
	"github.com/san-kum/milankovitch/internal/series"
	"github.com/san-kum/milankovitch/internal/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

var (
	configFile string
	dataDir    string
	timestep   int
	preset     string
	verbose    bool
	// render
	gifOut string
	from   int
	frames int
	every  int
	// plot / svg / analyze
	pngPath    string
	svgOut     string
	seriesName string
	index      int
	peaks      int
	// insolation
	lat, lon  float64
	insolOut  string
	workers   int
	withInsol bool
	synthRows int
	logger    log.Logger = logging.Nop()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "milankovitch [timestep]",
		Short: "animated Milankovitch cycle explorer",
		Long: "Plays eccentricity, obliquity and precession over 20 million years\n" +
			"alongside the insolation they produce. timestep is in years (100-5000).",
		Args:          cobra.MaximumNArgs(1),
		RunE:          runGUI,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New(os.Stderr, verbose)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "directory holding the source csv files")
	pf.IntVarP(&timestep, "timestep", "t", config.DefaultTimestep, "years between frames (100-5000)")
	pf.StringVar(&preset, "preset", "", "named timestep (see presets)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	guiCmd := &cobra.Command{
		Use:   "gui [timestep]",
		Short: "play the cycles in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [timestep]",
		Short: "play the cycles in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}

	renderCmd := &cobra.Command{
		Use:   "render [timestep]",
		Short: "render frames to a gif (or one frame to a png)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&gifOut, "out", "o", "milankovitch.gif", "output file (.gif or .png)")
	renderCmd.Flags().IntVar(&from, "from", 0, "first timestep index")
	renderCmd.Flags().IntVar(&frames, "frames", 120, "number of frames")
	renderCmd.Flags().IntVar(&every, "every", 1, "indices between frames")

	plotCmd := &cobra.Command{
		Use:   "plot [series...]",
		Short: "plot series in the terminal",
		RunE:  plotSeries,
	}
	plotCmd.Flags().StringVar(&pngPath, "png", "", "also write a png chart of the first series")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [file]",
		Short: "export the resampled dataset to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [file]",
		Short: "export the resampled dataset to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().BoolVar(&withInsol, "insolation", false, "include the 65N mid-June insolation series")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "write the insolation heatmap or a series as SVG",
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&svgOut, "out", "o", "insolation.svg", "output file")
	svgCmd.Flags().IntVar(&index, "index", 0, "timestep index for the heatmap")
	svgCmd.Flags().StringVar(&seriesName, "series", "", "draw this series instead of the heatmap")

	insolCmd := &cobra.Command{
		Use:   "insolation",
		Short: "daily insolation at one latitude and season over time",
		RunE:  insolationSeries,
	}
	insolCmd.Flags().Float64Var(&lat, "lat", 65, "latitude in degrees")
	insolCmd.Flags().Float64Var(&lon, "lon", 90, "solar longitude in degrees (90 = June solstice)")
	insolCmd.Flags().IntVar(&workers, "workers", 4, "concurrent workers")
	insolCmd.Flags().StringVarP(&insolOut, "out", "o", "", "write the series as csv")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [series...]",
		Short: "dominant periods of each series",
		RunE:  analyzeSeries,
	}
	analyzeCmd.Flags().IntVar(&peaks, "peaks", 3, "periods to report per series")

	synthCmd := &cobra.Command{
		Use:   "synth",
		Short: "write synthetic source csv files",
		RunE:  synthData,
	}
	synthCmd.Flags().IntVar(&synthRows, "rows", 20001, "rows per file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named timesteps",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Slice(names, func(i, j int) bool { return config.Presets[names[i]] < config.Presets[names[j]] })
			for _, name := range names {
				fmt.Printf("  %-9s %s years\n", name, humanize.Comma(int64(config.Presets[name])))
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [file]",
		Short: "write the default config to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}

	infoCmd := &cobra.Command{
		Use:   "info [timestep]",
		Short: "summarize the loaded dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showInfo,
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, renderCmd, plotCmd, exportCSVCmd, exportJSONCmd, svgCmd, insolCmd, analyzeCmd, synthCmd, presetsCmd, initCmd, infoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig layers the config file, the preset, the --timestep flag and a
// positional timestep, later ones winning.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}
	if preset != "" {
		step, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Timestep = step
	}
	if cmd.Flags().Changed("timestep") {
		cfg.Timestep = timestep
	}
	if len(args) > 0 {
		step, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", series.ErrTimestep, args[0])
		}
		cfg.Timestep = step
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// commandContext is the context the command was executed with, or
// Background when it is called directly.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func loadDataset(cmd *cobra.Command, args []string) (*config.Config, *series.Dataset, error) {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	ds, err := cfg.LoadDataset()
	if err != nil {
		return nil, nil, err
	}
	level.Debug(logger).Log("msg", "dataset loaded", "dir", cfg.DataDir, "timestep", cfg.Timestep, "samples", ds.Len())
	return cfg, ds, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, ds, err := loadDataset(cmd, args)
	if err != nil {
		return err
	}
	return gui.Run(ds, cfg.Timestep, cfg.FPS, logger)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, ds, err := loadDataset(cmd, args)
	if err != nil {
		return err
	}
	viz.SetTheme(cfg.Theme)
	return viz.Run(ds, cfg.Timestep, cfg.FPS, logger)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, ds, err := loadDataset(cmd, args)
	if err != nil {
		return err
	}
	s := scene.New(ds)

	if strings.EqualFold(filepath.Ext(gifOut), ".png") {
		r, err := render.Snapshot(s, from)
		if err != nil {
			return err
		}
		if err := render.SavePNG(gifOut, r.Img); err != nil {
			return err
		}
		fmt.Printf("wrote %s (t = %s Ma)\n", gifOut, scene.FormatMa(ds.Time[from]))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rec := render.NewRecorder(cfg.FPS)
	opt := render.Options{From: from, Count: frames, Every: every}
	if err := render.RenderFrames(ctx, s, rec, opt); err != nil {
		return err
	}
	if err := rec.Save(gifOut); err != nil {
		return err
	}
	level.Info(logger).Log("msg", "gif written", "path", gifOut, "frames", rec.Len())
	fmt.Printf("wrote %s (%d frames)\n", gifOut, rec.Len())
	return nil
}

func plotSeries(cmd *cobra.Command, args []string) error {
	_, ds, err := loadDataset(cmd, nil)
	if err != nil {
		return err
	}
	names := args
	if len(names) == 0 {
		names = []string{"eccentricity", "obliquity", "precession"}
	}

	fmt.Printf("timestep: %s years\n", humanize.Comma(int64(ds.Step)))
	fmt.Printf("samples: %s\n\n", humanize.Comma(int64(ds.Len())))

	for _, name := range names {
		data, err := export.Lookup(ds, name)
		if err != nil {
			return err
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if pngPath != "" {
		data, _ := export.Lookup(ds, names[0])
		if err := export.PlotPNG(pngPath, names[0], names[0], ds.Time, data); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
	}
	return nil
}

// create opens path for writing, or stdout for "" and "-".
func create(args []string) (*os.File, func() error, error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, ds, err := loadDataset(cmd, nil)
	if err != nil {
		return err
	}
	f, closeFn, err := create(args)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(f, ds); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	_, ds, err := loadDataset(cmd, nil)
	if err != nil {
		return err
	}
	data := export.NewData(ds)
	if withInsol {
		q, err := insolation.Series(commandContext(cmd), ds, 65, 90, workers)
		if err != nil {
			return err
		}
		data.Insolation65N = q
	}
	f, closeFn, err := create(args)
	if err != nil {
		return err
	}
	if err := export.WriteJSON(f, data); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, ds, err := loadDataset(cmd, nil)
	if err != nil {
		return err
	}

	var svg string
	if seriesName != "" {
		data, err := export.Lookup(ds, seriesName)
		if err != nil {
			return err
		}
		svg = export.SeriesSVG(ds.Time, data, 800, 300, "#1f77b4")
	} else {
		if index < 0 || index >= ds.Len() {
			return fmt.Errorf("%w: %d not in [0, %d)", series.ErrIndexRange, index, ds.Len())
		}
		g := insolation.NewGrid()
		g.Update(insolation.OrbitAt(ds, index))
		svg = export.HeatmapSVG(g, 10)
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

func insolationSeries(cmd *cobra.Command, args []string) error {
	_, ds, err := loadDataset(cmd, nil)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	q, err := insolation.Series(ctx, ds, lat, lon, workers)
	if err != nil {
		return err
	}
	caption := fmt.Sprintf("daily insolation (W/m^2) at %.1f°, solar longitude %.0f°", lat, lon)
	fmt.Println(asciigraph.Plot(q, asciigraph.Height(12), asciigraph.Width(80), asciigraph.Caption(caption)))
	fmt.Println()
	fmt.Printf("min: %.2f W/m^2\n", floats.Min(q))
	fmt.Printf("max: %.2f W/m^2\n", floats.Max(q))

	if insolOut != "" {
		if err := series.WriteColumn(insolOut, q); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", insolOut)
	}
	return nil
}

func analyzeSeries(cmd *cobra.Command, args []string) error {
	_, ds, err := loadDataset(cmd, nil)
	if err != nil {
		return err
	}
	names := args
	if len(names) == 0 {
		names = []string{"eccentricity", "obliquity", "precession"}
	}

	// Periods shorter than four samples or longer than a quarter of the
	// record are not resolved.
	minP := 4 * ds.Step
	maxP := float64(ds.Len()) * ds.Step / 4

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERIES\tRANK\tPERIOD\tPOWER")
	for _, name := range names {
		data, err := export.Lookup(ds, name)
		if err != nil {
			return err
		}
		for rank, p := range analysis.Peaks(data, ds.Step, peaks, minP, maxP) {
			fmt.Fprintf(w, "%s\t%d\t%.1f kyr\t%.3g\n", name, rank+1, p.Period/1000, p.Power)
		}
	}
	return w.Flush()
}

func synthData(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	raw, err := series.Synthesize(synthRows, cfg.SourceStep)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return err
	}
	if err := series.WriteRaw(cfg.DataDir, cfg.Files, raw); err != nil {
		return err
	}
	fmt.Printf("wrote %s rows (%s years) to %s\n",
		humanize.Comma(int64(raw.Len())), humanize.Commaf(raw.Span()), cfg.DataDir)
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "milankovitch.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func showInfo(cmd *cobra.Command, args []string) error {
	cfg, ds, err := loadDataset(cmd, args)
	if err != nil {
		return err
	}
	fmt.Printf("data: %s\n", cfg.DataDir)
	fmt.Printf("timestep: %s years\n", humanize.Comma(int64(cfg.Timestep)))
	fmt.Printf("samples: %s\n", humanize.Comma(int64(ds.Len())))
	fmt.Printf("span: %s Ma\n\n", scene.FormatMa(ds.Time[ds.Len()-1]))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERIES\tMIN\tMAX")
	for _, c := range export.Columns(ds)[1:] {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\n", c.Name, floats.Min(c.Values), floats.Max(c.Values))
	}
	return w.Flush()
}
