package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/labelmaker/internal/annotate"
	"github.com/san-kum/labelmaker/internal/automation"
	"github.com/san-kum/labelmaker/internal/config"
	"github.com/san-kum/labelmaker/internal/log"
	"github.com/san-kum/labelmaker/internal/render"
	"github.com/san-kum/labelmaker/internal/storage"
	"github.com/san-kum/labelmaker/internal/thermal"
	"github.com/san-kum/labelmaker/internal/viz"
	"github.com/spf13/cobra"
)

const defaultOutput = "label.svg"

var (
	dataDir    string
	debug      bool
	configFile string
	preset     string
	temps      []float64
	times      []float64
	dwells     []float64
	rates      []float64
	outPath    string
	save       bool
	noLeads    bool
	theme      string
	// sweep range
	minFactor float64
	maxFactor float64
	steps     int
)

// main registers the labelmaker commands and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "labelmaker",
		Short:         "furnace schedule labels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Init(debug)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".labelmaker", "data directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render a label to SVG",
		Args:  cobra.NoArgs,
		RunE:  renderLabel,
	}
	addScheduleFlags(renderCmd)
	renderCmd.Flags().StringVar(&outPath, "out", "", "output SVG path")
	renderCmd.Flags().BoolVar(&save, "save", false, "store the schedule in the data directory")
	renderCmd.Flags().BoolVar(&noLeads, "no-leads", false, "omit lead-in and lead-out stubs")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a schedule in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotSchedule,
	}
	addScheduleFlags(plotCmd)

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print the segment table",
		Args:  cobra.NoArgs,
		RunE:  segmentTable,
	}
	addScheduleFlags(tableCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored labels",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export stored label to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export stored samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tSOURCE\tTEMPS")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				source := thermal.SourceTimes
				if cfg.RateDriven() {
					source = thermal.SourceRates
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", name, cfg.Title, source, cfg.Schedule.Temps)
			}
			return w.Flush()
		},
	}

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive schedule viewer",
		Args:  cobra.NoArgs,
		RunE:  viewSchedule,
	}
	addScheduleFlags(viewCmd)
	viewCmd.Flags().StringVar(&theme, "theme", viz.ThemeFurnace.Name, fmt.Sprintf("color theme %v", viz.ThemeNames()))

	batchCmd := &cobra.Command{
		Use:   "batch [file.yaml]",
		Short: "render every label in a batch file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().BoolVar(&save, "save", false, "store each schedule in the data directory")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "scale ramp rates and report schedule length",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addScheduleFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&minFactor, "min", 0.5, "smallest rate factor")
	sweepCmd.Flags().Float64Var(&maxFactor, "max", 2.0, "largest rate factor")
	sweepCmd.Flags().IntVar(&steps, "steps", 7, "number of factors")

	dateCmd := &cobra.Command{
		Use:   "date [yyyymmdd] [hhmm] [end_yyyymmdd] [end_hhmm]",
		Short: "format start and end dates",
		Args:  cobra.RangeArgs(2, 4),
		RunE:  formatDate,
	}

	rootCmd.AddCommand(renderCmd, plotCmd, tableCmd, listCmd, exportCmd, exportCSVCmd, presetsCmd, viewCmd, batchCmd, sweepCmd, dateCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Errorw("command failed", "error", err)
		log.Sync()
		color.Red("error: %v", err)
		os.Exit(1)
	}
	log.Sync()
}

func addScheduleFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64SliceVar(&temps, "temps", nil, "plateau temperatures")
	cmd.Flags().Float64SliceVar(&times, "times", nil, "alternating dwell and ramp durations")
	cmd.Flags().Float64SliceVar(&dwells, "dwells", nil, "dwell durations (with --rates)")
	cmd.Flags().Float64SliceVar(&rates, "rates", nil, "ramp rates (with --dwells)")
}

// resolveConfig applies the preset, then the config file, then any
// schedule flags the user set.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		log.Debugw("config loaded", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("temps") {
		cfg.Schedule.Temps = temps
	}
	if flags.Changed("times") {
		cfg.Schedule.Times = times
		cfg.Schedule.Dwells, cfg.Schedule.Rates = nil, nil
	}
	if flags.Changed("dwells") || flags.Changed("rates") {
		cfg.Schedule.Times = nil
		if flags.Changed("dwells") {
			cfg.Schedule.Dwells = dwells
		}
		if flags.Changed("rates") {
			cfg.Schedule.Rates = rates
		}
	}
	if flags.Changed("out") {
		cfg.Output.Path = outPath
	}

	return cfg, nil
}

func optionsFor(cfg *config.Config) render.Options {
	opts := render.DefaultOptions()
	opts.Title = cfg.Title
	opts.Width = cfg.Output.Width
	opts.Height = cfg.Output.Height
	opts.Toggles = cfg.Annotations
	if cfg.Output.TempUnit != "" {
		opts.TempUnit = cfg.Output.TempUnit
	}
	if cfg.Output.TimeUnit != "" {
		opts.TimeUnit = cfg.Output.TimeUnit
	}
	opts.LeadStubs = !noLeads
	return opts
}

// prepare builds everything a command needs to draw one label.
func prepare(cfg *config.Config) (*thermal.Schedule, annotate.Label, render.Options, error) {
	sched, err := cfg.BuildSchedule()
	if err != nil {
		return nil, annotate.Label{}, render.Options{}, fmt.Errorf("schedule: %w", err)
	}
	label, err := cfg.Label()
	if err != nil {
		return nil, annotate.Label{}, render.Options{}, fmt.Errorf("label: %w", err)
	}
	log.Debugw("schedule built", "source", sched.Source(), "segments", sched.Len(), "total", sched.TotalTime())
	return sched, label, optionsFor(cfg), nil
}

func writeLabel(cfg *config.Config, store *storage.Store) (string, error) {
	sched, label, opts, err := prepare(cfg)
	if err != nil {
		return "", err
	}

	path := cfg.Output.Path
	if path == "" {
		path = defaultOutput
	}
	if err := render.WriteSVG(path, sched, label, opts); err != nil {
		return "", err
	}
	log.Infow("label written", "path", path)

	if store != nil {
		if err := store.Init(); err != nil {
			return "", err
		}
		runID, err := store.Save(cfg.Title, sched, label.Header(cfg.Annotations), path)
		if err != nil {
			return "", err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return path, nil
}

func renderLabel(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var store *storage.Store
	if save {
		store = storage.New(dataDir)
	}

	path, err := writeLabel(cfg, store)
	if err != nil {
		return err
	}
	color.Green("wrote %s", path)
	return nil
}

func plotSchedule(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return plotRun(args[0])
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sched, _, opts, err := prepare(cfg)
	if err != nil {
		return err
	}

	graph, err := render.ASCII(sched, opts, 0, 0)
	if err != nil {
		return err
	}
	fmt.Println(graph)
	return nil
}

func plotRun(runID string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadVectors(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = s.Temp
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("title: %s\n", meta.Title)
	fmt.Printf("samples: %d\n\n", len(samples))

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("temperature over %s", render.FormatNumber(meta.TotalTime))),
	)
	fmt.Println(graph)
	return nil
}

func segmentTable(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sched, _, opts, err := prepare(cfg)
	if err != nil {
		return err
	}

	fmt.Print(render.SegmentTable(sched, opts))
	fmt.Printf("\ntotal: %s %s (%s)\n", render.FormatNumber(sched.TotalTime()), opts.TimeUnit, sched.Source())
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no labels found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTIME\tSOURCE\tTOTAL\tOUTPUT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			run.ID,
			run.Title,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Source,
			render.FormatNumber(run.TotalTime),
			run.Output,
		)
	}

	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	samples, err := storage.New(dataDir).LoadVectors(args[0])
	if err != nil {
		return err
	}

	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"segment", "kind", "index", "time", "temp"}); err != nil {
		return err
	}

	for _, s := range samples {
		row := []string{
			strconv.Itoa(s.Segment),
			s.Kind,
			strconv.Itoa(s.Index),
			strconv.FormatFloat(s.Time, 'f', 6, 64),
			strconv.FormatFloat(s.Temp, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func viewSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sched, label, opts, err := prepare(cfg)
	if err != nil {
		return err
	}

	t, ok := viz.GetTheme(theme)
	if !ok {
		return fmt.Errorf("unknown theme: %s (available: %v)", theme, viz.ThemeNames())
	}

	_, err = tea.NewProgram(viz.New(sched, label, opts).WithTheme(t), tea.WithAltScreen()).Run()
	return err
}

func runBatch(cmd *cobra.Command, args []string) error {
	batch, err := automation.LoadBatch(args[0])
	if err != nil {
		return fmt.Errorf("failed to load batch: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var store *storage.Store
	if save {
		store = storage.New(dataDir)
	}

	n := 0
	results, err := automation.Run(ctx, batch, func(_ context.Context, cfg *config.Config) (string, error) {
		n++
		if cfg.Output.Path == "" {
			cfg.Output.Path = batchOutput(batch.Name, n)
		}
		return writeLabel(cfg, store)
	})

	for _, r := range results {
		if r.Err != nil {
			color.Yellow("%d/%d %s: %v", r.Index, len(batch.Labels), r.Title, r.Err)
			continue
		}
		color.Green("%d/%d %s -> %s", r.Index, len(batch.Labels), r.Title, r.Output)
	}
	return err
}

func batchOutput(name string, n int) string {
	base := strings.ToLower(strings.Join(strings.Fields(name), "_"))
	if base == "" {
		base = "label"
	}
	return filepath.Clean(fmt.Sprintf("%s_%02d.svg", base, n))
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	results, err := automation.RunSweep(cmd.Context(), &automation.RateSweep{
		Base:      cfg,
		MinFactor: minFactor,
		MaxFactor: maxFactor,
		NumSteps:  steps,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FACTOR\tMAX RATE\tTOTAL")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s %s\n",
			render.FormatNumber(r.Factor),
			render.FormatNumber(r.MaxRate),
			render.FormatNumber(r.TotalTime),
			cfg.Output.TimeUnit,
		)
	}
	return w.Flush()
}

func formatDate(cmd *cobra.Command, args []string) error {
	var endDate, endTime string
	if len(args) > 2 {
		endDate = args[2]
	}
	if len(args) > 3 {
		endTime = args[3]
	}

	st, err := annotate.NewSpaceTime(args[0], args[1], endDate, endTime)
	if err != nil {
		return err
	}

	for _, line := range st.Lines(annotate.AllToggles()) {
		fmt.Println(line)
	}
	return nil
}
