package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/AmirChGit/three-body-problem/internal/analysis"
	"github.com/AmirChGit/three-body-problem/internal/config"
	"github.com/AmirChGit/three-body-problem/internal/gui"
	"github.com/AmirChGit/three-body-problem/internal/sim"
	"github.com/AmirChGit/three-body-problem/internal/stats"
	"github.com/AmirChGit/three-body-problem/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	fps        int
	width      float64
	height     float64
	theme      string

	// headless run
	frames   int
	spectrum bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "threebody",
		Short: "chaotic three-body gravity toy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".threebody", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time)")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	rootCmd.PersistentFlags().Float64Var(&width, "width", config.DefaultWidth, "viewport width (world units)")
	rootCmd.PersistentFlags().Float64Var(&height, "height", config.DefaultHeight, "viewport height (world units)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report completed runs",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 36000, "number of frames to simulate")
	runCmd.Flags().BoolVar(&spectrum, "spectrum", false, "plot power spectrum of body 0 x-coordinate")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run with the graphical renderer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			st, s, err := setup(cfg)
			if err != nil {
				return err
			}
			gui.Run(cfg, s, st)
			return nil
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "show persisted run statistics",
		RunE:  showStats,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(" ", name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, guiCmd, statsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig layers preset, config file, and CLI flags over defaults.
// Flags win when explicitly set.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	return cfg, nil
}

// setup builds the store and simulation and wires run-ended events
// into the store.
func setup(cfg *config.Config) (*stats.Store, *sim.Simulation, error) {
	st := stats.New(dataDir)
	if err := st.Init(); err != nil {
		return nil, nil, err
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	s := sim.New(cfg.Width, cfg.Height, cfg.Tuning, rng)
	s.AddObserver(sim.ObserverFunc(func(e sim.RunEnd) {
		if err := st.Record(e.Duration); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record run: %v\n", err)
		}
	}))
	return st, s, nil
}

func runTUI(cmd *cobra.Command) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	st, s, err := setup(cfg)
	if err != nil {
		return err
	}
	return viz.Run(s, st, cfg.FPS, cfg.Theme)
}

// runFrames advances the simulation n frames and returns the length in
// frames of each completed run. The frame that triggers a reset counts
// toward the run it ended.
func runFrames(s *sim.Simulation, n int, onFrame func()) []int {
	var lengths []int
	sinceReset := 0
	s.AddObserver(sim.ObserverFunc(func(sim.RunEnd) {
		lengths = append(lengths, sinceReset)
		sinceReset = 0
	}))
	for i := 0; i < n; i++ {
		sinceReset++
		s.Step()
		if onFrame != nil {
			onFrame()
		}
	}
	return lengths
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	s := sim.New(cfg.Width, cfg.Height, cfg.Tuning, rng)

	xs := make([]float64, 0, frames)

	start := time.Now()
	runLengths := runFrames(s, frames, func() {
		xs = append(xs, s.Bodies()[0].Pos.X)
	})
	elapsed := time.Since(start)

	fmt.Printf("simulated %d frames in %v (%.0f frames/sec)\n\n",
		frames, elapsed, float64(frames)/elapsed.Seconds())

	if len(runLengths) == 0 {
		fmt.Println("no runs completed (still stable)")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "RUN\tFRAMES\tSIM TIME")
		for i, n := range runLengths {
			fmt.Fprintf(w, "%d\t%d\t%.1fs\n", i+1, n, float64(n)/float64(cfg.FPS))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if spectrum {
		fmt.Println("\npower spectrum, body 0 x-coordinate:")
		ps := analysis.PowerSpectrum(analysis.Detrend(xs))
		plot := ps
		if len(plot) > 256 {
			plot = plot[:256]
		}
		fmt.Println(asciigraph.Plot(plot,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("magnitude vs frequency bin"),
		))

		f := analysis.DominantFrequency(analysis.Detrend(xs))
		if f > 0 {
			fmt.Printf("dominant period: %.1f frames\n", 1/f)
		}
	}

	return nil
}

func showStats(cmd *cobra.Command, args []string) error {
	st := stats.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	got := st.Stats()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "total runs\t%d\n", got.TotalRuns)
	fmt.Fprintf(w, "longest run\t%.1fs\n", got.LongestRunSeconds)
	if len(got.RecentSeconds) > 0 {
		last := got.RecentSeconds[len(got.RecentSeconds)-1]
		fmt.Fprintf(w, "last run\t%.1fs\n", last)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(got.RecentSeconds) > 1 {
		fmt.Println("\nrecent run durations:")
		fmt.Println(asciigraph.Plot(got.RecentSeconds,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("seconds per run"),
		))
	}

	return nil
}
