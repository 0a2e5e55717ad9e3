package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/framepick/framepick/internal/config"
	"github.com/framepick/framepick/internal/media"
	"github.com/framepick/framepick/internal/session"
	"github.com/framepick/framepick/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	verbose        bool
	jsonOutput     bool
	configPath     = config.DefaultPath
	sessionFile    string
	maxDurationSec float64
	minDurationSec float64
	durationSec    float64 // asset duration override for files the prober cannot read

	rootCmd = &cobra.Command{
		Use:   "framepick",
		Short: "A terminal range picker for trimming time-based media.",
		Long:  `framepick opens a media file in an interactive terminal timeline with draggable trim handles, optional marks, and a scrub cursor. Accepted selections are persisted as session records for downstream tooling.`,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for --json output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the config file")
	rootCmd.PersistentFlags().
		StringVar(&sessionFile, "session-file", "", "Optional: override the session file path from the config")

	trimCmd.Flags().
		Float64Var(&maxDurationSec, "max-duration", 0, "Optional: cap the selection length, in seconds (0 = uncapped)")
	trimCmd.Flags().
		Float64Var(&minDurationSec, "min-duration", 0, "Optional: override the minimum selection length from the config, in seconds")
	trimCmd.Flags().
		Float64Var(&durationSec, "duration", 0, "Optional: assume this asset duration, in seconds, when the file cannot be probed")

	sessionsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output session records in JSON format instead of rich text")

	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(sessionsCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func main() {
	Execute()
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var trimCmd = &cobra.Command{
	Use:   "trim [FILE|DIR]",
	Short: "Open a media file in the interactive trim timeline. [Defaults to the current directory]",
	Long:  "Open a media file in the interactive trim timeline. If given a directory (or no argument), discovered media files are offered in a picker first.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			logrus.Fatalf("Unable to load config: %v", err)
		}
		if minDurationSec > 0 {
			cfg.MinDurationSec = minDurationSec
		}

		target := "."
		if len(args) == 1 {
			target = args[0]
		}
		path, err := resolveTarget(cmd, target)
		if errors.Is(err, tui.ErrPickerCancelled) {
			fmt.Fprintln(os.Stdout, "No file selected.")
			return
		}
		if err != nil {
			logrus.Fatal(err)
		}

		asset, err := loadAsset(path)
		if err != nil {
			logrus.Fatal(err)
		}

		store, err := session.NewStore(sessionPath(cfg))
		if err != nil {
			logrus.Fatalf("Unable to open or create session store: %v", err)
		}

		maxDuration := time.Duration(maxDurationSec * float64(time.Second))
		if err := tui.Run(cfg, asset, store, maxDuration); err != nil {
			logrus.Fatal(err)
		}
	},
}

// resolveTarget turns the positional argument into a single media file
// path, running the picker when the target is a directory.
func resolveTarget(cmd *cobra.Command, target string) (string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", target, err)
	}
	if !info.IsDir() {
		return target, nil
	}

	paths, err := media.Discover(cmd.Context(), target)
	if err != nil {
		return "", fmt.Errorf("discover media in %s: %w", target, err)
	}
	switch len(paths) {
	case 0:
		return "", fmt.Errorf("no media files found under %s", target)
	case 1:
		logrus.Debugf("single media file found, skipping picker: %s", paths[0])
		return paths[0], nil
	default:
		return tui.RunPicker(paths)
	}
}

// loadAsset probes the file's metadata, falling back to the --duration
// override for formats the prober cannot read.
func loadAsset(path string) (*media.Asset, error) {
	asset, err := media.Probe(path)
	if err != nil || !asset.Loaded() {
		if durationSec <= 0 {
			if err != nil {
				return nil, fmt.Errorf("probe %s: %w (pass --duration to set the length manually)", path, err)
			}
			return nil, fmt.Errorf("could not determine duration of %s (pass --duration to set the length manually)", path)
		}
		logrus.Debugf("probe failed for %s, using --duration override", path)
		asset = &media.Asset{
			Path:     path,
			Title:    filepath.Base(path),
			Duration: time.Duration(durationSec * float64(time.Second)),
		}
	}
	return asset, nil
}

func sessionPath(cfg config.Config) string {
	if sessionFile != "" {
		return sessionFile
	}
	return cfg.SessionFile
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List saved trim selections",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			logrus.Fatalf("Unable to load config: %v", err)
		}
		store, err := session.NewStore(sessionPath(cfg))
		if err != nil {
			logrus.Fatalf("Unable to open session store: %v", err)
		}

		if jsonOutput {
			out, err := json.MarshalIndent(store.Data.Records, "", "  ")
			if err != nil {
				logrus.Fatal(err)
			}
			fmt.Fprintln(os.Stdout, string(out))
			return
		}

		if len(store.Data.Records) == 0 {
			fmt.Fprintln(os.Stdout, "No saved selections.")
			return
		}
		for _, r := range store.Data.Records {
			fmt.Fprintf(os.Stdout, "%s  %s  [%s → %s]", r.ID, r.Path, r.Start, r.End)
			if r.MarkStart != 0 || r.MarkEnd != 0 {
				fmt.Fprintf(os.Stdout, "  marks [%s → %s]", r.MarkStart, r.MarkEnd)
			}
			fmt.Fprintf(os.Stdout, "  %s\n", r.CreatedAt.Format(time.RFC3339))
		}
	},
}
