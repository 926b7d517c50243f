package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ytget/video-merger/internal/config"
	"github.com/ytget/video-merger/internal/form"
	"github.com/ytget/video-merger/internal/logs"
	"github.com/ytget/video-merger/internal/merge"
	"github.com/ytget/video-merger/internal/model"
	"github.com/ytget/video-merger/internal/platform"
)

var (
	mergeVideoA     string
	mergeVideoB     string
	mergeResolution string
	mergeOutputDir  string
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge two videos at a target resolution",
	Long: `Upload two videos to the merge service and save the result as
merged-video.mp4 in the output directory. An existing file is never
overwritten; a numbered name is used instead.

Resolution accepts a pixel size or a preset name (see 'video-merge resolutions').

Example:
  video-merge merge --video-a a.mp4 --video-b b.mp4 --resolution 1280x720 --output-dir ~/Videos`,
	Args: cobra.NoArgs,
	RunE: runMergeCmd,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVar(&mergeVideoA, "video-a", "", "Path to the first video (required)")
	mergeCmd.Flags().StringVar(&mergeVideoB, "video-b", "", "Path to the second video (required)")
	mergeCmd.Flags().StringVar(&mergeResolution, "resolution", "", "Target resolution or preset name (default from config, else 640x480)")
	mergeCmd.Flags().StringVar(&mergeOutputDir, "output-dir", "", "Directory for merged-video.mp4 (default from config, else current directory)")
}

// mergeOptions is everything one CLI merge needs once flags and config are resolved
type mergeOptions struct {
	VideoA     string
	VideoB     string
	Resolution string
	OutputDir  string
	Endpoint   string
	Logger     zerolog.Logger
}

func runMergeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFile(cfgFile)
	if err != nil {
		return err
	}

	logCfg := logs.Config{
		Service: "cli",
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Out:     cmd.ErrOrStderr(),
	}
	if logLevel != "" {
		logCfg.Level = logLevel
	}
	logger := logs.Setup(logCfg)

	opts := resolveMergeOptions(cfg, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runMerge(ctx, opts, cmd.OutOrStdout())
}

// resolveMergeOptions layers flags over the config file
func resolveMergeOptions(cfg *config.File, logger zerolog.Logger) mergeOptions {
	opts := mergeOptions{
		VideoA:     mergeVideoA,
		VideoB:     mergeVideoB,
		Resolution: cfg.Merge.Resolution,
		OutputDir:  cfg.Merge.OutputDir,
		Endpoint:   cfg.Merge.Endpoint,
		Logger:     logger,
	}
	if mergeResolution != "" {
		opts.Resolution = mergeResolution
	}
	if mergeOutputDir != "" {
		opts.OutputDir = mergeOutputDir
	}
	if endpointURL != "" {
		opts.Endpoint = endpointURL
	}
	return opts
}

// runMerge drives the merge form from opts and prints the saved path.
// On failure the returned error carries the form's message.
func runMerge(ctx context.Context, opts mergeOptions, out io.Writer) error {
	catalog := model.DefaultCatalog()

	resolution := opts.Resolution
	if resolution != "" {
		opt, ok := catalog.Lookup(resolution)
		if !ok {
			return fmt.Errorf("unknown resolution %q (see 'video-merge resolutions')", resolution)
		}
		resolution = opt.Resolution
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		return fmt.Errorf("failed to prepare output directory: %w", err)
	}

	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = merge.DefaultEndpoint
	}

	f := form.New(merge.NewClient(endpoint), platform.NewDirSaver(outputDir), form.Options{
		Catalog:    &catalog,
		Resolution: resolution,
		Logger:     &opts.Logger,
	})

	// Unreadable paths leave the slot empty, which the form reports like
	// a missing selection.
	for _, slot := range []struct {
		path string
		set  func(*model.VideoSelection)
	}{
		{opts.VideoA, f.SetVideoA},
		{opts.VideoB, f.SetVideoB},
	} {
		if slot.path == "" {
			continue
		}
		sel, err := model.SelectionFromPath(slot.path)
		if err != nil {
			opts.Logger.Error().Err(err).Str("path", slot.path).Msg("cannot use video")
			continue
		}
		slot.set(sel)
	}

	if err := f.Submit(ctx); err != nil {
		if msg := f.State().Error; msg != "" {
			return errors.New(msg)
		}
		return err
	}

	last := f.State().Last
	fmt.Fprintf(out, "Saved to: %s\n", last.OutputPath)
	return nil
}
