package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Cog-Creators/lavalink-release-index/internal/config"
	"github.com/Cog-Creators/lavalink-release-index/internal/manifest"
	"github.com/Cog-Creators/lavalink-release-index/internal/release"
	"github.com/Cog-Creators/lavalink-release-index/pkg/index"
)

var version = "dev"

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	log.SetOutput(os.Stdout)

	rootCmd := &cobra.Command{
		Use:     "release-index",
		Short:   "Generate the Lavalink release index for Red-DiscordBot",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	generateIndexCmd := &cobra.Command{
		Use:   "generate-index <output-dir>",
		Short: "Validate the releases manifest and write the index files",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(log, cmd, args); err != nil {
				log.Errorf("ERROR: %v", err)
				os.Exit(1)
			}
		},
	}
	generateIndexCmd.Flags().StringP("manifest", "m", "", "path to the releases manifest (overrides RELEASES_MANIFEST)")
	rootCmd.AddCommand(generateIndexCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func run(log *logrus.Logger, cmd *cobra.Command, args []string) error {
	log.Infof("starting release-index (version=%s)", version)
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if manifestPath := must(cmd.Flags().GetString("manifest")); manifestPath != "" {
		cfg.ManifestPath = manifestPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return err
	}
	log.Infof("loaded %d releases from %s", len(m.Releases), cfg.ManifestPath)

	parser := release.NewParser(log, cfg, release.NewHTTPArtifactChecker(cfg.HTTPTimeout))
	releases, err := parser.ParseAll(ctx, m)
	if err != nil {
		return err
	}

	release.ResolveRedVersionRanges(releases)

	entries, err := release.IndexEntries(releases)
	if err != nil {
		return err
	}

	outputDir := args[0]
	if err := index.Write(outputDir, entries); err != nil {
		return err
	}
	log.Infof("wrote %s and %s to %s", index.FileName, index.MinifiedFileName, outputDir)
	return nil
}
