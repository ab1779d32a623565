package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/strata-dev/strata"
	"github.com/strata-dev/strata/internal/config"
	"github.com/strata-dev/strata/internal/dev"
	"github.com/strata-dev/strata/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		outDir string
		bucket string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render static routes to disk",
		Long: `Build the application and run it in export mode.

Export mode renders every static route (no [param] segments) to
<route>/index.html under the output directory. The application must
call App.Run from main for export mode to take effect.

With --bucket the exported files are uploaded to S3 afterwards, using
the ambient AWS credential chain.

Examples:
  strata export
  strata export --out public
  strata export --bucket my-site --prefix v2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), outDir, bucket, prefix)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from strata.json)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket to upload the export to")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")

	return cmd
}

func runExport(ctx context.Context, outDir, bucket, prefix string) error {
	if err := requireGo(); err != nil {
		return err
	}

	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = cfg.OutputPath()
	}

	info("Building %s...", cfg.Name)

	runner := dev.NewRunner(dev.RunnerConfig{
		ProjectDir: cfg.Dir(),
		Env:        []string{strata.ExportDirEnv + "=" + outDir},
	})
	if res := runner.Build(ctx); !res.Success {
		errorMsg("Build failed")
		return res.Err
	}

	info("Exporting to %s...", outDir)
	if err := runner.Start(ctx); err != nil {
		return err
	}
	if err := runner.Wait(); err != nil {
		return err
	}
	success("Export written to %s", outDir)

	if bucket == "" {
		return nil
	}

	client, err := export.NewS3Client(ctx)
	if err != nil {
		return err
	}
	publisher := export.NewS3Publisher(client, bucket, prefix)

	info("Uploading to s3://%s/%s...", bucket, prefix)
	n, err := publisher.PublishDir(ctx, outDir)
	if err != nil {
		return err
	}
	success("Uploaded %d files", n)
	return nil
}
