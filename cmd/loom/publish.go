package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		region string
		key    string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the rendered demo page to S3",
		Long: `Render the demo page and upload it to the configured S3 bucket.

Bucket, prefix, and region come from the publish section of loom.json and
can be overridden with flags. Credentials come from the default AWS
credential chain.

Examples:
  loom publish
  loom publish --bucket=my-site --key=demo/
  loom publish --region=eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(bucket, prefix, region, key)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Target bucket (default from loom.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from loom.json)")
	cmd.Flags().StringVar(&region, "region", "", "Bucket region (default from loom.json)")
	cmd.Flags().StringVar(&key, "key", "", "Page key, directory keys get index.html")

	return cmd
}

func runPublish(bucket, prefix, region, key string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if bucket != "" {
		cfg.Publish.Bucket = bucket
	}
	if prefix != "" {
		cfg.Publish.Prefix = prefix
	}
	if region != "" {
		cfg.Publish.Region = region
	}
	if cfg.Publish.Bucket == "" {
		return errors.New("E062").
			WithDetail("no publish bucket configured").
			WithSuggestion("Set publish.bucket in loom.json or pass --bucket.")
	}

	pub := publish.New(publish.NewClient(cfg.Publish.Region), cfg.Publish, cfg.Render)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := pub.PublishPage(ctx, key, newDemoApp().view()); err != nil {
		return err
	}
	fmt.Printf("published s3://%s/%s\n", cfg.Publish.Bucket, pub.Key(key))
	return nil
}
