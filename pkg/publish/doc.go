// Package publish uploads rendered Loom pages to S3 as static HTML.
//
// A Publisher renders a virtual tree through the normal reconciliation
// pipeline and puts the canonical HTML under a key in the configured
// bucket, so a static site and a live server always agree on output:
//
//	pub := publish.New(publish.NewClient(cfg.Publish.Region), cfg.Publish, cfg.Render)
//	err := pub.PublishPage(ctx, "about/", aboutPage())
//
// Directory-style keys ("", "about/") resolve to index.html objects.
package publish
