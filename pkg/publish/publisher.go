package publish

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/loom-ui/loom/internal/config"
	"github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/reconcile"
	"github.com/loom-ui/loom/pkg/render"
	"github.com/loom-ui/loom/pkg/vdom"
)

// s3API is the slice of the S3 client the publisher needs.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads rendered pages to an S3 bucket as static HTML.
type Publisher struct {
	client   s3API
	bucket   string
	prefix   string
	renderer *render.Renderer
	logger   *slog.Logger
}

// New creates a publisher for the configured bucket.
func New(client *s3.Client, cfg config.PublishConfig, rc config.RenderConfig) *Publisher {
	return newPublisher(client, cfg, rc)
}

func newPublisher(client s3API, cfg config.PublishConfig, rc config.RenderConfig) *Publisher {
	return &Publisher{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		renderer: render.NewRenderer(render.Config{
			Pretty: rc.Pretty,
			Indent: rc.Indent,
		}),
		logger: slog.Default().With("component", "publish"),
	}
}

// NewClient builds an S3 client for the configured region using the
// default credential chain.
func NewClient(region string) *s3.Client {
	return s3.New(s3.Options{Region: region})
}

// Key returns the full object key for a page key, applying the configured
// prefix and defaulting bare directory keys to index.html.
func (p *Publisher) Key(key string) string {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.HasSuffix(key, "/") {
		key = path.Join(key, "index.html")
	}
	return path.Join(p.prefix, key)
}

// PublishHTML uploads an HTML document under the given page key.
func (p *Publisher) PublishHTML(ctx context.Context, key, html string) error {
	objectKey := p.Key(key)

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(objectKey),
		Body:        strings.NewReader(html),
		ContentType: aws.String("text/html; charset=utf-8"),
	})
	if err != nil {
		return errors.New("E070").
			WithDetail("put s3://%s/%s: %v", p.bucket, objectKey, err).
			Wrap(err)
	}

	p.logger.Info("published page", "bucket", p.bucket, "key", objectKey, "bytes", len(html))
	return nil
}

// PublishPage renders a virtual tree and uploads the result under the
// given page key.
func (p *Publisher) PublishPage(ctx context.Context, key string, node *vdom.VNode) error {
	doc := host.NewMemory()
	container := doc.NewContainer("root")

	if err := reconcile.New(doc).Render(node, container); err != nil {
		return errors.New("E071").Wrap(err)
	}
	html, err := p.renderer.ChildrenToString(container)
	if err != nil {
		return errors.New("E071").Wrap(err)
	}
	return p.PublishHTML(ctx, key, html)
}
