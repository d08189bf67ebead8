package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/reconcile"
	"github.com/loom-ui/loom/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		pretty bool
		out    string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo page to HTML",
		Long: `Render the demo page once and write the HTML to stdout or a file.

Examples:
  loom render
  loom render --pretty
  loom render --out=index.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(pretty, out)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runRender(pretty bool, out string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if pretty {
		cfg.Render.Pretty = true
	}

	doc := host.NewMemory()
	container := doc.NewContainer("root")
	if err := reconcile.New(doc).Render(newDemoApp().view(), container); err != nil {
		return err
	}

	renderer := render.NewRenderer(render.Config{
		Pretty: cfg.Render.Pretty,
		Indent: cfg.Render.Indent,
	})
	html, err := renderer.ChildrenToString(container)
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Println(html)
		return nil
	}
	return os.WriteFile(out, []byte(html+"\n"), 0644)
}
