package main

import (
	"sync"
	"time"

	"github.com/loom-ui/loom/pkg/vdom"
)

// demoApp is the application the CLI commands operate on: a clock page
// with a keyed list, enough to exercise patching, memoization, and
// lifecycle hooks end to end.
type demoApp struct {
	mu    sync.Mutex
	now   time.Time
	items []string
}

func newDemoApp() *demoApp {
	return &demoApp{
		now:   time.Now(),
		items: []string{"alpha", "beta", "gamma"},
	}
}

var clockCard = vdom.Component(func(data any, args ...any) *vdom.VNode {
	return vdom.Div(vdom.Class("clock"),
		vdom.H2("Server time"),
		vdom.P(data.(string)),
	)
}, vdom.Options{
	KeyFn: func(any) string { return "clock" },
})

var itemRow = vdom.Component(func(data any, args ...any) *vdom.VNode {
	return vdom.Li(data.(string))
}, vdom.Options{
	KeyFn: func(data any) string { return data.(string) },
})

// view renders the demo page for the current state.
func (a *demoApp) view() *vdom.VNode {
	a.mu.Lock()
	defer a.mu.Unlock()

	rows := vdom.Map(a.items, func(item string, _ int) *vdom.VNode {
		return itemRow(item)
	})

	return vdom.Div(vdom.Class("demo"),
		vdom.Header(vdom.H1("Loom demo")),
		vdom.Main(
			clockCard(a.now.Format(time.RFC3339)),
			vdom.Ul(vdom.Class("items"), rows),
		),
		vdom.Footer(vdom.P("rendered by loom")),
	)
}

// tick advances the clock and rotates the item list.
func (a *demoApp) tick() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.now = time.Now()
	if len(a.items) > 1 {
		a.items = append(a.items[1:], a.items[0])
	}
}
