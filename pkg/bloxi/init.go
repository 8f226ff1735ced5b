package bloxi

import (
	"log/slog"
	"sync"

	"github.com/bloxi-go/bloxi/pkg/render"
	"github.com/bloxi-go/bloxi/pkg/style"
	"github.com/bloxi-go/bloxi/pkg/vdom"
)

var (
	sheetOnce    sync.Once
	defaultSheet *style.Sheet
)

// Sheet returns the process-wide responsive stylesheet for the default
// breakpoints. It is built on first use.
func Sheet() *style.Sheet {
	sheetOnce.Do(func() {
		defaultSheet = style.NewSheet(nil)
	})
	return defaultSheet
}

// Init injects the responsive stylesheet into host once. It reports whether
// this call injected it. A nil host is a no-op.
func Init(host style.Host) bool {
	return Sheet().Inject(host)
}

// AppOption configures an App.
type AppOption func(*App)

// WithStrict toggles strict mode. Strict mode is on by default.
func WithStrict(strict bool) AppOption {
	return func(a *App) { a.strict = strict }
}

// WithLogger sets the logger used for strict mode warnings.
func WithLogger(logger *slog.Logger) AppOption {
	return func(a *App) { a.logger = logger }
}

// WithSheet replaces the stylesheet injected on mount.
func WithSheet(sheet *style.Sheet) AppOption {
	return func(a *App) { a.sheet = sheet }
}

// App mounts trees into documents, injecting the stylesheet first. In strict
// mode it also checks every mounted tree for duplicate sibling keys and logs a
// warning for each.
type App struct {
	strict bool
	sheet  *style.Sheet
	logger *slog.Logger
}

// NewApp creates an App.
func NewApp(opts ...AppOption) *App {
	a := &App{strict: true}
	for _, opt := range opts {
		opt(a)
	}
	if a.sheet == nil {
		a.sheet = Sheet()
	}
	if a.logger == nil {
		a.logger = slog.Default().With("component", "bloxi")
	}
	return a
}

// Strict reports whether strict mode is on.
func (a *App) Strict() bool { return a.strict }

// Mount injects the stylesheet into doc and mounts node into the container
// with the given id ("#id" is accepted).
func (a *App) Mount(doc *render.Document, node *vdom.VNode, container string) error {
	a.sheet.Inject(doc)
	if a.strict {
		for _, dup := range DuplicateKeys(node) {
			a.logger.Warn("duplicate sibling key", "key", dup.Key, "parent", dup.Parent)
		}
	}
	return doc.Mount(node, container)
}

// RenderRoot mounts node into the document's default root container.
func (a *App) RenderRoot(doc *render.Document, node *vdom.VNode) error {
	return a.Mount(doc, node, render.DefaultRootID)
}

// RenderRoot injects the default stylesheet and mounts node into the root
// container of doc.
func RenderRoot(doc *render.Document, node *vdom.VNode) error {
	Init(doc)
	return doc.RenderRoot(node)
}

// KeyConflict is a key used by more than one child of the same parent.
type KeyConflict struct {
	Key    string
	Parent string // parent tag, or display name when it has one
}

// DuplicateKeys walks the tree and reports keys repeated among siblings.
func DuplicateKeys(root *vdom.VNode) []KeyConflict {
	var out []KeyConflict
	root.Walk(func(n *vdom.VNode) bool {
		if len(n.Children) < 2 {
			return true
		}
		seen := make(map[string]bool, len(n.Children))
		for _, child := range n.Children {
			if child == nil || child.Key == "" {
				continue
			}
			if seen[child.Key] {
				parent := DisplayName(n)
				if parent == "" {
					parent = n.Tag
				}
				out = append(out, KeyConflict{Key: child.Key, Parent: parent})
				continue
			}
			seen[child.Key] = true
		}
		return true
	})
	return out
}
