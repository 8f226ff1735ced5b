package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bloxi-go/bloxi/pkg/bloxi"
	"github.com/bloxi-go/bloxi/pkg/layout"
	"github.com/bloxi-go/bloxi/pkg/router"
	"github.com/bloxi-go/bloxi/pkg/style"
	"github.com/bloxi-go/bloxi/pkg/vdom"
)

// feature is one card on the demo home page.
type feature struct {
	Slug  string
	Title string
	Body  string
}

var features = []feature{
	{"responsive", "Responsive props", "Pass style.R{\"base\": 12, \"md\": 24} and resize the window."},
	{"layout", "Layout helpers", "Row, Column, Stack, Grid and Container build on the same factories."},
	{"routing", "Routing", "Pages are chi routes rendered into a fresh document per request."},
	{"sheet", "One stylesheet", "A single static <style> maps override variables onto real properties."},
}

func findFeature(slug string) (feature, bool) {
	for _, f := range features {
		if f.Slug == slug {
			return f, true
		}
	}
	return feature{}, false
}

// registerDemo adds the demo pages to r.
func registerDemo(r *router.Router) error {
	r.Layout(siteLayout)
	r.NotFound(notFoundPage)

	if err := r.Switch(
		router.Route{Pattern: "/", Page: homePage},
		router.Route{Pattern: "/about", Page: aboutPage},
	); err != nil {
		return err
	}
	if err := r.Nest("/features", func(sub *router.Router) {
		sub.Layout(featureLayout)
		_ = sub.Route("/", featureIndexPage)
		_ = sub.Route("/{slug}", featurePage)
	}); err != nil {
		return err
	}
	return r.Redirect("/home", "/")
}

func siteLayout(ctx *router.Context, content *vdom.VNode) *vdom.VNode {
	nav := layout.Row(layout.RowOptions{
		Spacing:       style.R{"base": 8, "md": 16},
		VerticalAlign: "middle",
		FlexOptions: layout.FlexOptions{Extra: bloxi.Props{
			{"padding", style.R{"base": 12, "md": 20}},
			{"backgroundColor", "#1a202c"},
		}},
	},
		navLink(ctx, "/", "Home", true),
		navLink(ctx, "/features", "Features", false),
		navLink(ctx, "/about", "About", false),
	)

	return layout.Column(layout.ColumnOptions{FullHeight: true},
		bloxi.Header(nil, nav),
		bloxi.Main(bloxi.Props{{"flex", 1}},
			layout.Container(layout.ContainerOptions{Extra: bloxi.Props{{"padding", style.R{"base": 16, "lg": 32}}}},
				content,
			),
		),
		bloxi.Footer(bloxi.Props{{"padding", 16}, {"textAlign", "center"}, {"color", "#718096"}},
			ctx.LocationDisplay(nil),
		),
	)
}

func navLink(ctx *router.Context, href, label string, exact bool) *vdom.VNode {
	return ctx.ActiveLink(href, "active", exact, bloxi.Props{
		{"color", "#e2e8f0"},
		{"textDecoration", "none"},
	}, label)
}

func homePage(ctx *router.Context) *vdom.VNode {
	ctx.SetTitle("bloxi demo")

	cards := bloxi.CreateList(features, func(f feature, _ int) *vdom.VNode {
		return featureCard(ctx, f)
	}, func(f feature, _ int) any { return f.Slug })

	return layout.Stack(layout.StackOptions{Spacing: style.R{"base": 16, "md": 32}},
		bloxi.H1(bloxi.Props{{"fontSize", style.R{"base": 28, "md": 40}}}, "bloxi"),
		bloxi.P(nil, "Responsive style factories rendered on the server."),
		layout.Grid(layout.GridOptions{
			Columns: style.R{"base": 1, "sm": 2, "lg": 4},
			Gap:     16,
		}, cards),
	)
}

func featureCard(ctx *router.Context, f feature) *vdom.VNode {
	return bloxi.Article(bloxi.Props{
		{"padding", 16},
		{"border", "1px solid #e2e8f0"},
		{"borderRadius", 8},
	},
		bloxi.H3(nil, ctx.Link("/features/"+f.Slug, nil, f.Title)),
		bloxi.P(bloxi.Props{{"color", "#4a5568"}}, f.Body),
	)
}

func aboutPage(ctx *router.Context) *vdom.VNode {
	ctx.SetTitle("About")
	widths := style.BreakpointWidths()
	names := make([]string, 0, len(widths))
	for _, bp := range style.DefaultBreakpoints() {
		if bp.Name != style.Base {
			names = append(names, fmt.Sprintf("%s ≥ %dpx", bp.Name, widths[bp.Name]))
		}
	}
	return layout.Stack(layout.StackOptions{Dividers: true},
		bloxi.H2(nil, "Breakpoints"),
		bloxi.P(nil, strings.Join(names, ", ")),
		bloxi.P(nil, "Each page is a fresh document with the stylesheet injected once."),
	)
}

func featureLayout(ctx *router.Context, content *vdom.VNode) *vdom.VNode {
	return layout.Row(layout.RowOptions{Spacing: 24, NoWrap: true},
		bloxi.Aside(bloxi.Props{{"width", style.R{"base": 0, "md": 200}}, {"display", style.R{"base": "none", "md": "block"}}},
			bloxi.CreateContainer(bloxi.Nav, nil, features, func(f feature, _ int) *vdom.VNode {
				return bloxi.Div(nil, ctx.ActiveLink("/features/"+f.Slug, "active", true, nil, f.Title))
			}, func(f feature, _ int) any { return f.Slug }),
		),
		bloxi.Section(bloxi.Props{{"flex", 1}}, content),
	)
}

func featureIndexPage(ctx *router.Context) *vdom.VNode {
	ctx.SetTitle("Features")
	return bloxi.P(nil, "Pick a feature.")
}

func featurePage(ctx *router.Context) *vdom.VNode {
	var params struct {
		Slug string `param:"slug"`
	}
	if err := ctx.Bind(&params); err != nil {
		ctx.SetStatus(http.StatusBadRequest)
		return bloxi.P(nil, err.Error())
	}
	f, ok := findFeature(params.Slug)
	if !ok {
		ctx.SetStatus(http.StatusNotFound)
		return notFoundPage(ctx)
	}
	ctx.SetTitle(f.Title)
	return layout.Stack(layout.StackOptions{},
		bloxi.H2(nil, f.Title),
		bloxi.P(nil, f.Body),
		layout.Divider(layout.DividerOptions{Label: "bloxi", Variant: "dashed"}),
	)
}

func notFoundPage(ctx *router.Context) *vdom.VNode {
	ctx.SetTitle("Not found")
	return layout.Column(layout.ColumnOptions{HorizontalAlign: "center", Spacing: 8},
		bloxi.H1(nil, "404"),
		bloxi.P(nil, "Nothing at ", ctx.Location()),
		ctx.Link("/", nil, "Back home"),
	)
}
