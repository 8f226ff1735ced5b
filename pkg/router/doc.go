// Package router maps request paths to bloxi pages.
//
// Matching is done by a go-chi/chi mux. Each matched page is rendered into a
// fresh render.Document, with the responsive stylesheet injected and the
// page mounted into the root container.
//
// # Usage
//
//	r := router.New(router.Config{Base: "/app"})
//	r.Layout(func(ctx *router.Context, content *vdom.VNode) *vdom.VNode {
//	    return bloxi.Main(nil, content)
//	})
//	r.Switch(
//	    router.Route{Pattern: "/", Page: home},
//	    router.Route{Pattern: "/users/{id}", Page: user},
//	)
//	r.Nest("/dashboard", func(sub *router.Router) {
//	    sub.Route("/settings", settings)
//	})
//	http.ListenAndServe(":3000", r)
//
// Pages read the match through their Context:
//
//	func user(ctx *router.Context) *vdom.VNode {
//	    return bloxi.H1(nil, "User ", ctx.Param("id"))
//	}
//
// Invalid patterns fail with error code E201.
package router
