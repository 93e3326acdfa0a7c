// Package route discovers navigable routes from a route-directory tree.
//
// Two directory conventions are supported:
//
//	pages/                       app/
//	├── index.tsx    → /         ├── page.tsx            → /
//	├── about.tsx    → /about    ├── dashboard/
//	└── user/                    │   └── page.tsx        → /dashboard
//	    └── [id].tsx → /user/…   └── profile/[id]/
//	                                 └── page.tsx        → /profile/…
//
// Bracketed names ([id], [...slug]) become dynamic segments, which render as
// the template placeholder ${string}. Every Path carries its kind from the
// moment the walker creates it, so classification never depends on
// inspecting rendered text.
//
// # Usage
//
//	walker, err := route.NewWalker(route.NewAFSLister(nil), route.App, route.WalkOptions{})
//	if err != nil {
//	    return err
//	}
//	routes, err := walker.Walk(ctx, "./src/app")
//
// The walk is all-or-nothing: on error no routes are returned.
package route
