// Package gallery keeps the carousel state of every visitor between requests.
//
// Each (visitor, view) pair gets its own carousel.Navigator, so two visitors
// browsing projects never share a cursor. Views that are not touched for the
// TTL are evicted and their navigators closed, which stops pending cooldown
// and auto-play timers. The registry never holds more than MaxViews views;
// creating one more evicts the least recently accessed.
//
// View and Pager create state. Lookup and LookupPager only return existing
// state, so pages rendered for visitors who never navigated cost nothing.
//
//	registry := gallery.NewRegistry(
//		gallery.WithTTL(30*time.Minute),
//		gallery.WithMaxViews(10000),
//		gallery.WithLogger(log),
//	)
//	g.Go(registry.Run(ctx))
//
//	nav := registry.View(visitorID, "projects", len(doc.Projects))
//	nav.Next()
package gallery
