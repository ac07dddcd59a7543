// Package web serves the portfolio site: a gin router rendering server-side
// HTML with htmx fragments for the carousels, certification pages, preference
// switches and the contact form.
//
// The CV documents, translations, templates and static assets are embedded,
// so the binary needs no files at runtime.
//
//	site, err := web.New(cfg,
//		web.WithTranslations(translations),
//		web.WithContent(library),
//		web.WithCookies(cookies),
//		web.WithGallery(registry),
//		web.WithContact(contactService),
//		web.WithLogger(log),
//	)
//	g.Go(srv.Run(ctx, site.Handler()))
//
// Every route under the base path renders a full page for plain requests and
// a fragment when the request carries the HX-Request header. Plain POSTs
// redirect back to the page so the site works without JavaScript.
package web
