// Package content loads the localized CV documents rendered by the portfolio.
//
// Each language has one JSON document ("cv.<lang>.json") sharing the schema
// embedded in this package. At load time every document is validated, every
// root-relative string ("/images/me.png") is prefixed with the deployment base
// path, and the result is decoded into a typed Document:
//
//	//go:embed data/*.json
//	var data embed.FS
//
//	library, err := content.Load(data, "data/cv.*.json",
//		content.WithBasePath("/portfolio-mui/"),
//	)
//
//	doc := library.Get("fr") // falls back to the default language document
//	doc.Personal.ProfilePicture // "/portfolio-mui/images/profile.jpg"
//
// Scheme-qualified URLs, data URIs and protocol-relative URLs are left untouched.
package content
