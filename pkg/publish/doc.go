// Package publish writes the bloxi media-query stylesheet to static
// storage so pages can link it instead of carrying it inline.
//
// Two stores are provided: DiskStore for a local output directory and
// S3Store for an S3 bucket (or any S3-compatible endpoint). Both implement
// Store, so other backends plug in the same way.
//
// Keys are content-addressed:
//
//	res, err := publish.Stylesheet(ctx, store, style.NewSheet(nil), "assets/")
//	// res.Key == "assets/bloxi-3f2a9c01d4e5.css"
//
// Failures are returned as E301 errors from internal/errors.
package publish
