package publish

import (
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Handler serves files published to a DiskStore rooted at dir. The request
// path is the object key, so mounting under the publish prefix works without
// stripping: mux.Mount("/assets", publish.Handler(dir)).
//
// Content-hashed files (bloxi-<hash>.css) are served as immutable; anything
// else gets a short revalidating cache.
func Handler(dir string) http.Handler {
	return &staticHandler{fsys: os.DirFS(dir)}
}

type staticHandler struct {
	fsys fs.FS
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	rel, ok := staticRelPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	f, err := h.fsys.Open(rel)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	rs, ok := f.(io.ReadSeeker)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if isContentHashed(rel) {
		w.Header().Set("Cache-Control", CacheControl)
	} else {
		w.Header().Set("Cache-Control", "public, max-age=3600, must-revalidate")
	}
	if strings.HasSuffix(rel, ".css") {
		w.Header().Set("Content-Type", CSSContentType)
	}
	http.ServeContent(w, r, rel, info.ModTime(), rs)
}

// staticRelPath turns a request path into a clean path relative to the
// store root. Traversal, absolute paths, backslashes and NUL bytes are
// rejected.
func staticRelPath(urlPath string) (string, bool) {
	rel := strings.TrimPrefix(urlPath, "/")
	if rel == "" {
		return "", false
	}
	if strings.IndexByte(rel, 0) != -1 || strings.Contains(rel, "\\") {
		return "", false
	}
	// "/assets//etc/passwd" leaves a leading slash after the prefix.
	if strings.HasPrefix(rel, "/") {
		return "", false
	}
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", false
	}
	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}
	return clean, true
}

// isContentHashed reports whether the file name carries a content hash as
// produced by Key: bloxi-<12 hex>.css.
func isContentHashed(p string) bool {
	base := path.Base(p)
	if !strings.HasPrefix(base, "bloxi-") || !strings.HasSuffix(base, ".css") {
		return false
	}
	hash := strings.TrimSuffix(strings.TrimPrefix(base, "bloxi-"), ".css")
	if len(hash) != hashLen {
		return false
	}
	for _, c := range hash {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}
