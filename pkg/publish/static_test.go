package publish

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bloxi-go/bloxi/pkg/style"
)

func TestStaticRelPath(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"/bloxi.css", "bloxi.css", true},
		{"/css/bloxi-0123456789ab.css", "css/bloxi-0123456789ab.css", true},
		{"/", "", false},
		{"/../secret", "", false},
		{"/css/../../secret", "", false},
		{"/./bloxi.css", "", false},
		{"//etc/passwd", "", false},
		{"/a\\b.css", "", false},
		{"/a\x00.css", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := staticRelPath(tt.path)
			if ok != tt.ok || got != tt.want {
				t.Errorf("staticRelPath(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIsContentHashed(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"assets/bloxi-0123456789ab.css", true},
		{"bloxi-0123456789ab.css", true},
		{"bloxi-0123456789.css", false},
		{"bloxi-0123456789xy.css", false},
		{"app.css", false},
		{"bloxi-0123456789ab.js", false},
	}
	for _, tt := range tests {
		if got := isContentHashed(tt.path); got != tt.want {
			t.Errorf("isContentHashed(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestHandlerServesPublishedSheet(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	sheet := style.NewSheet(nil)
	res, err := Stylesheet(context.Background(), store, sheet, "css/")
	if err != nil {
		t.Fatal(err)
	}

	h := Handler(dir)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+res.Key, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != sheet.CSS() {
		t.Error("body differs from sheet CSS")
	}
	if got := rec.Header().Get("Cache-Control"); got != CacheControl {
		t.Errorf("Cache-Control = %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != CSSContentType {
		t.Errorf("Content-Type = %q", got)
	}

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/css/missing.css", http.StatusNotFound},
		{http.MethodGet, "/css", http.StatusNotFound},
		{http.MethodGet, "/../etc/passwd", http.StatusNotFound},
		{http.MethodPost, "/" + res.Key, http.StatusMethodNotAllowed},
		{http.MethodHead, "/" + res.Key, http.StatusOK},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(tt.method, "/", nil)
		req.URL.Path = tt.path
		h.ServeHTTP(rec, req)
		if rec.Code != tt.want {
			t.Errorf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
		}
	}
}
