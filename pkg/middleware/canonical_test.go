package middleware

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCanonicalPath(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		changed bool
		err     error
	}{
		{"/", "/", false, nil},
		{"", "/", true, nil},
		{"/about", "/about", false, nil},
		{"/about/", "/about", true, nil},
		{"//blog///post", "/blog/post", true, nil},
		{"/blog/./post", "/blog/post", true, nil},
		{"/blog/../other", "/other", true, nil},
		{"/a%20b", "/a%20b", false, nil},
		{"/../secret", "", false, ErrPathEscapesRoot},
		{"/a\\b", "", false, ErrBackslashInPath},
		{"/a%00b", "", false, ErrNullByteInPath},
		{"/a%GG", "", false, ErrInvalidPercentEscape},
		{"/a%2", "", false, ErrInvalidPercentEscape},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, changed, err := CanonicalPath(tt.in)
			if !stderrors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if got != tt.want || changed != tt.changed {
				t.Errorf("got %q, %v; want %q, %v", got, changed, tt.want, tt.changed)
			}
		})
	}
}

func TestCanonicalMiddleware(t *testing.T) {
	h := Canonical(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		method   string
		target   string
		status   int
		location string
	}{
		{http.MethodGet, "/about", http.StatusOK, ""},
		{http.MethodGet, "/about/", http.StatusMovedPermanently, "/about"},
		{http.MethodGet, "/a//b?x=1", http.StatusMovedPermanently, "/a/b?x=1"},
		{http.MethodHead, "/a/", http.StatusMovedPermanently, "/a"},
		{http.MethodPost, "/about/", http.StatusOK, ""},
		{http.MethodGet, "/../secret", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if got := rec.Header().Get("Location"); got != tt.location {
				t.Errorf("Location = %q, want %q", got, tt.location)
			}
		})
	}
}
