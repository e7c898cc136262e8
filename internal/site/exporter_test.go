package site

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"postsite/app/internal/posts"
)

func TestExportWritesOneDocumentPerStaticParam(t *testing.T) {
	t.Parallel()

	renderer := newStubRenderer(t, func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/posts/")
		fmt.Fprintf(w, `{"title": "title-%s", "body": "body-%s"}`, id, id)
	})

	outputDir := t.TempDir()

	exporter, err := NewExporter(renderer, outputDir, discardLogger())
	if err != nil {
		t.Fatalf("NewExporter returned error: %v", err)
	}

	if err := exporter.Export(context.Background()); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	for _, id := range posts.StaticParams() {
		path := filepath.Join(outputDir, "posts", id, "index.html")
		document, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected exported document at %s: %v", path, err)
		}
		if !strings.Contains(string(document), "<h1>title-"+id+"</h1>") {
			t.Errorf("document for %q carries wrong title: %q", id, document)
		}
	}
}

func TestExportAbortsOnFirstFailure(t *testing.T) {
	t.Parallel()

	renderer := newStubRenderer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/posts/2" {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream unavailable"))
			return
		}
		_, _ = w.Write([]byte(`{"title": "ok", "body": "ok"}`))
	})

	outputDir := t.TempDir()

	exporter, err := NewExporter(renderer, outputDir, discardLogger())
	if err != nil {
		t.Fatalf("NewExporter returned error: %v", err)
	}

	if err := exporter.Export(context.Background()); err == nil {
		t.Fatal("expected export to fail when a render fails")
	}

	if _, err := os.Stat(exporter.DocumentPath("3")); !os.IsNotExist(err) {
		t.Errorf("expected export to stop before post 3, stat err: %v", err)
	}
}

func TestDocumentPathLayout(t *testing.T) {
	t.Parallel()

	renderer := newStubRenderer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	exporter, err := NewExporter(renderer, "/srv/out", nil)
	if err != nil {
		t.Fatalf("NewExporter returned error: %v", err)
	}

	expected := filepath.Join("/srv/out", "posts", "7", "index.html")
	if got := exporter.DocumentPath("7"); got != expected {
		t.Fatalf("expected document path %q, got %q", expected, got)
	}
}
