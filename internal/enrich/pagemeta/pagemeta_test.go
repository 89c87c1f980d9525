package pagemeta_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinelog/internal/enrich/pagemeta"
)

const page = `<!doctype html><html><head>
<title>  The Godfather (1972) - IMDb </title>
<meta property="og:title" content="The Godfather (1972) ⭐ 9.2 | Crime, Drama">
<meta property="og:image" content="/images/godfather.jpg">
<meta name="description" content="Don Vito Corleone, head of a mafia family...">
</head><body></body></html>`

func TestParseResolvesRelativeImage(t *testing.T) {
	meta, err := pagemeta.Parse([]byte(page), "https://www.imdb.com/title/tt0068646/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if meta.Image != "https://www.imdb.com/images/godfather.jpg" {
		t.Fatalf("image = %q", meta.Image)
	}
	if meta.Title != "The Godfather (1972) ⭐ 9.2 | Crime, Drama" || meta.Description == "" {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}

func TestParseFallbacks(t *testing.T) {
	html := `<html><head><title>Plain
	Page</title><link rel="image_src" href="https://cdn.example/p.png"></head></html>`
	meta, err := pagemeta.Parse([]byte(html), "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if meta.Title != "Plain Page" || meta.Image != "https://cdn.example/p.png" {
		t.Fatalf("unexpected meta: %+v", meta)
	}

	meta, _ = pagemeta.Parse([]byte(`<html><meta property="og:image" content="rel.jpg"></html>`), "")
	if meta.Image != "" {
		t.Fatalf("relative image without base must be dropped, got %q", meta.Image)
	}
	if _, err := pagemeta.Parse(nil, ""); err == nil {
		t.Fatal("expected error for empty html")
	}
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(server.Close)

	body, err := pagemeta.Fetch(context.Background(), server.Client(), server.URL+"/title")
	if err != nil || len(body) == 0 {
		t.Fatalf("Fetch = %d bytes, %v", len(body), err)
	}
	if _, err := pagemeta.Fetch(context.Background(), server.Client(), server.URL+"/missing"); err == nil {
		t.Fatal("expected error for 404")
	}
}
