package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"cinelog/internal/enrich/tmdb"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := tmdb.New("", "https://example.com", "en-US"); err == nil {
		t.Fatal("expected error when api key missing")
	}
	if _, err := tmdb.New("key", " ", "en-US"); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestSearchMovieSendsYear(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/search/movie" || q.Get("api_key") != "key" || q.Get("primary_release_year") != "1972" {
			t.Errorf("unexpected request: %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":238,"title":"The Godfather","release_date":"1972-03-14","poster_path":"/3bhkrj58Vtu7enYsRolD1fZdja1.jpg","vote_average":8.7}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "en-US", tmdb.WithImageBaseURL("https://img.example/w500/"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	resp, err := client.SearchMovieWithOptions(context.Background(), "The Godfather", tmdb.SearchOptions{Year: 1972})
	if err != nil {
		t.Fatalf("SearchMovieWithOptions returned error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].ID != 238 || resp.Results[0].Year() != 1972 {
		t.Fatalf("unexpected response: %#v", resp)
	}
	if got := client.PosterURL(resp.Results[0].PosterPath); got != "https://img.example/w500/3bhkrj58Vtu7enYsRolD1fZdja1.jpg" {
		t.Fatalf("poster url = %q", got)
	}
	if client.PosterURL("") != "" {
		t.Fatal("empty poster path must produce no url")
	}
}

func TestSearchMovieHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status_code":500}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchMovie(context.Background(), "fail"); err == nil {
		t.Fatal("expected error when TMDB returns non-200")
	}
}

func TestSearchMovieEmptyQuery(t *testing.T) {
	client, err := tmdb.New("key", "https://example.com", "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchMovie(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestWatchProvidersByCountry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/238/watch/providers" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":238,"results":{"US":{"link":"https://www.themoviedb.org/movie/238/watch?locale=US",
			"flatrate":[{"provider_id":531,"provider_name":"Paramount Plus"}],
			"rent":[{"provider_id":2,"provider_name":"Apple TV"},{"provider_id":531,"provider_name":"Paramount Plus"}]}}}`))
	}))
	t.Cleanup(server.Close)

	client, _ := tmdb.New("key", server.URL, "")
	us, err := client.WatchProviders(context.Background(), 238, "us")
	if err != nil {
		t.Fatalf("WatchProviders: %v", err)
	}
	if us.Link == "" || !slices.Equal(us.Names(), []string{"Paramount Plus", "Apple TV"}) {
		t.Fatalf("unexpected providers: %+v %v", us, us.Names())
	}

	br, err := client.WatchProviders(context.Background(), 238, "BR")
	if err != nil || len(br.Names()) != 0 || br.Link != "" {
		t.Fatalf("missing country should be empty: %+v %v", br, err)
	}
}

func TestVideos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":238,"results":[{"key":"sY1S34973zA","site":"YouTube","type":"Trailer","official":true}]}`))
	}))
	t.Cleanup(server.Close)

	client, _ := tmdb.New("key", server.URL, "")
	videos, err := client.Videos(context.Background(), 238)
	if err != nil || len(videos) != 1 || videos[0].Key != "sY1S34973zA" {
		t.Fatalf("Videos = %+v, %v", videos, err)
	}
	if _, err := client.Videos(context.Background(), 0); err == nil {
		t.Fatal("expected error for zero id")
	}
}
