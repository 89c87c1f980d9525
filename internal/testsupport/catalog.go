package testsupport

import (
	"encoding/csv"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/jaswdr/faker"

	"cinelog/internal/catalog"
)

// Genres is the genre vocabulary used for generated catalogs.
var Genres = []string{"Action", "Comedy", "Crime", "Drama", "Horror", "Mystery", "Romance", "Sci-Fi", "Thriller", "War"}

// RandomCatalog generates n rows through the real loader so derived fields
// (normalized title, search blob) match production. Roughly one row in five
// leaves the personal rating blank and one in eight leaves the year blank.
func RandomCatalog(t testing.TB, seed int64, n int) *catalog.Catalog {
	t.Helper()

	fake := faker.NewWithSeed(rand.NewSource(seed))
	directors := make([]string, 6)
	for i := range directors {
		directors[i] = fake.Person().Name()
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	header := strings.Split(CatalogHeader, ",")
	if err := w.Write(header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for i := 0; i < n; i++ {
		rating := ""
		if fake.IntBetween(1, 5) != 1 {
			rating = strconv.Itoa(fake.IntBetween(0, 10))
		}
		year := ""
		if fake.IntBetween(1, 8) != 1 {
			year = strconv.Itoa(fake.IntBetween(1930, 2024))
		}
		genres := pickDistinct(fake, Genres, fake.IntBetween(1, 3))
		dirs := pickDistinct(fake, directors, fake.IntBetween(1, 2))
		imdb := strconv.FormatFloat(fake.Float64(1, 1, 9), 'f', 1, 64)
		title := strings.TrimSuffix(fake.Lorem().Sentence(fake.IntBetween(1, 4)), ".")

		record := []string{
			"tt" + strconv.Itoa(1000000+i), rating, "2024-01-02", title, title,
			"", "Movie", imdb, strconv.Itoa(fake.IntBetween(70, 200)), year,
			strings.Join(genres, ", "), strconv.Itoa(fake.IntBetween(100, 50000)), "",
			strings.Join(dirs, ", "),
		}
		if err := w.Write(record); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush csv: %v", err)
	}

	cat, err := catalog.Parse([]byte(b.String()), "generated")
	if err != nil {
		t.Fatalf("parse generated catalog: %v", err)
	}
	return cat
}

func pickDistinct(fake faker.Faker, pool []string, n int) []string {
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for len(out) < n && len(seen) < len(pool) {
		v := fake.RandomStringElement(pool)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
