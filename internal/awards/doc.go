// Package awards loads Academy Award datasets and produces rollups and a
// cross reference against the catalog.
//
// Two layouts are recognized from the header row. The ceremony layout
// carries year_film, year_ceremony, category, canon_category, name, film and
// winner columns. The nomination layout carries Year, Category, Film, Name
// and Winner; its Year is the film year and the ceremony is taken to be the
// following year.
package awards
