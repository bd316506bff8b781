package model

import (
	"fmt"
	"strconv"
	"strings"
)

// CatalogSize is the number of records in the generated demo catalog.
const CatalogSize = 250

// Title and brand cycles for catalog generation. Record i gets
// titleCycle[i%10] and brandCycle[i%4].
var (
	titleCycle = [...]string{
		"Stand Mixer",
		"Espresso Machine",
		"Chef Knife",
		"Cast Iron Skillet",
		"Dutch Oven",
		"Food Processor",
		"Sous Vide Wand",
		"Copper Saucepan",
		"Mandoline Slicer",
		"Salad Spinner",
	}
	brandCycle = [...]string{"Aran", "Bertazzoni", "Caesarstone", "Radianz"}
)

// Record is a single catalog entry. Records are created once at startup and
// never mutated afterwards.
type Record struct {
	ID    string
	Title string
	Brand string
	Price int // whole dollars
}

// DisplayPrice returns the price formatted for a result card.
func (r Record) DisplayPrice() string {
	return fmt.Sprintf("$%d", r.Price)
}

// Matches reports whether the record's title or brand contains the already
// normalized query as a substring. The empty query matches everything.
func (r Record) Matches(normalized string) bool {
	if normalized == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), normalized) ||
		strings.Contains(strings.ToLower(r.Brand), normalized)
}

// NormalizeQuery trims surrounding whitespace and lowercases a raw query.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Filter returns the subsequence of records matching query, preserving the
// input order. The input slice is never modified.
func Filter(records []Record, query string) []Record {
	normalized := NormalizeQuery(query)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Matches(normalized) {
			out = append(out, r)
		}
	}
	return out
}

// GenerateCatalog builds the fixed demo catalog deterministically: ids are
// 1-based decimal strings, titles and brands cycle, and the price follows
// 99 + (i*17 mod 900).
func GenerateCatalog() []Record {
	records := make([]Record, CatalogSize)
	for i := range records {
		records[i] = Record{
			ID:    strconv.Itoa(i + 1),
			Title: titleCycle[i%len(titleCycle)],
			Brand: brandCycle[i%len(brandCycle)],
			Price: 99 + (i*17)%900,
		}
	}
	return records
}
