// Package main implements a mock listings backend for local development.
// It serves canned listings, brands, and models from a JSON fixture so the
// gateway can run without the real backend.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

type fixture struct {
	Listings []json.RawMessage         `json:"listings"`
	Brands   []catalogEntry            `json:"brands"`
	Models   map[string][]catalogEntry `json:"models"`
}

type catalogEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// listingFields carries only the fields the mock needs for filtering and
// sorting; the raw message is served back untouched.
type listingFields struct {
	ID          int     `json:"id"`
	BrandID     int     `json:"brandId"`
	ModelID     int     `json:"modelId"`
	Price       float64 `json:"price"`
	Mileage     int     `json:"mileage"`
	ViewCount   int     `json:"viewCount"`
	Description string  `json:"description"`
	Region      string  `json:"region"`
}

type indexedListing struct {
	raw    json.RawMessage
	fields listingFields
}

func main() {
	port := flag.Int("port", 8090, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-backend/testdata/listings.json", "path to fixture file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture",
		"listings", len(fx.Listings),
		"brands", len(fx.Brands),
	)

	listings := indexListings(fx.Listings)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /listings", listingsHandler(logger, listings))
	mux.HandleFunc("GET /listings/{id}", listingHandler(logger, listings))
	mux.HandleFunc("GET /brands", brandsHandler(fx.Brands))
	mux.HandleFunc("GET /brands/{id}/models", modelsHandler(fx.Models))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock listings backend", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func indexListings(raws []json.RawMessage) []indexedListing {
	listings := make([]indexedListing, 0, len(raws))
	for _, raw := range raws {
		var f listingFields
		//nolint:errcheck,gosec // fixture data is trusted; field extraction is best-effort
		json.Unmarshal(raw, &f)
		listings = append(listings, indexedListing{raw: raw, fields: f})
	}
	return listings
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func listingsHandler(logger *slog.Logger, listings []indexedListing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		search := strings.ToLower(q.Get("search"))

		matched := make([]indexedListing, 0, len(listings))
		for _, l := range listings {
			if search != "" && !strings.Contains(strings.ToLower(l.fields.Description), search) {
				continue
			}
			if region := q.Get("region"); region != "" && !strings.EqualFold(l.fields.Region, region) {
				continue
			}
			matched = append(matched, l)
		}

		sortListings(matched, q.Get("sort"), q.Get("order"))

		page := parseIntDefault(q.Get("page"), 1)
		perPage := parseIntDefault(q.Get("per_page"), 10)
		start := (page - 1) * perPage
		if start > len(matched) {
			start = len(matched)
		}
		end := min(start+perPage, len(matched))

		out := make([]json.RawMessage, 0, end-start)
		for _, l := range matched[start:end] {
			out = append(out, l.raw)
		}

		writeJSON(w, out)
		logger.Info("listings",
			"search", search,
			"matched", len(matched),
			"returned", len(out),
			"page", page,
		)
	}
}

func sortListings(listings []indexedListing, field, order string) {
	desc := order == "DESC"
	less := func(a, b *listingFields) bool { return a.ID < b.ID }

	switch field {
	case "price":
		less = func(a, b *listingFields) bool { return a.Price < b.Price }
	case "mileage":
		less = func(a, b *listingFields) bool { return a.Mileage < b.Mileage }
	case "views":
		less = func(a, b *listingFields) bool { return a.ViewCount < b.ViewCount }
	}

	sort.SliceStable(listings, func(i, j int) bool {
		if desc {
			return less(&listings[j].fields, &listings[i].fields)
		}
		return less(&listings[i].fields, &listings[j].fields)
	})
}

func listingHandler(logger *slog.Logger, listings []indexedListing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			http.Error(w, `{"error":"invalid id"}`, http.StatusBadRequest)
			return
		}

		for _, l := range listings {
			if l.fields.ID == id {
				writeJSON(w, l.raw)
				return
			}
		}

		logger.Warn("listing not found", "id", id)
		http.Error(w, `{"error":"listing not found"}`, http.StatusNotFound)
	}
}

func brandsHandler(brands []catalogEntry) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if brands == nil {
			brands = []catalogEntry{}
		}
		writeJSON(w, brands)
	}
}

func modelsHandler(models map[string][]catalogEntry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := models[r.PathValue("id")]
		if entries == nil {
			entries = []catalogEntry{}
		}
		writeJSON(w, entries)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func parseIntDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return def
}
