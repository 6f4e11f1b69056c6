// Command seed creates a catalog database with sample data.
// Usage: go run ./cmd/seed [-db path/to/catalog.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hondana/hondana/internal/config"
	"github.com/hondana/hondana/internal/database"
	"github.com/hondana/hondana/internal/database/books"
	"github.com/hondana/hondana/internal/database/categories"
)

type sampleBook struct {
	category string
	fields   books.Fields
}

func main() {
	dbPath := flag.String("db", config.DefaultDatabasePath, "path to the catalog database file")
	fresh := flag.Bool("fresh", false, "delete the database file before seeding")
	flag.Parse()

	if *fresh {
		if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
			log.Fatalf("Failed to remove existing database: %v", err)
		}
	}

	log.Printf("Seeding catalog database at %s...", *dbPath)

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	catRepo := categories.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)

	catIDs := make(map[string]uint)
	for _, name := range []string{"Fiction", "Essays", "Poetry"} {
		cat, err := catRepo.Create(name)
		if err != nil {
			log.Fatalf("Failed to create category %s: %v", name, err)
		}
		catIDs[name] = cat.ID
		log.Printf("Created category: %s", name)
	}

	for _, sample := range sampleBooks() {
		fields := sample.fields
		if id, ok := catIDs[sample.category]; ok {
			cid := id
			fields.CategoryID = &cid
		}
		if err := bookRepo.Insert(fields); err != nil {
			log.Printf("Failed to insert book %s: %v", fields.Title, err)
			continue
		}
		log.Printf("Inserted: %s by %s", fields.Title, fields.Author)
	}

	log.Printf("Done.")
}

func sampleBooks() []sampleBook {
	return []sampleBook{
		{
			category: "Fiction",
			fields: books.Fields{
				Title:         "こころ",
				Hepburn:       "Kokoro",
				Author:        "Natsume Soseki",
				PublishedDate: "1914",
				Release:       "1914-04-20",
				URL:           "https://www.aozora.gr.jp/cards/000148/card773.html",
				Summary:       "A novel of friendship, guilt, and the passing of the Meiji era.",
			},
		},
		{
			category: "Fiction",
			fields: books.Fields{
				Title:         "羅生門",
				Hepburn:       "Rashomon",
				Author:        "Akutagawa Ryunosuke",
				PublishedDate: "1915",
				Release:       "1915-11-01",
				Summary:       "A servant weighs survival against morality under the Rashomon gate.",
			},
		},
		{
			category: "Essays",
			fields: books.Fields{
				Title:         "陰翳礼讃",
				Hepburn:       "In'ei Raisan",
				Author:        "Tanizaki Jun'ichiro",
				PublishedDate: "1933",
				Summary:       "In Praise of Shadows - an essay on aesthetics and light.",
			},
		},
		{
			// Intentionally uncategorized to exercise the NULL category path
			fields: books.Fields{
				Title:   "草枕",
				Hepburn: "Kusamakura",
				Author:  "Natsume Soseki",
			},
		},
	}
}
