// Package main provides the entry point for the Shelfmark catalog demo.
//
// The binary plays the role of the presentation collaborator: it builds the
// engine, loads the fixture catalog, and renders the sorted listing. All
// catalog semantics live in internal/; nothing here mutates engine state
// except through the service layer.
//
// Usage:
//
//	go run ./cmd/shelfmark
//	go run ./cmd/shelfmark -seed=false -log-level debug
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/samber/do/v2"

	"github.com/shelfmarkapp/shelfmark/internal/config"
	"github.com/shelfmarkapp/shelfmark/internal/di"
	"github.com/shelfmarkapp/shelfmark/internal/domain"
	"github.com/shelfmarkapp/shelfmark/internal/logger"
	"github.com/shelfmarkapp/shelfmark/internal/service"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "shelfmark: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	injector := di.NewContainer(args)
	defer func() {
		_ = injector.Shutdown()
	}()

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := do.Invoke[*logger.Logger](injector)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	catalog := do.MustInvoke[*service.Catalog](injector)

	if cfg.Seed.Enabled {
		if err := seedCatalog(catalog); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		log.Info("fixture catalog loaded", "records", catalog.Count())
	}

	renderListing(out, catalog.AllSorted())
	return nil
}

// renderListing prints the catalog in ascending title order, with each
// record's most recent history entry.
func renderListing(out io.Writer, recs []*domain.Record) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tAUTHOR\tSTATUS\tLAST EVENT")
	for _, rec := range recs {
		last := rec.History.NewestFirst()[0]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s (%s)\n",
			rec.Title, rec.Author, rec.Status,
			last.Kind, last.At.Format("2006-01-02 15:04:05"),
		)
	}
	w.Flush()
}
