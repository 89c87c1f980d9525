package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"cinelog/internal/enrich"
	"cinelog/internal/store"
)

var providerOrder = []string{enrich.ProviderTMDB, enrich.ProviderOMDB, enrich.ProviderYouTube, enrich.ProviderPage}

type cacheStats struct {
	Path      string             `json:"path"`
	Counts    map[store.Kind]int `json:"counts"`
	Providers map[string]string  `json:"providers"`
}

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the metadata lookup cache",
	}
	cacheCmd.AddCommand(newCacheStatsCommand(ctx))
	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))
	cacheCmd.AddCommand(newCachePruneCommand(ctx))
	return cacheCmd
}

func newCacheStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count cached lookups per kind and show provider circuits",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLookupCache(func(cache *store.Store) error {
				counts, err := cache.Counts(cmd.Context())
				if err != nil {
					return err
				}
				svc, err := enrich.NewFromConfig(ctx.configValue(), cache, ctx.componentLogger("enrich"))
				if err != nil {
					return err
				}
				providers := svc.Status()
				if ctx.jsonOutput() {
					return writeJSON(cmd, cacheStats{Path: cache.Path(), Counts: counts, Providers: providers})
				}
				rows := make([][]string, 0, len(store.Kinds()))
				total := 0
				for _, kind := range store.Kinds() {
					rows = append(rows, []string{string(kind), strconv.Itoa(counts[kind])})
					total += counts[kind]
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(
					[]column{textColumn("Kind", 0), numberColumn("Entries")},
					rows,
					[]string{"total", strconv.Itoa(total)},
				))
				fmt.Fprintf(out, "Cache: %s\n\n", cache.Path())

				providerRows := make([][]string, 0, len(providerOrder))
				for _, name := range providerOrder {
					providerRows = append(providerRows, []string{name, providers[name]})
				}
				fmt.Fprintln(out, renderTable([]column{textColumn("Provider", 0), textColumn("Circuit", 0)}, providerRows, nil))
				return nil
			})
		},
	}
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached lookups, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := store.ParseKind(kindName)
			if err != nil {
				return err
			}
			return ctx.withLookupCache(func(cache *store.Store) error {
				lookups, err := cache.List(cmd.Context(), kind)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, lookups)
				}
				if len(lookups) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Cache is empty")
					return nil
				}
				rows := make([][]string, 0, len(lookups))
				for _, l := range lookups {
					rows = append(rows, []string{
						string(l.Kind),
						l.Title,
						optionalInt(l.Year),
						yesNo(l.Found),
						l.FetchedAt.Local().Format(time.DateTime),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]column{
						textColumn("Kind", 0),
						textColumn("Title", titleWidth),
						numberColumn("Year"),
						textColumn("Found", 0),
						textColumn("Fetched", 0),
					},
					rows,
					nil,
				))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&kindName, "kind", "", fmt.Sprintf("Limit to one kind %v", store.Kinds()))
	return cmd
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete cached lookups",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := store.ParseKind(kindName)
			if err != nil {
				return err
			}
			return ctx.withLookupCache(func(cache *store.Store) error {
				removed, err := cache.Clear(cmd.Context(), kind)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached lookups\n", removed)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&kindName, "kind", "", fmt.Sprintf("Limit to one kind %v", store.Kinds()))
	return cmd
}

func newCachePruneCommand(ctx *commandContext) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete lookups older than the cache max age",
		RunE: func(cmd *cobra.Command, args []string) error {
			age := olderThan
			if age <= 0 {
				age = ctx.configValue().CacheMaxAge()
			}
			if age <= 0 {
				return errors.New("cache max age is not set; pass --older-than")
			}
			return ctx.withLookupCache(func(cache *store.Store) error {
				removed, err := cache.Prune(cmd.Context(), time.Now().Add(-age))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d lookups older than %s\n", removed, age)
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "Age cutoff (defaults to enrichment.cache_max_age_hours)")
	return cmd
}
