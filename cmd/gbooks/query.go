// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gbooks/internal/logger"
	"github.com/pdiddy/gbooks/internal/prompt"
	"github.com/pdiddy/gbooks/internal/readinglist"
	"github.com/pdiddy/gbooks/internal/search"
)

const missingQueryMessage = `Error: Missing query. Try adding a book title to query (e.g. gbooks query "A BOOK TITLE").`

// newSelector builds the interactive picker. Tests replace it.
var newSelector = func(accessible bool) prompt.Selector {
	return &prompt.HuhSelector{Accessible: accessible}
}

var queryCmd = &cobra.Command{
	Use:     "query [search...]",
	Aliases: []string{"q"},
	Short:   "Query a book by search argument",
	Long: `Query searches the Google Books catalog for the given terms and lets you
pick one result to add to your reading list. Books already on the list are
not added twice.`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().Int("max-results", 0, "number of results to show (default 5, at most 40)")
	queryCmd.Flags().Bool("accessible", false, "use a line-based prompt instead of the interactive menu")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	if n, _ := cmd.Flags().GetInt("max-results"); n > 0 {
		cfg.Catalog.MaxResults = n
	}

	searcher := search.NewSearcher(newFetcher(cfg.Catalog), cfg.Catalog)
	searcher.MissingQueryMessage = missingQueryMessage

	ctx := logger.WithQuery(cmd.Context(), strings.Join(args, " "))
	out := searcher.Search(ctx, args)
	if !out.OK() {
		logger.For(ctx).WithField("kind", out.Failure.Kind).Debug("search failed")
		return out.Failure
	}

	w := cmd.OutOrStdout()
	if len(out.Choices) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	accessible, _ := cmd.Flags().GetBool("accessible")
	sel, err := newSelector(accessible).Select(prompt.DefaultTitle, out.Choices)
	if err != nil {
		return err
	}
	if sel.Declined {
		return nil
	}
	logger.For(ctx).Debugf("selected %s", sel.Choice.ShortLabel)

	store, closeStore, err := openStore(cfg.Storage)
	if err != nil {
		return err
	}
	defer closeStore()

	added, err := readinglist.New(store).Add(sel.Choice.Value)
	if err != nil {
		return err
	}

	styles := prompt.DefaultStyles()
	if added {
		fmt.Fprintln(w, styles.Success.Render("Successfully added "+sel.Choice.Value))
	} else {
		fmt.Fprintln(w, styles.Notice.Render(sel.Choice.Value+" is already in your reading list."))
	}
	return nil
}
