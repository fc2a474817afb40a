package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/astronexus/internal/browse"
	"github.com/papapumpkin/astronexus/internal/catalog"
	"github.com/papapumpkin/astronexus/internal/dataset"
	"github.com/papapumpkin/astronexus/internal/telemetry"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the browser's sections and their number keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		newPrinter(cmd).Sections(browse.Sections())
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list [store]",
	Short: "Search and filter a catalog",
	Long: `List the records of a catalog, narrowed by a case-insensitive search and
any number of facet filters. With no store, list the store names.

An empty result is not an error.`,
	Example: `  astronexus list gallery --search nebula
  astronexus list timeline --category cosmic --sort date
  astronexus list timeline --filter scale=galactic`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

var showCmd = &cobra.Command{
	Use:   "show <store> <id>",
	Short: "Show one record's details",
	Long: `Show every field of one record. An unknown id shows the store's default
record instead, with a notice.`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func init() {
	listCmd.Flags().String("search", "", "case-insensitive text to match")
	listCmd.Flags().String("category", "", "category to keep (default: all)")
	listCmd.Flags().StringArray("filter", nil, "facet=value filter; repeatable")
	listCmd.Flags().String("sort", "", "sort order: none, date, name or category")
	rootCmd.AddCommand(sectionsCmd, listCmd, showCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd)
	if len(args) == 0 {
		p.Stores(dataset.Names())
		return nil
	}

	q, err := queryFromFlags(cmd)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	c, err := s.lib.Catalog(args[0])
	if err != nil {
		return err
	}
	items := c.Query(q)
	logger.Debug("query", zap.String("store", c.Name()), zap.String("search", q.Search),
		zap.Any("filters", q.Filters), zap.Stringer("sort", q.Sort), zap.Int("results", len(items)))

	p.Results(items)
	s.record(telemetry.Event{Kind: telemetry.KindQuery, Dataset: c.Name(), Data: telemetry.QueryData{
		Search:   q.Search,
		Category: q.Filter(catalog.FacetCategory),
		Sort:     q.Sort.String(),
		Results:  len(items),
	}})
	return nil
}

// queryFromFlags builds a catalog query from list's flags.
func queryFromFlags(cmd *cobra.Command) (catalog.Query, error) {
	var q catalog.Query
	q.Search, _ = cmd.Flags().GetString("search")

	sortFlag, _ := cmd.Flags().GetString("sort")
	sortKey, err := catalog.ParseSortKey(sortFlag)
	if err != nil {
		return q, err
	}
	q.Sort = sortKey

	if category, _ := cmd.Flags().GetString("category"); category != "" {
		q = q.With(catalog.FacetCategory, category)
	}
	filters, _ := cmd.Flags().GetStringArray("filter")
	for _, f := range filters {
		facet, value, ok := strings.Cut(f, "=")
		if !ok || facet == "" {
			return q, fmt.Errorf("invalid filter %q (want facet=value)", f)
		}
		q = q.With(facet, value)
	}
	return q, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	c, err := s.lib.Catalog(args[0])
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	it, err := c.Get(args[1])
	if errors.Is(err, catalog.ErrNotFound) {
		it = c.Default()
		p.Notice(fmt.Sprintf("no %s record %q; showing %s", c.Name(), args[1], it.RecordID()))
	} else if err != nil {
		return err
	}

	p.Detail(it)
	s.record(telemetry.Event{Kind: telemetry.KindDetailOpen, Dataset: c.Name(), Data: it.RecordID()})
	return nil
}

// closeSession flushes telemetry, logging rather than failing the command.
func closeSession(s *session) {
	if err := s.Close(); err != nil {
		logger.Warn("closing telemetry", zap.Error(err))
	}
}
