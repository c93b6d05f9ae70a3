package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/streamforge/helixmod/pkg/helix"
)

// fetchAll walks every page of a listing endpoint and returns the combined
// records. maxPages of zero means no cap.
func fetchAll[T any](ctx context.Context, client *helix.Client, req helix.PagedRequest, maxPages int) ([]T, error) {
	opts := []helix.PaginatorOption{
		helix.WithPaginatorLogger(pagingLogger()),
	}
	if maxPages > 0 {
		opts = append(opts, helix.WithMaxPages(maxPages))
	}

	pager := helix.NewPaginator[T](client, req, opts...)

	var out []T
	for pager.More() {
		env, err := pager.Next(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, env.Data...)
	}
	return out, nil
}

// pagingLogger reports per-page progress on stderr so table and JSON output
// on stdout stay clean. Progress is logged at debug level; raise
// logging.level to debug to see it.
func pagingLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{Prefix: "paging"})
	if lvl, err := log.ParseLevel(viper.GetString("logging.level")); err == nil {
		l.SetLevel(lvl)
	}
	return l
}
