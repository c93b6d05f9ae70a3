package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamforge/helixmod/pkg/helix"
	"github.com/streamforge/helixmod/pkg/helix/moderation"
)

func banEventsCmd() *cobra.Command {
	var (
		userIDs  []string
		after    string
		first    int
		all      bool
		maxPages int
	)

	cmd := &cobra.Command{
		Use:   "ban-events <broadcaster-id>",
		Short: "List ban and unban events",
		Long: "List the ban and unban events for a channel, newest first. Each\n" +
			"event names the affected user and, for timeouts, the expiry.",
		Example: `  # Recent bans and unbans
  helixmod ban-events 198704263

  # Larger pages, walked to the end
  helixmod ban-events 198704263 --first 100 --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var opts []moderation.GetBannedEventsOption
			if len(userIDs) > 0 {
				opts = append(opts, moderation.WithBannedEventsUserIDs(userIDs...))
			}
			if after != "" {
				opts = append(opts, moderation.WithBannedEventsAfter(helix.Cursor(after)))
			}
			if first > 0 {
				opts = append(opts, moderation.WithBannedEventsFirst(first))
			}
			req, err := moderation.NewGetBannedEventsRequest(args[0], opts...)
			if err != nil {
				return err
			}

			var events []moderation.BannedEvent
			if all {
				events, err = fetchAll[moderation.BannedEvent](context.Background(), client, req, maxPages)
			} else {
				var env *helix.Envelope[moderation.BannedEvent]
				env, err = moderation.GetBannedEvents(context.Background(), client, req)
				if env != nil {
					events = env.Data
				}
			}
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(events)
			}
			if len(events) == 0 {
				fmt.Println("No ban events found.")
				return nil
			}
			return printBannedEventsTable(events)
		},
	}

	cmd.Flags().StringArrayVar(&userIDs, "user-id", nil, "filter events to a user ID (repeatable)")
	cmd.Flags().StringVar(&after, "after", "", "pagination cursor to start from")
	cmd.Flags().IntVar(&first, "first", 0, "results per page (1-100)")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "page cap when using --all (0 = unlimited)")

	return cmd
}
