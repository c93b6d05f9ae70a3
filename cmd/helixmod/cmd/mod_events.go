package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamforge/helixmod/pkg/helix"
	"github.com/streamforge/helixmod/pkg/helix/moderation"
)

func modEventsCmd() *cobra.Command {
	var (
		userIDs  []string
		after    string
		first    int
		all      bool
		maxPages int
	)

	cmd := &cobra.Command{
		Use:   "mod-events <broadcaster-id>",
		Short: "List moderator add/remove events",
		Long: "List the moderator add and remove events for a channel, newest\n" +
			"first. Events can be filtered to specific user IDs.",
		Example: `  # Recent moderator changes
  helixmod mod-events 198704263

  # Changes affecting specific users
  helixmod mod-events 198704263 --user-id 423374343 --user-id 424596340`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var opts []moderation.GetModeratorEventsOption
			if len(userIDs) > 0 {
				opts = append(opts, moderation.WithModeratorEventsUserIDs(userIDs...))
			}
			if after != "" {
				opts = append(opts, moderation.WithModeratorEventsAfter(helix.Cursor(after)))
			}
			if first > 0 {
				opts = append(opts, moderation.WithModeratorEventsFirst(first))
			}
			req, err := moderation.NewGetModeratorEventsRequest(args[0], opts...)
			if err != nil {
				return err
			}

			var events []moderation.ModeratorEvent
			if all {
				events, err = fetchAll[moderation.ModeratorEvent](context.Background(), client, req, maxPages)
			} else {
				var env *helix.Envelope[moderation.ModeratorEvent]
				env, err = moderation.GetModeratorEvents(context.Background(), client, req)
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
				fmt.Println("No moderator events found.")
				return nil
			}
			return printModeratorEventsTable(events)
		},
	}

	cmd.Flags().StringArrayVar(&userIDs, "user-id", nil, "filter events to a user ID (repeatable)")
	cmd.Flags().StringVar(&after, "after", "", "pagination cursor to start from")
	cmd.Flags().IntVar(&first, "first", 0, "results per page (1-100)")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "page cap when using --all (0 = unlimited)")

	return cmd
}
