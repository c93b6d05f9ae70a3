package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamforge/helixmod/pkg/helix"
	"github.com/streamforge/helixmod/pkg/helix/moderation"
)

func moderatorsCmd() *cobra.Command {
	var (
		after    string
		all      bool
		maxPages int
	)

	cmd := &cobra.Command{
		Use:   "moderators <broadcaster-id>",
		Short: "List a channel's moderators",
		Long: "List the users with moderator privileges on a channel. The\n" +
			"broadcaster ID must match the user the access token was issued for.",
		Example: `  # First page of moderators
  helixmod moderators 198704263

  # Every moderator, across all pages
  helixmod moderators 198704263 --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var opts []moderation.GetModeratorsOption
			if after != "" {
				opts = append(opts, moderation.WithModeratorsAfter(helix.Cursor(after)))
			}
			req, err := moderation.NewGetModeratorsRequest(args[0], opts...)
			if err != nil {
				return err
			}

			var mods []moderation.Moderator
			if all {
				mods, err = fetchAll[moderation.Moderator](context.Background(), client, req, maxPages)
			} else {
				var env *helix.Envelope[moderation.Moderator]
				env, err = moderation.GetModerators(context.Background(), client, req)
				if env != nil {
					mods = env.Data
				}
			}
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(mods)
			}
			if len(mods) == 0 {
				fmt.Println("No moderators found.")
				return nil
			}
			return printModeratorsTable(mods)
		},
	}

	cmd.Flags().StringVar(&after, "after", "", "pagination cursor to start from")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "page cap when using --all (0 = unlimited)")

	return cmd
}
