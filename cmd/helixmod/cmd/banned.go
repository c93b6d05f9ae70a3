package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamforge/helixmod/pkg/helix"
	"github.com/streamforge/helixmod/pkg/helix/moderation"
)

func bannedCmd() *cobra.Command {
	var (
		userIDs  []string
		after    string
		first    int
		all      bool
		maxPages int
	)

	cmd := &cobra.Command{
		Use:   "banned <broadcaster-id>",
		Short: "List banned and timed-out users",
		Long: "List the users currently banned or timed out on a channel. Timed\n" +
			"out users carry an expiry; permanent bans do not.",
		Example: `  # All current bans and timeouts
  helixmod banned 198704263 --all

  # Check specific users
  helixmod banned 198704263 --user-id 423374343`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var opts []moderation.GetBannedUsersOption
			if len(userIDs) > 0 {
				opts = append(opts, moderation.WithBannedUsersUserIDs(userIDs...))
			}
			if after != "" {
				opts = append(opts, moderation.WithBannedUsersAfter(helix.Cursor(after)))
			}
			if first > 0 {
				opts = append(opts, moderation.WithBannedUsersFirst(first))
			}
			req, err := moderation.NewGetBannedUsersRequest(args[0], opts...)
			if err != nil {
				return err
			}

			var users []moderation.BannedUser
			if all {
				users, err = fetchAll[moderation.BannedUser](context.Background(), client, req, maxPages)
			} else {
				var env *helix.Envelope[moderation.BannedUser]
				env, err = moderation.GetBannedUsers(context.Background(), client, req)
				if env != nil {
					users = env.Data
				}
			}
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(users)
			}
			if len(users) == 0 {
				fmt.Println("No banned users found.")
				return nil
			}
			return printBannedUsersTable(users)
		},
	}

	cmd.Flags().StringArrayVar(&userIDs, "user-id", nil, "filter results to a user ID (repeatable)")
	cmd.Flags().StringVar(&after, "after", "", "pagination cursor to start from")
	cmd.Flags().IntVar(&first, "first", 0, "results per page (1-100)")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "page cap when using --all (0 = unlimited)")

	return cmd
}
