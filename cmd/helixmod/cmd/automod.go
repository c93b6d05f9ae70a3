package cmd

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/streamforge/helixmod/pkg/helix/moderation"
)

func automodCmd() *cobra.Command {
	var senderID string

	cmd := &cobra.Command{
		Use:   "automod <broadcaster-id> <message>...",
		Short: "Check messages against AutoMod",
		Long: "Submit one or more messages to AutoMod and report whether each\n" +
			"would be permitted on the channel. Message IDs are generated\n" +
			"automatically; results come back in submission order.",
		Example: `  helixmod automod 198704263 "Hello World!" --sender 44444

  helixmod automod 198704263 "msg one" "msg two" --sender 44444 --output json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			req, err := moderation.NewCheckAutoModStatusRequest(args[0])
			if err != nil {
				return err
			}

			msgs := make([]moderation.AutoModMessage, 0, len(args)-1)
			for _, text := range args[1:] {
				msgs = append(msgs, moderation.AutoModMessage{
					MsgID:   uuid.NewString(),
					MsgText: text,
					UserID:  senderID,
				})
			}

			env, err := moderation.CheckAutoModStatus(context.Background(), client, req, msgs)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(env.Data)
			}
			return printAutoModStatusTable(env.Data)
		},
	}

	cmd.Flags().StringVar(&senderID, "sender", "", "user ID of the message sender")
	cobra.CheckErr(cmd.MarkFlagRequired("sender"))

	return cmd
}
