package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"deaddrop/internal/crypto"
	"deaddrop/internal/domain"
)

// reply <hash> <message>: journalist-side reply, sealed to the key the user
// published with their messages.
func replyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reply <hash> <message>",
		Short: "Seal a reply to a user's published key (journalist only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if _, err := ids.Load(passphrase); err != nil {
				return err
			}
			to := args[0]

			// The user's reply key rides along on their messages; take
			// the most recent one.
			msgs, err := client.FetchMessages(cmd.Context(), "journalist", "")
			if err != nil {
				return err
			}
			var keyStr string
			for _, m := range msgs {
				if m.From == to && m.SenderPublicKey != "" {
					keyStr = m.SenderPublicKey
				}
			}
			if keyStr == "" {
				return fmt.Errorf("no published key found for %s", to)
			}
			key, err := crypto.DecodeKey(keyStr)
			if err != nil {
				return err
			}
			sealed, err := crypto.Seal(key, []byte(args[1]))
			if err != nil {
				return err
			}

			if _, err := client.SendMessage(cmd.Context(), domain.Message{
				From:    domain.JournalistFrom,
				To:      to,
				Payload: sealed,
			}); err != nil {
				return err
			}
			fmt.Println("Reply sent")
			return nil
		},
	}
}
