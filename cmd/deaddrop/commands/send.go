package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"deaddrop/internal/crypto"
	"deaddrop/internal/domain"
)

// send <message>: seal to the journalist key and relay it.
func sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <message>",
		Short: "Seal a message to the journalist and send it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id, err := ids.Load(passphrase)
			if err != nil {
				return err
			}

			// Registering also refreshes our record and returns the
			// current journalist key.
			keyStr, err := client.RegisterUser(cmd.Context(), id.Hash)
			if err != nil {
				return err
			}
			if keyStr == "" {
				return fmt.Errorf("no journalist key published yet")
			}
			key, err := crypto.DecodeKey(keyStr)
			if err != nil {
				return err
			}
			sealed, err := crypto.Seal(key, []byte(args[0]))
			if err != nil {
				return err
			}

			msgID, err := client.SendMessage(cmd.Context(), domain.Message{
				From:            id.Hash,
				Payload:         sealed,
				SenderPublicKey: crypto.EncodeKey(id.Public),
			})
			if err != nil {
				return err
			}
			fmt.Printf("Sent (%s)\n", msgID)
			return nil
		},
	}
}
