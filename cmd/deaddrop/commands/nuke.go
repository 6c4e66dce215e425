package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// nuke: the privacy wipe. The relay forgets the hash, its messages and any
// half-uploaded files; the local identity file stays so the hash is not
// accidentally reused with a stale key.
func nukeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nuke",
		Short: "Wipe every trace of your hash from the relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id, err := ids.Load(passphrase)
			if err != nil {
				return err
			}
			if err := client.Nuke(cmd.Context(), id.Hash); err != nil {
				return err
			}
			fmt.Println("Relay wiped")
			return nil
		},
	}
}
