package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"deaddrop/internal/crypto"
)

// journalist: claim the journalist key. Rotation of an existing key needs
// the relay's shared secret.
func journalistCmd() *cobra.Command {
	var secret string

	cmd := &cobra.Command{
		Use:   "journalist",
		Short: "Claim or rotate the journalist key on the relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if ids.Exists() {
				return fmt.Errorf("identity already exists under %s; use a separate --home for the journalist role", home)
			}
			id, err := crypto.NewIdentity()
			if err != nil {
				return err
			}
			if err := ids.Save(passphrase, id); err != nil {
				return err
			}
			pub := crypto.EncodeKey(id.Public)
			if err := client.RegisterJournalist(cmd.Context(), pub, secret); err != nil {
				return err
			}
			fmt.Println("Journalist key published")
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "shared secret (required when rotating an existing key)")
	return cmd
}
