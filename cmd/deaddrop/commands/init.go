package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"deaddrop/internal/crypto"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate an anonymous identity and store it securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if ids.Exists() {
				return fmt.Errorf("identity already exists under %s", home)
			}
			id, err := crypto.NewIdentity()
			if err != nil {
				return err
			}
			if err := ids.Save(passphrase, id); err != nil {
				return err
			}
			fmt.Printf("Identity created.\nHash: %s\n", id.Hash)
			return nil
		},
	}
}
