package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Announce your hash to the relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id, err := ids.Load(passphrase)
			if err != nil {
				return err
			}
			key, err := client.RegisterUser(cmd.Context(), id.Hash)
			if err != nil {
				return err
			}
			fmt.Println("Registered with relay")
			if key == "" {
				fmt.Println("No journalist key published yet; sending is not possible")
			}
			return nil
		},
	}
}
