package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"deaddrop/internal/crypto"
	"deaddrop/internal/domain"
)

// recv: fetch messages and open whatever the local keys can open.
func recvCmd() *cobra.Command {
	var asJournalist bool
	var outDir string

	cmd := &cobra.Command{
		Use:   "recv",
		Short: "Fetch your messages and decrypt what you can",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id, err := ids.Load(passphrase)
			if err != nil {
				return err
			}

			userType, hash := "user", id.Hash
			if asJournalist {
				userType, hash = "journalist", ""
			}
			msgs, err := client.FetchMessages(cmd.Context(), userType, hash)
			if err != nil {
				return err
			}
			if len(msgs) == 0 {
				fmt.Println("no messages")
				return nil
			}

			for _, m := range msgs {
				printMessage(id, m, outDir)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJournalist, "journalist", false, "fetch the journalist view (requires the journalist identity)")
	cmd.Flags().StringVar(&outDir, "out", ".", "directory for received files")
	return cmd
}

func printMessage(id domain.Identity, m domain.Message, outDir string) {
	if m.HasFiles && m.File != nil {
		plain, err := crypto.Open(id.Public, id.Private, m.File.Content)
		if err != nil {
			fmt.Printf("[%s] file %s (not for our keys)\n", m.From, m.File.FileName)
			return
		}
		path := filepath.Join(outDir, filepath.Base(m.File.FileName))
		if err := os.WriteFile(path, plain, 0o600); err != nil {
			fmt.Printf("[%s] file %s: %v\n", m.From, m.File.FileName, err)
			return
		}
		fmt.Printf("[%s] file saved to %s\n", m.From, path)
		return
	}

	plain, err := crypto.Open(id.Public, id.Private, m.Payload)
	if err != nil {
		// Our own sent messages, or traffic sealed to someone else.
		fmt.Printf("[%s] (sealed, not for our keys)\n", m.From)
		return
	}
	fmt.Printf("[%s] %s\n", m.From, plain)
}
