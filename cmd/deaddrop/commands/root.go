package commands

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"deaddrop/internal/relay"
	"deaddrop/internal/store"
)

var (
	home       string
	passphrase string
	relayURL   string

	ids    *store.IdentityFileStore
	client *relay.Client
)

func Execute() error {
	root := &cobra.Command{
		Use:   "deaddrop",
		Short: "Anonymous ephemeral message drop CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".deaddrop")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			ids = store.NewIdentityFileStore(home)
			client = relay.NewClient(relayURL, &http.Client{Timeout: 30 * time.Second})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.deaddrop)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the local identity")
	root.PersistentFlags().StringVar(&relayURL, "relay", "http://127.0.0.1:8080", "relay base URL")

	root.AddCommand(
		initCmd(),
		registerCmd(),
		journalistCmd(),
		sendCmd(),
		sendFileCmd(),
		replyCmd(),
		recvCmd(),
		nukeCmd(),
		healthCmd(),
	)
	return root.Execute()
}
