package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"deaddrop/internal/crypto"
	"deaddrop/internal/domain"
)

// chunkBytes keeps each upload request comfortably under the relay's
// per-chunk limit after sealing and encoding.
const chunkBytes = 64000

// send-file <path>: seal a file to the journalist key and upload it in
// chunks.
func sendFileCmd() *cobra.Command {
	var fileType string

	cmd := &cobra.Command{
		Use:   "send-file <path>",
		Short: "Seal a file and upload it to the journalist in chunks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id, err := ids.Load(passphrase)
			if err != nil {
				return err
			}
			plain, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

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
			sealed, err := crypto.Seal(key, plain)
			if err != nil {
				return err
			}

			fileName := filepath.Base(args[0])
			total := (len(sealed) + chunkBytes - 1) / chunkBytes
			for i := 0; i < total; i++ {
				end := (i + 1) * chunkBytes
				if end > len(sealed) {
					end = len(sealed)
				}
				received, _, err := client.SendChunk(cmd.Context(), domain.Chunk{
					From:     id.Hash,
					Index:    i,
					Total:    total,
					Data:     sealed[i*chunkBytes : end],
					FileName: fileName,
					FileType: fileType,
					FileSize: int64(len(sealed)),
				})
				if err != nil {
					return err
				}
				fmt.Printf("chunk %d/%d acknowledged (%d received)\n", i+1, total, received)
			}
			fmt.Printf("Uploaded %s\n", fileName)
			return nil
		},
	}
	cmd.Flags().StringVar(&fileType, "type", "", "MIME type hint for the journalist")
	return cmd
}
