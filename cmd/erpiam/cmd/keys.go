package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mrmeaow/erp-iam-secureid/internal/utils"
)

const (
	defaultKeysDir  = "keys"
	defaultKeysBits = 2048
)

func newKeysCmd() *cobra.Command {
	var (
		dir  string
		bits int
	)

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "Generate the RS256 key pair for access tokens",
		Long: `Generates an RSA key pair and writes private.pem (PKCS#8) and
public.pem (SPKI) into the target directory.

Nothing is written when the directory already exists, so running the
command twice never replaces keys that signed live tokens.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			err := utils.WriteRSAKeyPair(dir, bits)
			if errors.Is(err, utils.ErrKeysDirExists) {
				fmt.Fprintf(out, "Directory %s already exists, keys were not generated\n", dir)
				return nil
			}
			if err != nil {
				return fmt.Errorf("generate keys: %w", err)
			}

			fmt.Fprintf(out, "Private key: %s\n", filepath.Join(dir, utils.PrivateKeyFile))
			fmt.Fprintf(out, "Public key:  %s\n", filepath.Join(dir, utils.PublicKeyFile))
			return nil
		},
	}

	keysCmd.Flags().StringVar(&dir, "dir", defaultKeysDir, "directory to write the key pair into")
	keysCmd.Flags().IntVar(&bits, "bits", defaultKeysBits, "RSA modulus size in bits")

	return keysCmd
}
