// AngelaMos | 2026
// keys.go

package root

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/carterperez-dev/taskhabit/internal/auth"
	"github.com/carterperez-dev/taskhabit/internal/ui"
)

func newKeysCmd() *cobra.Command {
	var (
		privatePath string
		publicPath  string
	)

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Generate the ES256 key pair the API signs session tokens with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, p := range []string{privatePath, publicPath} {
				if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
					return fmt.Errorf("create key directory: %w", err)
				}
			}

			if err := auth.GenerateKeyPair(privatePath, publicPath); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.LabelValue("Private key", privatePath))
			fmt.Fprintln(out, ui.LabelValue("Public key", publicPath))
			fmt.Fprintln(out, ui.Muted.Render("set JWT_PRIVATE_KEY_PATH to the private key"))
			return nil
		},
	}

	cmd.Flags().StringVar(&privatePath, "private", "keys/private.pem", "Private key output path")
	cmd.Flags().StringVar(&publicPath, "public", "keys/public.pem", "Public key output path")
	return cmd
}
