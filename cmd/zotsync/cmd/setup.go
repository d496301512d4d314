package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zotsync/internal/adapters/keychain"
	"zotsync/internal/application/commands"
	"zotsync/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup <library-id> <api-key>",
	Short: "Store Zotero credentials in the OS keychain",
	Long: `Store the Zotero library ID and API key in the OS keychain under the
"` + config.ServiceName + `" service, where the sync command expects them.

Find your library ID and create an API key at
https://www.zotero.org/settings/keys (the key needs library write access).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := keychain.NewStore(config.ServiceName)
		setupCmd := commands.NewSetupCredentialsCommand(
			store, config.KeyLibraryID, config.KeyAPIKey, args[0], args[1])
		if err := setupCmd.Execute(cmd.Context()); err != nil {
			return err
		}

		fmt.Printf("%s Credentials stored in keychain (service %q)\n", okMark(), config.ServiceName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
