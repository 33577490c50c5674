package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	describe "github.com/WhiteAbeLincoln/sf-describe"
)

var pushCmd = &cobra.Command{
	Use:   "push <path>...",
	Short: "Import describe documents from files or directories and upload them",
	Long: `Import describe documents from the given paths and upload each one to
the remote instance. Directories contribute their immediate files;
subdirectories are not descended into.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		conn, err := connect()
		if err != nil {
			return err
		}

		pendings, err := describe.NewImporter().ImportPaths(ctx, args...)
		if err != nil {
			return err
		}
		docs, err := describe.Collect(ctx, pendings)
		if err != nil {
			return err
		}

		for _, doc := range docs {
			if err := conn.Upload(ctx, doc); err != nil {
				return err
			}
			fmt.Printf("pushed %s\n", doc.Name())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)
}
