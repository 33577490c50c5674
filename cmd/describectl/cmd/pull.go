package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	describe "github.com/WhiteAbeLincoln/sf-describe"
)

var pullCmd = &cobra.Command{
	Use:   "pull <directory>",
	Short: "Fetch every describe document from the remote instance into a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		conn, err := connect()
		if err != nil {
			return err
		}

		pendings, err := describe.NewFetcher(conn).FetchAll(ctx)
		if err != nil {
			return err
		}
		docs, err := describe.Collect(ctx, pendings)
		if err != nil {
			return err
		}

		writes, err := describe.NewExporter().ExportAll(ctx, docs, args[0])
		if err != nil {
			return err
		}
		paths, err := describe.Collect(ctx, writes)
		if err != nil {
			return err
		}

		for _, path := range paths {
			fmt.Println(path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
}
