package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	describe "github.com/WhiteAbeLincoln/sf-describe"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <path>...",
	Short: "Parse local describe documents and print their names",
	Long: `Parse the describe documents at the given paths and print one line per
document. Files that fail to parse are reported individually; the rest
are still inspected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		pendings, err := describe.NewImporter().ImportPaths(ctx, args...)
		if err != nil {
			return err
		}

		failed := 0
		for _, p := range pendings {
			doc, err := p.Wait(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				failed++
				continue
			}
			fmt.Printf("%s\t%d bytes\n", doc.Name(), len(doc.Bytes()))
		}
		if failed > 0 {
			return fmt.Errorf("%d document(s) failed to parse", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
