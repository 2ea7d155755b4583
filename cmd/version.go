package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is injected with -ldflags "-X ...cmd.version=v1.2.3".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vocamaster version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vocamaster %s\n", version)
	},
}
