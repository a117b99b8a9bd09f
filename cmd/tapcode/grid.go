package main

import (
	"fmt"

	"github.com/danmuck/tapcode/internal/shell"
	"github.com/spf13/cobra"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the active grid",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, active, err := resolve(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), shell.RenderGrid(active.Load()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gridCmd)
}
