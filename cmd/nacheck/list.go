// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the property names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, p := range registry {
				fmt.Fprintf(cmd.OutOrStdout(), "%-34s %s\n", p.name, p.doc)
			}

			return nil
		},
	}
}
