package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	var build bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the Strata CLI version. With --build, include commit and toolchain details.`,
		Run: func(cmd *cobra.Command, args []string) {
			if !build {
				fmt.Printf("strata %s\n", version)
				return
			}
			fmt.Printf("strata %s (%s, built %s)\n", version, commit, date)
			fmt.Printf("go %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}

	cmd.Flags().BoolVarP(&build, "build", "b", false, "Include commit and build details")

	return cmd
}
