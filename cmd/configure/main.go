package main

import (
	"fmt"
	"os"

	"petminder/cmd/configure/commands"

	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "petminder-configure",
		Short: "Administration tool for the PetMinder API",
		Long:  "CLI tool for inspecting due tasks, managing preferences, and resetting data",
	}

	rootCmd.AddCommand(commands.NewPrefsCmd())
	rootCmd.AddCommand(commands.NewDueCmd())
	rootCmd.AddCommand(commands.NewResetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
