// Package main is the entry point for the realm server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "realmd",
	Short: "Realm session server",
	Long:  `realmd runs the authoritative multiplayer session server: websocket transport, movement validation, world items, and inventories.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
