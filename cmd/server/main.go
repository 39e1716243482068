// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/paranormal-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "paranormal-api",
	Short: "Paranormal API gRPC Server",
	Long:  `Paranormal API provides a gRPC interface for Ordem Paranormal character sheets, dice rolls and reference tables.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(hashTokenCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
