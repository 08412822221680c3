// Package main is the entry point for stancewalk.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stancewalk",
	Short: "Turn-based stance and action controller",
	Long: `stancewalk drives a single character whose stance (Rest, Stand, Crouch, Move)
decides what moving costs. Rest to earn actions, spend them to move.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func main() {
	log.SetPrefix("[STANCEWALK] ")

	// .env is for local development; real env vars win
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
}
