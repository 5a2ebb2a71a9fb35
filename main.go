package main

import (
	"encoding/json"
	"fmt"
	"os"
	"xqemulauncher/emulator"
	"xqemulauncher/storage"
	"xqemulauncher/ui"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Check for command-line arguments
	if len(os.Args) > 1 {
		handleCommandLineArgs()
		return
	}

	// Normal GUI mode
	log.Info().Msg("starting xqemu launcher")
	app := ui.NewMainWindow()
	app.ShowAndRun()
}

// handleCommandLineArgs processes command-line arguments
func handleCommandLineArgs() {
	args := os.Args[1:]

	switch args[0] {
	case "-run", "--run":
		runEmulator()
	case "-config", "--config":
		showConfig()
	case "-help", "--help", "-h":
		showUsage()
	default:
		fmt.Printf("Unknown option: %s\n", args[0])
		showUsage()
	}
}

// runEmulator launches the emulator from the terminal and waits for it to exit
func runEmulator() {
	store := storage.NewManager()
	cfg, err := store.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading settings: %v\n", err)
		os.Exit(1)
	}

	manager := emulator.NewManager()
	if err := manager.Start(cfg); err != nil {
		fmt.Printf("Error starting emulator: %v\n", err)
		os.Exit(1)
	}

	manager.Wait()
}

// showConfig prints the effective configuration
func showConfig() {
	store := storage.NewManager()
	cfg, err := store.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading settings: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		fmt.Printf("Error encoding settings: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}

// showUsage displays command-line usage information
func showUsage() {
	fmt.Println("xqemu Launcher - Command Line Usage")
	fmt.Println("===================================")
	fmt.Println()
	fmt.Println("GUI Mode (default):")
	fmt.Println("  xqemulauncher")
	fmt.Println()
	fmt.Println("Command Line Options:")
	fmt.Println("  -run               Launch the emulator and wait for it to exit")
	fmt.Println("  -config            Print the effective configuration")
	fmt.Println("  -help              Show this help message")
}
