package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"lexbg-assistant/client"
	"lexbg-assistant/config"
	"lexbg-assistant/service"
	"lexbg-assistant/ui"

	tea "github.com/charmbracelet/bubbletea"
)

var Version string = "dev"

func main() {
	var (
		apiBase     = flag.String("api-base", "", "Override the API base URL (e.g. http://localhost:3000/api)")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("LexBG chat client %s\n", Version)
		os.Exit(0)
	}

	cfg := config.LoadClient()

	// Keep log output off the terminal while the UI owns it
	logFile, err := tea.LogToFile(cfg.LogFile, "chat")
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()

	base := *apiBase
	if base == "" {
		base = cfg.APIBase
	}
	if base == "" {
		base = client.DefaultAPIBase(cfg.ProxyURL)
	}
	apiClient := client.New(client.WithAPIBase(base))
	log.Printf("Sending questions to %s", apiClient.APIBase())

	var program *tea.Program
	conv := service.NewConversationService(
		service.WithSearcher(apiClient),
		service.WithOnChange(func() {
			if program != nil {
				go program.Send(ui.ConversationChangedMsg{})
			}
		}),
	)

	program = tea.NewProgram(ui.New(conv), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Printf("Error: chat client failed: %v", err)
		fmt.Fprintf(os.Stderr, "chat client failed: %v\n", err)
		os.Exit(1)
	}
}
