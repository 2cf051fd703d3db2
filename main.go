package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/morgang/tubedeck/internal/analytics"
	"github.com/morgang/tubedeck/internal/browser"
	"github.com/morgang/tubedeck/internal/config"
	"github.com/morgang/tubedeck/internal/ui"
)

const version = "0.2.0"

func main() {
	var themeFlag, browserFlag string
	var showVersion bool
	flag.StringVar(&themeFlag, "theme", "", "Color theme (overrides settings)")
	flag.StringVar(&browserFlag, "browser", "", "Browser for results: Default, Chrome, Firefox, Safari, Edge")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("tubedeck " + version)
		return
	}

	// Remaining args prefill the search field
	query := strings.Join(flag.Args(), " ")

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Printf("Error loading settings: %v\n", err)
		os.Exit(1)
	}

	// Set up logging; the TUI owns stdout, so logs go to a file
	if err := os.MkdirAll(config.StorageDir(), 0755); err == nil {
		logFile, err := os.OpenFile(filepath.Join(config.StorageDir(), "tubedeck.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	if themeFlag != "" {
		settings.Theme = themeFlag
	}
	if browserFlag != "" {
		settings.PreferredBrowser = browserFlag
	}

	ui.ApplyTheme(settings.Theme)
	browser.SetPreferredBrowser(browser.ParseBrowser(settings.PreferredBrowser))

	if settings.EnsureClientID() {
		if err := config.SaveSettings(settings); err != nil {
			log.Printf("Failed to save settings: %v", err)
		}
	}

	// Fire-and-forget; skipped when stdout isn't an interactive terminal
	analytics.Bootstrap(settings.ClientID, version, settings.AnalyticsOptOut)

	app, err := ui.NewApp(settings)
	if err != nil {
		fmt.Printf("Error initializing UI: %v\n", err)
		os.Exit(1)
	}
	if query != "" {
		app.SetQuery(query)
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
