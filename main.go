package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"

	"dosedit/internal/config"
	"dosedit/internal/document"
	"dosedit/internal/eventbus"
	"dosedit/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		logPath    string
		preview    bool
	)
	flag.StringVarP(&configPath, "config", "c", "", "Config file (default "+config.DefaultPath()+")")
	flag.StringVarP(&logPath, "log", "l", "dosedit.log", "Log file")
	flag.BoolVarP(&preview, "preview", "p", false, "Start in preview mode")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dosedit [flags] [FILE]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}
	filePath := flag.Arg(0)

	// Set up logging
	logFile, err := tea.LogToFile(logPath, "dosedit")
	if err != nil {
		fmt.Printf("Could not open log file: %v\n", err)
	} else {
		defer logFile.Close()
	}

	if err := run(afero.NewOsFs(), configPath, filePath, preview); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Editor exited normally")
}

func run(fs afero.Fs, configPath, filePath string, preview bool) error {
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(fs, configPath, bus)
	hasConfig, _ := afero.Exists(fs, configSvc.Path())
	cfg, err := configSvc.Load()
	if err != nil {
		return err
	}
	if preview {
		cfg.Editor.StartInPreview = true
	}

	// Save the search options whenever a dialog changes them
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			return
		}
		cfg.Search.Apply(event.Search)
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
			bus.Publish(eventbus.ErrorEvent{Message: "Could not save settings", Err: err})
			return
		}
		log.Printf("Config saved to %s", configSvc.Path())
	})

	store := document.NewStore(fs, bus)
	doc, err := store.Open(filePath)
	if err != nil {
		return err
	}

	uiModel := ui.NewModel(bus, cfg, doc, store)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward events the UI reacts to
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventConfigSaved, forward)

	bus.Publish(eventbus.AppReadyEvent{HasExistingConfig: hasConfig})

	if os.Getenv("DOSEDIT_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Printf("Starting UI...")
	_, err = p.Run()
	return err
}
