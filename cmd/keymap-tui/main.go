package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbeckham/keymap-tui/internal/config"
	"github.com/jbeckham/keymap-tui/internal/keymap"
	"github.com/jbeckham/keymap-tui/internal/layout"
	"github.com/jbeckham/keymap-tui/internal/source"
	"github.com/jbeckham/keymap-tui/internal/tui"
)

func main() {
	args := os.Args[1:]

	// Handle "init" subcommand
	if len(args) > 0 && args[0] == "init" {
		runInit()
		return
	}

	if os.Getenv("KEYMAP_TUI_DEBUG") != "" {
		f, err := tea.LogToFile("debug.log", "keymap-tui")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	printOnly := false
	if len(args) > 0 && args[0] == "print" {
		printOnly = true
		args = args[1:]
	}

	var location string
	if len(args) > 0 {
		location = args[0]
	} else if !config.DirExists() {
		// Auto-init if .keymap-tui directory doesn't exist
		dir, err := config.Init()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created %s/\n\n", dir)
		fmt.Println("To get started:")
		fmt.Printf("  1. Edit %s to point at your keymap (file or URL)\n", filepath.Join(dir, "config.yaml"))
		fmt.Println("  2. Run keymap-tui again, or keymap-tui path/to/your.keymap")
		os.Exit(0)
	}

	location, opts, err := resolve(location)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	client := source.NewClient()

	if printOnly {
		if err := runPrint(client, location, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(tui.NewApp(client, location, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolve picks the keymap location and display options. An explicit
// location wins over the config file; the config file is optional then.
func resolve(location string) (string, tui.Options, error) {
	opts := tui.Options{Layout: layout.Ferris()}

	configDir, err := config.DefaultConfigDir()
	if err != nil {
		return "", opts, err
	}
	configPath := filepath.Join(configDir, "config.yaml")

	if location != "" {
		if _, err := os.Stat(configPath); err != nil {
			return location, opts, nil
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return "", opts, err
	}
	l, err := layout.ByName(cfg.Layout)
	if err != nil {
		return "", opts, err
	}
	opts = tui.Options{Layout: l, Tints: cfg.Tints, ShowRaw: cfg.ShowRaw}

	if location == "" {
		location = cfg.KeymapSource(configDir)
	}
	log.Printf("config %s: keymap %s, layout %s", configPath, location, l.Name)
	return location, opts, nil
}

func runPrint(client *source.Client, location string, opts tui.Options) error {
	data, err := client.Load(context.Background(), location)
	if err != nil {
		return err
	}
	m := keymap.Parse(string(data))
	if m.Len() == 0 {
		return fmt.Errorf("no layers found in %s", location)
	}
	out, err := tui.RenderAll(m, opts)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runInit() {
	if config.DirExists() {
		dir, _ := config.DefaultConfigDir()
		fmt.Printf("%s/ already exists\n", dir)
		os.Exit(0)
	}
	dir, err := config.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created %s/\n", dir)
	fmt.Printf("  config.yaml   keymap location, layout, layer tints\n")
	fmt.Printf("  cradio.keymap sample keymap\n")
}
