package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/logview/internal/config"
	"github.com/user/logview/internal/ui"
)

func main() {
	followFlag := flag.Bool("f", true, "Follow the file for new entries")
	configFlag := flag.Bool("config", false, "Print the config file path and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: logview [-f=false] [-config] [file]\n")
		fmt.Fprintf(os.Stderr, "  -f\tFollow the file for appended entries (default true)\n")
		fmt.Fprintf(os.Stderr, "  -config\tPrint the config file path and exit\n")
	}
	flag.Parse()

	if *configFlag {
		fmt.Println(config.GetConfigPath())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	opts := ui.Options{
		Filepath: flag.Arg(0),
		Follow:   *followFlag,
	}

	model, err := ui.NewModel(opts, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
