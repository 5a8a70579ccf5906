package tui

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tcpjson/internal/config"
)

// Run starts the TUI. With cfg.Debug set, traces go to config.DebugLogFile;
// otherwise they are discarded so nothing writes over the screen.
func Run(cfg config.Config) error {
	if cfg.Debug {
		f, err := tea.LogToFile(config.DebugLogFile, "tcpjson")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m, err := New(cfg)
	if err != nil {
		return err
	}
	defer m.Cleanup()

	// Pass pointer since Update uses pointer receiver
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
