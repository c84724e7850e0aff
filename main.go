package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/LFroesch/peek/internal/bookmarks"
	"github.com/LFroesch/peek/internal/config"
	"github.com/LFroesch/peek/internal/logger"
	"github.com/LFroesch/peek/internal/opener"
)

var version = "dev"

var errUsage = errors.New("Usage: peek [<directory_path>]")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:           "peek [directory_path]",
		Short:         "A terminal file browser",
		Long:          `peek lists one directory at a time and lets you move, search, rename, delete, bookmark and open entries from the keyboard.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, selectName, err := resolveStartPath(args)
			if err != nil {
				return err
			}

			if err := logger.Init(); err != nil {
				// Not fatal, peek just runs without a log file
				fmt.Fprintf(os.Stderr, "peek: logging disabled: %v\n", err)
			}
			defer logger.Close()
			logger.SetDebug(debug)

			cfg := config.Load()
			store := bookmarks.NewFileStore(bookmarks.DefaultPath())

			m, err := newModel(dir, selectName, cfg, store, opener.System{})
			if err != nil {
				return fmt.Errorf("peek: Invalid path: %s", dir)
			}

			logger.Info("Starting peek in %s", dir)
			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				logger.Error("Program exited with error: %v", err)
				return fmt.Errorf("peek: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "write debug messages to the log file")
	return cmd
}

// resolveStartPath picks the starting directory. A file argument starts in
// its parent directory with the file selected.
func resolveStartPath(args []string) (dir, selectName string, err error) {
	if len(args) == 0 {
		dir, err = os.Getwd()
		if err != nil {
			return "", "", fmt.Errorf("peek: Error getting current working directory: %w", err)
		}
		return dir, "", nil
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return "", "", fmt.Errorf("peek: Invalid path: %s", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", "", fmt.Errorf("peek: Invalid path: %s", path)
	}
	if !info.IsDir() {
		return filepath.Dir(abs), filepath.Base(abs), nil
	}
	return abs, "", nil
}
