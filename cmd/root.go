// Package cmd holds the soroban command-line interface.
package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/zjrosen/soroban/internal/config"
	"github.com/zjrosen/soroban/internal/display"
	"github.com/zjrosen/soroban/internal/log"
	"github.com/zjrosen/soroban/internal/ui/clock"
	"github.com/zjrosen/soroban/internal/ui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	logFile string
	cfg     config.Config
	vp      *viper.Viper

	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:   "soroban",
	Short: "A soroban (abacus) clock for the terminal",
	Long: `soroban shows the date and time as two rows of abacus columns.

The top row reads DDMM and the bottom row reads HHMM. Each row is redrawn
only when its value can have changed.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLog != nil {
			return closeLog()
		}
		return nil
	},
	RunE: runClock,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./.soroban.yaml or ~/.config/soroban/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write debug logs to this file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig(cmd *cobra.Command, args []string) error {
	vp = config.NewViper()
	path := config.FindConfigFile(cfgFile)

	loaded, err := config.Load(vp, path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = loaded

	if logFile != "" {
		cfg.Log.File = logFile
		cfg.Log.Level = "debug"
	}
	if cfg.Log.File != "" {
		closeFn, err := log.Init(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		closeLog = closeFn
	}

	if err := styles.ApplyTheme(themeConfig(cfg)); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}
	if p, ok := colorProfile(cfg.UI.ColorProfile); ok {
		lipgloss.SetColorProfile(p)
	}

	log.Info(log.CatConfig, "Config ready", "path", path, "preset", cfg.Theme.Preset)
	return nil
}

func themeConfig(c config.Config) styles.ThemeConfig {
	return styles.ThemeConfig{Preset: c.Theme.Preset, Colors: c.Theme.Colors}
}

// colorProfile maps the ui.color_profile setting to a termenv profile.
// "auto" leaves detection to lipgloss.
func colorProfile(name string) (termenv.Profile, bool) {
	switch name {
	case "truecolor":
		return termenv.TrueColor, true
	case "ansi256":
		return termenv.ANSI256, true
	case "ansi":
		return termenv.ANSI, true
	case "ascii":
		return termenv.Ascii, true
	default:
		return termenv.Ascii, false
	}
}

func clockOptions(c config.Config) clock.Options {
	return clock.Options{
		Width:       c.Screen.Width,
		Height:      c.Screen.Height,
		Style:       styles.AbacusStyle(c.Abacus.Padding, c.Abacus.CornerRadius),
		Clock:       display.SystemClock{Location: c.Location()},
		Frame:       c.UI.Frame,
		ShowReadout: c.UI.ShowReadout,
	}
}

func runClock(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(clock.New(clockOptions(cfg)), tea.WithAltScreen())

	if cfg.WatchConfig && vp.ConfigFileUsed() != "" {
		config.Watch(vp, reloader(p, cfg.WatchDelay))
		log.Debug(log.CatConfig, "Watching config", "path", vp.ConfigFileUsed())
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running clock: %w", err)
	}
	return nil
}

// sender is the part of tea.Program the reloader needs.
type sender interface {
	Send(msg tea.Msg)
}

// reloader returns a config change callback that forwards the latest result
// into the program once no further change has arrived for delay. Editors
// often write a file in several steps.
func reloader(p sender, delay time.Duration) func(config.Config, error) {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	return func(c config.Config, err error) {
		msg := clock.ReloadMsg{Err: err}
		if err == nil {
			msg.Theme = themeConfig(c)
			msg.Padding = c.Abacus.Padding
			msg.CornerRadius = c.Abacus.CornerRadius
		}

		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, func() {
			log.SafeGo(log.CatConfig, "config-reload", func() { p.Send(msg) })
		})
	}
}
