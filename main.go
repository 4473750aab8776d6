package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"sweep-radar.klederson.com/internal/app"
	"sweep-radar.klederson.com/internal/audio"
	"sweep-radar.klederson.com/internal/config"
	"sweep-radar.klederson.com/internal/window"
)

var (
	settings = config.DefaultSettings()
	flagMode string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sweep-radar",
		Short: "Sweep Radar - animated radar sweep with fading target blips",
		Long: `Sweep Radar draws a rotating radar sweep over concentric rings and
flashes a blip each time the beam crosses a target.

In fixed mode five targets are always on the scope. In interactive mode
click the radar to place targets; each fades away after a few sweeps.
Use --window for a desktop window instead of the terminal.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&flagMode, "mode", string(config.ModeFixed), "Target mode: fixed or interactive")
	rootCmd.Flags().Float64Var(&settings.SweepSpeed, "speed", config.SweepSpeedDeg, "Sweep speed in degrees per tick")
	rootCmd.Flags().IntVar(&settings.MaxBlips, "max-blips", config.MaxBlips, "Interactive targets expire after more than this many blips")
	rootCmd.Flags().DurationVar(&settings.FadeOut, "fade", config.FadeOutTime, "Blip fade-out duration")
	rootCmd.Flags().Float64Var(&settings.PreTrigger, "pre-trigger", config.PreTriggerDeg, "Degrees ahead of a target at which interactive mode starts the blip sound")
	rootCmd.Flags().IntVar(&settings.FPS, "fps", config.TargetFPS, "Ticks per second")
	rootCmd.Flags().BoolVar(&settings.Mute, "mute", false, "Start with sound muted")
	rootCmd.Flags().BoolVar(&settings.Window, "window", false, "Open a desktop window instead of the terminal UI")
	rootCmd.Flags().BoolVar(&settings.Demo, "demo", false, "Place targets automatically (interactive mode only)")
	rootCmd.Flags().StringVar(&settings.LogFile, "log", "", "Write debug logs to this file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	settings.Mode = config.Mode(flagMode)
	if err := settings.Validate(); err != nil {
		return err
	}

	// The terminal UI owns stdout, so logs go to a file or nowhere.
	if settings.LogFile != "" {
		f, err := tea.LogToFile(settings.LogFile, "sweep-radar")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if settings.Window {
		return runWindow()
	}

	model := app.New(settings)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFPS(settings.FPS),
	)

	if err := model.StartServices(p); err != nil {
		return err
	}

	_, err := p.Run()
	return err
}

func runWindow() error {
	spk := audio.NewSpeaker()
	if err := spk.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer spk.Close()

	return window.Run(settings, audio.NewSwitch(spk, settings.Mute))
}
