package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"go-launchcontrol/config"
	"go-launchcontrol/control"
	"go-launchcontrol/daw"
	"go-launchcontrol/debug"
	"go-launchcontrol/midi"
	"go-launchcontrol/theme"
	"go-launchcontrol/tui"
)

func main() {
	debugFlag := flag.Bool("debug", false, "log to ~/.config/go-launchcontrol/debug.log")
	configFlag := flag.String("config", "", "config file (default ~/.config/go-launchcontrol/config.json)")
	flag.Parse()

	configPath := *configFlag
	if configPath == "" {
		p, err := config.ConfigPath()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		configPath = p
	}

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Debug || *debugFlag {
		if err := debug.Enable(); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
		defer debug.Disable()
	}

	// Load theme
	palette, err := theme.LoadOrDefault(cfg.Palette)
	if err != nil {
		debug.Log("main", "palette: %v", err)
	}
	th := theme.New(palette)

	// Simulated host and the surface driving it
	project := daw.New(cfg.Tracks)
	project.SetInvert(cfg.Invert)

	mirror := control.NewLEDMirror(nil)
	surface := control.NewSurface(project, mirror)
	queue := control.NewQueue()

	snapshots := make(chan control.Snapshot, 1)
	queue.OnIdle(func() {
		select {
		case <-snapshots:
		default:
		}
		snapshots <- surface.Snapshot()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go queue.Run(ctx)
	queue.Schedule(func() { surface.Init(queue) })

	// Create MIDI device manager (handles hot-plug)
	deviceMgr := midi.NewDeviceManager(
		midi.PortMatcher(cfg.InPort, control.LaunchControl.Matches),
		midi.PortMatcher(cfg.OutPort, control.LaunchControl.Matches),
	)
	go deviceMgr.Run(ctx)

	m := tui.NewModel(tui.Model{
		Project:    project,
		Surface:    surface,
		Queue:      queue,
		Mirror:     mirror,
		DeviceMgr:  deviceMgr,
		Theme:      th,
		Config:     cfg,
		ConfigPath: configPath,
		Snapshots:  snapshots,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	if err := config.Watch(ctx, configPath, func(c *config.Config) {
		p.Send(tui.ConfigMsg{Config: c})
	}); err != nil {
		debug.Log("main", "%v", err)
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Reset the controller before the ports close
	exitCtx, exitCancel := context.WithTimeout(ctx, time.Second)
	defer exitCancel()
	if err := queue.Do(exitCtx, surface.Exit); err != nil {
		debug.Log("main", "exit: %v", err)
	}
}
