package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"go-launchcontrol/control"
	lcmidi "go-launchcontrol/midi"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "detect":
		detectLaunchControl()
	case "leds":
		testLEDs()
	case "monitor":
		monitor()
	case "poll":
		pollDevices()
	case "template":
		selectTemplate(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI Test Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list     - List all MIDI ports")
	fmt.Println("  detect   - Find Launch Control")
	fmt.Println("  leds     - Cycle the pad and side LEDs of the factory templates")
	fmt.Println("  monitor  - Print controller input, decoding template changes")
	fmt.Println("  poll     - Poll for device changes")
	fmt.Println("  template <1-16> - Switch the controller to a template via SysEx")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	type result struct {
		ins  []drivers.In
		outs []drivers.Out
	}
	ch := make(chan result, 1)
	go func() {
		ins := midi.GetInPorts()
		outs := midi.GetOutPorts()
		ch <- result{ins: ins, outs: outs}
	}()

	select {
	case r := <-ch:
		for i, p := range r.ins {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
		fmt.Println("\n=== MIDI Output Ports ===")
		for i, p := range r.outs {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
	}
}

func findIn() drivers.In {
	for _, p := range midi.GetInPorts() {
		if control.LaunchControl.Matches(p.String()) {
			return p
		}
	}
	return nil
}

func findOut() drivers.Out {
	for _, p := range midi.GetOutPorts() {
		if control.LaunchControl.Matches(p.String()) {
			return p
		}
	}
	return nil
}

func detectLaunchControl() {
	def := control.LaunchControl
	fmt.Printf("Looking for %s %s (%s)...\n", def.Vendor, def.Name, def.ID)

	in, out := findIn(), findOut()
	if in != nil {
		fmt.Printf("Found input: %s\n", in.String())
	}
	if out != nil {
		fmt.Printf("Found output: %s\n", out.String())
	}

	if in != nil && out != nil {
		fmt.Println("\nLaunch Control detected!")
	} else {
		fmt.Println("\nLaunch Control not found")
	}
}

func testLEDs() {
	fmt.Println("Testing LED control...")

	outPort := findOut()
	if outPort == nil {
		fmt.Println("No Launch Control found")
		return
	}

	send, err := midi.SendTo(outPort)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	colours := []control.Colour{
		control.RedFull, control.AmberFull, control.YellowFull, control.GreenFull,
		control.Orange, control.Lime, control.RedLow, control.GreenLow,
	}
	layout := control.LayoutFor(false)

	fmt.Println("Lighting factory template pads (select each template to see them)...")
	for p := control.Factory1; p <= control.Factory4; p++ {
		for col := 0; col < control.NumColumns; col++ {
			status, data, _ := layout.LEDAddress(p, col)
			send(midi.Message{status, data, byte(colours[col])})
			time.Sleep(30 * time.Millisecond)
		}
	}
	for i := 0; i < 4; i++ {
		send(midi.Message{0xB8, 72 + byte(i), byte(control.RedFull)})
	}

	fmt.Println("Press Enter to clear...")
	fmt.Scanln()

	for ch := byte(0); ch < control.NumPages; ch++ {
		send(midi.Message{0xB0 | ch, 0, 0})
	}

	fmt.Println("Done!")
}

func selectTemplate(args []string) {
	if len(args) < 1 {
		usage()
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > control.NumPages {
		fmt.Printf("Bad template %q (want 1-%d)\n", args[0], control.NumPages)
		return
	}

	outPort := findOut()
	if outPort == nil {
		fmt.Println("No Launch Control found")
		return
	}
	lc, err := lcmidi.NewLaunchControl(outPort.String(), nil, outPort)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer lc.Close()

	msg := control.PageChangeSysEx(n - 1)
	if err := lc.SendSysEx(msg); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Sent % X (%s)\n", msg, control.LayoutFor(false).PageForCode(n-1))
}

func monitor() {
	inPort := findIn()
	if inPort == nil {
		fmt.Println("No Launch Control found")
		return
	}

	fmt.Printf("Monitoring %s. Ctrl+C to exit.\n", inPort.String())
	stop, err := midi.ListenTo(inPort, func(msg midi.Message, timestampms int32) {
		var bt []byte
		if msg.GetSysEx(&bt) {
			frame := append(append([]byte{0xF0}, bt...), 0xF7)
			if code, ok := control.ParsePageChange(frame); ok {
				fmt.Printf("[%6d] template %d (%s)\n", timestampms, code, control.LayoutFor(false).PageForCode(code))
				return
			}
			fmt.Printf("[%6d] sysex % X\n", timestampms, frame)
			return
		}
		fmt.Printf("[%6d] %s\n", timestampms, msg.String())
	}, midi.UseSysEx())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}

func pollDevices() {
	fmt.Println("Polling for device changes every 2 seconds...")
	fmt.Println("Connect/disconnect Launch Control to test. Ctrl+C to exit.")

	lastIn := ""
	lastOut := ""

	for {
		ins := midi.GetInPorts()
		outs := midi.GetOutPorts()

		// Build current state
		var inNames, outNames []string
		for _, p := range ins {
			inNames = append(inNames, p.String())
		}
		for _, p := range outs {
			outNames = append(outNames, p.String())
		}

		currentIn := strings.Join(inNames, ",")
		currentOut := strings.Join(outNames, ",")

		if currentIn != lastIn || currentOut != lastOut {
			fmt.Printf("\n[%s] Device change detected!\n", time.Now().Format("15:04:05"))
			fmt.Printf("  Inputs: %v\n", inNames)
			fmt.Printf("  Outputs: %v\n", outNames)

			for _, name := range inNames {
				if control.LaunchControl.Matches(name) {
					fmt.Println("  -> Launch Control detected!")
				}
			}

			lastIn = currentIn
			lastOut = currentOut
		}

		time.Sleep(2 * time.Second)
	}
}
