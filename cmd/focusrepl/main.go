// Command focusrepl drives a focus indicator over a simulated AR session.
//
// Planes are added to the session and the camera moved from a prompt; each
// tick delivers one frame to the indicator and prints its state.
//
//	focus: floor 0
//	focus: move 0 1.5 0
//	focus: look 0 -45
//	focus: tick 20
//	tracking alignment=horizontal open=false changing=true position=[0.000 0.000 -1.500]
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"dasa.cc/ar/focus"

	"github.com/chzyer/readline"
)

var (
	flagVerbose = flag.Bool("v", false, "log indicator state transitions")
	flagHz      = flag.Int("hz", 60, "simulated frames per second")
	flagWidth   = flag.Float64("width", 0.5, "indicator width in meters")
	flagHeight  = flag.Float64("height", 0.3, "indicator height in meters")
)

func main() {
	flag.Parse()
	if *flagHz <= 0 {
		log.Fatalf("hz must be positive, have %v", *flagHz)
	}

	tmp, err := os.CreateTemp("", "focusrepl")
	if err != nil {
		log.Fatal(err)
	}
	defer os.Remove(tmp.Name())

	// output is redirected once readline owns the terminal
	logger := log.New(io.Discard, "focus: ", log.Lmicroseconds)
	options := []func(*focus.Indicator){
		focus.Size(float32(*flagWidth), float32(*flagHeight)),
	}
	if *flagVerbose {
		options = append(options, focus.Logger(logger))
	}
	r, err := newRepl(os.Stdout, time.Second/time.Duration(*flagHz), options...)
	if err != nil {
		log.Fatal(err)
	}
	defer r.close()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "focus: ",
		HistoryFile:       tmp.Name(),
		AutoComplete:      r.index,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	log.SetFlags(0)
	log.SetOutput(rl.Stderr())
	logger.SetOutput(rl.Stderr())
	r.out = rl.Stdout()
	log.Printf("commands: %s", strings.Join(r.index.names, " "))

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		if err := r.exec(line); err == errQuit {
			break
		} else if err != nil {
			log.Println(err)
		}
	}
}
