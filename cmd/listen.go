package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/bep/debounce"
	"github.com/pcollins/harmonia/chord"
	"github.com/pcollins/harmonia/constants"
	"github.com/pcollins/harmonia/pitch"
	"github.com/pcollins/harmonia/util"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var listenPort int

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "MIDI in port number")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Recognize chords from live MIDI input",
	Long:  `Recognize chords from live MIDI input. Plays nicely with VMPK or a real keyboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen()
	},
}

func listen() error {
	defer midi.CloseDriver()

	in, err := midi.InPort(listenPort)
	if err != nil {
		return fmt.Errorf("can't find MIDI in port %v: %w", listenPort, err)
	}

	var mu sync.Mutex
	held := make(map[uint8]bool)

	// wait for all of a chord's keys to arrive before recognizing
	settled := debounce.New(constants.ListenDebounce)
	recognize := func() {
		mu.Lock()
		keys := util.SortedKeys(held)
		mu.Unlock()
		if len(keys) < constants.MinChordKeys {
			return
		}
		ps := make([]pitch.PitchLike, len(keys))
		for i, k := range keys {
			ps[i] = pitch.FromMIDI(k)
		}
		c, err := chord.FromPitches(ps)
		if err != nil {
			return // not a chord we know
		}
		fmt.Printf("%v  %v\n", c.Name(), c.Pitches())
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			held[key] = true
			mu.Unlock()
			settled(recognize)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(held, key)
			mu.Unlock()
		}
	})
	if err != nil {
		return err
	}
	defer stop()

	fmt.Printf("listening on %v, ctrl-c to quit\n", in)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}
