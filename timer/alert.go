package timer

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	toneSampleRate beep.SampleRate = 44100
	toneFrequency                  = 880
	toneLength                     = 600 * time.Millisecond
)

// Alerter is told when a run reaches its target length.
type Alerter interface {
	TargetReached(category string, minutes int)
}

// DesktopAlert sends a desktop notification and optionally plays a short tone.
type DesktopAlert struct {
	Notify bool
	Sound  bool
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

func (a DesktopAlert) TargetReached(category string, minutes int) {
	if a.Notify {
		err := beeep.Notify(
			"Session length reached",
			fmt.Sprintf("%d minutes on %s. Log it when you're ready.", minutes, category),
			"",
		)
		if err != nil {
			slog.Error("unable to display notification", slog.Any("error", err))
		}
	}

	if a.Sound {
		if err := playTone(); err != nil {
			slog.Error("unable to play tone", slog.Any("error", err))
		}
	}
}

func playTone() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(toneSampleRate, toneSampleRate.N(time.Second/10))
	})

	if speakerErr != nil {
		return speakerErr
	}

	tone, err := generators.SineTone(toneSampleRate, toneFrequency)
	if err != nil {
		return err
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(
		beep.Take(toneSampleRate.N(toneLength), tone),
		beep.Callback(func() {
			close(done)
		}),
	))

	<-done

	return nil
}
