package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/milk9111/lavarun/system"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq float64
	dur  time.Duration
}

// toneFor picks the cue played for a world event.
func toneFor(t system.EventType) (tone, bool) {
	switch t {
	case system.EventCoinCollected:
		return tone{freq: 880, dur: 50 * time.Millisecond}, true
	case system.EventLevelWon:
		return tone{freq: 1320, dur: 200 * time.Millisecond}, true
	case system.EventLevelLost:
		return tone{freq: 110, dur: 300 * time.Millisecond}, true
	case system.EventGameComplete:
		return tone{freq: 523.25, dur: 600 * time.Millisecond}, true
	}
	return tone{}, false
}

type sound struct {
	enabled bool
}

func newSound(mute bool) *sound {
	if mute {
		return &sound{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the game runs silently
		log.Printf("audio initialization failed: %v", err)
		return &sound{}
	}
	return &sound{enabled: true}
}

func (s *sound) play(t system.EventType) {
	if !s.enabled {
		return
	}
	tn, ok := toneFor(t)
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, tn.freq)
	if err != nil {
		log.Printf("tone %v Hz: %v", tn.freq, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tn.dur), sine))
}

func (s *sound) close() {
	if s.enabled {
		speaker.Close()
	}
}
