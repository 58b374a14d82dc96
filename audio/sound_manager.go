package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"classic-snake/game/manager"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatFrequency   = 880
	eatDuration    = 50 * time.Millisecond
	crashFrequency = 110
	crashDuration  = 250 * time.Millisecond
)

// SoundManager plays short cues for game events. It implements
// game.Listener and is silent until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
}

func NewSoundManager(logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker. Failure leaves the manager silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// FoodEaten plays a short high tone.
func (sm *SoundManager) FoodEaten(score int) {
	sm.play(eatFrequency, eatDuration, 0)
}

// RunEnded plays a low tone, quieter for runs that were reset by hand.
func (sm *SoundManager) RunEnded(record manager.RunRecord) {
	volume := 0.0
	if record.Reason == manager.EndReset {
		volume = -1
	}
	sm.play(crashFrequency, crashDuration, volume)
}

func (sm *SoundManager) play(freq int, d time.Duration, volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	tone, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		sm.logger.Printf("tone %dHz: %v", freq, err)
		return
	}

	streamer := &effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), tone),
		Base:     2,
		Volume:   volume,
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
