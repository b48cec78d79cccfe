// Package audio provides ambient audio playback.
package audio

import (
	"bytes"
	"fmt"
	"io"
	gomath "math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager plays a looping ambient track.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	ambientStreamer beep.StreamSeekCloser
	ambientCtrl     *beep.Ctrl
	ambientVolume   *effects.Volume
	playing         bool

	// Volume settings (0.0 to 1.0)
	masterVolume  float64
	ambientVolLvl float64
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		masterVolume:  1.0,
		ambientVolLvl: 0.7,
	}
}

// Init initializes the audio system.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopInternal()
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.updateVolume()
}

// SetAmbientVolume sets the ambient track volume (0.0 to 1.0).
func (m *Manager) SetAmbientVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ambientVolLvl = clamp(vol, 0, 1)
	m.updateVolume()
}

// MasterVolume returns the master volume.
func (m *Manager) MasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// AmbientVolume returns the ambient track volume.
func (m *Manager) AmbientVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ambientVolLvl
}

func (m *Manager) updateVolume() {
	if m.ambientVolume == nil {
		return
	}
	vol := m.masterVolume * m.ambientVolLvl
	if vol <= 0 {
		m.ambientVolume.Silent = true
	} else {
		m.ambientVolume.Silent = false
		m.ambientVolume.Volume = volumeToDb(vol)
	}
}

// volumeToDb converts a 0-1 volume to decibel scale: 1.0 -> 0dB,
// 0.5 -> -6dB, 0 -> silent.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * gomath.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// PlayAmbient plays an ambient track from WAV data. If loop is true the
// track repeats indefinitely.
func (m *Manager) PlayAmbient(data []byte, loop bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return fmt.Errorf("audio not initialized")
	}

	m.stopInternal()

	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}

	// Resample if needed
	var resampled beep.Streamer
	if format.SampleRate != m.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	} else {
		resampled = streamer
	}

	var finalStreamer beep.Streamer
	if loop {
		finalStreamer = &loopStreamer{
			streamer:  streamer,
			resampled: resampled,
		}
	} else {
		finalStreamer = resampled
	}

	m.ambientCtrl = &beep.Ctrl{Streamer: finalStreamer}
	m.ambientVolume = &effects.Volume{
		Streamer: m.ambientCtrl,
		Base:     2,
	}
	m.updateVolume()

	m.ambientStreamer = streamer
	m.playing = true

	speaker.Play(beep.Seq(m.ambientVolume, beep.Callback(func() {
		m.mu.Lock()
		m.playing = false
		m.mu.Unlock()
	})))

	return nil
}

// StopAmbient stops the current ambient track.
func (m *Manager) StopAmbient() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopInternal()
}

func (m *Manager) stopInternal() {
	if m.ambientCtrl != nil {
		m.ambientCtrl.Paused = true
	}
	speaker.Clear()
	m.playing = false
	if m.ambientStreamer != nil {
		m.ambientStreamer.Close()
		m.ambientStreamer = nil
	}
	m.ambientCtrl = nil
	m.ambientVolume = nil
}

// IsPlaying returns whether the ambient track is playing.
func (m *Manager) IsPlaying() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.playing
}

// loopStreamer repeats a seekable streamer when it runs out.
type loopStreamer struct {
	streamer  beep.StreamSeekCloser
	resampled beep.Streamer
}

func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.resampled.Stream(samples[filled:])
		filled += n
		if !ok {
			if err := l.streamer.Seek(0); err != nil {
				return filled, false
			}
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.resampled.Err()
}
