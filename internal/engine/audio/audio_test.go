package audio

import (
	"testing"
)

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -1, 1},     // Full volume should be ~0dB
		{0.5, -8, -4},    // Half volume should be around -6dB
		{0.25, -14, -10}, // Quarter volume should be around -12dB
		{0.0, -200, -90}, // Zero volume should be very negative
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewManager(t *testing.T) {
	m := New()
	if m == nil {
		t.Fatal("New() returned nil")
	}

	if m.MasterVolume() != 1.0 {
		t.Errorf("default master volume = %f, want 1.0", m.MasterVolume())
	}
	if m.AmbientVolume() != 0.7 {
		t.Errorf("default ambient volume = %f, want 0.7", m.AmbientVolume())
	}
	if m.IsInitialized() {
		t.Error("manager should not be initialized before Init")
	}
	if m.IsPlaying() {
		t.Error("nothing should be playing before Init")
	}
}

func TestVolumeSettersClamp(t *testing.T) {
	m := New()
	m.SetMasterVolume(2.0)
	if m.MasterVolume() != 1.0 {
		t.Errorf("master volume = %f, want clamped to 1.0", m.MasterVolume())
	}
	m.SetAmbientVolume(-0.5)
	if m.AmbientVolume() != 0.0 {
		t.Errorf("ambient volume = %f, want clamped to 0.0", m.AmbientVolume())
	}
}

func TestPlayAmbientRequiresInit(t *testing.T) {
	m := New()
	if err := m.PlayAmbient([]byte{}, true); err == nil {
		t.Fatal("PlayAmbient before Init should fail")
	}
}
