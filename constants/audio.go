package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every effect
	AudioMasterVolume = 0.5
)

// Eat Sound Timing
const (
	EatSoundDuration = 90 * time.Millisecond
	EatSoundAttack   = 5 * time.Millisecond
	EatSoundRelease  = 60 * time.Millisecond
)

// Crash Sound Timing
const (
	CrashSoundDuration = 400 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 300 * time.Millisecond
)

// Start Sound Timing
const (
	StartSoundNoteDuration = 90 * time.Millisecond
	StartSoundAttack       = 5 * time.Millisecond
	StartSoundRelease      = 50 * time.Millisecond
)
