package audio

import (
	"github.com/lixenwraith/vi-snake/constants"
)

// AudioConfig holds sample rate and volume levels
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the compiled-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   constants.AudioSampleRate,
		MasterVolume: constants.AudioMasterVolume,
		EffectVolumes: [soundTypeCount]float64{
			SoundEat:   0.8,
			SoundCrash: 1.0,
			SoundStart: 0.6,
		},
	}
}

// effectVolume is the final linear volume of a sound type
func (c *AudioConfig) effectVolume(s SoundType) float64 {
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return c.EffectVolumes[s] * c.MasterVolume
}
