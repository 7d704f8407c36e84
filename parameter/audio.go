package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 50 * time.Millisecond
)

// Collision click shaping
const (
	ClickDuration = 40 * time.Millisecond
	ClickAttack   = 2 * time.Millisecond
	ClickRelease  = 30 * time.Millisecond

	// ClickBaseFreq is the pitch of a click at zero impulse; impulse raises it up to ClickMaxFreq
	ClickBaseFreq = 440.0
	ClickMaxFreq  = 1760.0

	// ClickImpulseScale maps impulse magnitude to pitch span
	ClickImpulseScale = 200.0

	BounceFreq = 220.0

	DefaultMasterVolume = 0.5
)
