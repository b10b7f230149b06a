package entity

// Sound identifies a sound effect or music track.
type Sound int

const (
	SoundBackgroundMusic Sound = iota
	SoundGameStart
	SoundLongIdle
	SoundWalk
	SoundJump
	SoundHurt
	SoundDead
	SoundEnemyDead
	SoundEndbossAttack
	SoundCoin
	SoundBottleCollect
	SoundBottleHit
)

// Sounds lists every sound in declaration order.
var Sounds = []Sound{
	SoundBackgroundMusic,
	SoundGameStart,
	SoundLongIdle,
	SoundWalk,
	SoundJump,
	SoundHurt,
	SoundDead,
	SoundEnemyDead,
	SoundEndbossAttack,
	SoundCoin,
	SoundBottleCollect,
	SoundBottleHit,
}

// String returns the name of the sound
func (s Sound) String() string {
	switch s {
	case SoundBackgroundMusic:
		return "backgroundMusic"
	case SoundGameStart:
		return "gameStart"
	case SoundLongIdle:
		return "longIdle"
	case SoundWalk:
		return "walk"
	case SoundJump:
		return "jump"
	case SoundHurt:
		return "hurt"
	case SoundDead:
		return "dead"
	case SoundEnemyDead:
		return "enemyDead"
	case SoundEndbossAttack:
		return "endbossAttack"
	case SoundCoin:
		return "coin"
	case SoundBottleCollect:
		return "bottleCollect"
	case SoundBottleHit:
		return "bottleHit"
	default:
		return "unknown"
	}
}

// SoundSink plays sounds. Muted sinks drop playback silently.
type SoundSink interface {
	PlayOne(s Sound)
	StopOne(s Sound)
	StopAll()
	SetMuted(muted bool)
	Muted() bool
}

// NopSink discards every call.
type NopSink struct {
	muted bool
}

func (n *NopSink) PlayOne(Sound)       {}
func (n *NopSink) StopOne(Sound)       {}
func (n *NopSink) StopAll()            {}
func (n *NopSink) SetMuted(muted bool) { n.muted = muted }
func (n *NopSink) Muted() bool         { return n.muted }
