package events

const (
	// KindClipPlayed identifies a clip handed to the output sink.
	KindClipPlayed Kind = "playback.clip_played"
	// KindPlaybackDrained identifies the moment the clip queue ran dry after
	// end of stream.
	KindPlaybackDrained Kind = "playback.drained"
)

// ClipPlayed carries a clip delivered to the playback sink.
type ClipPlayed struct {
	Base
	Key  string
	Path string
}

// NewClipPlayed creates a clip played event.
func NewClipPlayed(key, path string) ClipPlayed {
	return ClipPlayed{Base: NewBase(KindClipPlayed), Key: key, Path: path}
}

// PlaybackDrained marks that all queued clips were consumed.
type PlaybackDrained struct{ Base }

// NewPlaybackDrained creates a playback drained event.
func NewPlaybackDrained() PlaybackDrained {
	return PlaybackDrained{Base: NewBase(KindPlaybackDrained)}
}
