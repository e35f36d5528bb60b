package metadata

import (
	"fmt"

	"github.com/bogem/id3v2"

	"organizemybeats/internal/model"
)

// ID3 date frames in priority order. TDRC (recording time) is the
// primary release-date field; TYER (ID3v2.3 year), TDRL (release
// time) and TDOR (original release time) are fallbacks.
var id3DateFrames = []struct {
	id   string
	conf model.Confidence
}{
	{"TDRC", model.ConfidenceDefinite},
	{"TYER", model.ConfidenceFallback},
	{"TDRL", model.ConfidenceFallback},
	{"TDOR", model.ConfidenceFallback},
}

// mp3Year reads the release year from an MP3's ID3v2 tag.
func (e *Extractor) mp3Year(path string) (int, model.Confidence, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return 0, model.ConfidenceNone, fmt.Errorf("open id3 tag: %w", err)
	}
	defer tag.Close()

	for _, frame := range id3DateFrames {
		text := tag.GetTextFrame(frame.id).Text
		if text == "" {
			continue
		}
		if year, ok := e.parseYear(text); ok {
			return year, frame.conf, nil
		}
	}

	return model.UnknownYear, model.ConfidenceNone, nil
}
