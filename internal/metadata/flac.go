package metadata

import (
	"fmt"

	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"

	"organizemybeats/internal/model"
)

// flacYear reads the release year from a FLAC's Vorbis comment block.
//
// Field priority: DATE is the standard release-date field, then YEAR
// and ORIGINALDATE, and finally a year scraped out of the COPYRIGHT
// notice ("℗ 2020 Label").
func (e *Extractor) flacYear(path string) (int, model.Confidence, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return 0, model.ConfidenceNone, fmt.Errorf("parse flac: %w", err)
	}

	for _, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}

		cmt, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return 0, model.ConfidenceNone, fmt.Errorf("parse vorbis comment: %w", err)
		}

		if year, ok := e.vorbisField(cmt, "DATE"); ok {
			return year, model.ConfidenceDefinite, nil
		}
		for _, field := range []string{"YEAR", "ORIGINALDATE"} {
			if year, ok := e.vorbisField(cmt, field); ok {
				return year, model.ConfidenceFallback, nil
			}
		}
		if vals, err := cmt.Get("COPYRIGHT"); err == nil && len(vals) > 0 {
			if year, ok := e.copyrightYear(vals[0]); ok {
				return year, model.ConfidenceFallback, nil
			}
		}
	}

	return model.UnknownYear, model.ConfidenceNone, nil
}

func (e *Extractor) vorbisField(cmt *flacvorbis.MetaDataBlockVorbisComment, field string) (int, bool) {
	vals, err := cmt.Get(field)
	if err != nil || len(vals) == 0 {
		return 0, false
	}
	return e.parseYear(vals[0])
}
