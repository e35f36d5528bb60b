// Package metadata extracts release years from audio file tags.
//
// # Year Extraction
//
// The Extractor determines a file's format by extension and reads its
// tag container with a format-specific reader:
//
//   - mp3: ID3v2 frames via bogem/id3v2 (TDRC, then TYER/TDRL/TDOR)
//   - flac: Vorbis comments via go-flac (DATE, then YEAR/ORIGINALDATE
//     and the COPYRIGHT notice)
//   - m4a/mp4/ogg/wav/wma/aac: generic container sniffing via
//     dhowden/tag (parsed year, then raw date and copyright fields)
//
// If the container yields nothing, the filename is scanned for a
// 4-digit year token. Years outside 1900 through next year are
// rejected as tag noise.
//
//	extractor := metadata.NewExtractor()
//	info, err := extractor.Year("/music/song_1999.mp3")
//	if err != nil {
//	    // unsupported extension
//	}
//	if info.Unknown() {
//	    // no year anywhere; info.Warning says if the tag was corrupt
//	}
//
// Extraction is strictly read-only and a corrupt tag container never
// fails the call: it is reported through YearInfo.Warning so a batch
// can log it and continue.
//
// # File Inspection
//
// FileInfo reads the full metadata of one file (title, artist, album,
// genre, year, size) for display purposes.
package metadata
