package deck

import (
	"fmt"
	"path"
	"strings"
)

// Movie is a media shape: a picture shape that plays video or audio.
type Movie struct {
	Shape
}

// MediaType reports whether the shape plays video or audio.
func (m *Movie) MediaType() MediaType {
	el := m.mediaElement()
	if el == nil {
		return MediaTypeUnknown
	}
	switch el.Tag {
	case "videoFile":
		return MediaTypeMovie
	case "audioFile":
		return MediaTypeAudio
	default:
		return MediaTypeUnknown
	}
}

// MediaFormat describes the media a movie shape plays.
type MediaFormat struct {
	// ContentType is the media's MIME type, e.g. "video/mp4".
	ContentType string
	// Target is the media part name, or the external URL when External.
	Target string
	// External is true when the media lives outside the package.
	External bool
	// ByteLen is the embedded media's size in bytes; 0 for external media.
	ByteLen int
}

// MediaFormat resolves the shape's media relationship and returns a
// format object describing it.
func (m *Movie) MediaFormat() (*MediaFormat, error) {
	el := m.mediaElement()
	if el == nil {
		return nil, fmt.Errorf("deck: shape %q has no media element", m.Name())
	}
	rID := el.SelectAttrValue("r:link", "")
	if rID == "" {
		rID = el.SelectAttrValue("r:embed", "")
	}
	if rID == "" {
		return nil, fmt.Errorf("deck: media element of %q has no relationship id", m.Name())
	}

	rels := m.slide.pres.pkg.Rels(m.slide.partName)
	rel, ok := rels.Lookup(rID)
	if !ok {
		return nil, fmt.Errorf("deck: slide has no relationship %s", rID)
	}
	target := rels.ResolveTarget(rel)
	if rel.External {
		return &MediaFormat{
			ContentType: contentTypeForExt(path.Ext(target)),
			Target:      target,
			External:    true,
		}, nil
	}
	part, err := m.slide.pres.pkg.Part(target)
	if err != nil {
		return nil, fmt.Errorf("deck: resolving media part: %w", err)
	}
	return &MediaFormat{
		ContentType: part.ContentType,
		Target:      part.Name,
		ByteLen:     len(part.Blob),
	}, nil
}

// PosterFrame is the still image a movie shape shows before it plays.
type PosterFrame struct {
	// Name is the image part name, e.g. "/ppt/media/image1.png".
	Name string
	// ContentType is the image's MIME type.
	ContentType string
	// Blob is the image bytes.
	Blob []byte
}

// PosterFrame resolves the shape's blip fill relationship and returns the
// poster image.
func (m *Movie) PosterFrame() (*PosterFrame, error) {
	blipFill := m.el.SelectElement("p:blipFill")
	if blipFill == nil {
		return nil, fmt.Errorf("deck: shape %q has no blip fill", m.Name())
	}
	blip := blipFill.SelectElement("a:blip")
	if blip == nil {
		return nil, fmt.Errorf("deck: shape %q has no blip element", m.Name())
	}
	rID := blip.SelectAttrValue("r:embed", "")
	if rID == "" {
		return nil, fmt.Errorf("deck: blip of %q has no r:embed", m.Name())
	}

	rels := m.slide.pres.pkg.Rels(m.slide.partName)
	rel, ok := rels.Lookup(rID)
	if !ok {
		return nil, fmt.Errorf("deck: slide has no relationship %s", rID)
	}
	part, err := m.slide.pres.pkg.Part(rels.ResolveTarget(rel))
	if err != nil {
		return nil, fmt.Errorf("deck: resolving poster frame part: %w", err)
	}
	return &PosterFrame{Name: part.Name, ContentType: part.ContentType, Blob: part.Blob}, nil
}

func contentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".mp4":
		return "video/mp4"
	case ".avi":
		return "video/x-msvideo"
	case ".mov":
		return "video/quicktime"
	case ".wmv":
		return "video/x-ms-wmv"
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/x-wav"
	default:
		return "application/octet-stream"
	}
}

// relativeTarget renders an absolute part name relative to the directory
// of a source part, the form relationship targets are written in.
func relativeTarget(source, target string) string {
	base := path.Dir(source)
	rel := target
	prefix := ""
	for base != "/" && !strings.HasPrefix(target, base+"/") {
		base = path.Dir(base)
		prefix += "../"
	}
	rel = strings.TrimPrefix(target, base)
	rel = strings.TrimPrefix(rel, "/")
	return prefix + rel
}
