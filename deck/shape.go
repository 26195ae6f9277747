package deck

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"

	"slidekit/internal/opc"
)

// Shape is one placeable object in a slide's shape tree.
type Shape struct {
	slide *Slide
	el    *etree.Element
}

// ID returns the shape's drawing id.
func (sh *Shape) ID() int {
	if cNvPr := sh.nvPr("p:cNvPr"); cNvPr != nil {
		n, _ := strconv.Atoi(cNvPr.SelectAttrValue("id", "0"))
		return n
	}
	return 0
}

// Name returns the shape's display name.
func (sh *Shape) Name() string {
	if cNvPr := sh.nvPr("p:cNvPr"); cNvPr != nil {
		return cNvPr.SelectAttrValue("name", "")
	}
	return ""
}

// nvPr finds a child of the shape's non-visual properties container, which
// is p:nvSpPr for p:sp, p:nvPicPr for p:pic, and so on.
func (sh *Shape) nvPr(tag string) *etree.Element {
	for _, container := range []string{"p:nvSpPr", "p:nvPicPr", "p:nvGrpSpPr", "p:nvGraphicFramePr"} {
		if c := sh.el.SelectElement(container); c != nil {
			return c.SelectElement(tag)
		}
	}
	return nil
}

// mediaElement returns the a:videoFile or a:audioFile element for a media
// shape, or nil.
func (sh *Shape) mediaElement() *etree.Element {
	nvPicPr := sh.el.SelectElement("p:nvPicPr")
	if nvPicPr == nil {
		return nil
	}
	nvPr := nvPicPr.SelectElement("p:nvPr")
	if nvPr == nil {
		return nil
	}
	if v := nvPr.SelectElement("a:videoFile"); v != nil {
		return v
	}
	return nvPr.SelectElement("a:audioFile")
}

// Type classifies the shape. A picture whose non-visual properties carry a
// videoFile or audioFile element is a media shape.
func (sh *Shape) Type() ShapeType {
	switch sh.el.Tag {
	case "sp":
		if cNvSpPr := sh.nvPr("p:cNvSpPr"); cNvSpPr != nil && cNvSpPr.SelectAttrValue("txBox", "0") == "1" {
			return ShapeTypeTextBox
		}
		return ShapeTypeAutoShape
	case "pic":
		if sh.mediaElement() != nil {
			return ShapeTypeMedia
		}
		return ShapeTypePicture
	case "grpSp":
		return ShapeTypeGroup
	case "graphicFrame":
		return ShapeTypeGraphicFrame
	default:
		return ShapeTypeUnknown
	}
}

// TextFrame returns the shape's text container, if it has one.
func (sh *Shape) TextFrame() (*TextFrame, bool) {
	txBody := sh.el.SelectElement("p:txBody")
	if txBody == nil {
		return nil, false
	}
	return &TextFrame{el: txBody}, true
}

// Movie returns the media view of the shape, if it is a media shape.
func (sh *Shape) Movie() (*Movie, bool) {
	if sh.Type() != ShapeTypeMedia {
		return nil, false
	}
	return &Movie{Shape: *sh}, true
}

// Shapes is the shape collection of one slide.
type Shapes struct {
	slide  *Slide
	spTree *etree.Element
}

// List returns the slide's top-level shapes in z-order.
func (ss *Shapes) List() []*Shape {
	var out []*Shape
	for _, el := range ss.spTree.ChildElements() {
		switch el.Tag {
		case "sp", "pic", "grpSp", "graphicFrame", "cxnSp":
			out = append(out, &Shape{slide: ss.slide, el: el})
		}
	}
	return out
}

// AddTextBox appends an empty text box shape with the given position and
// size and returns it.
func (ss *Shapes) AddTextBox(left, top, width, height Length) *Shape {
	id := ss.nextShapeID()
	sp := ss.spTree.CreateElement("p:sp")

	nvSpPr := sp.CreateElement("p:nvSpPr")
	cNvPr := nvSpPr.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(id))
	cNvPr.CreateAttr("name", fmt.Sprintf("TextBox %d", id-1))
	nvSpPr.CreateElement("p:cNvSpPr").CreateAttr("txBox", "1")
	nvSpPr.CreateElement("p:nvPr")

	spPr := sp.CreateElement("p:spPr")
	xfrm := spPr.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", strconv.FormatInt(int64(left), 10))
	off.CreateAttr("y", strconv.FormatInt(int64(top), 10))
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", strconv.FormatInt(int64(width), 10))
	ext.CreateAttr("cy", strconv.FormatInt(int64(height), 10))
	prstGeom := spPr.CreateElement("a:prstGeom")
	prstGeom.CreateAttr("prst", "rect")
	prstGeom.CreateElement("a:avLst")
	spPr.CreateElement("a:noFill")

	txBody := sp.CreateElement("p:txBody")
	bodyPr := txBody.CreateElement("a:bodyPr")
	bodyPr.CreateAttr("wrap", "none")
	bodyPr.CreateElement("a:spAutoFit")
	txBody.CreateElement("a:lstStyle")
	txBody.CreateElement("a:p")

	return &Shape{slide: ss.slide, el: sp}
}

// AddMovie appends a movie shape whose media is read from r and embedded
// in the package. contentType is the media's MIME type, e.g. "video/mp4";
// posterFrame may be nil to use the built-in speaker image.
func (ss *Shapes) AddMovie(r io.Reader, contentType string, left, top, width, height Length, posterFrame io.Reader) (*Movie, error) {
	blob, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("deck: reading movie media: %w", err)
	}
	pkg := ss.slide.pres.pkg

	mediaName := pkg.NextPartName("/ppt/media", "media", extForContentType(contentType))
	pkg.AddMediaPart(mediaName, contentType, blob)

	posterBlob := speakerPNG
	posterType := opc.CTPNG
	if posterFrame != nil {
		posterBlob, err = io.ReadAll(posterFrame)
		if err != nil {
			return nil, fmt.Errorf("deck: reading poster frame: %w", err)
		}
	}
	posterName := pkg.NextPartName("/ppt/media", "image", ".png")
	pkg.AddMediaPart(posterName, posterType, posterBlob)

	rels := pkg.Rels(ss.slide.partName)
	mediaTarget := relativeTarget(ss.slide.partName, mediaName)
	posterTarget := relativeTarget(ss.slide.partName, posterName)
	videoRID := rels.GetOrAdd(opc.RTVideo, mediaTarget, false)
	mediaRID := rels.GetOrAdd(opc.RTMedia, mediaTarget, false)
	posterRID := rels.GetOrAdd(opc.RTImage, posterTarget, false)

	id := ss.nextShapeID()
	pic := ss.spTree.CreateElement("p:pic")

	nvPicPr := pic.CreateElement("p:nvPicPr")
	cNvPr := nvPicPr.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(id))
	cNvPr.CreateAttr("name", fmt.Sprintf("Movie %d", id-1))
	hlink := cNvPr.CreateElement("a:hlinkClick")
	hlink.CreateAttr("r:id", "")
	hlink.CreateAttr("action", "ppaction://media")
	cNvPicPr := nvPicPr.CreateElement("p:cNvPicPr")
	cNvPicPr.CreateElement("a:picLocks").CreateAttr("noChangeAspect", "1")
	nvPr := nvPicPr.CreateElement("p:nvPr")
	videoFile := nvPr.CreateElement("a:videoFile")
	videoFile.CreateAttr("r:link", videoRID)
	extLst := nvPr.CreateElement("p:extLst")
	extEl := extLst.CreateElement("p:ext")
	extEl.CreateAttr("uri", "{DAA4B4D4-6D71-4841-9C94-3DE7FCFB9230}")
	media := extEl.CreateElement("p14:media")
	media.CreateAttr("xmlns:p14", "http://schemas.microsoft.com/office/powerpoint/2010/main")
	media.CreateAttr("r:embed", mediaRID)

	blipFill := pic.CreateElement("p:blipFill")
	blip := blipFill.CreateElement("a:blip")
	blip.CreateAttr("r:embed", posterRID)
	blipFill.CreateElement("a:stretch").CreateElement("a:fillRect")

	spPr := pic.CreateElement("p:spPr")
	xfrm := spPr.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", strconv.FormatInt(int64(left), 10))
	off.CreateAttr("y", strconv.FormatInt(int64(top), 10))
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", strconv.FormatInt(int64(width), 10))
	ext.CreateAttr("cy", strconv.FormatInt(int64(height), 10))
	prstGeom := spPr.CreateElement("a:prstGeom")
	prstGeom.CreateAttr("prst", "rect")
	prstGeom.CreateElement("a:avLst")

	return &Movie{Shape: Shape{slide: ss.slide, el: pic}}, nil
}

// nextShapeID returns one more than the highest drawing id in the tree.
func (ss *Shapes) nextShapeID() int {
	max := 1 // id 1 belongs to the group shape properties of the tree itself
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if el.Tag == "cNvPr" {
			if n, err := strconv.Atoi(el.SelectAttrValue("id", "")); err == nil && n > max {
				max = n
			}
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(ss.spTree)
	return max + 1
}

func extForContentType(contentType string) string {
	switch contentType {
	case "video/mp4":
		return ".mp4"
	case "video/x-msvideo":
		return ".avi"
	case "video/quicktime":
		return ".mov"
	case "video/x-ms-wmv":
		return ".wmv"
	case "audio/mpeg":
		return ".mp3"
	case "audio/x-wav":
		return ".wav"
	default:
		return ".bin"
	}
}
