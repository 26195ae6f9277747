package deck

import "github.com/beevik/etree"

// TextFrame is the text container of a shape (p:txBody).
type TextFrame struct {
	el *etree.Element
}

// Paragraphs returns the frame's paragraphs in document order. A frame
// always has at least one.
func (tf *TextFrame) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, p := range tf.el.SelectElements("a:p") {
		out = append(out, &Paragraph{el: p})
	}
	return out
}

// Text returns the concatenated text of all runs, paragraphs separated by
// newlines.
func (tf *TextFrame) Text() string {
	var s string
	for i, p := range tf.Paragraphs() {
		if i > 0 {
			s += "\n"
		}
		s += p.Text()
	}
	return s
}

// Paragraph is one a:p element.
type Paragraph struct {
	el *etree.Element
}

// Runs returns the paragraph's text runs.
func (p *Paragraph) Runs() []*Run {
	var out []*Run
	for _, r := range p.el.SelectElements("a:r") {
		out = append(out, &Run{el: r})
	}
	return out
}

// AddRun appends a run with the given text.
func (p *Paragraph) AddRun(text string) *Run {
	r := etree.NewElement("a:r")
	t := r.CreateElement("a:t")
	t.SetText(text)
	// a:r elements precede the closing a:endParaRPr if one is present.
	if end := p.el.SelectElement("a:endParaRPr"); end != nil {
		p.el.InsertChildAt(end.Index(), r)
	} else {
		p.el.AddChild(r)
	}
	return &Run{el: r}
}

// Text returns the concatenated run text.
func (p *Paragraph) Text() string {
	var s string
	for _, r := range p.Runs() {
		s += r.Text()
	}
	return s
}

// Run is one a:r element, the atomic unit of text formatting.
type Run struct {
	el *etree.Element
}

// Text returns the run's text.
func (r *Run) Text() string {
	if t := r.el.SelectElement("a:t"); t != nil {
		return t.Text()
	}
	return ""
}

// SetText replaces the run's text.
func (r *Run) SetText(text string) {
	t := r.el.SelectElement("a:t")
	if t == nil {
		t = r.el.CreateElement("a:t")
	}
	t.SetText(text)
}

// Font returns the run's character formatting, creating the underlying
// a:rPr element on first use.
func (r *Run) Font() *Font {
	rPr := r.el.SelectElement("a:rPr")
	if rPr == nil {
		rPr = etree.NewElement("a:rPr")
		// rPr is the first child of a:r, ahead of a:t.
		r.el.InsertChildAt(0, rPr)
	}
	return &Font{rPr: rPr}
}
