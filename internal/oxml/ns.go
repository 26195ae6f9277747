package oxml

// OOXML namespace URIs. Presentation parts use the conventional prefixes
// (a:, p:, r:) throughout; the helpers in this package address elements by
// prefixed tag the same way the parts themselves do.
const (
	NSDrawingML     = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NSPresentation  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	NSRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NSMedia14       = "http://schemas.microsoft.com/office/powerpoint/2010/main"
)
