package opc

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestPackage(t *testing.T) *Package {
	t.Helper()
	pkg := NewPackage()
	pkg.AddPart("/ppt/presentation.xml", CTPresentation, []byte("<p:presentation/>"))
	pkg.AddPart("/ppt/slides/slide1.xml", CTSlide, []byte("<p:sld/>"))
	pkg.AddMediaPart("/ppt/media/media1.mp4", CTMP4, []byte{0x00, 0x01, 0x02})
	pkg.Rels("").Add(RTOfficeDocument, "ppt/presentation.xml", false)
	pkg.Rels("/ppt/presentation.xml").Add(RTSlide, "slides/slide1.xml", false)
	pkg.Rels("/ppt/slides/slide1.xml").Add(RTVideo, "../media/media1.mp4", false)
	return pkg
}

func TestPackageRoundTrip(t *testing.T) {
	pkg := buildTestPackage(t)

	var buf bytes.Buffer
	require.NoError(t, pkg.Save(&buf))

	got, err := Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	main, err := got.MainDocumentPart()
	require.NoError(t, err)
	assert.Equal(t, "/ppt/presentation.xml", main.Name)
	assert.Equal(t, CTPresentation, main.ContentType)

	slide, err := got.Part("/ppt/slides/slide1.xml")
	require.NoError(t, err)
	if diff := cmp.Diff([]byte("<p:sld/>"), slide.Blob); diff != "" {
		t.Errorf("slide blob mismatch (-want +got):\n%s", diff)
	}

	media, err := got.Part("/ppt/media/media1.mp4")
	require.NoError(t, err)
	assert.Equal(t, CTMP4, media.ContentType, "media type comes from the extension default")
	assert.Len(t, media.Blob, 3)
}

func TestPackageRoundTripTwice(t *testing.T) {
	// A second save of an unmodified package must produce identical bytes.
	pkg := buildTestPackage(t)

	var first bytes.Buffer
	require.NoError(t, pkg.Save(&first))
	reread, err := Read(bytes.NewReader(first.Bytes()), int64(first.Len()))
	require.NoError(t, err)

	var second bytes.Buffer
	require.NoError(t, reread.Save(&second))
	reread2, err := Read(bytes.NewReader(second.Bytes()), int64(second.Len()))
	require.NoError(t, err)

	for _, name := range []string{"/ppt/presentation.xml", "/ppt/slides/slide1.xml", "/ppt/media/media1.mp4"} {
		a, err := reread.Part(name)
		require.NoError(t, err)
		b, err := reread2.Part(name)
		require.NoError(t, err)
		assert.Equal(t, a.Blob, b.Blob, name)
	}
}

func TestRelationships(t *testing.T) {
	t.Run("next id skips used ordinals", func(t *testing.T) {
		rs := &Relationships{source: "/ppt/presentation.xml"}
		id1 := rs.Add(RTSlide, "slides/slide1.xml", false)
		id2 := rs.Add(RTSlide, "slides/slide2.xml", false)
		assert.Equal(t, "rId1", id1)
		assert.Equal(t, "rId2", id2)
	})

	t.Run("get or add reuses matching rel", func(t *testing.T) {
		rs := &Relationships{source: "/ppt/slides/slide1.xml"}
		a := rs.GetOrAdd(RTVideo, "../media/media1.mp4", false)
		b := rs.GetOrAdd(RTVideo, "../media/media1.mp4", false)
		assert.Equal(t, a, b)
		c := rs.GetOrAdd(RTMedia, "../media/media1.mp4", false)
		assert.NotEqual(t, a, c)
	})

	t.Run("resolve relative target", func(t *testing.T) {
		rs := &Relationships{source: "/ppt/slides/slide1.xml"}
		r := Relationship{ID: "rId1", Type: RTVideo, Target: "../media/movie1.mp4"}
		assert.Equal(t, "/ppt/media/movie1.mp4", rs.ResolveTarget(r))
	})

	t.Run("resolve package-level target", func(t *testing.T) {
		rs := &Relationships{source: ""}
		r := Relationship{ID: "rId1", Type: RTOfficeDocument, Target: "ppt/presentation.xml"}
		assert.Equal(t, "/ppt/presentation.xml", rs.ResolveTarget(r))
	})

	t.Run("external target unchanged", func(t *testing.T) {
		rs := &Relationships{source: "/ppt/slides/slide1.xml"}
		r := Relationship{ID: "rId1", Type: RTVideo, Target: "https://example.com/movie.mp4", External: true}
		assert.Equal(t, "https://example.com/movie.mp4", rs.ResolveTarget(r))
	})
}

func TestExternalRelationshipRoundTrip(t *testing.T) {
	pkg := buildTestPackage(t)
	pkg.Rels("/ppt/slides/slide1.xml").Add(RTVideo, "https://example.com/movie.mp4", true)

	var buf bytes.Buffer
	require.NoError(t, pkg.Save(&buf))
	got, err := Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	rels := got.Rels("/ppt/slides/slide1.xml").ByType(RTVideo)
	require.Len(t, rels, 2)
	assert.False(t, rels[0].External)
	assert.True(t, rels[1].External)
	assert.Equal(t, "https://example.com/movie.mp4", rels[1].Target)
}

func TestSourceOfRels(t *testing.T) {
	tests := []struct {
		relsName string
		want     string
	}{
		{"/_rels/.rels", ""},
		{"/ppt/_rels/presentation.xml.rels", "/ppt/presentation.xml"},
		{"/ppt/slides/_rels/slide1.xml.rels", "/ppt/slides/slide1.xml"},
	}
	for _, tt := range tests {
		if got := sourceOfRels(tt.relsName); got != tt.want {
			t.Errorf("sourceOfRels(%q) = %q, want %q", tt.relsName, got, tt.want)
		}
	}
}

func TestNextPartName(t *testing.T) {
	pkg := buildTestPackage(t)
	assert.Equal(t, "/ppt/media/media2.mp4", pkg.NextPartName("/ppt/media", "media", ".mp4"))
	assert.Equal(t, "/ppt/media/image1.png", pkg.NextPartName("/ppt/media", "image", ".png"))
}

func TestPartNotFound(t *testing.T) {
	pkg := NewPackage()
	_, err := pkg.Part("/ppt/missing.xml")
	assert.ErrorIs(t, err, ErrPartNotFound)
}
