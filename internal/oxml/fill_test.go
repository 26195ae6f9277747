package oxml

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseRPr(t *testing.T, inner string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	xml := `<a:rPr xmlns:a="` + NSDrawingML + `">` + inner + `</a:rPr>`
	require.NoError(t, doc.ReadFromString(xml))
	return doc.Root()
}

func TestFillReadsColors(t *testing.T) {
	t.Run("no fill", func(t *testing.T) {
		f := NewFill(parseRPr(t, ""))
		_, ok := f.SrgbVal()
		assert.False(t, ok)
		_, ok = f.SchemeVal()
		assert.False(t, ok)
		assert.Zero(t, f.Brightness())
	})

	t.Run("srgb", func(t *testing.T) {
		f := NewFill(parseRPr(t, `<a:solidFill><a:srgbClr val="3C2F80"/></a:solidFill>`))
		val, ok := f.SrgbVal()
		require.True(t, ok)
		assert.Equal(t, "3C2F80", val)
	})

	t.Run("scheme", func(t *testing.T) {
		f := NewFill(parseRPr(t, `<a:solidFill><a:schemeClr val="accent1"/></a:solidFill>`))
		val, ok := f.SchemeVal()
		require.True(t, ok)
		assert.Equal(t, "accent1", val)
	})
}

func TestFillBrightness(t *testing.T) {
	t.Run("lumMod alone is darker", func(t *testing.T) {
		f := NewFill(parseRPr(t,
			`<a:solidFill><a:srgbClr val="000000"><a:lumMod val="75000"/></a:srgbClr></a:solidFill>`))
		assert.InDelta(t, -0.25, f.Brightness(), 1e-9)
	})

	t.Run("lumMod plus lumOff is lighter", func(t *testing.T) {
		f := NewFill(parseRPr(t,
			`<a:solidFill><a:srgbClr val="000000"><a:lumMod val="60000"/><a:lumOff val="40000"/></a:srgbClr></a:solidFill>`))
		assert.InDelta(t, 0.4, f.Brightness(), 1e-9)
	})

	t.Run("percent literal form", func(t *testing.T) {
		f := NewFill(parseRPr(t,
			`<a:solidFill><a:srgbClr val="000000"><a:lumMod val="75%"/></a:srgbClr></a:solidFill>`))
		assert.InDelta(t, -0.25, f.Brightness(), 1e-9)
	})

	t.Run("set darker writes lumMod only", func(t *testing.T) {
		rPr := parseRPr(t, `<a:solidFill><a:srgbClr val="000000"/></a:solidFill>`)
		f := NewFill(rPr)
		require.NoError(t, f.SetBrightness(-0.25))
		clr := rPr.FindElement("a:solidFill/a:srgbClr")
		require.NotNil(t, clr)
		lumMod := clr.SelectElement("a:lumMod")
		require.NotNil(t, lumMod)
		assert.Equal(t, "75000", lumMod.SelectAttrValue("val", ""))
		assert.Nil(t, clr.SelectElement("a:lumOff"))
	})

	t.Run("set lighter writes lumMod and lumOff", func(t *testing.T) {
		rPr := parseRPr(t, `<a:solidFill><a:srgbClr val="000000"/></a:solidFill>`)
		f := NewFill(rPr)
		require.NoError(t, f.SetBrightness(0.4))
		clr := rPr.FindElement("a:solidFill/a:srgbClr")
		require.NotNil(t, clr)
		assert.Equal(t, "60000", clr.SelectElement("a:lumMod").SelectAttrValue("val", ""))
		assert.Equal(t, "40000", clr.SelectElement("a:lumOff").SelectAttrValue("val", ""))
	})

	t.Run("set zero removes adjustments", func(t *testing.T) {
		rPr := parseRPr(t,
			`<a:solidFill><a:srgbClr val="000000"><a:lumMod val="75000"/></a:srgbClr></a:solidFill>`)
		f := NewFill(rPr)
		require.NoError(t, f.SetBrightness(0))
		clr := rPr.FindElement("a:solidFill/a:srgbClr")
		assert.Nil(t, clr.SelectElement("a:lumMod"))
		assert.Nil(t, clr.SelectElement("a:lumOff"))
		assert.Zero(t, f.Brightness())
	})

	t.Run("out of range rejected", func(t *testing.T) {
		f := NewFill(parseRPr(t, `<a:solidFill><a:srgbClr val="000000"/></a:solidFill>`))
		assert.Error(t, f.SetBrightness(1.5))
		assert.Error(t, f.SetBrightness(-1.5))
	})

	t.Run("no fill rejected", func(t *testing.T) {
		f := NewFill(parseRPr(t, ""))
		assert.ErrorIs(t, f.SetBrightness(0.5), ErrNoFill)
	})
}

func TestFillSetColor(t *testing.T) {
	t.Run("replaces noFill and keeps schema order", func(t *testing.T) {
		rPr := parseRPr(t, `<a:ln/><a:noFill/><a:latin typeface="Calibri"/>`)
		f := NewFill(rPr)
		f.SetSrgb("FF0000")

		assert.Nil(t, rPr.SelectElement("a:noFill"))
		children := rPr.ChildElements()
		require.Len(t, children, 3)
		assert.Equal(t, "ln", children[0].Tag)
		assert.Equal(t, "solidFill", children[1].Tag)
		assert.Equal(t, "latin", children[2].Tag)
	})

	t.Run("swapping color kind keeps brightness", func(t *testing.T) {
		rPr := parseRPr(t,
			`<a:solidFill><a:srgbClr val="000000"><a:lumMod val="75000"/></a:srgbClr></a:solidFill>`)
		f := NewFill(rPr)
		f.SetScheme("accent2")

		val, ok := f.SchemeVal()
		require.True(t, ok)
		assert.Equal(t, "accent2", val)
		assert.InDelta(t, -0.25, f.Brightness(), 1e-9)
	})
}
