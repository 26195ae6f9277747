package deck

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reload saves the presentation to memory and opens the saved copy.
func reload(t *testing.T, pres *Presentation) *Presentation {
	t.Helper()
	blob, err := pres.Bytes()
	require.NoError(t, err)
	got, err := OpenReader(bytes.NewReader(blob), int64(len(blob)))
	require.NoError(t, err)
	return got
}

// firstRunColor returns the color of the first run on the first slide.
func firstRunColor(t *testing.T, pres *Presentation) *ColorFormat {
	t.Helper()
	shapes, err := pres.Slides()[0].Shapes()
	require.NoError(t, err)
	for _, sh := range shapes.List() {
		tf, ok := sh.TextFrame()
		if !ok {
			continue
		}
		for _, p := range tf.Paragraphs() {
			runs := p.Runs()
			if len(runs) > 0 {
				return runs[0].Font().Color()
			}
		}
	}
	t.Fatal("no text run found")
	return nil
}

func newPresentationWithRun(t *testing.T) *Presentation {
	t.Helper()
	pres, err := New()
	require.NoError(t, err)
	shapes, err := pres.Slides()[0].Shapes()
	require.NoError(t, err)
	box := shapes.AddTextBox(Inches(1), Inches(1), Inches(4), Inches(1))
	tf, _ := box.TextFrame()
	tf.Paragraphs()[0].AddRun("persisted")
	return pres
}

func TestRGBColorSurvivesSaveAndReload(t *testing.T) {
	pres := newPresentationWithRun(t)
	rgb, err := RGBFromHex("1A2B3C")
	require.NoError(t, err)
	firstRunColor(t, pres).SetRGB(rgb)

	got := firstRunColor(t, reload(t, pres))
	assert.Equal(t, ColorTypeRGB, got.Type())
	assert.Equal(t, "1A2B3C", got.RGB().String())
}

func TestThemeColorSurvivesSaveAndReload(t *testing.T) {
	pres := newPresentationWithRun(t)
	require.NoError(t, firstRunColor(t, pres).SetTheme(ThemeColorAccent4))

	got := firstRunColor(t, reload(t, pres))
	assert.Equal(t, ColorTypeTheme, got.Type())
	assert.Equal(t, ThemeColorAccent4, got.Theme())
}

func TestBrightnessSurvivesSaveAndReload(t *testing.T) {
	t.Run("on rgb color", func(t *testing.T) {
		pres := newPresentationWithRun(t)
		color := firstRunColor(t, pres)
		color.SetRGB(RGB(0x10, 0x20, 0x30))
		require.NoError(t, color.SetBrightness(-0.25))

		got := firstRunColor(t, reload(t, pres))
		assert.Equal(t, ColorTypeRGB, got.Type())
		assert.InDelta(t, -0.25, got.Brightness(), 1e-9)
	})

	t.Run("on theme color", func(t *testing.T) {
		pres := newPresentationWithRun(t)
		color := firstRunColor(t, pres)
		require.NoError(t, color.SetTheme(ThemeColorDark2))
		require.NoError(t, color.SetBrightness(0.4))

		got := firstRunColor(t, reload(t, pres))
		assert.Equal(t, ColorTypeTheme, got.Type())
		assert.Equal(t, ThemeColorDark2, got.Theme())
		assert.InDelta(t, 0.4, got.Brightness(), 1e-9)
	})
}

func TestTextSurvivesSaveAndReload(t *testing.T) {
	pres := newPresentationWithRun(t)
	got := reload(t, pres)
	shapes, err := got.Slides()[0].Shapes()
	require.NoError(t, err)
	list := shapes.List()
	require.Len(t, list, 1)
	tf, ok := list[0].TextFrame()
	require.True(t, ok)
	assert.Equal(t, "persisted", tf.Text())
}

func TestSaveToFileAndOpen(t *testing.T) {
	pres := newPresentationWithRun(t)
	firstRunColor(t, pres).SetRGB(RGB(0xAB, 0xCD, 0xEF))

	path := t.TempDir() + "/out.pptx"
	require.NoError(t, pres.SaveAs(path))

	got, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF", firstRunColor(t, got).RGB().String())
}

func TestSlideSize(t *testing.T) {
	pres, err := New()
	require.NoError(t, err)

	cx, cy, err := pres.SlideSize()
	require.NoError(t, err)
	assert.Equal(t, Inches(10), cx)
	assert.Equal(t, Inches(7.5), cy)

	require.NoError(t, pres.SetSlideSize(Inches(13.333), Inches(7.5)))
	assert.Error(t, pres.SetSlideSize(Inches(0.5), Inches(7.5)), "below the one-inch schema minimum")
}
