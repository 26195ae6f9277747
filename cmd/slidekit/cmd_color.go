package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"slidekit/deck"
)

// colorCmd groups the font color subcommands.
var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Read and set font colors",
}

var colorGetCmd = &cobra.Command{
	Use:   "get [file.pptx]",
	Short: "Print the font color of every run on a slide",
	Long: `Prints each text run on the selected slide with its color type
(none, rgb, or theme), value, and brightness adjustment.

Example:
  slidekit color get talk.pptx --slide 1`,
	Args: cobra.ExactArgs(1),
	RunE: runColorGet,
}

var colorSetCmd = &cobra.Command{
	Use:   "set [file.pptx]",
	Short: "Set the font color of a shape's text",
	Long: `Sets the font color of every run in the selected shape. Exactly one
of --rgb or --theme selects the color; --brightness optionally adjusts it
(-1.0 darkest to 1.0 lightest). The file is rewritten in place unless
--out names a different path.

Examples:
  slidekit color set talk.pptx --slide 1 --shape 2 --rgb 3C2F80
  slidekit color set talk.pptx --slide 1 --shape 2 --theme accent1 --brightness -0.25`,
	Args: cobra.ExactArgs(1),
	RunE: runColorSet,
}

var (
	colorSlide      int
	colorShape      int
	colorRGB        string
	colorTheme      string
	colorBrightness float64
	colorOut        string
)

func init() {
	colorGetCmd.Flags().IntVar(&colorSlide, "slide", 1, "1-based slide number")

	colorSetCmd.Flags().IntVar(&colorSlide, "slide", 1, "1-based slide number")
	colorSetCmd.Flags().IntVar(&colorShape, "shape", 0, "shape id (0 = all text shapes)")
	colorSetCmd.Flags().StringVar(&colorRGB, "rgb", "", "six-digit hex color, e.g. 3C2F80")
	colorSetCmd.Flags().StringVar(&colorTheme, "theme", "", "theme slot, e.g. accent1, dk2, hlink")
	colorSetCmd.Flags().Float64Var(&colorBrightness, "brightness", 0, "brightness adjustment in [-1.0, 1.0]")
	colorSetCmd.Flags().StringVar(&colorOut, "out", "", "output path (default: rewrite input)")

	colorCmd.AddCommand(colorGetCmd)
	colorCmd.AddCommand(colorSetCmd)
}

func runColorGet(cmd *cobra.Command, args []string) error {
	_, slide, err := openSlide(args[0], colorSlide)
	if err != nil {
		return err
	}

	shapes, err := slide.Shapes()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, sh := range shapes.List() {
		tf, ok := sh.TextFrame()
		if !ok {
			continue
		}
		for pi, para := range tf.Paragraphs() {
			for ri, run := range para.Runs() {
				color := run.Font().Color()
				line := fmt.Sprintf("shape #%d %s p%d r%d: %s", sh.ID(), sh.Name(), pi+1, ri+1, color.Type())
				switch color.Type() {
				case deck.ColorTypeRGB:
					line += " " + color.RGB().String()
				case deck.ColorTypeTheme:
					line += " " + color.Theme().String()
				}
				if b := color.Brightness(); b != 0 {
					line += fmt.Sprintf(" brightness=%+.2f", b)
				}
				fmt.Fprintln(out, line)
			}
		}
	}
	return nil
}

func runColorSet(cmd *cobra.Command, args []string) error {
	path := args[0]
	// Changed distinguishes an explicit --brightness 0, which clears an
	// existing adjustment, from the flag being absent.
	brightnessSet := cmd.Flags().Changed("brightness")
	if colorRGB != "" && colorTheme != "" {
		return fmt.Errorf("--rgb and --theme are mutually exclusive")
	}
	if colorRGB == "" && colorTheme == "" && !brightnessSet {
		return fmt.Errorf("one of --rgb, --theme, or --brightness is required")
	}

	pres, slide, err := openSlide(path, colorSlide)
	if err != nil {
		return err
	}

	shapes, err := slide.Shapes()
	if err != nil {
		return err
	}
	changed := 0
	for _, sh := range shapes.List() {
		if colorShape != 0 && sh.ID() != colorShape {
			continue
		}
		tf, ok := sh.TextFrame()
		if !ok {
			continue
		}
		for _, para := range tf.Paragraphs() {
			for _, run := range para.Runs() {
				color := run.Font().Color()
				if colorRGB != "" {
					rgb, err := deck.RGBFromHex(colorRGB)
					if err != nil {
						return err
					}
					color.SetRGB(rgb)
				}
				if colorTheme != "" {
					tc, ok := deck.ThemeColorFromName(colorTheme)
					if !ok {
						return fmt.Errorf("unknown theme color %q", colorTheme)
					}
					if err := color.SetTheme(tc); err != nil {
						return err
					}
				}
				if brightnessSet {
					if err := color.SetBrightness(colorBrightness); err != nil {
						return err
					}
				}
				changed++
			}
		}
	}
	if changed == 0 {
		return fmt.Errorf("no text runs matched on slide %d", colorSlide)
	}

	outPath := colorOut
	if outPath == "" {
		outPath = path
	}
	if err := pres.SaveAs(outPath); err != nil {
		return err
	}
	logger.Info("font color updated",
		zap.String("file", outPath),
		zap.Int("slide", colorSlide),
		zap.Int("runs", changed))
	fmt.Fprintf(cmd.OutOrStdout(), "updated %d run(s), wrote %s\n", changed, outPath)
	return nil
}

// openSlide opens a presentation and selects a 1-based slide.
func openSlide(path string, n int) (*deck.Presentation, *deck.Slide, error) {
	pres, err := deck.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	slides := pres.Slides()
	if n < 1 || n > len(slides) {
		return nil, nil, fmt.Errorf("slide %d out of range (presentation has %d)", n, len(slides))
	}
	return pres, slides[n-1], nil
}
