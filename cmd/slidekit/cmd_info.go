package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"slidekit/deck"
)

// infoCmd summarizes a presentation: slides, shapes, fonts, media.
var infoCmd = &cobra.Command{
	Use:   "info [file.pptx]",
	Short: "Summarize the slides and shapes of a presentation",
	Long: `Opens a presentation and prints one section per slide with each
shape's id, name, type, and, for media shapes, the media it plays.

Example:
  slidekit info talk.pptx
  slidekit info talk.pptx --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

var infoFormat string

func init() {
	infoCmd.Flags().StringVar(&infoFormat, "format", "", "output format: table or json (default from config)")
}

type slideSummary struct {
	Index  int            `json:"index"`
	Part   string         `json:"part"`
	Shapes []shapeSummary `json:"shapes"`
}

type shapeSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Text  string `json:"text,omitempty"`
	Media string `json:"media,omitempty"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger.Debug("opening presentation", zap.String("path", path))

	pres, err := deck.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	summaries, err := summarize(pres)
	if err != nil {
		return err
	}

	format := infoFormat
	if format == "" {
		format = cfg.Output.Format
	}
	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	case "table":
		renderInfoTable(cmd, path, pres, summaries)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// summarize inspects all slides concurrently; shape trees are read-only
// here so the slides can be walked independently.
func summarize(pres *deck.Presentation) ([]slideSummary, error) {
	slides := pres.Slides()
	summaries := make([]slideSummary, len(slides))

	var g errgroup.Group
	for i, slide := range slides {
		i, slide := i, slide
		g.Go(func() error {
			shapes, err := slide.Shapes()
			if err != nil {
				return err
			}
			s := slideSummary{Index: i + 1, Part: slide.PartName()}
			for _, sh := range shapes.List() {
				sum := shapeSummary{ID: sh.ID(), Name: sh.Name(), Type: sh.Type().String()}
				if tf, ok := sh.TextFrame(); ok {
					sum.Text = tf.Text()
				}
				if movie, ok := sh.Movie(); ok {
					if mf, err := movie.MediaFormat(); err == nil {
						sum.Media = fmt.Sprintf("%s %s (%d bytes)", movie.MediaType(), mf.ContentType, mf.ByteLen)
					}
				}
				s.Shapes = append(s.Shapes, sum)
			}
			summaries[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Index < summaries[j].Index })
	return summaries, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func renderInfoTable(cmd *cobra.Command, path string, pres *deck.Presentation, summaries []slideSummary) {
	out := cmd.OutOrStdout()
	styled := cfg.Output.Color

	title := fmt.Sprintf("%s: %d slide(s)", path, len(summaries))
	if cx, cy, err := pres.SlideSize(); err == nil {
		title += fmt.Sprintf(", %.1f×%.1f in", cx.Inches(), cy.Inches())
	}
	fmt.Fprintln(out, style(headerStyle, title, styled))

	for _, s := range summaries {
		fmt.Fprintf(out, "\nSlide %d %s\n", s.Index, style(dimStyle, s.Part, styled))
		if len(s.Shapes) == 0 {
			fmt.Fprintln(out, "  (no shapes)")
			continue
		}
		for _, sh := range s.Shapes {
			line := fmt.Sprintf("  #%-3d %-14s %s", sh.ID, sh.Type, sh.Name)
			if sh.Media != "" {
				line += " - " + sh.Media
			}
			if sh.Text != "" {
				line += fmt.Sprintf(" %q", sh.Text)
			}
			fmt.Fprintln(out, line)
		}
	}
}

func style(s lipgloss.Style, text string, enabled bool) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}
