package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slidekit/deck"
)

// mediaCmd lists the media shapes of a presentation.
var mediaCmd = &cobra.Command{
	Use:   "media [file.pptx]",
	Short: "List movie and audio shapes with their media formats",
	Long: `Walks every slide and prints one line per media shape: the slide
number, shape id and name, media type (movie or audio), and the media
format (content type, embedded size or external target).

Example:
  slidekit media talk.pptx`,
	Args: cobra.ExactArgs(1),
	RunE: runMedia,
}

func runMedia(cmd *cobra.Command, args []string) error {
	pres, err := deck.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	found := 0
	for i, slide := range pres.Slides() {
		shapes, err := slide.Shapes()
		if err != nil {
			return err
		}
		for _, sh := range shapes.List() {
			movie, ok := sh.Movie()
			if !ok {
				continue
			}
			found++
			mf, err := movie.MediaFormat()
			if err != nil {
				fmt.Fprintf(out, "slide %d #%d %s: %s (media format unavailable: %v)\n",
					i+1, sh.ID(), sh.Name(), movie.MediaType(), err)
				continue
			}
			loc := fmt.Sprintf("%d bytes embedded at %s", mf.ByteLen, mf.Target)
			if mf.External {
				loc = "external " + mf.Target
			}
			fmt.Fprintf(out, "slide %d #%d %s: %s %s, %s\n",
				i+1, sh.ID(), sh.Name(), movie.MediaType(), mf.ContentType, loc)
		}
	}
	if found == 0 {
		fmt.Fprintln(out, "no media shapes")
	}
	return nil
}
