package render

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/labelmaker/internal/thermal"
)

const (
	asciiWidth  = 80
	asciiHeight = 15
)

// ASCII plots the schedule as a terminal graph. Width and height are in
// character cells; zero values fall back to 80x15.
func ASCII(s *thermal.Schedule, opts Options, width, height int) (string, error) {
	if width <= 0 {
		width = asciiWidth
	}
	if height <= 0 {
		height = asciiHeight
	}

	d, err := Build(s, opts)
	if err != nil {
		return "", err
	}

	caption := fmt.Sprintf("temperature (%s) over %s %s", opts.TempUnit, FormatNumber(s.TotalTime()), opts.TimeUnit)
	if opts.Title != "" {
		caption = opts.Title + ": " + caption
	}

	data := d.Sample(width)
	if len(data) == 0 {
		return "", fmt.Errorf("render: no data to plot")
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
	)
	return graph, nil
}
