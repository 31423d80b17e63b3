package render

import (
	"fmt"
	"html"
	"math"
	"os"
	"strings"

	"github.com/san-kum/labelmaker/internal/annotate"
	"github.com/san-kum/labelmaker/internal/thermal"
)

const (
	marginLeft   = 70.0
	marginRight  = 30.0
	marginBottom = 50.0
	titleHeight  = 32.0
	lineHeight   = 16.0
	headerPad    = 12.0
)

// plotArea maps data coordinates onto the diagram panel.
type plotArea struct {
	left, top, width, height float64
	minT, maxT               float64
	minY, maxY               float64
}

func (p plotArea) x(t float64) float64 {
	return p.left + (t-p.minT)/(p.maxT-p.minT)*p.width
}

func (p plotArea) y(temp float64) float64 {
	return p.top + p.height - (temp-p.minY)/(p.maxY-p.minY)*p.height
}

// SVG renders a two-panel label: the header annotations on top and the
// reaction coordinate diagram below.
func SVG(s *thermal.Schedule, label annotate.Label, opts Options) (string, error) {
	d, err := Build(s, opts)
	if err != nil {
		return "", err
	}

	w, h := float64(opts.Width), float64(opts.Height)
	header := label.Header(opts.Toggles)

	top := headerPad
	if opts.Title != "" {
		top += titleHeight
	}
	headerTop := top
	if !header.Empty() {
		top += h / 5
	}

	yRange := d.MaxTemp - d.MinTemp
	if yRange == 0 {
		yRange = max(math.Abs(d.MaxTemp), 1)
	}
	tRange := d.MaxTime - d.MinTime
	area := plotArea{
		left:   marginLeft,
		top:    top,
		width:  w - marginLeft - marginRight,
		height: h - top - marginBottom,
		minT:   d.MinTime - 0.02*tRange,
		maxT:   d.MaxTime + 0.02*tRange,
		minY:   d.MinTemp - 0.15*yRange,
		maxY:   d.MaxTemp + 0.15*yRange,
	}
	if area.width <= 0 || area.height <= 0 {
		return "", fmt.Errorf("render: %dx%d is too small for a label", opts.Width, opts.Height)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, opts.Width, opts.Height, opts.Width, opts.Height))

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text class="title" x="%.1f" y="%.1f" text-anchor="middle" font-size="18" font-weight="bold">%s</text>
`, w/2, headerPad+titleHeight/2+6, html.EscapeString(opts.Title)))
	}

	writeHeader(&sb, header, headerTop, w)

	// Only the left and bottom spines are drawn.
	bottom := area.top + area.height
	sb.WriteString(fmt.Sprintf(`<g stroke="#000000" stroke-width="1">
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
</g>
`, area.left, area.top, area.left, bottom, area.left, bottom, area.left+area.width, bottom))

	writeTicks(&sb, d, area)

	sb.WriteString(`<g fill="none" stroke="#000000" stroke-width="2">
`)
	writePath(&sb, "lead-in", d.LeadIn, area)
	writePath(&sb, "curve", d.Curve, area)
	writePath(&sb, "lead-out", d.LeadOut, area)
	sb.WriteString("</g>\n")

	writeAnnotations(&sb, d, area)

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

// WriteSVG renders the label and writes it to path.
func WriteSVG(path string, s *thermal.Schedule, label annotate.Label, opts Options) error {
	out, err := SVG(s, label, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), 0644)
}

func writeHeader(sb *strings.Builder, h annotate.Header, top, width float64) {
	columns := []struct {
		lines  []string
		x      float64
		anchor Anchor
	}{
		{h.Left, headerPad, AnchorStart},
		{h.Center, width / 2, AnchorMiddle},
		{h.Right, width - headerPad, AnchorEnd},
	}
	for _, col := range columns {
		for i, line := range col.lines {
			sb.WriteString(fmt.Sprintf(`<text class="header" x="%.1f" y="%.1f" text-anchor="%s" font-size="12">%s</text>
`, col.x, top+float64(i+1)*lineHeight, col.anchor, html.EscapeString(line)))
		}
	}
}

func writePath(sb *strings.Builder, class string, points []Point, area plotArea) {
	if len(points) < 2 {
		return
	}
	sb.WriteString(fmt.Sprintf(`<path class="%s" d="M`, class))
	for i, p := range points {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", area.x(p.T), area.y(p.Temp)))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", area.x(p.T), area.y(p.Temp)))
		}
	}
	sb.WriteString("\"/>\n")
}

func writeTicks(sb *strings.Builder, d *Diagram, area plotArea) {
	bottom := area.top + area.height
	for _, t := range d.TimeTicks {
		x := area.x(t)
		sb.WriteString(fmt.Sprintf(`<line class="time-tick" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#000000"/>
<text class="time-tick" x="%.1f" y="%.1f" text-anchor="middle" font-size="10">%s</text>
`, x, bottom, x, bottom+5, x, bottom+18, FormatNumber(t)))
	}
	for _, temp := range d.TempTicks {
		y := area.y(temp)
		sb.WriteString(fmt.Sprintf(`<line class="temp-tick" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#000000"/>
<text class="temp-tick" x="%.1f" y="%.1f" text-anchor="end" font-size="10">%s</text>
`, area.left-5, y, area.left, y, area.left-8, y+3, FormatNumber(temp)))
	}
}

func writeAnnotations(sb *strings.Builder, d *Diagram, area plotArea) {
	for _, a := range d.Annotations {
		x, y := area.x(a.At.T), area.y(a.At.Temp)
		size := 12
		switch a.Kind {
		case AnnotationTemp:
			y -= 8
		case AnnotationTime:
			y += 16
			size = 10
		case AnnotationRate:
			if a.Anchor == AnchorEnd {
				x -= 8
			} else {
				x += 8
			}
		}
		sb.WriteString(fmt.Sprintf(`<text class="%s" x="%.1f" y="%.1f" text-anchor="%s" font-size="%d">%s</text>
`, a.Kind, x, y, a.Anchor, size, html.EscapeString(a.Text)))
	}
}
