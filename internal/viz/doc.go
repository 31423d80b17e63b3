// Package viz provides an interactive terminal viewer for thermal schedules.
//
// [Model] is a Bubble Tea model that shows the label header, an asciigraph
// plot of the schedule and the segment table, with details for the selected
// segment.
//
// # Key Bindings
//
//	t         - Toggle time annotations
//	T         - Toggle temperature annotations
//	r         - Toggle rate annotations
//	h         - Toggle the header
//	c         - Cycle color themes
//	tab       - Select next segment
//	shift+tab - Select previous segment
//	q         - Quit
package viz
