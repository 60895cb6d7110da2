package debugger

import (
	"github.com/go-faster/errors"
)

// NumMarkers is the number of execution markers.
const NumMarkers = 8

// NTSCCyclesPerFrame is the approximate number of CPU cycles in an NTSC frame
// (341*262/3), the budget a per-frame routine has.
const NTSCCyclesPerFrame = 29780

var ErrNoMarkerInProgress = errors.New("no marker in progress")

type MarkerState uint8

const (
	MarkerUnset MarkerState = iota
	MarkerStarted
	MarkerComplete
)

func (s MarkerState) String() string {
	switch s {
	case MarkerUnset:
		return "unset"
	case MarkerStarted:
		return "started"
	case MarkerComplete:
		return "complete"
	}
	return "unknown"
}

// MarkerPalette holds the display color of each marker.
var MarkerPalette = [NumMarkers][3]uint8{
	{0xFF, 0x40, 0x40},
	{0x40, 0xFF, 0x40},
	{0x40, 0x80, 0xFF},
	{0xFF, 0xFF, 0x40},
	{0xFF, 0x40, 0xFF},
	{0x40, 0xFF, 0xFF},
	{0xFF, 0xA0, 0x40},
	{0xC0, 0xC0, 0xC0},
}

// A Marker measures the time spent executing the code between two
// addresses. A started marker acts as a stopwatch, counting every CPU cycle
// and frame until it's completed. Then, each time execution goes through
// its start address and then its end address, the cycles spent in between
// are profiled.
type Marker struct {
	State    MarkerState
	StartAbs AbsAddr
	EndAbs   AbsAddr
	Cycles   uint64 // cycles counted while started
	Frames   uint64 // frames counted while started
	Color    [3]uint8

	Runs        uint64
	LastCycles  uint64
	MinCycles   uint64
	MaxCycles   uint64
	TotalCycles uint64
}

// AvgCycles returns the average cycle count of the profiled runs.
func (m *Marker) AvgCycles() uint64 {
	if m.Runs == 0 {
		return 0
	}
	return m.TotalCycles / m.Runs
}

// FrameBudget returns the share, in percent, of a frame the last profiled
// run took.
func (m *Marker) FrameBudget() float64 {
	return float64(m.LastCycles) * 100 / NTSCCyclesPerFrame
}

// MarkerSet holds the execution markers.
type MarkerSet struct {
	markers [NumMarkers]Marker

	// profiling state of complete markers
	inRun     [NumMarkers]bool
	runStart  [NumMarkers]int64
	ncomplete int
	nstarted  int

	vis visualizer
}

// AddMarker starts a new marker at startAbs.
func (ms *MarkerSet) AddMarker(startAbs AbsAddr) (int, error) {
	for i := range ms.markers {
		if ms.markers[i].State == MarkerUnset {
			ms.markers[i] = Marker{
				State:    MarkerStarted,
				StartAbs: startAbs,
				EndAbs:   NoAbsAddr,
				Color:    MarkerPalette[i],
			}
			ms.inRun[i] = false
			ms.nstarted++
			return i, nil
		}
	}
	return -1, errors.Wrap(ErrTableFull, "markers")
}

// FindInProgressMarker returns the index of the first started marker.
func (ms *MarkerSet) FindInProgressMarker() (int, error) {
	for i := range ms.markers {
		if ms.markers[i].State == MarkerStarted {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// CompleteMarker stops the marker at idx, which must be started.
func (ms *MarkerSet) CompleteMarker(idx int, endAbs AbsAddr) error {
	if idx < 0 || idx >= NumMarkers {
		return errors.Wrapf(ErrBadIndex, "marker %d", idx)
	}
	m := &ms.markers[idx]
	if m.State != MarkerStarted {
		return errors.Wrapf(ErrNoMarkerInProgress, "marker %d is %s", idx, m.State)
	}
	m.State = MarkerComplete
	m.EndAbs = endAbs
	ms.nstarted--
	ms.ncomplete++
	return nil
}

// ClearAllMarkers resets all markers to the unset state.
func (ms *MarkerSet) ClearAllMarkers() {
	*ms = MarkerSet{}
}

// Marker returns a copy of the marker at idx.
func (ms *MarkerSet) Marker(idx int) (Marker, error) {
	if idx < 0 || idx >= NumMarkers {
		return Marker{}, errors.Wrapf(ErrBadIndex, "marker %d", idx)
	}
	return ms.markers[idx], nil
}

// IndexedMarker is a marker and its index.
type IndexedMarker struct {
	Index int
	Marker
}

// Enumerate returns the markers which are not unset, in index order.
func (ms *MarkerSet) Enumerate() []IndexedMarker {
	var all []IndexedMarker
	for i, m := range ms.markers {
		if m.State != MarkerUnset {
			all = append(all, IndexedMarker{Index: i, Marker: m})
		}
	}
	return all
}

// Restore replaces all markers with ms, in order.
func (ms *MarkerSet) Restore(markers []Marker) error {
	if len(markers) > NumMarkers {
		return errors.Wrapf(ErrTableFull, "restoring %d markers", len(markers))
	}
	ms.ClearAllMarkers()
	for i, m := range markers {
		if m.Color == ([3]uint8{}) {
			m.Color = MarkerPalette[i]
		}
		ms.markers[i] = m
		switch m.State {
		case MarkerStarted:
			ms.nstarted++
		case MarkerComplete:
			ms.ncomplete++
		}
	}
	return nil
}

// active returns the visualizer palette index of the marker timing the code
// being executed, the lowest marker index wins.
func (ms *MarkerSet) active() uint8 {
	if ms.nstarted+ms.ncomplete == 0 {
		return VisualizerNone
	}
	for i := range ms.markers {
		switch ms.markers[i].State {
		case MarkerStarted:
			return uint8(i + 1)
		case MarkerComplete:
			if ms.inRun[i] {
				return uint8(i + 1)
			}
		}
	}
	return VisualizerNone
}

// advance adds cycles to the started markers.
func (ms *MarkerSet) advance(cycles uint64) {
	ms.vis.paint(cycles, ms.active())
	if ms.nstarted == 0 {
		return
	}
	for i := range ms.markers {
		if ms.markers[i].State == MarkerStarted {
			ms.markers[i].Cycles += cycles
		}
	}
}

// frame counts a vblank for the started markers.
func (ms *MarkerSet) frame() {
	ms.vis.flip()
	if ms.nstarted == 0 {
		return
	}
	for i := range ms.markers {
		if ms.markers[i].State == MarkerStarted {
			ms.markers[i].Frames++
		}
	}
}

// execute profiles the complete markers, abs is the address of the
// instruction about to be executed at the given cycle.
func (ms *MarkerSet) execute(abs AbsAddr, cycle int64) {
	if ms.ncomplete == 0 || !abs.Valid() {
		return
	}
	for i := range ms.markers {
		m := &ms.markers[i]
		if m.State != MarkerComplete {
			continue
		}
		if ms.inRun[i] && abs == m.EndAbs {
			d := uint64(cycle - ms.runStart[i])
			m.Runs++
			m.LastCycles = d
			m.TotalCycles += d
			if m.Runs == 1 || d < m.MinCycles {
				m.MinCycles = d
			}
			m.MaxCycles = max(m.MaxCycles, d)
			ms.inRun[i] = false
		}
		if abs == m.StartAbs && !ms.inRun[i] {
			ms.inRun[i] = true
			ms.runStart[i] = cycle
		}
	}
}

const (
	VisualizerWidth  = 341 // PPU dots per scanline
	VisualizerHeight = 262 // scanlines per frame

	// VisualizerImageSize is the size of the buffer RenderVisualizer fills.
	VisualizerImageSize = VisualizerWidth * VisualizerHeight

	// VisualizerNone is the palette index of dots where no marker was
	// timing code. Index i+1 is marker i, of color MarkerPalette[i].
	VisualizerNone = 0
)

// frame ends (and the visualizer buffer starts) on the post-render line.
const visualizerFirstLine = 240

// visualizer records, for each PPU dot of a frame, which marker was timing
// the code the CPU was executing.
type visualizer struct {
	cur, last [VisualizerImageSize]uint8
	pos       int // dot index in cur
}

// paint colors the dots spanned by cycles CPU cycles with palette index c.
func (v *visualizer) paint(cycles uint64, c uint8) {
	start := v.pos
	v.pos = min(v.pos+int(min(cycles, VisualizerImageSize))*3, VisualizerImageSize)
	if c == VisualizerNone {
		return
	}
	for i := start; i < v.pos; i++ {
		v.cur[i] = c
	}
}

// flip keeps the frame that just ended, for rendering.
func (v *visualizer) flip() {
	v.last = v.cur
	clear(v.cur[:])
	v.pos = 0
}

// RenderVisualizer fills dst with the execution visualizer of the last
// complete frame: a VisualizerWidth x VisualizerHeight palette-index image,
// one pixel per PPU dot, row y being scanline y. Pixels are VisualizerNone
// or i+1 for marker i.
func (ms *MarkerSet) RenderVisualizer(dst []byte) {
	_ = dst[VisualizerImageSize-1]
	for row := range VisualizerHeight {
		line := (row + visualizerFirstLine) % VisualizerHeight
		copy(dst[line*VisualizerWidth:(line+1)*VisualizerWidth],
			ms.vis.last[row*VisualizerWidth:(row+1)*VisualizerWidth])
	}
}
