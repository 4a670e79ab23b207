package nxncube

import (
	"fmt"

	"github.com/google/uuid"
)

// A FaceTracker follows where one logical face color currently lives. On odd
// cubes the fixed middle sticker answers that directly; on even cubes there
// is no fixed reference, so a tracker marks a concrete center sticker and
// follows it through every move.
type FaceTracker interface {
	// Color is the face color this tracker follows.
	Color() Color
	// Locate returns the physical face currently holding this color's
	// reference.
	Locate(c *Cube) (Face, error)
	// Cleanup removes any state the tracker left on the cube.
	Cleanup(c *Cube)
}

// simpleTracker locates its face by a pure function of the cube state.
type simpleTracker struct {
	color  Color
	locate func(c *Cube) (Face, error)
}

func (t *simpleTracker) Color() Color                 { return t.color }
func (t *simpleTracker) Locate(c *Cube) (Face, error) { return t.locate(c) }
func (t *simpleTracker) Cleanup(*Cube)                {}

// markedTracker follows a uuid-tagged center sticker.
type markedTracker struct {
	color Color
	key   string
}

func (t *markedTracker) Color() Color { return t.color }

func (t *markedTracker) Locate(c *Cube) (Face, error) {
	m := c.CenterSize()
	for _, f := range AllFaces {
		for r := 0; r < m; r++ {
			for col := 0; col < m; col++ {
				if v, ok := c.CenterSticker(f, Coord{r, col}).Tag(TagTracker); ok && v == t.key {
					return f, nil
				}
			}
		}
	}
	return 0, fmt.Errorf("%w: color %s key %s", ErrMarkerLost, t.color, t.key)
}

func (t *markedTracker) Cleanup(c *Cube) {
	m := c.CenterSize()
	for _, f := range AllFaces {
		for r := 0; r < m; r++ {
			for col := 0; col < m; col++ {
				s := c.CenterSticker(f, Coord{r, col})
				if v, ok := s.Tag(TagTracker); ok && v == t.key {
					s.ClearTag(TagTracker)
				}
			}
		}
	}
}

// restoreToFace moves the marker onto the given face. It prefers an untagged
// sticker of the tracker's color, then any untagged center sticker, so two
// trackers never end up on the same cell.
func (t *markedTracker) restoreToFace(c *Cube, f Face) error {
	t.Cleanup(c)
	m := c.CenterSize()
	var fallback *Sticker
	for r := 0; r < m; r++ {
		for col := 0; col < m; col++ {
			s := c.CenterSticker(f, Coord{r, col})
			if _, tagged := s.Tag(TagTracker); tagged {
				continue
			}
			if s.Color == t.color {
				s.SetTag(TagTracker, t.key)
				return nil
			}
			if fallback == nil {
				fallback = s
			}
		}
	}
	if fallback == nil {
		return fmt.Errorf("%w: no free center cell on %s for color %s", ErrTrackerAssignment, f, t.color)
	}
	fallback.SetTag(TagTracker, t.key)
	return nil
}

// mark places the tracker on a sticker of its color on the given face.
func (t *markedTracker) mark(c *Cube, f Face) error {
	return t.restoreToFace(c, f)
}

// TrackerHolder owns the six face trackers of a cube and guarantees they
// always describe a valid scheme: six distinct faces, one per color, with
// opposite colors on opposite faces. Three primary trackers do the real
// work; the other three colors are derived as their opposites, which makes
// opposite consistency hold by construction.
type TrackerHolder struct {
	cube     *Cube
	trackers map[Color]FaceTracker

	cached   map[Face]Color
	cachedAt uint64
}

// NewTrackerHolder builds trackers for the cube in its current state.
//
// Odd cubes track White, Green and Red through their fixed middle stickers.
// Even cubes have no fixed reference, so each primary color gets a marked
// sticker on the face currently holding most of that color, chosen greedily
// so no two primaries land on the same axis. A 2x2 has no centers at all and
// is pinned to the standard scheme.
func NewTrackerHolder(c *Cube) (*TrackerHolder, error) {
	h := &TrackerHolder{cube: c, trackers: make(map[Color]FaceTracker, 6)}

	primaries := [3]Color{White, Green, Red}
	switch {
	case c.Size() == 2:
		for _, f := range AllFaces {
			face := f
			h.trackers[SolvedColor(f)] = &simpleTracker{
				color:  SolvedColor(f),
				locate: func(*Cube) (Face, error) { return face, nil },
			}
		}
	case c.Size()%2 == 1:
		for _, color := range primaries {
			color := color
			h.trackers[color] = &simpleTracker{
				color: color,
				locate: func(cc *Cube) (Face, error) {
					for _, f := range AllFaces {
						if cc.MiddleColor(f) == color {
							return f, nil
						}
					}
					return 0, fmt.Errorf("%w: no middle sticker holds %s", ErrTrackerAssignment, color)
				},
			}
		}
	default:
		taken := make(map[Face]bool, 6)
		for _, color := range primaries {
			f, err := bestFaceFor(c, color, taken)
			if err != nil {
				return nil, err
			}
			taken[f] = true
			taken[Opposite(f)] = true
			t := &markedTracker{color: color, key: uuid.NewString()}
			if err := t.mark(c, f); err != nil {
				h.Cleanup()
				return nil, err
			}
			h.trackers[color] = t
		}
	}

	if c.Size() != 2 {
		for _, color := range primaries {
			primary := h.trackers[color]
			opp := OppositeColor(color)
			h.trackers[opp] = &simpleTracker{
				color: opp,
				locate: func(cc *Cube) (Face, error) {
					f, err := primary.Locate(cc)
					if err != nil {
						return 0, err
					}
					return Opposite(f), nil
				},
			}
		}
	}

	if _, err := h.FaceColors(); err != nil {
		h.Cleanup()
		return nil, err
	}
	return h, nil
}

// bestFaceFor picks the face holding the most center stickers of the color,
// excluding faces already claimed by another primary or its opposite. Ties
// break in canonical face order.
func bestFaceFor(c *Cube, color Color, taken map[Face]bool) (Face, error) {
	m := c.CenterSize()
	best, bestCount := FaceU, -1
	for _, f := range AllFaces {
		if taken[f] {
			continue
		}
		count := 0
		for r := 0; r < m; r++ {
			for col := 0; col < m; col++ {
				if c.CenterColor(f, Coord{r, col}) == color {
					count++
				}
			}
		}
		if count > bestCount {
			best, bestCount = f, count
		}
	}
	if bestCount < 0 {
		return 0, fmt.Errorf("%w: no face available for %s", ErrTrackerAssignment, color)
	}
	return best, nil
}

// Tracker returns the tracker for a color.
func (h *TrackerHolder) Tracker(color Color) FaceTracker {
	return h.trackers[color]
}

// FaceColors returns the current physical face of each tracked color, keyed
// by face. The result is validated as a bijection and cached until the next
// cube mutation.
func (h *TrackerHolder) FaceColors() (map[Face]Color, error) {
	if h.cached != nil && h.cachedAt == h.cube.ModCount() {
		return copyFaceColors(h.cached), nil
	}
	out := make(map[Face]Color, 6)
	for _, color := range AllColors {
		f, err := h.trackers[color].Locate(h.cube)
		if err != nil {
			return nil, err
		}
		if prev, dup := out[f]; dup {
			return nil, fmt.Errorf("%w: %s and %s both track face %s", ErrTrackerAssignment, prev, color, f)
		}
		out[f] = color
	}
	h.cached = copyFaceColors(out)
	h.cachedAt = h.cube.ModCount()
	return out, nil
}

func copyFaceColors(m map[Face]Color) map[Face]Color {
	out := make(map[Face]Color, len(m))
	for f, c := range m {
		out[f] = c
	}
	return out
}

// TrackedFace returns the physical face currently holding the color.
func (h *TrackerHolder) TrackedFace(color Color) (Face, error) {
	colors, err := h.FaceColors()
	if err != nil {
		return 0, err
	}
	for f, c := range colors {
		if c == color {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: color %s not tracked", ErrTrackerAssignment, color)
}

// PreservePhysicalFaces snapshots the current color-to-face assignment and
// returns a function that re-establishes it after a disruptive operation.
// Center moves can carry a marked sticker off its face; the restore function
// re-marks any displaced tracker onto the face it had in the snapshot.
func (h *TrackerHolder) PreservePhysicalFaces() (restore func() error, err error) {
	snapshot := make(map[Color]Face, 6)
	colors, err := h.FaceColors()
	if err != nil {
		return nil, err
	}
	for f, c := range colors {
		snapshot[c] = f
	}
	return func() error {
		for _, color := range AllColors {
			t := h.trackers[color]
			mt, isMarked := t.(*markedTracker)
			if !isMarked {
				continue
			}
			f, err := mt.Locate(h.cube)
			if err != nil || f != snapshot[color] {
				if err := mt.restoreToFace(h.cube, snapshot[color]); err != nil {
					return err
				}
			}
		}
		h.cached = nil
		if _, err := h.FaceColors(); err != nil {
			return err
		}
		return nil
	}, nil
}

// PartMatchesFaces reports whether a piece's stickers all show the color
// tracked on the face each sticker sits on. This is the reduction criterion
// for edges and corners once the centers define the scheme.
func (h *TrackerHolder) PartMatchesFaces(stickers ...PartSticker) (bool, error) {
	colors, err := h.FaceColors()
	if err != nil {
		return false, err
	}
	for _, s := range stickers {
		if h.cube.ColorAt(s.Face, s.Row, s.Col) != colors[s.Face] {
			return false, nil
		}
	}
	return true, nil
}

// Cleanup removes all tracker marks from the cube.
func (h *TrackerHolder) Cleanup() {
	for _, t := range h.trackers {
		t.Cleanup(h.cube)
	}
	h.cached = nil
}
