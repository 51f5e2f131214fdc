package layout

// Track is one row or column of a container.
type Track struct {
	Index   int
	Weight  int // Share of free space the track grows by
	MinSize int // Minimum extent in pixels
}

// TrackSet is the ordered tracks of one axis. Tracks are addressed by index
// and only ever appended, so indices stay stable while a set grows.
type TrackSet struct {
	tracks []Track
}

// NewTrackSet creates a set holding one track per spec.
func NewTrackSet(specs ...TrackSpec) *TrackSet {
	ts := &TrackSet{tracks: make([]Track, 0, len(specs))}
	for _, spec := range specs {
		ts.append(spec)
	}
	return ts
}

func (ts *TrackSet) append(spec TrackSpec) {
	weight, minSize := spec.Resolve()
	ts.tracks = append(ts.tracks, Track{Index: len(ts.tracks), Weight: weight, MinSize: minSize})
}

// Len returns the number of tracks.
func (ts *TrackSet) Len() int {
	return len(ts.tracks)
}

// EnsureLength appends tracks configured from def until the set has at least
// n tracks. It returns the number of tracks appended.
func (ts *TrackSet) EnsureLength(n int, def TrackSpec) int {
	added := 0
	for len(ts.tracks) < n {
		ts.append(def)
		added++
	}
	return added
}

// Configure overwrites the weight and minimum size of track i, appending auto
// tracks first if i is past the end.
func (ts *TrackSet) Configure(i, weight, minSize int) {
	ts.EnsureLength(i+1, Auto())
	ts.tracks[i].Weight = weight
	ts.tracks[i].MinSize = minSize
}

// SetWeight overwrites the weight of track i, appending auto tracks if needed.
func (ts *TrackSet) SetWeight(i, weight int) {
	ts.EnsureLength(i+1, Auto())
	ts.tracks[i].Weight = weight
}

// SetMinSize overwrites the minimum size of track i, appending auto tracks if needed.
func (ts *TrackSet) SetMinSize(i, minSize int) {
	ts.EnsureLength(i+1, Auto())
	ts.tracks[i].MinSize = minSize
}

// Track returns track i. ok is false if i is out of range.
func (ts *TrackSet) Track(i int) (t Track, ok bool) {
	if i < 0 || i >= len(ts.tracks) {
		return Track{Index: i}, false
	}
	return ts.tracks[i], true
}

// Weights returns the weight of every track in index order.
func (ts *TrackSet) Weights() []int {
	out := make([]int, len(ts.tracks))
	for i, t := range ts.tracks {
		out[i] = t.Weight
	}
	return out
}

// MinSizes returns the minimum size of every track in index order.
func (ts *TrackSet) MinSizes() []int {
	out := make([]int, len(ts.tracks))
	for i, t := range ts.tracks {
		out[i] = t.MinSize
	}
	return out
}

// Snapshot returns a copy of the tracks.
func (ts *TrackSet) Snapshot() []Track {
	out := make([]Track, len(ts.tracks))
	copy(out, ts.tracks)
	return out
}

// TotalWeight returns the sum of all weights.
func (ts *TrackSet) TotalWeight() int {
	total := 0
	for _, t := range ts.tracks {
		total += t.Weight
	}
	return total
}

// resetWeights sets every weight to 0.
func (ts *TrackSet) resetWeights() {
	for i := range ts.tracks {
		ts.tracks[i].Weight = 0
	}
}
