package model

// IdentifyRequestBody carries the notes to recognize: either note
// names ("E", "G♯4") or raw MIDI key numbers. Order matters for
// inversion detection; the first note is the presumed root.
type IdentifyRequestBody struct {
	Notes []string `json:"notes,omitempty"`
	Keys  []uint8  `json:"keys,omitempty"`
}

type ChordResult struct {
	Name      string   `json:"name"`
	FullName  string   `json:"full_name"`
	Abbr      string   `json:"abbr"`
	Quality   string   `json:"quality"`
	Inversion int      `json:"inversion"`
	Pitches   []string `json:"pitches"`
}

type QualityOverview struct {
	Name      string   `json:"name"`
	FullName  string   `json:"full_name,omitempty"`
	Abbrs     []string `json:"abbrs"`
	Intervals []string `json:"intervals"`
	Semitones []int    `json:"semitones"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
