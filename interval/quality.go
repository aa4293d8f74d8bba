package interval

// Quality classifies an interval: perfect, major, minor, or one of the
// altered forms.
type Quality int

const (
	Perfect Quality = iota
	Major
	Minor
	Augmented
	Diminished
	DoublyAugmented
	DoublyDiminished
)

func (q Quality) String() string {
	switch q {
	case Perfect:
		return "Perfect"
	case Major:
		return "Major"
	case Minor:
		return "Minor"
	case Augmented:
		return "Augmented"
	case Diminished:
		return "Diminished"
	case DoublyAugmented:
		return "Doubly Augmented"
	case DoublyDiminished:
		return "Doubly Diminished"
	}
	return "Unknown"
}
