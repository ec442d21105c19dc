package studio

// Tab is the top-level application tab.
type Tab int

const (
	TabCreate Tab = iota
	TabGallery
)

func (t Tab) String() string {
	switch t {
	case TabCreate:
		return "Create"
	case TabGallery:
		return "Gallery"
	default:
		return "Unknown"
	}
}
