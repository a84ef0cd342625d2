package jsondelta

// Stats holds counts of the changes a Diff call produced. Pass a non-nil
// *Stats via WithStats to have Diff populate it as it walks the two trees.
type Stats struct {
	Adds    int `json:"adds,omitempty"`    // number of values added
	Removes int `json:"removes,omitempty"` // number of values removed
	Moves   int `json:"moves,omitempty"`   // number of array elements moved
	Edits   int `json:"edits,omitempty"`   // number of values changed in place
}

// NodeChange returns the net shift in element count between left and right:
// Adds minus Removes.
func (s Stats) NodeChange() int {
	return s.Adds - s.Removes
}

func (s *Stats) recordAdd() {
	if s != nil {
		s.Adds++
	}
}

func (s *Stats) recordRemove() {
	if s != nil {
		s.Removes++
	}
}

func (s *Stats) recordMove() {
	if s != nil {
		s.Moves++
	}
}

func (s *Stats) recordEdit() {
	if s != nil {
		s.Edits++
	}
}
