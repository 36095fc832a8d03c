package sequence

import (
	"fmt"
	"strconv"
)

// Token returns the word used for node id in a Sequence.
func Token(id int) string {
	return strconv.Itoa(id)
}

// ParseToken returns the node id encoded by tok. Only canonical decimal
// forms produced by Token are accepted ("07" and "-1" are rejected).
func ParseToken(tok string) (int, error) {
	id, err := strconv.Atoi(tok)
	if err != nil || id < 0 || strconv.Itoa(id) != tok {
		return 0, fmt.Errorf("%w: %q", ErrBadToken, tok)
	}

	return id, nil
}

// FromIDs converts a node path into a Sequence.
func FromIDs(ids []int) Sequence {
	s := make(Sequence, len(ids))
	for i, id := range ids {
		s[i] = Token(id)
	}

	return s
}

// IDs decodes s back into node IDs.
func (s Sequence) IDs() ([]int, error) {
	ids := make([]int, len(s))
	for i, tok := range s {
		id, err := ParseToken(tok)
		if err != nil {
			return nil, fmt.Errorf("IDs: position %d: %w", i, err)
		}
		ids[i] = id
	}

	return ids, nil
}
