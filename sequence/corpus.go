package sequence

// Stats summarises a Corpus.
type Stats struct {
	Sequences int // number of sequences
	Tokens    int // total token count
	Distinct  int // number of distinct tokens
	MaxLength int // longest sequence
}

// Stats computes summary counts in one pass.
func (c Corpus) Stats() Stats {
	seen := make(map[string]struct{})
	st := Stats{Sequences: len(c)}
	for _, s := range c {
		st.Tokens += len(s)
		if len(s) > st.MaxLength {
			st.MaxLength = len(s)
		}
		for _, tok := range s {
			seen[tok] = struct{}{}
		}
	}
	st.Distinct = len(seen)

	return st
}

// Counts returns the frequency of every token in c.
func (c Corpus) Counts() map[string]int {
	counts := make(map[string]int)
	for _, s := range c {
		for _, tok := range s {
			counts[tok]++
		}
	}

	return counts
}

// Covers reports which of the nodes 0..n-1 occur somewhere in c.
// Tokens that do not decode, or decode outside the range, are ignored.
func (c Corpus) Covers(n int) []bool {
	out := make([]bool, n)
	for _, s := range c {
		for _, tok := range s {
			if id, err := ParseToken(tok); err == nil && id < n {
				out[id] = true
			}
		}
	}

	return out
}
