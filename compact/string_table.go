package compact

// stringTable interns strings; index 0 is always the empty string.
type stringTable struct {
	index  map[string]uint32
	values []string
}

func newStringTable() *stringTable {
	return &stringTable{
		index:  map[string]uint32{"": 0},
		values: []string{""},
	}
}

func (s *stringTable) intern(value string) uint32 {
	if i, ok := s.index[value]; ok {
		return i
	}
	i := uint32(len(s.values))
	s.values = append(s.values, value)
	s.index[value] = i
	return i
}

func (s *stringTable) get(i uint32) string {
	return s.values[i]
}

func (s *stringTable) len() int {
	return len(s.values) - 1
}
