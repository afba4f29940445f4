package route

// Entry is one screen in the back stack together with any state the screen
// wants restored when it becomes visible again.
type Entry struct {
	Route  Route
	Resume any
}

// Stack is the navigation history. The top entry is the visible screen.
type Stack struct {
	entries []Entry
}

// NewStack returns a stack rooted at start.
func NewStack(start Route) *Stack {
	return &Stack{entries: []Entry{{Route: start}}}
}

// Push navigates forward to r.
func (s *Stack) Push(r Route) {
	s.entries = append(s.entries, Entry{Route: r})
}

// SetResume attaches resume state to the visible entry.
func (s *Stack) SetResume(resume any) {
	if len(s.entries) == 0 {
		return
	}
	s.entries[len(s.entries)-1].Resume = resume
}

// Pop leaves the visible screen and returns the entry now on top. ok is
// false when only the root remains; the root is never removed.
func (s *Stack) Pop() (Entry, bool) {
	if len(s.entries) <= 1 {
		return Entry{}, false
	}
	s.entries = s.entries[:len(s.entries)-1]
	return s.entries[len(s.entries)-1], true
}

// Peek returns the visible entry.
func (s *Stack) Peek() Entry {
	if len(s.entries) == 0 {
		return Entry{Route: List()}
	}
	return s.entries[len(s.entries)-1]
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}
