package ascii

// Scanner is a single-pass, never-backtrack-more-than-one byte cursor over
// a structured-field's bytes. It never retains a reference to anything
// beyond the slice it was constructed with.
type Scanner struct {
	data []byte
	pos  int
}

// NewScanner returns a Scanner positioned at the start of data.
func NewScanner(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Pos returns the current byte offset.
func (s *Scanner) Pos() int {
	return s.pos
}

// Len returns the total length of the underlying input.
func (s *Scanner) Len() int {
	return len(s.data)
}

// Done reports whether the cursor has reached the end of input.
func (s *Scanner) Done() bool {
	return s.pos >= len(s.data)
}

// Peek returns the byte at the current position, or 0 if Done.
func (s *Scanner) Peek() byte {
	if s.Done() {
		return 0
	}
	return s.data[s.pos]
}

// Advance moves the cursor forward one byte. It is a no-op at Done.
func (s *Scanner) Advance() {
	if !s.Done() {
		s.pos++
	}
}

// SkipSpaces advances past any run of SP bytes.
func (s *Scanner) SkipSpaces() {
	for !s.Done() && IsSpace(s.Peek()) {
		s.Advance()
	}
}

// Take consumes and returns the byte at the cursor, advancing by one.
// The caller must check Done first.
func (s *Scanner) Take() byte {
	b := s.data[s.pos]
	s.pos++
	return b
}

// Slice returns the bytes in [start, end) of the underlying input. It does
// not move the cursor; callers use it to recover the span just scanned
// (e.g. start := s.Pos(); ...scan...; s.Slice(start, s.Pos())).
func (s *Scanner) Slice(start, end int) []byte {
	return s.data[start:end]
}
