package quiz

// Rand is the random source used for picking and shuffling.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Outcome is the graded result of a session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeWrong
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCorrect:
		return "correct"
	case OutcomeWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Session is one asked question with its shuffled options.
type Session struct {
	QuestionIndex int      // Index into the bank
	Text          string   // Question text
	Options       []string // Options in display order
	Correct       int      // Index of the correct option in Options
	Selected      int      // Selected option, -1 until answered
	Outcome       Outcome
}

// Answered reports whether the session has been graded.
func (s *Session) Answered() bool {
	return s.Outcome != OutcomeNone
}

// Answer records and grades the selected option. It returns false without
// changing anything if the session is already graded or idx is out of range.
func (s *Session) Answer(idx int) bool {
	if s.Answered() || idx < 0 || idx >= len(s.Options) {
		return false
	}
	s.Selected = idx
	if idx == s.Correct {
		s.Outcome = OutcomeCorrect
	} else {
		s.Outcome = OutcomeWrong
	}
	return true
}

// Picker starts sessions from a bank, never asking the same question twice
// in a row when the bank has more than one question.
type Picker struct {
	bank *Bank
	rng  Rand
	prev int
}

// NewPicker creates a picker over bank using rng for selection and shuffling.
func NewPicker(bank *Bank, rng Rand) *Picker {
	return &Picker{bank: bank, rng: rng, prev: -1}
}

// Reset forgets the previously asked question.
func (p *Picker) Reset() {
	p.prev = -1
}

// Previous returns the index of the last asked question, or -1.
func (p *Picker) Previous() int {
	return p.prev
}

// Start picks a question and returns a fresh session with shuffled options.
func (p *Picker) Start() *Session {
	n := p.bank.Len()
	idx := 0
	switch {
	case n > 1 && p.prev >= 0:
		// Uniform over every index except prev
		idx = p.rng.Intn(n - 1)
		if idx >= p.prev {
			idx++
		}
	case n > 1:
		idx = p.rng.Intn(n)
	}
	p.prev = idx

	q := p.bank.Question(idx)
	options, correct := Shuffle(q.Options, q.Correct, p.rng)

	return &Session{
		QuestionIndex: idx,
		Text:          q.Text,
		Options:       options,
		Correct:       correct,
		Selected:      -1,
	}
}

// Shuffle returns a Fisher–Yates permutation of options and the new index of
// the option that was at correct. The input slice is not modified.
func Shuffle(options []string, correct int, rng Rand) ([]string, int) {
	out := make([]string, len(options))
	copy(out, options)

	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
		switch correct {
		case i:
			correct = j
		case j:
			correct = i
		}
	}
	return out, correct
}
