// Package quiz provides the read-only question bank and the quiz session
// lifecycle: question selection without immediate repeats, option shuffling,
// and grading.
package quiz

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/quiz-runner/internal/config"
)

//go:embed defaults/questions.yaml
var defaultBankYAML []byte

// MaxOptions is the number of answer keys the game maps.
const MaxOptions = 4

// Question is a single multiple-choice question.
type Question struct {
	Text    string   `yaml:"question"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"correct"` // Zero-based index into Options
}

// Validate checks that the question is answerable.
func (q Question) Validate() error {
	if q.Text == "" {
		return errors.New("empty question text")
	}
	if len(q.Options) < 2 || len(q.Options) > MaxOptions {
		return fmt.Errorf("question %q needs 2 to %d options, has %d", q.Text, MaxOptions, len(q.Options))
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("question %q: correct index %d out of range", q.Text, q.Correct)
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("question %q: option %d is empty", q.Text, i)
		}
	}
	return nil
}

// Bank is an ordered, read-only list of questions.
type Bank struct {
	questions []Question
}

// ErrEmptyBank is returned when a bank has no questions.
var ErrEmptyBank = errors.New("quiz: question bank is empty")

// NewBank validates questions and wraps them in a Bank.
func NewBank(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("quiz: question %d: %w", i, err)
		}
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Bank{questions: qs}, nil
}

// ParseBank decodes a YAML list of questions.
func ParseBank(data []byte) (*Bank, error) {
	var qs []Question
	if err := yaml.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("quiz: parse bank: %w", err)
	}
	return NewBank(qs)
}

// DefaultBank returns the embedded question bank.
func DefaultBank() *Bank {
	b, err := ParseBank(defaultBankYAML)
	if err != nil {
		panic(fmt.Sprintf("quiz: embedded bank is invalid: %v", err))
	}
	return b
}

// LoadBank loads a bank following the config search order for questions.yaml.
func LoadBank(customPath string) (*Bank, error) {
	data, src, err := config.ReadFirst(customPath, "questions.yaml", defaultBankYAML)
	if err != nil {
		return nil, err
	}
	b, err := ParseBank(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return b, nil
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Question returns the question at index i.
func (b *Bank) Question(i int) Question {
	return b.questions[i]
}
