// Package wizard provides the interactive question sequence that
// collects the generator's configuration choices.
package wizard

import "errors"

// Result holds the user's answers from the wizard. TabsAnswered records
// whether the tabs question was actually surfaced; it is only asked when
// auth is requested.
type Result struct {
	AppName        string
	Font           string
	PrimaryColor   string
	SecondaryColor string
	NeedsAuth      bool
	NeedsTabs      bool
	TabsAnswered   bool
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string              // Unique identifier
	Type        QuestionType        // Select, Input, or Confirm
	Title       string              // Question title
	Description string              // Additional description
	Options     []Option            // Options for select questions
	Default     string              // Default value ("true"/"false" for confirms)
	Placeholder string              // Placeholder for input questions
	Required    bool                // Whether the field is required
	Validate    func(string) error  // Extra validation for input questions
	Condition   func(*Result) bool  // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
