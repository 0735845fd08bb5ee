package engine

import "fmt"

// InvalidInputError reports an out-of-range score, an unknown criterion,
// question or cost-item id, or a malformed cost entry. Recoverable: the
// caller re-prompts the user.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

func invalidInputf(format string, args ...interface{}) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// NoRuleMatchedError means rule evaluation ran over a complete answer path
// and no rule matched. The rule table is meant to cover the whole answer
// space, so this is a defect and is surfaced instead of defaulted.
type NoRuleMatchedError struct {
	Answers OrchestrationAnswers
}

func (e *NoRuleMatchedError) Error() string {
	return fmt.Sprintf("no orchestration rule matched answers %v", e.Answers)
}

// IncompletePathError means a recommendation was requested before the
// answer path reached a terminal state. NextQuestionID is the first
// unanswered question on the active path.
type IncompletePathError struct {
	NextQuestionID string
}

func (e *IncompletePathError) Error() string {
	return fmt.Sprintf("answer path incomplete: question %q not answered", e.NextQuestionID)
}
