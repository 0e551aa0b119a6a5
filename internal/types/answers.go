package types

import (
	"encoding/json"
	"fmt"
)

// AnswerKind discriminates the variants of AnswerValue. It mirrors the
// declared type of the assessment question the answer belongs to.
type AnswerKind string

// Answer kind constants.
const (
	AnswerText    AnswerKind = "text"
	AnswerChoice  AnswerKind = "choice"
	AnswerBoolean AnswerKind = "boolean"
)

// AnswerValue is a tagged variant holding a user's answer to an assessment
// question. Exactly one of the payload fields is meaningful, selected by Kind.
type AnswerValue struct {
	Kind    AnswerKind `json:"kind"`
	Text    string     `json:"text,omitempty"`
	Choices []string   `json:"choices,omitempty"`
	Bool    bool       `json:"bool,omitempty"`
}

// TextAnswer builds a free-text answer value.
func TextAnswer(s string) AnswerValue {
	return AnswerValue{Kind: AnswerText, Text: s}
}

// ChoiceAnswer builds a multiple-choice answer value.
func ChoiceAnswer(choices ...string) AnswerValue {
	return AnswerValue{Kind: AnswerChoice, Choices: choices}
}

// BoolAnswer builds a true/false answer value.
func BoolAnswer(b bool) AnswerValue {
	return AnswerValue{Kind: AnswerBoolean, Bool: b}
}

// Validate checks that the value's Kind is a known variant.
func (a AnswerValue) Validate() error {
	switch a.Kind {
	case AnswerText, AnswerChoice, AnswerBoolean:
		return nil
	default:
		return fmt.Errorf("unknown answer kind %q", a.Kind)
	}
}

// UnmarshalJSON decodes an AnswerValue and rejects unknown kinds so that
// malformed submissions fail at the boundary, not during grading.
func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	type raw AnswerValue
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*a = AnswerValue(r)
	return a.Validate()
}
