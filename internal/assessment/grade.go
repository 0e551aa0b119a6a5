// Package assessment grades skill assessment submissions into
// AssessmentResult records consumed by the certifications dimension.
package assessment

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/talent-match/internal/skills"
	"github.com/jonathan/talent-match/internal/types"
)

// DefaultPassMark is the score (0-100) at or above which an assessment
// counts as passed.
const DefaultPassMark = 60

// Question is one assessment question with its expected answer. The
// question's Kind selects which AnswerValue variant applies.
type Question struct {
	ID       uuid.UUID         `json:"id"`
	Kind     types.AnswerKind  `json:"kind"`
	Prompt   string            `json:"prompt"`
	Skills   []string          `json:"skills,omitempty"`
	Points   int               `json:"points"`
	Expected types.AnswerValue `json:"expected"`
}

// Submission is a user's answer to one question.
type Submission struct {
	QuestionID uuid.UUID         `json:"question_id"`
	Answer     types.AnswerValue `json:"answer"`
}

// Grade scores a submission set against the questions and returns an
// AssessmentResult covering the union of the questions' skills. Questions
// with no submission score zero. A non-positive passMark falls back to
// DefaultPassMark.
func Grade(title string, questions []Question, submissions []Submission, passMark float64) types.AssessmentResult {
	if passMark <= 0 {
		passMark = DefaultPassMark
	}

	answers := make(map[uuid.UUID]types.AnswerValue, len(submissions))
	for _, s := range submissions {
		answers[s.QuestionID] = s.Answer
	}

	earned, possible := 0, 0
	covered := make(map[string]bool)
	for _, q := range questions {
		points := q.Points
		if points <= 0 {
			points = 1
		}
		possible += points
		for _, s := range skills.NormalizeAll(q.Skills, nil) {
			covered[s] = true
		}
		if answer, ok := answers[q.ID]; ok && answersEqual(q.Kind, q.Expected, answer) {
			earned += points
		}
	}

	score := 0.0
	if possible > 0 {
		score = math.Round(float64(earned) / float64(possible) * 100)
	}

	skillsCovered := make([]string, 0, len(covered))
	for s := range covered {
		skillsCovered = append(skillsCovered, s)
	}
	sort.Strings(skillsCovered)

	return types.AssessmentResult{
		Title:         title,
		SkillsCovered: skillsCovered,
		Score:         score,
		Passed:        score >= passMark,
	}
}

// answersEqual compares an expected and a given answer under the question's
// declared kind. Comparison dispatches per variant; a submission of the
// wrong variant never matches.
func answersEqual(kind types.AnswerKind, expected, given types.AnswerValue) bool {
	if given.Kind != kind || expected.Kind != kind {
		return false
	}
	switch kind {
	case types.AnswerText:
		return strings.EqualFold(strings.TrimSpace(expected.Text), strings.TrimSpace(given.Text))
	case types.AnswerChoice:
		return choiceSetsEqual(expected.Choices, given.Choices)
	case types.AnswerBoolean:
		return expected.Bool == given.Bool
	default:
		return false
	}
}

// choiceSetsEqual compares multiple-choice selections as sets, ignoring
// order and duplicates.
func choiceSetsEqual(a, b []string) bool {
	setA := choiceSet(a)
	setB := choiceSet(b)
	if len(setA) != len(setB) {
		return false
	}
	for k := range setA {
		if !setB[k] {
			return false
		}
	}
	return true
}

func choiceSet(choices []string) map[string]bool {
	set := make(map[string]bool, len(choices))
	for _, c := range choices {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			set[c] = true
		}
	}
	return set
}
