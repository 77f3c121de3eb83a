// Package builder holds the in-memory draft of a survey while it is being
// authored: an ordered list of questions edited one field at a time, plus
// the validation and mapping run before anything is persisted. It does no
// I/O, so it can be tested without a database.
package builder

import (
	"github.com/google/uuid"

	"github.com/pulseform/survey-server/models"
)

// Draft question type tags. Persisted tags live in models; the mapping
// happens in Records.
const (
	TypeYesNo          = "yesNo"
	TypeMultipleChoice = "multipleChoice"
	TypeRating         = "rating"
)

// MinOptions is the smallest options list a multiple-choice question may
// carry.
const MinOptions = 2

type DraftQuestion struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options"`
}

type Draft struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Questions   []DraftQuestion `json:"questions"`
}

// AddQuestion appends a fresh question with the authoring defaults: yes/no
// type, required, two empty option slots ready for a switch to multiple
// choice. It cannot fail.
func (d *Draft) AddQuestion() DraftQuestion {
	q := DraftQuestion{
		ID:       uuid.New().String(),
		Type:     TypeYesNo,
		Required: true,
		Options:  []string{"", ""},
	}
	d.Questions = append(d.Questions, q)
	return q
}

func (d *Draft) find(id string) *DraftQuestion {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			return &d.Questions[i]
		}
	}
	return nil
}

// UpdateText replaces the question's text. Unknown ids are a silent no-op;
// every other question keeps its identity and position.
func (d *Draft) UpdateText(id, text string) {
	if q := d.find(id); q != nil {
		q.Text = text
	}
}

func (d *Draft) UpdateType(id, questionType string) {
	if q := d.find(id); q != nil {
		q.Type = questionType
	}
}

func (d *Draft) UpdateRequired(id string, required bool) {
	if q := d.find(id); q != nil {
		q.Required = required
	}
}

func (d *Draft) AddOption(questionID string) {
	if q := d.find(questionID); q != nil {
		q.Options = append(q.Options, "")
	}
}

func (d *Draft) UpdateOption(questionID string, index int, value string) {
	q := d.find(questionID)
	if q == nil || index < 0 || index >= len(q.Options) {
		return
	}
	q.Options[index] = value
}

// RemoveOption drops one option slot. It refuses when only MinOptions
// remain, since multiple choice needs at least two; the return value tells
// the caller whether anything changed.
func (d *Draft) RemoveOption(questionID string, index int) bool {
	q := d.find(questionID)
	if q == nil || index < 0 || index >= len(q.Options) {
		return false
	}
	if len(q.Options) <= MinOptions {
		return false
	}
	q.Options = append(q.Options[:index], q.Options[index+1:]...)
	return true
}

// DeleteQuestion removes one question; the rest keep their relative order.
// Ordinals are not tracked during authoring, they are assigned from array
// position in Records.
func (d *Draft) DeleteQuestion(id string) {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			d.Questions = append(d.Questions[:i], d.Questions[i+1:]...)
			return
		}
	}
}

// Records maps the draft into persistable question rows: internal type tags
// become the stored ones, OrderNumber is the 1-based array position, and
// option lists are kept only for multiple choice. Call Validate first; the
// mapping itself does not re-check.
func (d *Draft) Records() []models.Question {
	out := make([]models.Question, 0, len(d.Questions))
	for i, q := range d.Questions {
		rec := models.Question{
			Text:        q.Text,
			Type:        persistedType(q.Type),
			OrderNumber: i + 1,
			Required:    q.Required,
		}
		if q.Type == TypeMultipleChoice {
			_ = rec.SetOptions(q.Options)
		}
		out = append(out, rec)
	}
	return out
}

func persistedType(t string) string {
	switch t {
	case TypeMultipleChoice:
		return models.TypeMultipleChoice
	case TypeRating:
		return models.TypeRating
	default:
		return models.TypeYesNo
	}
}
