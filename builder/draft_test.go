package builder

import (
	"testing"

	"github.com/pulseform/survey-server/models"
)

func TestAddQuestionDefaults(t *testing.T) {
	var d Draft
	q := d.AddQuestion()

	if q.ID == "" {
		t.Fatal("expected a generated id")
	}
	if q.Type != TypeYesNo {
		t.Errorf("default type = %q, want %q", q.Type, TypeYesNo)
	}
	if !q.Required {
		t.Error("new questions should default to required")
	}
	if len(q.Options) != 2 {
		t.Errorf("new questions should carry 2 empty option slots, got %d", len(q.Options))
	}
	if len(d.Questions) != 1 {
		t.Fatalf("draft has %d questions, want 1", len(d.Questions))
	}

	q2 := d.AddQuestion()
	if q2.ID == q.ID {
		t.Error("question ids must be unique")
	}
}

func TestUpdateQuestionPreservesOthers(t *testing.T) {
	var d Draft
	a := d.AddQuestion()
	b := d.AddQuestion()
	c := d.AddQuestion()

	d.UpdateText(b.ID, "How was it?")
	d.UpdateType(b.ID, TypeRating)
	d.UpdateRequired(b.ID, false)

	if d.Questions[1].Text != "How was it?" || d.Questions[1].Type != TypeRating || d.Questions[1].Required {
		t.Errorf("question b not updated: %+v", d.Questions[1])
	}
	if d.Questions[0].ID != a.ID || d.Questions[2].ID != c.ID {
		t.Error("other questions must keep identity and order")
	}
	if d.Questions[0].Text != "" || d.Questions[2].Text != "" {
		t.Error("other questions must be untouched")
	}
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	var d Draft
	q := d.AddQuestion()

	d.UpdateText("nope", "x")
	d.UpdateOption("nope", 0, "x")
	d.AddOption("nope")
	d.DeleteQuestion("nope")

	if len(d.Questions) != 1 || d.Questions[0].Text != "" || len(d.Questions[0].Options) != 2 {
		t.Errorf("draft mutated by unknown id: %+v", d.Questions)
	}
	_ = q
}

func TestOptionEditing(t *testing.T) {
	var d Draft
	q := d.AddQuestion()
	d.UpdateType(q.ID, TypeMultipleChoice)

	d.UpdateOption(q.ID, 0, "Red")
	d.UpdateOption(q.ID, 1, "Blue")
	d.AddOption(q.ID)
	d.UpdateOption(q.ID, 2, "Green")

	got := d.Questions[0].Options
	want := []string{"Red", "Blue", "Green"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("options = %v, want %v", got, want)
		}
	}

	if !d.RemoveOption(q.ID, 1) {
		t.Fatal("RemoveOption should succeed with 3 options")
	}
	if len(d.Questions[0].Options) != 2 || d.Questions[0].Options[1] != "Green" {
		t.Errorf("options after remove = %v", d.Questions[0].Options)
	}

	// At the 2-option floor removal must refuse.
	if d.RemoveOption(q.ID, 0) {
		t.Error("RemoveOption must refuse when only 2 options remain")
	}
	if len(d.Questions[0].Options) != 2 {
		t.Errorf("options shrank below the floor: %v", d.Questions[0].Options)
	}
}

func TestRemoveOptionBadIndex(t *testing.T) {
	var d Draft
	q := d.AddQuestion()
	d.AddOption(q.ID)

	if d.RemoveOption(q.ID, -1) || d.RemoveOption(q.ID, 3) {
		t.Error("out-of-range indexes must be refused")
	}
}

func TestDeleteQuestionKeepsOrder(t *testing.T) {
	var d Draft
	a := d.AddQuestion()
	b := d.AddQuestion()
	c := d.AddQuestion()

	d.DeleteQuestion(b.ID)

	if len(d.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(d.Questions))
	}
	if d.Questions[0].ID != a.ID || d.Questions[1].ID != c.ID {
		t.Errorf("relative order lost: %v, %v", d.Questions[0].ID, d.Questions[1].ID)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Draft {
		var d Draft
		d.Title = "Event feedback"
		q := d.AddQuestion()
		d.UpdateText(q.ID, "Did you enjoy the event?")
		return d
	}

	t.Run("valid survey passes", func(t *testing.T) {
		d := valid()
		if err := d.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name     string
		mutate   func(*Draft)
		wantRule string
	}{
		{
			name:     "empty title",
			mutate:   func(d *Draft) { d.Title = "   " },
			wantRule: RuleTitleRequired,
		},
		{
			name:     "no questions",
			mutate:   func(d *Draft) { d.Questions = nil },
			wantRule: RuleNoQuestions,
		},
		{
			name:     "question without text",
			mutate:   func(d *Draft) { d.Questions[0].Text = "" },
			wantRule: RuleQuestionText,
		},
		{
			name: "multiple choice with empty option",
			mutate: func(d *Draft) {
				d.Questions[0].Type = TypeMultipleChoice
				d.Questions[0].Options = []string{"A", ""}
			},
			wantRule: RuleEmptyOption,
		},
		{
			name: "multiple choice below option floor",
			mutate: func(d *Draft) {
				d.Questions[0].Type = TypeMultipleChoice
				d.Questions[0].Options = []string{"A"}
			},
			wantRule: RuleTooFewOptions,
		},
		{
			name:     "unknown type",
			mutate:   func(d *Draft) { d.Questions[0].Type = "freeText" },
			wantRule: RuleUnknownType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid()
			tt.mutate(&d)
			err := d.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if err.Rule != tt.wantRule {
				t.Errorf("rule = %q, want %q", err.Rule, tt.wantRule)
			}
			if err.Error() == "" {
				t.Error("validation errors must carry a message")
			}
		})
	}
}

func TestValidateFirstViolationWins(t *testing.T) {
	d := Draft{Title: ""}
	err := d.Validate()
	if err == nil || err.Rule != RuleTitleRequired {
		t.Fatalf("got %v, want %s first", err, RuleTitleRequired)
	}
}

func TestRecords(t *testing.T) {
	var d Draft
	d.Title = "Event feedback"

	q1 := d.AddQuestion()
	d.UpdateText(q1.ID, "Would you come again?")

	q2 := d.AddQuestion()
	d.UpdateText(q2.ID, "Favourite part?")
	d.UpdateType(q2.ID, TypeMultipleChoice)
	d.UpdateOption(q2.ID, 0, "Talks")
	d.UpdateOption(q2.ID, 1, "Food")
	d.UpdateRequired(q2.ID, false)

	q3 := d.AddQuestion()
	d.UpdateText(q3.ID, "Rate the event")
	d.UpdateType(q3.ID, TypeRating)

	recs := d.Records()
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}

	wantTypes := []string{models.TypeYesNo, models.TypeMultipleChoice, models.TypeRating}
	for i, rec := range recs {
		if rec.Type != wantTypes[i] {
			t.Errorf("record %d type = %q, want %q", i, rec.Type, wantTypes[i])
		}
		if rec.OrderNumber != i+1 {
			t.Errorf("record %d order = %d, want %d", i, rec.OrderNumber, i+1)
		}
	}

	if opts := recs[1].Options(); len(opts) != 2 || opts[0] != "Talks" || opts[1] != "Food" {
		t.Errorf("choice options = %v", opts)
	}
	if recs[0].OptionsJSON != "" || recs[2].OptionsJSON != "" {
		t.Error("options must be empty for yes/no and rating questions")
	}
	if !recs[0].Required || recs[1].Required {
		t.Error("required flags not carried over")
	}
}
