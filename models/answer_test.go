package models

import "testing"

func TestValidateAnswerValue(t *testing.T) {
	choice := Question{ID: 2, Type: TypeMultipleChoice}
	if err := choice.SetOptions([]string{"Red", "Blue"}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		q       Question
		value   string
		wantErr bool
	}{
		{"yes_no accepts yes", Question{ID: 1, Type: TypeYesNo}, "yes", false},
		{"yes_no accepts no", Question{ID: 1, Type: TypeYesNo}, "no", false},
		{"yes_no rejects maybe", Question{ID: 1, Type: TypeYesNo}, "maybe", true},
		{"yes_no rejects case variant", Question{ID: 1, Type: TypeYesNo}, "Yes", true},
		{"choice accepts configured option", choice, "Blue", false},
		{"choice rejects unknown option", choice, "Green", true},
		{"choice is case-sensitive", choice, "blue", true},
		{"rating accepts bounds", Question{ID: 3, Type: TypeRating}, "1", false},
		{"rating accepts upper bound", Question{ID: 3, Type: TypeRating}, "5", false},
		{"rating rejects zero", Question{ID: 3, Type: TypeRating}, "0", true},
		{"rating rejects above range", Question{ID: 3, Type: TypeRating}, "7", true},
		{"rating rejects non-integer", Question{ID: 3, Type: TypeRating}, "bogus", true},
		{"unknown type rejected", Question{ID: 4, Type: "free_text"}, "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswerValue(&tt.q, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAnswerValue(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestQuestionOptionsRoundTrip(t *testing.T) {
	var q Question
	if err := q.SetOptions([]string{"A", "B, with comma"}); err != nil {
		t.Fatal(err)
	}
	opts := q.Options()
	if len(opts) != 2 || opts[1] != "B, with comma" {
		t.Errorf("options = %v", opts)
	}

	q.OptionsJSON = ""
	if q.Options() != nil {
		t.Error("empty OptionsJSON must yield nil")
	}

	q.OptionsJSON = "{not json"
	if q.Options() != nil {
		t.Error("malformed OptionsJSON must yield nil, not panic")
	}
}
