// Package report turns raw answer rows into per-question chartable series
// and the tabular exports derived from the same inputs. Everything here is
// a pure transform over already-fetched data: no I/O, no hidden state,
// recomputed on every view.
package report

import (
	"strconv"
	"time"

	"github.com/pulseform/survey-server/models"
)

// ResponseData is one submission with its answers already joined by
// response id. The caller composes it from the responses and answers
// tables.
type ResponseData struct {
	ID        uint         `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Answers   []AnswerData `json:"answers"`
}

type AnswerData struct {
	QuestionID uint   `json:"question_id"`
	Value      string `json:"value"`
}

// Point is one bar of a question's chart.
type Point struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type QuestionResult struct {
	QuestionID uint    `json:"question_id"`
	Text       string  `json:"text"`
	Type       string  `json:"type"`
	Series     []Point `json:"series"`
	// Total counts only answers admitted into the series.
	Total int `json:"total"`
	// Average is the mean rating for rating questions, 0 when there are
	// no valid ratings. Always 0 for the other types.
	Average float64 `json:"average"`
}

// Aggregate builds one result per question, in question order. Questions
// must already be sorted by OrderNumber ascending; series order follows
// authored question and option order, which the chart and export layers
// rely on. Answers referencing questions outside the list, malformed
// values, and responses that skipped a question all simply contribute
// nothing. Response order is irrelevant: the transform only counts.
func Aggregate(questions []models.Question, responses []ResponseData) []QuestionResult {
	results := make([]QuestionResult, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		values := answerValues(q.ID, responses)

		res := QuestionResult{
			QuestionID: q.ID,
			Text:       q.Text,
			Type:       q.Type,
		}

		switch q.Type {
		case models.TypeYesNo:
			var yes, no int
			for _, v := range values {
				switch v {
				case "yes":
					yes++
				case "no":
					no++
				}
			}
			res.Series = []Point{{Label: "Yes", Count: yes}, {Label: "No", Count: no}}
			res.Total = yes + no

		case models.TypeMultipleChoice:
			opts := q.Options()
			res.Series = make([]Point, 0, len(opts))
			for _, opt := range opts {
				count := 0
				for _, v := range values {
					if v == opt { // exact, case-sensitive match
						count++
					}
				}
				res.Series = append(res.Series, Point{Label: opt, Count: count})
				res.Total += count
			}

		case models.TypeRating:
			var buckets [models.RatingMax]int
			sum := 0
			for _, v := range values {
				r, err := strconv.Atoi(v)
				if err != nil || r < models.RatingMin || r > models.RatingMax {
					continue
				}
				buckets[r-1]++
				sum += r
				res.Total++
			}
			res.Series = make([]Point, 0, models.RatingMax)
			for r := models.RatingMin; r <= models.RatingMax; r++ {
				res.Series = append(res.Series, Point{Label: strconv.Itoa(r), Count: buckets[r-1]})
			}
			if res.Total > 0 {
				res.Average = float64(sum) / float64(res.Total)
			}
		}

		results = append(results, res)
	}
	return results
}

func answerValues(questionID uint, responses []ResponseData) []string {
	var values []string
	for _, r := range responses {
		for _, a := range r.Answers {
			if a.QuestionID == questionID {
				values = append(values, a.Value)
			}
		}
	}
	return values
}
