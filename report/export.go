package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pulseform/survey-server/models"
)

// exportRows flattens responses into one row per submission: response id,
// timestamp, then one cell per question in authored order (raw value,
// empty when unanswered).
func exportRows(questions []models.Question, responses []ResponseData) [][]string {
	header := make([]string, 0, len(questions)+2)
	header = append(header, "response_id", "submitted_at")
	for _, q := range questions {
		header = append(header, q.Text)
	}

	rows := make([][]string, 0, len(responses)+1)
	rows = append(rows, header)

	for _, r := range responses {
		row := make([]string, 0, len(header))
		row = append(row, fmt.Sprintf("%d", r.ID), r.CreatedAt.Format(time.RFC3339))
		for _, q := range questions {
			row = append(row, answerFor(q.ID, r))
		}
		rows = append(rows, row)
	}
	return rows
}

func answerFor(questionID uint, r ResponseData) string {
	for _, a := range r.Answers {
		if a.QuestionID == questionID {
			return a.Value
		}
	}
	return ""
}

// CSV serializes the tabular export. encoding/csv quotes cells containing
// the delimiter, quotes or newlines, so free-form option text round-trips.
func CSV(questions []models.Question, responses []ResponseData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(exportRows(questions, responses)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// XLSX serializes the same table as a single-sheet workbook.
func XLSX(questions []models.Question, responses []ResponseData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Responses"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, row := range exportRows(questions, responses) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
