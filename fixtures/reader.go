package fixtures

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/korjavin/questiongen/models"
)

// ErrInvalidFixture is wrapped by every parse or verification failure
var ErrInvalidFixture = errors.New("invalid fixture")

// Read parses a fixture produced by Write
func Read(r io.Reader) ([]models.Question, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(models.Header)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header", ErrInvalidFixture)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}
	for i, name := range models.Header {
		if header[i] != name {
			return nil, fmt.Errorf("%w: header column %d is %q, want %q", ErrInvalidFixture, i+1, header[i], name)
		}
	}

	var questions []models.Question
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
		}

		id, err := strconv.Atoi(record[0])
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: bad id %q", ErrInvalidFixture, line, record[0])
		}

		questions = append(questions, models.Question{
			ID:         id,
			Question:   record[1],
			Category:   record[2],
			Difficulty: record[3],
		})
	}

	return questions, nil
}

// ReadFile opens path and parses it with Read
func ReadFile(path string) ([]models.Question, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	questions, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return questions, nil
}

// Verify checks that questions are exactly what Write generates: Count rows,
// ids 1..Count in order, each row derived from its id.
func Verify(questions []models.Question) error {
	if len(questions) != Count {
		return fmt.Errorf("%w: got %d questions, want %d", ErrInvalidFixture, len(questions), Count)
	}

	for i, q := range questions {
		if q.ID != i+1 {
			return fmt.Errorf("%w: row %d has id %d, want %d", ErrInvalidFixture, i+1, q.ID, i+1)
		}
		if want := NewQuestion(q.ID); q != want {
			return fmt.Errorf("%w: question %d is %v, want %v", ErrInvalidFixture, q.ID, q.Record(), want.Record())
		}
	}

	return nil
}
