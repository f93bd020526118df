// Package fixtures generates and checks the synthetic question CSV used by the
// end-to-end suite.
package fixtures

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"

	"github.com/korjavin/questiongen/models"
)

const (
	// DefaultPath is where the generator writes, relative to the working directory
	DefaultPath = "large_questions.csv"

	// Count is the number of questions in a fixture file
	Count = 1000
)

var (
	// Categories is indexed by id mod 5
	Categories = []string{"Math", "Science", "History", "Geography", "Literature"}

	// Difficulties is indexed by id mod 3
	Difficulties = []string{"Easy", "Medium", "Hard"}
)

// CategoryFor returns the category assigned to a question id
func CategoryFor(id int) string {
	return Categories[id%len(Categories)]
}

// DifficultyFor returns the difficulty assigned to a question id
func DifficultyFor(id int) string {
	return Difficulties[id%len(Difficulties)]
}

// QuestionText builds the question wording for an id and its category
func QuestionText(id int, category string) string {
	return fmt.Sprintf("Sample question %d about %s", id, strings.ToLower(category))
}

// NewQuestion computes the fixture row for id
func NewQuestion(id int) models.Question {
	category := CategoryFor(id)
	return models.Question{
		ID:         id,
		Question:   QuestionText(id, category),
		Category:   category,
		Difficulty: DifficultyFor(id),
	}
}

// Write emits the header and Count rows to w
func Write(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(models.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for id := 1; id <= Count; id++ {
		if err := writer.Write(NewQuestion(id).Record()); err != nil {
			return fmt.Errorf("failed to write question %d: %w", id, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile generates the fixture at path. The rows go to a pending file in
// the same directory that replaces path only once everything was written, so a
// failed run never leaves a truncated fixture behind. A new file gets 0666
// minus the umask; an existing file keeps its mode.
func WriteFile(path string) error {
	pending, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(0o666),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer pending.Cleanup()

	if err := Write(pending); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
