// Package survey loads questionnaire submissions from a JSON file into an
// in-memory table and runs a fixed set of cleaning and summary operations
// over it: age distribution, email filtering, missing-answer imputation,
// per-subject scoring and a gender/age-group mean breakdown.
//
// Each Analysis owns exactly one table. Operations document whether they
// mutate that table in place or return a derived copy; callers rely on the
// distinction.
package survey

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NumQuestions is the fixed number of question columns (q1..q5).
const NumQuestions = 5

// ErrNotLoaded is returned by operations invoked before a successful Load.
var ErrNotLoaded = fmt.Errorf("survey: no data loaded")

// Record is one questionnaire submission. Age, Email and the question
// answers keep the raw decoded JSON value (nil = absent or null) so that
// each operation applies its own numeric coercion, as the operations below
// document. Score and AgeGroup are derived columns, empty until the
// operation that computes them has run.
type Record struct {
	Age    any
	Gender any
	Email  any
	Q      [NumQuestions]any

	// Score is nil both before Score has run and for subjects left
	// unscored; a real 0 score is a non-nil pointer.
	Score    *int
	AgeGroup string
}

// Table is an ordered sequence of records. Row order is insertion order
// from the source file.
type Table struct {
	Records []Record
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// Copy returns a row-by-row copy of the table. Raw cell values are
// immutable JSON scalars, so a value copy of each Record is deep enough.
func (t *Table) Copy() *Table {
	cp := &Table{Records: make([]Record, len(t.Records))}
	copy(cp.Records, t.Records)
	return cp
}

// Analysis reads and analyzes data produced by the questionnaire
// experiment. Construct with New, then call Load before any operation.
type Analysis struct {
	path  string
	runID string
	log   zerolog.Logger
	tab   *Table
}

// New prepares an analysis session for the JSON file at path. Nothing is
// read until Load.
func New(path string) *Analysis {
	id := uuid.NewString()
	return &Analysis{
		path:  path,
		runID: id,
		log:   log.With().Str("run", id).Str("file", path).Logger(),
	}
}

// RunID identifies this analysis session in log output.
func (a *Analysis) RunID() string { return a.runID }

// Table exposes the currently loaded table. It is nil before Load and
// reflects any in-place mutations made by Score and the coercing
// operations.
func (a *Analysis) Table() *Table { return a.tab }

// Load reads and parses the session's JSON file into the analysis table,
// replacing any previously loaded data. The document must decode to an
// array of objects; fields beyond age, gender, email and q1..q5 are
// ignored, and absent fields become missing values rather than errors.
func (a *Analysis) Load() error {
	f, err := os.Open(a.path)
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	var raw []map[string]any
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return fmt.Errorf("parse %s: %w", a.path, err)
	}

	tab := &Table{Records: make([]Record, 0, len(raw))}
	for _, m := range raw {
		rec := Record{
			Age:    m["age"],
			Gender: m["gender"],
			Email:  m["email"],
		}
		for i := 0; i < NumQuestions; i++ {
			rec.Q[i] = m[fmt.Sprintf("q%d", i+1)]
		}
		tab.Records = append(tab.Records, rec)
	}
	a.tab = tab
	a.log.Debug().Int("rows", tab.Len()).Msg("loaded questionnaire data")
	return nil
}
