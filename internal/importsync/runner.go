package importsync

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Summary is the outcome report of one import run.
type Summary struct {
	Created  int             `json:"created"`
	Updated  int             `json:"updated"`
	Skipped  int             `json:"skipped"`
	Failed   int             `json:"failed"`
	Errors   []RecordError   `json:"errors,omitempty"`
	Imported []ImportedEntry `json:"imported,omitempty"`
}

// RecordError identifies one failed record by its reconciliation key (the
// employee code or the company name).
type RecordError struct {
	Key   string `json:"key"`
	Error string `json:"error"`
}

// ImportedEntry names one record the run created or updated.
type ImportedEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Runner executes a full import: the worker pass runs to completion first,
// then the company pass. The two are independent.
type Runner struct {
	rec    *Reconciler
	logger *zap.Logger
}

func NewRunner(rec *Reconciler, logger *zap.Logger) *Runner {
	return &Runner{rec: rec, logger: logger}
}

// Run processes all candidates. Failures scoped to a single record are
// counted and reported in the summary; any other error aborts the run so a
// dead database does not get reported as ten thousand failed rows.
func (r *Runner) Run(ctx context.Context, factories []FactoryDoc, rows []Row) (*Summary, error) {
	s := &Summary{}
	if err := r.runEmployees(ctx, rows, s); err != nil {
		return s, err
	}
	if err := r.runCompanies(ctx, factories, s); err != nil {
		return s, err
	}
	r.logger.Info("import run finished",
		zap.Int("created", s.Created),
		zap.Int("updated", s.Updated),
		zap.Int("skipped", s.Skipped),
		zap.Int("failed", s.Failed))
	return s, nil
}

func (r *Runner) runCompanies(ctx context.Context, factories []FactoryDoc, s *Summary) error {
	for _, doc := range factories {
		cand, err := MapFactory(doc)
		if err != nil {
			// a factory file without a company name carries nothing usable;
			// it is dropped without entering any count
			continue
		}
		outcome, created, err := r.rec.ReconcileCompany(ctx, cand)
		if err != nil {
			if !r.recordFailure(s, cand.Name, err) {
				return err
			}
			continue
		}
		r.tally(s, outcome)
		if outcome == OutcomeCreated {
			s.Imported = append(s.Imported, ImportedEntry{ID: created.ID.String(), Name: created.Name})
		}
	}
	return nil
}

func (r *Runner) runEmployees(ctx context.Context, rows []Row, s *Summary) error {
	for _, row := range rows {
		cand, err := MapEmployeeRow(row)
		if err != nil {
			// rows without an employee code are filler in the source sheet;
			// they are dropped without entering any count
			continue
		}
		outcome, e, err := r.rec.ReconcileEmployee(ctx, cand)
		if err != nil {
			if !r.recordFailure(s, cand.EmployeeCode, err) {
				return err
			}
			continue
		}
		r.tally(s, outcome)
		s.Imported = append(s.Imported, ImportedEntry{ID: e.ID.String(), Name: e.FullName()})
	}
	return nil
}

// recordFailure reports whether the error was scoped to one record. Only
// those are absorbed into the summary.
func (r *Runner) recordFailure(s *Summary, key string, err error) bool {
	var recErr *ReconcileError
	if !errors.As(err, &recErr) {
		return false
	}
	s.Failed++
	s.Errors = append(s.Errors, RecordError{Key: key, Error: recErr.Error()})
	r.logger.Warn("record failed", zap.String("key", key), zap.Error(recErr))
	return true
}

func (r *Runner) tally(s *Summary, o Outcome) {
	switch o {
	case OutcomeCreated:
		s.Created++
	case OutcomeUpdated:
		s.Updated++
	case OutcomeSkipped:
		s.Skipped++
	}
}
