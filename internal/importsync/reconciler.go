package importsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"uns-visa/internal/clientcompany"
	"uns-visa/internal/employee"
)

// Outcome is what reconciling one candidate did to the database.
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeUpdated
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	case OutcomeSkipped:
		return "skipped"
	}
	return "unknown"
}

// Error kinds the runner tolerates per record. Anything else aborts the run.
const (
	KindMalformedRecord  = "malformed_record"
	KindDuplicateKey     = "duplicate_key"
	KindStoreUnavailable = "store_unavailable"
)

// ReconcileError marks a failure scoped to a single candidate.
type ReconcileError struct {
	Kind string
	Key  string
	Err  error
}

func (e *ReconcileError) Error() string {
	return fmt.Sprintf("importsync: %s (%s): %v", e.Kind, e.Key, e.Err)
}

func (e *ReconcileError) Unwrap() error { return e.Err }

// EmployeeStore is the slice of the worker repository reconciliation needs.
// Lookups signal absence with gorm.ErrRecordNotFound.
type EmployeeStore interface {
	FindByEmployeeCode(ctx context.Context, code string) (*employee.Employee, error)
	Create(ctx context.Context, e *employee.Employee) error
	Update(ctx context.Context, e *employee.Employee) error
}

// CompanyStore is the slice of the client-company repository reconciliation
// needs.
type CompanyStore interface {
	FindByCorporationNumber(ctx context.Context, num string) (*clientcompany.ClientCompany, error)
	FindByNameAndPrefecture(ctx context.Context, name, prefecture string) (*clientcompany.ClientCompany, error)
	Create(ctx context.Context, c *clientcompany.ClientCompany) error
}

type Reconciler struct {
	employees EmployeeStore
	companies CompanyStore
	logger    *zap.Logger
}

func NewReconciler(employees EmployeeStore, companies CompanyStore, logger *zap.Logger) *Reconciler {
	return &Reconciler{employees: employees, companies: companies, logger: logger}
}

// ReconcileEmployee matches the candidate on employee code. Unknown codes
// insert a new record; known codes update it, where nil candidate fields
// leave the stored value untouched. Running the same candidate twice is safe.
func (r *Reconciler) ReconcileEmployee(ctx context.Context, cand EmployeeCandidate) (Outcome, *employee.Employee, error) {
	existing, err := r.employees.FindByEmployeeCode(ctx, cand.EmployeeCode)
	switch {
	case err == nil:
		applyEmployee(&cand, existing)
		if err := r.employees.Update(ctx, existing); err != nil {
			return 0, nil, classifyStoreErr(cand.EmployeeCode, err)
		}
		return OutcomeUpdated, existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		e := &employee.Employee{ID: uuid.New(), EmployeeCode: cand.EmployeeCode}
		applyEmployee(&cand, e)
		if err := r.employees.Create(ctx, e); err != nil {
			return 0, nil, classifyStoreErr(cand.EmployeeCode, err)
		}
		return OutcomeCreated, e, nil
	default:
		return 0, nil, classifyStoreErr(cand.EmployeeCode, err)
	}
}

// ReconcileCompany matches the candidate by corporation number when it
// carries one, otherwise by (name, prefecture). The two keys never mix: a
// candidate with an unknown corporation number is a new company even if the
// name happens to collide. Matches are skipped without touching the stored
// record: the factory files are a seed, not a source of truth for companies
// already under management. Unmatched candidates are inserted.
func (r *Reconciler) ReconcileCompany(ctx context.Context, cand CompanyCandidate) (Outcome, *clientcompany.ClientCompany, error) {
	existing, err := r.lookupCompany(ctx, cand)
	switch {
	case err == nil:
		r.logger.Debug("company already present, skipping",
			zap.String("name", cand.Name),
			zap.String("matched_id", existing.ID.String()))
		return OutcomeSkipped, existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		c := buildCompany(cand)
		if err := r.companies.Create(ctx, c); err != nil {
			return 0, nil, classifyStoreErr(cand.Name, err)
		}
		return OutcomeCreated, c, nil
	default:
		return 0, nil, classifyStoreErr(cand.Name, err)
	}
}

func (r *Reconciler) lookupCompany(ctx context.Context, cand CompanyCandidate) (*clientcompany.ClientCompany, error) {
	if cand.CorporationNumber != nil {
		return r.companies.FindByCorporationNumber(ctx, *cand.CorporationNumber)
	}
	return r.companies.FindByNameAndPrefecture(ctx, cand.Name, cand.Prefecture)
}

// applyEmployee copies candidate fields onto the record. Nil fields come
// from columns the sheet does not carry and keep their stored value; every
// field the sheet does carry overwrites, empty cells included.
func applyEmployee(c *EmployeeCandidate, e *employee.Employee) {
	if c.FamilyName != nil {
		e.FamilyName = *c.FamilyName
	}
	if c.GivenName != nil {
		e.GivenName = *c.GivenName
	}
	if c.Sex != nil {
		e.Sex = *c.Sex
	}
	if c.Nationality != nil {
		e.Nationality = *c.Nationality
	}
	e.BirthDate = applyDate(c.BirthDate, e.BirthDate)
	e.VisaExpireDate = applyDate(c.VisaExpireDate, e.VisaExpireDate)
	if c.VisaType != nil {
		e.VisaType = *c.VisaType
	}
	if c.PostalCode != nil {
		e.PostalCode = *c.PostalCode
	}
	if c.Address != nil {
		e.Address = *c.Address
	}
	if c.Apartment != nil {
		e.Apartment = *c.Apartment
	}
	e.HireDate = applyDate(c.HireDate, e.HireDate)
	e.RetireDate = applyDate(c.RetireDate, e.RetireDate)
	e.EmploymentStatus = c.EmploymentStatus
}

// applyDate resolves one candidate date against the stored one. The zero
// time marks a cell that was present but empty, which clears the field.
func applyDate(cand, stored *time.Time) *time.Time {
	switch {
	case cand == nil:
		return stored
	case cand.IsZero():
		return nil
	default:
		return cand
	}
}

func buildCompany(cand CompanyCandidate) *clientcompany.ClientCompany {
	c := &clientcompany.ClientCompany{
		ID:             uuid.New(),
		Name:           cand.Name,
		Prefecture:     cand.Prefecture,
		BusinessType:   cand.BusinessType,
		TraineeCount:   cand.TraineeCount,
		ContractStatus: clientcompany.ContractActive,
		IsActive:       true,
	}
	if cand.BranchName != nil {
		c.BranchName = *cand.BranchName
	}
	if cand.CorporationNumber != nil {
		c.CorporationNumber = *cand.CorporationNumber
	}
	if cand.EmploymentInsuranceNumber != nil {
		c.EmploymentInsuranceNumber = *cand.EmploymentInsuranceNumber
	}
	if cand.Address != nil {
		c.Address = *cand.Address
	}
	if cand.Phone != nil {
		c.Phone = *cand.Phone
	}
	if cand.ResponsiblePerson != nil {
		c.ResponsiblePerson = *cand.ResponsiblePerson
	}
	for _, p := range cand.Plants {
		c.Plants = append(c.Plants, clientcompany.Plant{
			ID:      uuid.New(),
			Name:    p.Name,
			Address: p.Address,
			Phone:   p.Phone,
		})
	}
	return c
}

func classifyStoreErr(key string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return &ReconcileError{Kind: KindDuplicateKey, Key: key, Err: err}
		case "08000", "08003", "08006", "57P01":
			return &ReconcileError{Kind: KindStoreUnavailable, Key: key, Err: err}
		}
	}
	return err
}
