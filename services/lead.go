package services

import (
	"context"
	"database/sql"
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/2HgO/erino-go/errors"
	"github.com/2HgO/erino-go/filters"
	"github.com/2HgO/erino-go/models"
	"github.com/2HgO/erino-go/types/requests"
	"github.com/2HgO/erino-go/types/responses"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type LeadService interface {
	CreateLead(ctx context.Context, ownerID string, req *requests.CreateLeadRequest) (*models.Lead, error)
	FetchLead(ctx context.Context, ownerID, leadID string) (*models.Lead, error)
	FetchLeads(ctx context.Context, ownerID string, req *requests.ListLeadsRequest) (*responses.LeadPageResponse, error)
	UpdateLead(ctx context.Context, ownerID string, req *requests.UpdateLeadRequest) (*models.Lead, error)
	DeleteLead(ctx context.Context, ownerID, leadID string) error
}

func NewLeadService(dataDatabase *sql.DB, log *zap.Logger) LeadService {
	return &leadService{
		service{
			dataDB: dataDatabase,
			log:    log,
		},
	}
}

type leadService struct {
	service
}

var leadColumns = []string{
	"id", "account_id", "first_name", "last_name", "email", "phone",
	"company", "city", "state", "source", "status", "score", "lead_value",
	"last_activity_at", "is_qualified", "created_at", "updated_at",
}

func (l *leadService) CreateLead(ctx context.Context, ownerID string, req *requests.CreateLeadRequest) (*models.Lead, error) {
	now := time.Now()
	lead := &models.Lead{
		ID:             uuid.NewString(),
		AccountID:      ownerID, // owner is the caller, whatever the payload said
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          lowercase.String(req.Email),
		Phone:          req.Phone,
		Company:        req.Company,
		City:           req.City,
		State:          req.State,
		Source:         req.Source,
		Status:         req.Status,
		Score:          req.Score,
		LeadValue:      req.LeadValue,
		LastActivityAt: req.LastActivityAt,
		IsQualified:    req.IsQualified,
		CreatedAt:      &now,
		UpdatedAt:      &now,
	}

	_, err := sq.
		Insert("leads").
		Columns(leadColumns...).
		Values(
			lead.ID, lead.AccountID, lead.FirstName, lead.LastName, lead.Email,
			lead.Phone, lead.Company, lead.City, lead.State, lead.Source,
			lead.Status, lead.Score, float64(lead.LeadValue), lead.LastActivityAt,
			lead.IsQualified, now, now,
		).
		RunWith(l.dataDB).
		ExecContext(ctx)
	if err != nil {
		dbErr := errors.HandleDataDBError(err)
		if dbErr.Type == errors.ErrEntryExists {
			return nil, errors.NewEntryExistsError("Lead with this email already exists")
		}
		return nil, dbErr
	}

	return lead, nil
}

func (l *leadService) FetchLead(ctx context.Context, ownerID, leadID string) (*models.Lead, error) {
	if err := validateLeadID(leadID); err != nil {
		return nil, err
	}

	row := sq.
		Select(leadColumns...).
		From("leads").
		Where(sq.Eq{"id": leadID, "account_id": ownerID}).
		Limit(1).
		RunWith(l.dataDB).
		QueryRowContext(ctx)

	lead, err := scanLead(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFoundError("Lead not found")
		}
		return nil, errors.HandleDataDBError(err)
	}

	return lead, nil
}

func (l *leadService) FetchLeads(ctx context.Context, ownerID string, req *requests.ListLeadsRequest) (*responses.LeadPageResponse, error) {
	page := clampPage(req.Page)
	limit := clampLimit(req.Limit)

	// the owner constraint is always conjoined; no filter can widen the view
	where := append(filters.Compile(req), sq.Eq{"account_id": ownerID})

	// count and fetch are two independent reads; under concurrent writes the
	// total and the page may disagree
	var total int
	err := sq.
		Select("COUNT(*)").
		From("leads").
		Where(where).
		RunWith(l.dataDB).
		QueryRowContext(ctx).
		Scan(&total)
	if err != nil {
		return nil, errors.HandleDataDBError(err)
	}

	rows, err := sq.
		Select(leadColumns...).
		From("leads").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		RunWith(l.dataDB).
		QueryContext(ctx)
	if err != nil {
		return nil, errors.HandleDataDBError(err)
	}
	defer rows.Close()

	leads := make([]*models.Lead, 0, limit)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, errors.HandleDataDBError(err)
		}
		leads = append(leads, lead)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.HandleDataDBError(err)
	}

	return &responses.LeadPageResponse{
		Data:       leads,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (l *leadService) UpdateLead(ctx context.Context, ownerID string, req *requests.UpdateLeadRequest) (*models.Lead, error) {
	if err := validateLeadID(req.LeadID); err != nil {
		return nil, err
	}

	// the ownership-scoped read doubles as the existence check
	if _, err := l.FetchLead(ctx, ownerID, req.LeadID); err != nil {
		return nil, err
	}

	stmt := sq.
		Update("leads").
		Set("updated_at", time.Now())

	if req.FirstName != nil {
		stmt = stmt.Set("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		stmt = stmt.Set("last_name", *req.LastName)
	}
	if req.Email != nil {
		stmt = stmt.Set("email", lowercase.String(*req.Email))
	}
	if req.Phone != nil {
		stmt = stmt.Set("phone", *req.Phone)
	}
	if req.Company != nil {
		stmt = stmt.Set("company", *req.Company)
	}
	if req.City != nil {
		stmt = stmt.Set("city", *req.City)
	}
	if req.State != nil {
		stmt = stmt.Set("state", *req.State)
	}
	if req.Source != nil {
		stmt = stmt.Set("source", *req.Source)
	}
	if req.Status != nil {
		stmt = stmt.Set("status", *req.Status)
	}
	if req.Score != nil {
		stmt = stmt.Set("score", *req.Score)
	}
	if req.LeadValue != nil {
		stmt = stmt.Set("lead_value", float64(*req.LeadValue))
	}
	if req.LastActivityAt != nil {
		stmt = stmt.Set("last_activity_at", *req.LastActivityAt)
	}
	if req.IsQualified != nil {
		stmt = stmt.Set("is_qualified", *req.IsQualified)
	}

	_, err := stmt.
		Where(sq.Eq{"id": req.LeadID, "account_id": ownerID}).
		RunWith(l.dataDB).
		ExecContext(ctx)
	if err != nil {
		dbErr := errors.HandleDataDBError(err)
		if dbErr.Type == errors.ErrEntryExists {
			return nil, errors.NewEntryExistsError("Lead with this email already exists")
		}
		return nil, dbErr
	}

	return l.FetchLead(ctx, ownerID, req.LeadID)
}

func (l *leadService) DeleteLead(ctx context.Context, ownerID, leadID string) error {
	if err := validateLeadID(leadID); err != nil {
		return err
	}

	res, err := sq.
		Delete("leads").
		Where(sq.Eq{"id": leadID, "account_id": ownerID}).
		RunWith(l.dataDB).
		ExecContext(ctx)
	if err != nil {
		return errors.HandleDataDBError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.HandleDataDBError(err)
	}
	if affected == 0 {
		return errors.NewNotFoundError("Lead not found")
	}

	return nil
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// clampLimit silently caps oversized limits instead of rejecting them.
func clampLimit(limit int) int {
	if limit < 1 {
		return DefaultPageLimit
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}

func validateLeadID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.NewValidationError("Invalid id")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*models.Lead, error) {
	lead := &models.Lead{}
	var leadValue float64
	err := row.Scan(
		&lead.ID, &lead.AccountID, &lead.FirstName, &lead.LastName, &lead.Email,
		&lead.Phone, &lead.Company, &lead.City, &lead.State, &lead.Source,
		&lead.Status, &lead.Score, &leadValue, &lead.LastActivityAt,
		&lead.IsQualified, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	lead.LeadValue = models.Double(leadValue)
	return lead, nil
}
