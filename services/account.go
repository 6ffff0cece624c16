package services

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lucsky/cuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/2HgO/erino-go/errors"
	"github.com/2HgO/erino-go/models"
	"github.com/2HgO/erino-go/types/requests"
)

type AccountService interface {
	Register(context.Context, *requests.RegisterRequest) (*models.Account, error)
	Login(context.Context, *requests.LoginRequest) (*models.Account, error)
	FetchAccountByID(context.Context, string) (*models.Account, error)
}

func NewAccountService(dataDatabase *sql.DB, log *zap.Logger) AccountService {
	return &accountService{
		service{
			dataDB: dataDatabase,
			log:    log,
		},
	}
}

type accountService struct {
	service
}

var lowercase = cases.Lower(language.English)

func (a *accountService) Register(ctx context.Context, req *requests.RegisterRequest) (*models.Account, error) {
	now := time.Now()
	account := &models.Account{
		ID:        uuid.NewString(),
		SN:        cuid.New(),
		Email:     lowercase.String(req.Email),
		Name:      req.Name,
		CreatedAt: &now,
		UpdatedAt: &now,
	}

	password, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.NewFatalError(err)
	}

	// the unique index on email settles racing registrations; exactly one
	// insert wins
	_, err = sq.
		Insert("accounts").
		Columns("id", "sn", "email", "name", "password", "created_at", "updated_at").
		Values(account.ID, account.SN, account.Email, account.Name, string(password), now, now).
		RunWith(a.dataDB).
		ExecContext(ctx)
	if err != nil {
		dbErr := errors.HandleDataDBError(err)
		if dbErr.Type == errors.ErrEntryExists {
			return nil, errors.NewEntryExistsError("Email already in use")
		}
		return nil, dbErr
	}

	return account, nil
}

func (a *accountService) Login(ctx context.Context, req *requests.LoginRequest) (*models.Account, error) {
	row := sq.
		Select("id", "email", "name", "password", "created_at", "updated_at").
		From("accounts").
		Where(sq.Eq{"email": lowercase.String(req.Email)}).
		Limit(1).
		RunWith(a.dataDB).
		QueryRowContext(ctx)

	account := &models.Account{}
	err := row.Scan(&account.ID, &account.Email, &account.Name, &account.Password, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		// an unknown email and a bad password read the same to the caller
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewAuthenticationError("Invalid credentials")
		}
		return nil, errors.HandleDataDBError(err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, errors.NewAuthenticationError("Invalid credentials")
	}

	account.Password = ""
	return account, nil
}

func (a *accountService) FetchAccountByID(ctx context.Context, id string) (*models.Account, error) {
	row := sq.
		Select("id", "email", "name", "created_at", "updated_at").
		From("accounts").
		Where(sq.Eq{"id": id}).
		Limit(1).
		RunWith(a.dataDB).
		QueryRowContext(ctx)

	account := &models.Account{}
	err := row.Scan(&account.ID, &account.Email, &account.Name, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return nil, errors.HandleDataDBError(err)
	}

	return account, nil
}
