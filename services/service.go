package services

import (
	"database/sql"

	"go.uber.org/zap"
)

type service struct {
	dataDB         *sql.DB
	tokenService   TokenService
	accountService AccountService
	log            *zap.Logger
}
