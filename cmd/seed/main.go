// Seeds a demo account and a batch of randomized leads for local
// development.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lucsky/cuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/2HgO/erino-go/config"
	"github.com/2HgO/erino-go/db"
	"github.com/2HgO/erino-go/models"
)

const (
	seedEmail    = "test@erino.io"
	seedPassword = "Test@1234"
	seedName     = "Test User"
	seedLeads    = 120
)

var (
	sources = []models.LeadSource{
		models.Website_LeadSource, models.FacebookAds_LeadSource,
		models.GoogleAds_LeadSource, models.Referral_LeadSource,
		models.Events_LeadSource, models.Other_LeadSource,
	}
	statuses = []models.LeadStatus{
		models.New_LeadStatus, models.Contacted_LeadStatus,
		models.Qualified_LeadStatus, models.Lost_LeadStatus,
		models.Won_LeadStatus,
	}
	firstNames = []string{"Ada", "Bola", "Chidi", "Dana", "Emeka", "Funmi", "Gero", "Hana", "Ify", "Jide", "Kemi", "Lola"}
	lastNames  = []string{"Adeyemi", "Brown", "Chukwu", "Diallo", "Eze", "Fashola", "Garba", "Hassan", "Ibrahim", "Johnson"}
	companies  = []string{"Acme Ltd", "Globex", "Initech", "Umbrella Corp", "Stark Industries", "Wayne Enterprises", "Hooli", "Vandelay"}
	cities     = []string{"Lagos", "Abuja", "Accra", "Nairobi", "Cape Town", "Kampala", "Dakar", "Kigali"}
	states     = []string{"LA", "FC", "GA", "NB", "WC", "CE", "DK", "KG"}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn := db.GetDataDBConnection(cfg)
	accountID, err := ensureAccount(conn)
	if err != nil {
		log.Fatal(err)
	}

	if _, err = sq.Delete("leads").Where(sq.Eq{"account_id": accountID}).RunWith(conn).Exec(); err != nil {
		log.Fatal(err)
	}

	now := time.Now()
	stmt := sq.Insert("leads").Columns(
		"id", "account_id", "first_name", "last_name", "email", "phone",
		"company", "city", "state", "source", "status", "score", "lead_value",
		"last_activity_at", "is_qualified", "created_at", "updated_at",
	)
	for i := 0; i < seedLeads; i++ {
		first := pick(firstNames)
		last := pick(lastNames)
		created := now.Add(-time.Duration(rand.Intn(90*24)) * time.Hour)
		stmt = stmt.Values(
			uuid.NewString(), accountID, first, last,
			fmt.Sprintf("%s.%s.%d@example.com", first, last, i),
			fmt.Sprintf("+23480%08d", rand.Intn(100000000)),
			pick(companies), pick(cities), pick(states),
			pick(sources), pick(statuses),
			rand.Intn(101), float64(100+rand.Intn(9901)),
			now.Add(-time.Duration(rand.Intn(60*24))*time.Hour),
			rand.Intn(2) == 1, created, created,
		)
	}

	if _, err = stmt.RunWith(conn).Exec(); err != nil {
		log.Fatal(err)
	}
	log.Printf("seeded %d leads for %s", seedLeads, seedEmail)
}

func ensureAccount(conn *sql.DB) (string, error) {
	var id string
	err := sq.Select("id").From("accounts").Where(sq.Eq{"email": seedEmail}).
		RunWith(conn).QueryRow().Scan(&id)
	if err == nil {
		log.Printf("demo account already exists: %s", seedEmail)
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	password, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	id = uuid.NewString()
	now := time.Now()
	_, err = sq.Insert("accounts").
		Columns("id", "sn", "email", "name", "password", "created_at", "updated_at").
		Values(id, cuid.New(), seedEmail, seedName, string(password), now, now).
		RunWith(conn).Exec()
	if err != nil {
		return "", err
	}
	log.Printf("demo account created: %s / %s", seedEmail, seedPassword)
	return id, nil
}

func pick[T any](values []T) T {
	return values[rand.Intn(len(values))]
}
