package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/2HgO/erino-go/errors"
	"github.com/2HgO/erino-go/models"
	"github.com/2HgO/erino-go/types/requests"
)

func TestBind_JSONBodyWithDefaults(t *testing.T) {
	body := `{"first_name":"Ada","last_name":"Obi","email":"ada@example.com","score":85,"lead_value":"150.5"}`
	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(body))

	data := &requests.CreateLeadRequest{}
	assert.NoError(t, Bind(req, data))

	assert.Equal(t, "Ada", data.FirstName)
	assert.Equal(t, "ada@example.com", data.Email)
	assert.Equal(t, 85, data.Score)
	assert.Equal(t, models.Double(150.5), data.LeadValue)
	// absent enum fields take their declared defaults
	assert.Equal(t, models.Other_LeadSource, data.Source)
	assert.Equal(t, models.New_LeadStatus, data.Status)
}

func TestBind_ValidationFailure(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"first_name":"Ada","last_name":"Obi"}`},
		{"bad email", `{"first_name":"Ada","last_name":"Obi","email":"nope"}`},
		{"score out of range", `{"first_name":"Ada","last_name":"Obi","email":"ada@example.com","score":150}`},
		{"unknown status", `{"first_name":"Ada","last_name":"Obi","email":"ada@example.com","status":"stale"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(c.body))
			err := Bind(req, &requests.CreateLeadRequest{})
			assert.Error(t, err)
			assert.Equal(t, errors.ErrValidation, errors.AsAppError(err).Type)
			assert.Equal(t, http.StatusBadRequest, errors.AsAppError(err).Code)
		})
	}
}

func TestBind_QueryParameters(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/leads?page=3&limit=50&city_contains=lag&score_gt=40&mystery=ignored", nil)

	data := &requests.ListLeadsRequest{}
	assert.NoError(t, Bind(req, data))

	assert.Equal(t, 3, data.Page)
	assert.Equal(t, 50, data.Limit)
	assert.Equal(t, "lag", data.CityContains)
	assert.Equal(t, "40", data.ScoreGt)
}

func TestBind_PathValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/leads/abc-123", nil)
	req.SetPathValue("id", "abc-123")

	data := &requests.FetchLeadRequest{}
	assert.NoError(t, Bind(req, data))
	assert.Equal(t, "abc-123", data.LeadID)
}

func TestBind_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader("{not json"))
	err := Bind(req, &requests.CreateLeadRequest{})
	assert.Error(t, err)
	assert.Equal(t, errors.ErrValidation, errors.AsAppError(err).Type)
}
