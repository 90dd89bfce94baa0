package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// UniqueEmail makes emails collision-free across parallel tests.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// RegisterUser registers through the API and returns the issued token.
func RegisterUser(t *testing.T, ts *TestServer, email, password string) string {
	body := map[string]interface{}{
		"user_email": email,
		"password":   password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/users/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "registration should succeed: "+bodyStr)

	var response struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	require.NotEmpty(t, response.Token)

	return response.Token
}

// RegisterCompany registers a fresh account and completes it as a
// company profile. Returns the token and the email used.
func RegisterCompany(t *testing.T, ts *TestServer) (string, string) {
	email := UniqueEmail("company")
	token := RegisterUser(t, ts, email, "password123")

	updateBody := map[string]interface{}{
		"name":        "Hiring Manager",
		"role":        "company",
		"companyName": "Test Company Inc.",
		"location":    "Berlin",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/users/update", token, updateBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "company profile update should succeed: "+bodyStr)

	return token, email
}

// RegisterFreelancer registers a fresh account and completes it as a
// freelancer profile. Returns the token and the email used.
func RegisterFreelancer(t *testing.T, ts *TestServer) (string, string) {
	email := UniqueEmail("freelancer")
	token := RegisterUser(t, ts, email, "password123")

	updateBody := map[string]interface{}{
		"name": "Test Freelancer",
		"age":  28,
		"role": "freelancer",
		"skillsList": []map[string]interface{}{
			{"skills": "Go", "experience": 3},
			{"skills": "SQL", "experience": 5},
		},
		"experience": 5,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/users/update", token, updateBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "freelancer profile update should succeed: "+bodyStr)

	return token, email
}

// CreateJob posts a job for the given company email and returns its id,
// read back from the listing.
func CreateJob(t *testing.T, ts *TestServer, companyEmail, title string) uint {
	body := map[string]interface{}{
		"user_email":  companyEmail,
		"title":       title,
		"description": "Test job description",
		"location":    "Remote",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/jobs/create", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "job creation should succeed: "+bodyStr)

	listRes, listBodyStr := ts.SendRequest(t, http.MethodGet, "/api/jobs?page=1&limit=100", "", nil)
	require.Equal(t, http.StatusOK, listRes.StatusCode)

	var listing struct {
		Jobs []struct {
			ID    uint   `json:"id"`
			Title string `json:"title"`
		} `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal([]byte(listBodyStr), &listing))

	for _, job := range listing.Jobs {
		if job.Title == title {
			return job.ID
		}
	}

	assert.FailNow(t, "created job not found in listing", "title=%s body=%s", title, listBodyStr)
	return 0
}
