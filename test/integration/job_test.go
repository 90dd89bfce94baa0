package integration_test

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"workaholic_backend/internal/models"
	"workaholic_backend/internal/repositories"
	"workaholic_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobListing struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalJobs   int64 `json:"totalJobs"`
	Limit       int   `json:"limit"`
	Jobs        []struct {
		ID          uint    `json:"id"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Location    *string `json:"location"`
		CompanyID   uint    `json:"company_id"`
		CompanyName *string `json:"companyName"`
	} `json:"jobs"`
}

func TestCreateJob(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, email := helpers.RegisterCompany(t, ts)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/jobs/create", "", map[string]interface{}{
		"user_email":  email,
		"title":       "Backend Engineer",
		"description": "Build APIs",
		"location":    "Remote",
	})

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, "Job posted successfully")
}

func TestCreateJob_UnknownUser(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/jobs/create", "", map[string]interface{}{
		"user_email":  helpers.UniqueEmail("ghost"),
		"title":       "Phantom Job",
		"description": "Should not exist",
	})

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestListJobs_CompanyNameJoined(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, email := helpers.RegisterCompany(t, ts)
	title := fmt.Sprintf("Joined Job %s", email)
	jobID := helpers.CreateJob(t, ts, email, title)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/jobs?page=1&limit=100", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var listing jobListing
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &listing))
	assert.Equal(t, 1, listing.CurrentPage)
	assert.Equal(t, 100, listing.Limit)

	found := false
	for _, job := range listing.Jobs {
		if job.ID == jobID {
			found = true
			require.NotNil(t, job.CompanyName)
			assert.Equal(t, "Test Company Inc.", *job.CompanyName)
		}
	}
	assert.True(t, found, "created job should appear in listing")
}

func TestListJobs_PaginationDefaults(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, email := helpers.RegisterCompany(t, ts)
	helpers.CreateJob(t, ts, email, fmt.Sprintf("Pagination Job %s", email))

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/jobs?page=0&limit=-5", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var listing jobListing
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &listing))
	assert.Equal(t, 1, listing.CurrentPage)
	assert.Equal(t, 10, listing.Limit)
	assert.LessOrEqual(t, len(listing.Jobs), 10)
	assert.GreaterOrEqual(t, listing.TotalJobs, int64(1))
}

func TestListJobs_PageWindowing(t *testing.T) {
	ts := GetTestServer(t)

	// Repeatable-read transaction: the 15-posting dataset is built on a
	// cleared tx-local view of the tables, invisible to parallel tests,
	// and rolled back afterwards.
	tx := ts.DB.Begin(&sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	require.NoError(t, tx.Error)
	defer tx.Rollback()

	require.NoError(t, tx.Exec("DELETE FROM job_applications").Error)
	require.NoError(t, tx.Exec("DELETE FROM job_posts").Error)

	repo := repositories.NewJobRepository(tx)
	for i := 1; i <= 15; i++ {
		require.NoError(t, repo.Create(&models.JobPost{
			CompanyID:   1,
			Title:       fmt.Sprintf("Windowed Job %02d", i),
			Description: "Windowing dataset",
		}))
	}

	total, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)

	firstPage, err := repo.List(10, 0)
	require.NoError(t, err)
	assert.Len(t, firstPage, 10)

	secondPage, err := repo.List(10, 10)
	require.NoError(t, err)
	require.Len(t, secondPage, 5)

	// Listing orders by id DESC, so the five oldest postings close the
	// second page.
	assert.Equal(t, "Windowed Job 05", secondPage[0].Title)
	assert.Equal(t, "Windowed Job 01", secondPage[4].Title)
}

func TestUpdateJob(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, email := helpers.RegisterCompany(t, ts)
	jobID := helpers.CreateJob(t, ts, email, fmt.Sprintf("Update Me %s", email))

	res, bodyStr := ts.SendRequest(t, http.MethodPut, fmt.Sprintf("/api/jobs/%d", jobID), "", map[string]interface{}{
		"title":       "Updated Title",
		"description": "Updated description",
		"location":    "Hybrid",
	})

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Job updated successfully")
}

func TestUpdateJob_NotFound(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/jobs/999999", "", map[string]interface{}{
		"title":       "Nope",
		"description": "Nope",
	})

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestDeleteJob_CascadesApplications(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, companyEmail := helpers.RegisterCompany(t, ts)
	_, freelancerEmail := helpers.RegisterFreelancer(t, ts)
	jobID := helpers.CreateJob(t, ts, companyEmail, fmt.Sprintf("Cascade Job %s", companyEmail))

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/jobs/apply", "", map[string]interface{}{
		"user_email": freelancerEmail,
		"job_id":     jobID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/jobs/%d", jobID), "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Job deleted successfully")

	res, appsBodyStr := ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/jobs/freelancer/%s/applications", freelancerEmail), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Applications []struct {
			JobID uint `json:"job_id"`
		} `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(appsBodyStr), &response))
	for _, application := range response.Applications {
		assert.NotEqual(t, jobID, application.JobID, "applications of a deleted job must be gone")
	}
}
