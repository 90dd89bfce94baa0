package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"workaholic_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyAndListApplicants(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, companyEmail := helpers.RegisterCompany(t, ts)
	_, freelancerEmail := helpers.RegisterFreelancer(t, ts)
	jobID := helpers.CreateJob(t, ts, companyEmail, fmt.Sprintf("Apply Job %s", companyEmail))

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/jobs/apply", "", map[string]interface{}{
		"user_email": freelancerEmail,
		"job_id":     jobID,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, "Applied successfully")

	res, listBodyStr := ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/jobs/%d/applications", jobID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var applicants []struct {
		ApplicationID uint    `json:"applicationId"`
		Status        string  `json:"status"`
		UserEmail     string  `json:"user_email"`
		Name          *string `json:"name"`
		SkillsList    []struct {
			Skills     string `json:"skills"`
			Experience int    `json:"experience"`
		} `json:"skillsList"`
		Experience *int `json:"experience"`
	}
	require.NoError(t, json.Unmarshal([]byte(listBodyStr), &applicants))
	require.Len(t, applicants, 1)
	assert.Equal(t, freelancerEmail, applicants[0].UserEmail)
	assert.Equal(t, "pending", applicants[0].Status)
	// The skills column is decoded into a structured list, not returned raw.
	require.Len(t, applicants[0].SkillsList, 2)
	assert.Equal(t, "Go", applicants[0].SkillsList[0].Skills)
}

func TestApply_Twice(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, companyEmail := helpers.RegisterCompany(t, ts)
	_, freelancerEmail := helpers.RegisterFreelancer(t, ts)
	jobID := helpers.CreateJob(t, ts, companyEmail, fmt.Sprintf("Twice Job %s", companyEmail))

	applyBody := map[string]interface{}{
		"user_email": freelancerEmail,
		"job_id":     jobID,
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/jobs/apply", "", applyBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/jobs/apply", "", applyBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Already applied")
}

func TestApply_AfterRejectionStillBlocked(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, companyEmail := helpers.RegisterCompany(t, ts)
	_, freelancerEmail := helpers.RegisterFreelancer(t, ts)
	jobID := helpers.CreateJob(t, ts, companyEmail, fmt.Sprintf("One Shot Job %s", companyEmail))

	applyBody := map[string]interface{}{
		"user_email": freelancerEmail,
		"job_id":     jobID,
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/jobs/apply", "", applyBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	applicationID := findApplicationID(t, ts, jobID)
	res, _ = ts.SendRequest(t, http.MethodPut,
		fmt.Sprintf("/api/jobs/applications/%d/respond", applicationID), "",
		map[string]interface{}{"action": "reject"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// The application row survives the rejection, so a re-apply is
	// blocked the same as while pending.
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/jobs/apply", "", applyBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Already applied")
}

func TestApply_UnknownJob(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, freelancerEmail := helpers.RegisterFreelancer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/jobs/apply", "", map[string]interface{}{
		"user_email": freelancerEmail,
		"job_id":     999999,
	})

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestWithdraw(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, companyEmail := helpers.RegisterCompany(t, ts)
	_, freelancerEmail := helpers.RegisterFreelancer(t, ts)
	jobID := helpers.CreateJob(t, ts, companyEmail, fmt.Sprintf("Withdraw Job %s", companyEmail))

	applyBody := map[string]interface{}{
		"user_email": freelancerEmail,
		"job_id":     jobID,
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/jobs/apply", "", applyBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodDelete, "/api/jobs/withdraw", "", applyBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Application withdrawn successfully")

	// After withdrawing the freelancer can apply again.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/jobs/apply", "", applyBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestWithdraw_AfterDecisionRejected(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, companyEmail := helpers.RegisterCompany(t, ts)
	_, freelancerEmail := helpers.RegisterFreelancer(t, ts)
	jobID := helpers.CreateJob(t, ts, companyEmail, fmt.Sprintf("Decided Job %s", companyEmail))

	applyBody := map[string]interface{}{
		"user_email": freelancerEmail,
		"job_id":     jobID,
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/jobs/apply", "", applyBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	applicationID := findApplicationID(t, ts, jobID)

	res, _ = ts.SendRequest(t, http.MethodPut,
		fmt.Sprintf("/api/jobs/applications/%d/respond", applicationID), "",
		map[string]interface{}{"action": "accept"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodDelete, "/api/jobs/withdraw", "", applyBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "already been decided")
}

func TestRespond(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, companyEmail := helpers.RegisterCompany(t, ts)
	_, freelancerEmail := helpers.RegisterFreelancer(t, ts)
	jobID := helpers.CreateJob(t, ts, companyEmail, fmt.Sprintf("Respond Job %s", companyEmail))

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/jobs/apply", "", map[string]interface{}{
		"user_email": freelancerEmail,
		"job_id":     jobID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	applicationID := findApplicationID(t, ts, jobID)

	res, bodyStr := ts.SendRequest(t, http.MethodPut,
		fmt.Sprintf("/api/jobs/applications/%d/respond", applicationID), "",
		map[string]interface{}{"action": "reject"})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Application rejected successfully")

	// The stored status is the action verbatim.
	res, appsBodyStr := ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/jobs/freelancer/%s/applications", freelancerEmail), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Success      bool `json:"success"`
		Applications []struct {
			ApplicationID uint    `json:"applicationId"`
			Status        string  `json:"status"`
			JobID         uint    `json:"job_id"`
			Title         string  `json:"title"`
			CompanyName   *string `json:"companyName"`
		} `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(appsBodyStr), &response))
	assert.True(t, response.Success)
	require.Len(t, response.Applications, 1)
	assert.Equal(t, "reject", response.Applications[0].Status)
	require.NotNil(t, response.Applications[0].CompanyName)
	assert.Equal(t, "Test Company Inc.", *response.Applications[0].CompanyName)
}

func TestRespond_SameActionTwice(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, companyEmail := helpers.RegisterCompany(t, ts)
	_, freelancerEmail := helpers.RegisterFreelancer(t, ts)
	jobID := helpers.CreateJob(t, ts, companyEmail, fmt.Sprintf("Repeat Respond Job %s", companyEmail))

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/jobs/apply", "", map[string]interface{}{
		"user_email": freelancerEmail,
		"job_id":     jobID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	applicationID := findApplicationID(t, ts, jobID)
	respondPath := fmt.Sprintf("/api/jobs/applications/%d/respond", applicationID)
	acceptBody := map[string]interface{}{"action": "accept"}

	res, _ = ts.SendRequest(t, http.MethodPut, respondPath, "", acceptBody)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Re-responding with the same action is a no-op update and must not
	// be mistaken for a missing application.
	res, bodyStr := ts.SendRequest(t, http.MethodPut, respondPath, "", acceptBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Application accepted successfully")
}

func TestRespond_InvalidAction(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/jobs/applications/1/respond", "",
		map[string]interface{}{"action": "maybe"})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestRespond_UnknownApplication(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/jobs/applications/999999/respond", "",
		map[string]interface{}{"action": "accept"})

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func findApplicationID(t *testing.T, ts *helpers.TestServer, jobID uint) uint {
	res, bodyStr := ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/jobs/%d/applications", jobID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var applicants []struct {
		ApplicationID uint `json:"applicationId"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &applicants))
	require.NotEmpty(t, applicants)
	return applicants[0].ApplicationID
}
