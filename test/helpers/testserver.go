package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"workaholic_backend/database"
	"workaholic_backend/internal/app"
	"workaholic_backend/internal/config"
	"workaholic_backend/internal/logger"

	"gorm.io/gorm"
)

// TestServer wraps an httptest server and the database handle behind it.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer boots the full router against the test database. The
// caller is expected to have set DATABASE_URL before calling.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init("test")

	db, err := app.OpenDatabase(cfg)
	if err != nil {
		t.Fatalf("connecting to test database (%s): %v", cfg.Database.DSN, err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables truncates every table so each run starts clean.
func (ts *TestServer) ClearTables(t *testing.T) {
	err := ts.DB.Exec("TRUNCATE TABLE job_applications, job_posts, freelancer_details, user_details, user_login RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("clearing test tables: %v", err)
	}
}

// SendRequest does a JSON request against the test server and returns
// the response together with the body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("sending request: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
