package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"studytracker/backend/config"
	"studytracker/backend/models"
	"studytracker/backend/routes"
	"studytracker/backend/utils"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	app      *fiber.App
	db       *gorm.DB
	cfg      *config.Config
	testUser models.User
	jwtToken string
)

func TestMain(m *testing.M) {
	// Setup
	setup()
	// Run tests
	code := m.Run()
	// Cleanup
	teardown()
	os.Exit(code)
}

func setup() {
	cfg = &config.Config{
		JWTSecret:  "testsecret",
		ServerPort: "8080",
	}

	var err error
	db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic(err)
	}
	if err := utils.Migrate(db); err != nil {
		panic(err)
	}

	app = fiber.New()
	routes.SetupRoutes(app, db, cfg)

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	testUser = models.User{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: string(hash),
	}
	db.Create(&testUser)

	jwtToken, err = utils.GenerateJWTToken(testUser.ID, cfg)
	if err != nil {
		panic(err)
	}
}

func teardown() {
	db.Migrator().DropTable(
		&models.User{},
		&models.LoginHistory{},
		&models.StudyRecord{},
		&models.Goal{},
	)
}

// doRequest runs an authenticated JSON request against the test app.
func doRequest(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", jwtToken)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
