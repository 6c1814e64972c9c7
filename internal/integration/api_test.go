package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/Avimitin/plct-archrv-pkg-bot/internal/api/dto"
	"github.com/Avimitin/plct-archrv-pkg-bot/internal/config"
	"github.com/Avimitin/plct-archrv-pkg-bot/internal/infra/postgres"
)

type APIIntegrationTestSuite struct {
	suite.Suite
	httpClient *http.Client
	dbPool     *pgxpool.Pool
	baseURL    string
	apiToken   string
}

func TestAPIIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(APIIntegrationTestSuite))
}

func (s *APIIntegrationTestSuite) SetupSuite() {
	s.baseURL = getenv("INTEGRATION_BASE_URL", "http://localhost:8080")
	s.apiToken = getenv("INTEGRATION_API_TOKEN", "integration-token")
	s.httpClient = &http.Client{
		Timeout: 30 * time.Second,
	}

	dbHost := getenv("INTEGRATION_DB_HOST", "localhost")
	dbPortStr := getenv("INTEGRATION_DB_PORT", "5432")
	dbUser := getenv("INTEGRATION_DB_USER", "pkgbot")
	dbPassword := getenv("INTEGRATION_DB_PASSWORD", "pkgbot")
	dbName := getenv("INTEGRATION_DB_NAME", "pkgbot")

	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		log.Fatalf("Invalid INTEGRATION_DB_PORT value: %v", err)
	}

	s.waitForServiceReady()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: dbPassword,
		Name:     dbName,
		SSLmode:  config.SSLDisable,
	})
	if err != nil {
		log.Fatalf("Failed to connect to test database: %v", err)
	}
	s.dbPool = pool
	s.cleanDatabase()
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (s *APIIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
}

func (s *APIIntegrationTestSuite) SetupTest() {
	s.cleanDatabase()
}

func (s *APIIntegrationTestSuite) waitForServiceReady() {
	maxAttempts := 30
	for i := 0; i < maxAttempts; i++ {
		resp, err := http.Get(s.baseURL + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			fmt.Println("Service is ready!")
			return
		}
		if resp != nil {
			resp.Body.Close()
		}
		fmt.Printf("Waiting for service to be ready... (attempt %d/%d)\n", i+1, maxAttempts)
		time.Sleep(2 * time.Second)
	}
	log.Fatal("Service did not become ready in time")
}

func (s *APIIntegrationTestSuite) cleanDatabase() {
	ctx := context.Background()
	queries := []string{
		"DELETE FROM marks",
		"DELETE FROM assignments",
		"DELETE FROM packagers",
	}

	for _, query := range queries {
		_, err := s.dbPool.Exec(ctx, query)
		if err != nil {
			log.Printf("Failed to clean table: %v", err)
		}
	}
}

func (s *APIIntegrationTestSuite) seedAssignment(pkgname, alias string, tgUID int64, status string) {
	ctx := context.Background()

	_, err := s.dbPool.Exec(ctx,
		"INSERT INTO packagers (tg_uid, alias) VALUES ($1, $2) ON CONFLICT (tg_uid) DO NOTHING",
		tgUID, alias)
	s.Require().NoError(err)

	_, err = s.dbPool.Exec(ctx,
		"INSERT INTO assignments (package, tg_uid, status) VALUES ($1, $2, $3)",
		pkgname, tgUID, status)
	s.Require().NoError(err)
}

func (s *APIIntegrationTestSuite) seedMark(pkgname, mark string) {
	_, err := s.dbPool.Exec(context.Background(),
		"INSERT INTO marks (package, mark) VALUES ($1, $2)", pkgname, mark)
	s.Require().NoError(err)
}

func (s *APIIntegrationTestSuite) getJSON(endpoint string, out any) *http.Response {
	resp, err := s.httpClient.Get(s.baseURL + endpoint)
	s.Require().NoError(err)

	if out != nil {
		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		s.Require().NoError(err)
	}
	return resp
}

func (s *APIIntegrationTestSuite) TestGetPackages() {
	s.seedAssignment("nodejs", "alice", 42, "ftbfs")
	s.seedAssignment("rust", "bob", 43, "leaf")
	s.seedMark("nodejs", "stuck")
	s.seedMark("nodejs", "ready")

	var pkgResp dto.PkgResponse
	resp := s.getJSON("/pkg", &pkgResp)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	s.Assert().Len(pkgResp.WorkList, 2)
	s.Assert().Equal("nodejs", pkgResp.WorkList[0].Package)
	s.Assert().Equal("alice", pkgResp.WorkList[0].Alias)
	s.Assert().Equal("ftbfs", pkgResp.WorkList[0].Status)
	s.Assert().Len(pkgResp.MarkList, 2)
}

func (s *APIIntegrationTestSuite) TestGetPackagesEmpty() {
	var pkgResp dto.PkgResponse
	resp := s.getJSON("/pkg", &pkgResp)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	s.Assert().Empty(pkgResp.WorkList)
	s.Assert().Empty(pkgResp.MarkList)
}

func (s *APIIntegrationTestSuite) TestDeleteWrongToken() {
	s.seedAssignment("nodejs", "alice", 42, "ftbfs")

	var msgResp dto.MsgResponse
	resp := s.getJSON("/delete/nodejs/ftbfs?token=wrong-token", &msgResp)
	s.Require().Equal(http.StatusForbidden, resp.StatusCode)

	s.Assert().Equal(dto.StatusFail, msgResp.Status)
	s.Assert().Equal("forbidden", msgResp.Msg)

	// Назначение не тронуто.
	var count int
	err := s.dbPool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM assignments WHERE package = 'nodejs'").Scan(&count)
	s.Require().NoError(err)
	s.Assert().Equal(1, count)
}

func (s *APIIntegrationTestSuite) TestDeleteBadStatus() {
	s.seedAssignment("nodejs", "alice", 42, "ftbfs")

	var msgResp dto.MsgResponse
	resp := s.getJSON("/delete/nodejs/bogus?token="+s.apiToken, &msgResp)
	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)

	s.Assert().Equal(dto.StatusFail, msgResp.Status)
	s.Assert().Contains(msgResp.Detail, "bogus")
}

func (s *APIIntegrationTestSuite) TestDeleteUnassignedPackage() {
	var msgResp dto.MsgResponse
	resp := s.getJSON("/delete/ghost/ftbfs?token="+s.apiToken, &msgResp)
	s.Require().Equal(http.StatusInternalServerError, resp.StatusCode)

	s.Assert().Equal(dto.StatusFail, msgResp.Status)
	s.Assert().Equal("fail to fetch packager", msgResp.Msg)
	s.Assert().Contains(msgResp.Detail, "ghost")
}

func (s *APIIntegrationTestSuite) TestHealth() {
	resp, err := s.httpClient.Get(s.baseURL + "/health")
	s.Require().NoError(err)
	resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)
}
