package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"

	"equarior/backend/internal/config"
	"equarior/backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// HandlerTestSuite wires the real router against an in-memory sqlite
// database. Embedding suites add their cases on top.
type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *HandlerTestSuite) SetupTest() {
	config.AppConfig = &config.Config{JWTSecret: "secret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	// In-memory sqlite gives every pooled connection its own database;
	// pin the pool to a single connection.
	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(database.Migrate(db))
	database.DB = db

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	RegisterRoutes(suite.router)
}

func (suite *HandlerTestSuite) TearDownTest() {
	sqlDB, _ := database.DB.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// do performs a JSON request against the router. A non-empty token is sent
// as the raw Authorization header value.
func (suite *HandlerTestSuite) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into out.
func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out interface{}) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

// registerAndLogin creates an account and returns its id and a login token.
func (suite *HandlerTestSuite) registerAndLogin(username, email, password string) (uint, string) {
	w := suite.do(http.MethodPost, "/auth/register", "", RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var created struct {
		ID uint `json:"id"`
	}
	suite.decode(w, &created)

	w = suite.do(http.MethodPost, "/auth/login", "", LoginInput{
		Email:    email,
		Password: password,
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	suite.decode(w, &login)
	suite.Require().NotEmpty(login.Token)

	return created.ID, login.Token
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
