package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/locales/en"
	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	. "github.com/ErickRdzRm7/EduAI/apps/api/echo"
	"github.com/ErickRdzRm7/EduAI/core"
	"github.com/ErickRdzRm7/EduAI/core/quiz"
	"github.com/ErickRdzRm7/EduAI/core/topic"
	"github.com/ErickRdzRm7/EduAI/core/user"
	"github.com/ErickRdzRm7/EduAI/services/ai"
	emailsvc "github.com/ErickRdzRm7/EduAI/services/email"
	inmemdb "github.com/ErickRdzRm7/EduAI/storage/database/inmem"
)

var errMissingToken = httpErr{Msg: "missing or malformed jwt"}

type testEnv struct {
	conf     *core.Config
	app      Server
	usrSvc   user.Service
	topicSvc topic.Service
	aiMock   *ai.Mock
}

func newTestConfig() *core.Config {
	conf := &core.Config{
		TestMode:  true,
		AppName:   "EduAI",
		SecretKey: []byte("secret"),
	}
	conf.Server.JWTExpirationDelta = time.Hour
	conf.Server.PasswordResetTimeoutDelta = 3 * 24 * time.Hour
	conf.AI.Timeout = 50 * time.Millisecond
	return conf
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

func setup(t *testing.T) *testEnv {
	t.Helper()
	conf := newTestConfig()
	logger := nopLogger{}

	// set up DB & repos
	db := inmemdb.Open()
	usrRepo := inmemdb.NewUserRepository(db)
	topicRepo := inmemdb.NewTopicRepository(db)

	// set up validation
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)

	// set up services
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	usrSvc := user.NewService(conf, usrRepo, mailSvc)
	aiMock := &ai.Mock{}
	topicSvc := topic.NewService(conf, logger, topicRepo, aiMock)
	quizSvc := quiz.NewService(conf, logger, aiMock)

	app := NewServer(&Options{
		Conf:           conf,
		Logger:         logger,
		DisableReqLogs: true,
		UserSvc:        usrSvc,
		TopicSvc:       topicSvc,
		QuizSvc:        quizSvc,
		Validate:       validate,
		Translator:     translator,
		SignalShutdown: func() {},
	})

	return &testEnv{
		conf:     conf,
		app:      app,
		usrSvc:   usrSvc,
		topicSvc: topicSvc,
		aiMock:   aiMock,
	}
}

func (env *testEnv) createUser(t *testing.T, name, email, password string) user.User {
	t.Helper()
	usr, err := env.usrSvc.Register(context.Background(), user.NewUser{Name: name, Email: email, Password: password})
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

func (env *testEnv) createTopic(t *testing.T, usr user.User, title, level string) topic.Topic {
	t.Helper()
	tpc, err := env.topicSvc.Create(context.Background(), usr.ID, topic.NewTopic{Title: title, Level: level})
	if err != nil {
		t.Fatalf("createTopic() failed: %v", err)
	}
	return tpc
}

type httpErr struct {
	Msg     string      `json:"msg"`
	Details interface{} `json:"details,omitempty"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func (env *testEnv) getToken(t *testing.T, usr user.User) string {
	t.Helper()
	claims := GetUserClaims(env.conf, usr)
	token, err := GenerateToken(claims)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func checkCode(t *testing.T, wantCode int, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != wantCode {
		t.Errorf("failed! code = %v; wantCode %v; body = %v", rec.Code, wantCode, rec.Body.String())
	}
}
