package routers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/csaba-schmidtmayer/trivia-api/internal/config"
	"github.com/csaba-schmidtmayer/trivia-api/internal/models"
	"github.com/csaba-schmidtmayer/trivia-api/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	testhelpers.SeedCategories(t, db)
	return New(db, config.Default(), zap.NewNop()), db
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func assertError(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rr.Code, rr.Body.String())
	got := decode[models.ErrorResponse](t, rr)
	assert.False(t, got.Success)
	assert.Equal(t, status, got.Error)
	assert.Equal(t, message, got.Message)
}

func TestCreateThenListByCategoryThenDelete(t *testing.T) {
	h, _ := newTestServer(t)

	body := `{"question":"What is the heaviest organ in the human body?","answer":"The Liver","category":1,"difficulty":4}`
	rr := do(t, h, http.MethodPost, "/questions", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/categories/1/questions", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	listed := decode[models.QuestionsResponse](t, rr)
	require.Len(t, listed.Questions, 1)
	require.NotNil(t, listed.CurrentCategory)
	assert.Equal(t, 1, *listed.CurrentCategory)
	created := listed.Questions[0]
	assert.Equal(t, "The Liver", created.Answer)
	assert.Equal(t, 4, created.Difficulty)

	rr = do(t, h, http.MethodDelete, "/questions/"+strconv.Itoa(created.ID), "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	deleted := decode[models.DeletedResponse](t, rr)
	assert.True(t, deleted.Success)
	assert.Equal(t, created.ID, deleted.ID)

	rr = do(t, h, http.MethodGet, "/categories/1/questions", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode[models.QuestionsResponse](t, rr).Questions)

	rr = do(t, h, http.MethodDelete, "/questions/"+strconv.Itoa(created.ID), "")
	assertError(t, rr, http.StatusUnprocessableEntity, "The question does not exist.")
}

func TestCreateDuplicateIsRejected(t *testing.T) {
	h, db := newTestServer(t)

	body := `{"question":"Who discovered penicillin?","answer":"Alexander Fleming","category":1,"difficulty":3}`
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/questions", body).Code)

	upper := `{"question":"WHO DISCOVERED PENICILLIN?","answer":"Fleming","category":1,"difficulty":1}`
	assertError(t, do(t, h, http.MethodPost, "/questions", upper), http.StatusConflict, "The question already exists.")

	var count int64
	require.NoError(t, db.Model(&models.Question{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestNonASCIIQuestionDuplicateAndSearch(t *testing.T) {
	h, _ := newTestServer(t)

	body := `{"question":"Where is Ürümqi?","answer":"Xinjiang","category":3,"difficulty":3}`
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/questions", body).Code)
	assertError(t, do(t, h, http.MethodPost, "/questions", body), http.StatusConflict, "The question already exists.")

	rr := do(t, h, http.MethodPost, "/questions", `{"searchTerm":"Ürümqi"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	found := decode[models.QuestionsResponse](t, rr)
	require.Len(t, found.Questions, 1)
	assert.Equal(t, "Where is Ürümqi?", found.Questions[0].Question)
}

func TestSearchWithMistypedCreateField(t *testing.T) {
	h, db := newTestServer(t)
	testhelpers.SeedQuestions(t, db, 3)

	rr := do(t, h, http.MethodPost, "/questions", `{"searchTerm":"question #2","category":"Art"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	found := decode[models.QuestionsResponse](t, rr)
	assert.True(t, found.Success)
	assert.Equal(t, 1, found.TotalQuestions)

	var count int64
	require.NoError(t, db.Model(&models.Question{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestCreateMissingFieldLeavesStoreUnchanged(t *testing.T) {
	h, db := newTestServer(t)

	rr := do(t, h, http.MethodPost, "/questions", `{"question":"q","category":1,"difficulty":1}`)
	assertError(t, rr, http.StatusBadRequest, "Missing field 'answer'.")

	rr = do(t, h, http.MethodPost, "/questions", `not json`)
	assertError(t, rr, http.StatusBadRequest, "The request body is not valid JSON.")

	var count int64
	require.NoError(t, db.Model(&models.Question{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPaginationAndSearch(t *testing.T) {
	h, db := newTestServer(t)
	testhelpers.SeedQuestions(t, db, 19)

	rr := do(t, h, http.MethodGet, "/questions", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	page := decode[models.QuestionsPageResponse](t, rr)
	assert.Len(t, page.Questions, 10)
	assert.Equal(t, 19, page.TotalQuestions)
	assert.Len(t, page.Categories, len(testhelpers.DefaultCategories))
	assert.Nil(t, page.CurrentCategory)

	rr = do(t, h, http.MethodGet, "/questions?page=2", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[models.QuestionsPageResponse](t, rr).Questions, 9)

	assertError(t, do(t, h, http.MethodGet, "/questions?page=1000", ""), http.StatusNotFound, "The requested page is beyond the valid range.")

	rr = do(t, h, http.MethodPost, "/questions", `{"searchTerm":"question #1"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	found := decode[models.QuestionsResponse](t, rr)
	// #1 and #10 through #19
	assert.Equal(t, 11, found.TotalQuestions)
	assert.Nil(t, found.CurrentCategory)

	rr = do(t, h, http.MethodPost, "/questions", `{"searchTerm":"%"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Zero(t, decode[models.QuestionsResponse](t, rr).TotalQuestions)
}

func TestCategoryListing(t *testing.T) {
	h, _ := newTestServer(t)

	rr := do(t, h, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	got := decode[models.CategoriesResponse](t, rr)
	assert.True(t, got.Success)
	assert.Equal(t, testhelpers.DefaultCategories, got.Categories)
	assert.Equal(t, len(testhelpers.DefaultCategories), got.TotalCategories)

	assertError(t, do(t, h, http.MethodGet, "/categories/50/questions", ""), http.StatusUnprocessableEntity, "The requested category does not exist.")
}

func TestFallbackEnvelopes(t *testing.T) {
	h, _ := newTestServer(t)

	assertError(t, do(t, h, http.MethodGet, "/nope", ""), http.StatusNotFound, "The requested resource was not found.")
	assertError(t, do(t, h, http.MethodDelete, "/questions/abc", ""), http.StatusNotFound, "The requested resource was not found.")
	assertError(t, do(t, h, http.MethodGet, "/categories/abc/questions", ""), http.StatusNotFound, "The requested resource was not found.")
	assertError(t, do(t, h, http.MethodPatch, "/questions", ""), http.StatusMethodNotAllowed, "The method is not allowed for the requested URL.")
	assertError(t, do(t, h, http.MethodPost, "/categories", ""), http.StatusMethodNotAllowed, "The method is not allowed for the requested URL.")
}

func TestStoreFailureIsInternalError(t *testing.T) {
	h, db := newTestServer(t)
	testhelpers.DropQuestionTable(t, db)

	assertError(t, do(t, h, http.MethodGet, "/questions", ""), http.StatusInternalServerError, "The server encountered an internal error.")
}

func TestAmbientEndpoints(t *testing.T) {
	h, db := newTestServer(t)

	rr := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ready", rr.Body.String())

	do(t, h, http.MethodGet, "/categories", "")
	rr = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `route="/categories`), "metrics should label the category route")

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	rr = do(t, h, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
