package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	New().Register(router)
	return router
}

func get(router *gin.Engine, path, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestOperations_JSON(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		path    string
		result  float64
		op      string
		message string
	}{
		{"/add?a=10&b=5", 15, "addition", "10 + 5 = 15"},
		{"/subtract?num1=10&num2=4", 6, "subtraction", "10 - 4 = 6"},
		{"/multiply?num1=6&num2=7", 42, "multiplication", "6 × 7 = 42"},
		{"/divide?a=20&b=4", 5, "division", "20 ÷ 4 = 5"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := get(router, tt.path, "")
			require.Equal(t, http.StatusOK, rr.Code)

			var body result
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.result, body.Result)
			assert.Equal(t, tt.op, body.Operation)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestOperations_PlainText(t *testing.T) {
	router := setupRouter()

	rr := get(router, "/add?a=10&b=5", "text/plain")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "The sum of 10 and 5 is: 15", rr.Body.String())

	rr = get(router, "/divide?a=10&b=0", "text/plain")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Cannot divide by zero", rr.Body.String())

	rr = get(router, "/multiply?a=abc&b=2", "text/plain")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid input", rr.Body.String())
}

func TestOperations_BodyContainsResult(t *testing.T) {
	rr := get(setupRouter(), "/add?a=10&b=5", "*/*")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "15")
}

func TestOperations_Errors(t *testing.T) {
	router := setupRouter()

	rr := get(router, "/divide?a=10&b=0", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Cannot divide by zero")

	for _, path := range []string{"/add?a=abc&b=5", "/subtract?a=1", "/multiply", "/divide?a=abc&b=def", "/add?a=NaN&b=1"} {
		rr := get(router, path, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, path)
		assert.Contains(t, rr.Body.String(), "Invalid input", path)
	}

	for _, path := range []string{"/multiply?num1=1e308&num2=10", "/add?a=1.7e308&b=1.7e308", "/divide?a=1e308&b=1e-10"} {
		rr := get(router, path, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, path)
		assert.Contains(t, rr.Body.String(), "Result out of range", path)
	}

	rr = get(router, "/multiply?num1=1e308&num2=10", "text/plain")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Result out of range", rr.Body.String())
}

func post(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCalculate(t *testing.T) {
	router := setupRouter()

	rr := post(router, `{"num1": 10, "num2": 5, "operation": "Add"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var body result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Add", body.Operation)
	assert.Equal(t, float64(15), body.Result)
	assert.Equal(t, "10 + 5 = 15", body.Message)

	rr = post(router, `{"num1": 9, "num2": 3, "operation": "divide"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "9 ÷ 3 = 3")
}

func TestCalculate_Errors(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"string operand", `{"num1": "10", "num2": 5, "operation": "add"}`, "must be numbers"},
		{"missing operand", `{"num1": 10, "operation": "add"}`, "must be numbers"},
		{"malformed", `{`, "must be numbers"},
		{"unknown operation", `{"num1": 1, "num2": 2, "operation": "pow"}`, "Supported operations"},
		{"missing operation", `{"num1": 1, "num2": 2}`, "Supported operations"},
		{"divide by zero", `{"num1": 1, "num2": 0, "operation": "divide"}`, "Cannot divide by zero"},
		{"overflow", `{"num1": 1e308, "num2": 10, "operation": "multiply"}`, "Result out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := post(router, tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.want)
		})
	}
}

func TestIndex(t *testing.T) {
	rr := get(setupRouter(), "/api", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body, "endpoints")
	assert.Contains(t, rr.Body.String(), "/calculate")
}
