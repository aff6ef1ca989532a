package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/sbmltab/internal/metrics"
	"github.com/aretw0/sbmltab/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const config = `<model><intracellular><map species="A" substrate="glucose"/><map species="B" substrate="oxygen"/></intracellular></model>`

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	rr := do(t, NewHandler(Config{}), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.NotEmpty(t, resp["version"])
}

func TestGenerate(t *testing.T) {
	rr := do(t, NewHandler(Config{}), http.MethodPost, "/generate?color1=red", config)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2", rr.Header().Get("X-Sbmltab-Entries"))
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/x-python")
	body := rr.Body.String()
	assert.Contains(t, body, "class SBMLDefTab(object):")
	assert.Contains(t, body, "self.species1 =  Text(value='A', layout=text_layout)")
	assert.Contains(t, body, "self.substrate2 =  Text(value='oxygen', layout=text_layout)")
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		msg    string
	}{
		{"Empty Body", "", http.StatusBadRequest, "Empty request body"},
		{"Malformed", "<model><intracellular>", http.StatusBadRequest, "Cannot parse request body"},
		{"No Entry Point", "<model/>", http.StatusUnprocessableEntity, "not found"},
		{"Missing Attribute", `<a><intracellular><map species="A"/></intracellular></a>`, http.StatusUnprocessableEntity, "substrate"},
	}

	h := NewHandler(Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/generate", tt.body)

			assert.Equal(t, tt.status, rr.Code)
			var resp errorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.msg)
		})
	}
}

func TestGenerate_TooLarge(t *testing.T) {
	body := "<a>" + strings.Repeat(" ", MaxBodyBytes) + "</a>"
	rr := do(t, NewHandler(Config{}), http.MethodPost, "/generate", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestInspect(t *testing.T) {
	rr := do(t, NewHandler(Config{Palette: domain.Palette{Primary: "red", Secondary: "blue"}}), http.MethodPost, "/inspect", config)

	require.Equal(t, http.StatusOK, rr.Code)
	var model domain.TabModel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &model))
	assert.Equal(t, []domain.MapEntry{
		{Index: 1, Species: "A", Substrate: "glucose"},
		{Index: 2, Species: "B", Substrate: "oxygen"},
	}, model.Entries)
	assert.Equal(t, "red", model.Palette.Primary)
}

func TestMetrics(t *testing.T) {
	h := NewHandler(Config{Metrics: metrics.New()})
	do(t, h, http.MethodPost, "/generate", config)
	do(t, h, http.MethodPost, "/generate", "<broken")

	rr := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `sbmltab_generations_total{result="ok"} 1`)
	assert.Contains(t, rr.Body.String(), `sbmltab_generations_total{result="error"} 1`)
	assert.Contains(t, rr.Body.String(), "sbmltab_map_entries_total 2")
}

func TestMetrics_Disabled(t *testing.T) {
	rr := do(t, NewHandler(Config{}), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
