package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/sbmltab/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_WriteTextfile(t *testing.T) {
	c := New()
	c.Observe(&domain.TabModel{
		Entries: []domain.MapEntry{{Index: 1}, {Index: 2}},
		Skipped: 1,
	}, nil, 3*time.Millisecond)
	c.Observe(nil, errors.New("boom"), time.Millisecond)

	path := filepath.Join(t.TempDir(), "sbmltab.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "sbmltab_map_entries_total 2")
	assert.Contains(t, out, "sbmltab_skipped_children_total 1")
	assert.Contains(t, out, `sbmltab_generations_total{result="ok"} 1`)
	assert.Contains(t, out, `sbmltab_generations_total{result="error"} 1`)
	assert.Contains(t, out, "sbmltab_generation_duration_seconds_count 2")
}

func TestCollector_Handler(t *testing.T) {
	c := New()
	c.Observe(&domain.TabModel{}, nil, time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `sbmltab_generations_total{result="ok"} 1`)
}
