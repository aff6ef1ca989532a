package sbmltab_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/aretw0/sbmltab"
	"github.com/aretw0/sbmltab/internal/metrics"
	"github.com/aretw0/sbmltab/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoMaps = `<model><intracellular><map species="A" substrate="glucose"/><map species="B" substrate="oxygen"/></intracellular></model>`

func writeConfig(t *testing.T, content string) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "config.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return dir, path
}

func TestGenerateFile_Scenario(t *testing.T) {
	dir, cfg := writeConfig(t, twoMaps)
	out := filepath.Join(dir, domain.DefaultOutputFile)

	res, err := sbmltab.New().GenerateFile(context.Background(), cfg, out)
	require.NoError(t, err)
	assert.Equal(t, out, res.Output)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	code := string(data)

	assert.Contains(t, code, "self.species1 =  Text(value='A', layout=text_layout)")
	assert.Contains(t, code, "self.substrate1 =  Text(value='glucose', layout=text_layout)")
	assert.Contains(t, code, "self.species2 =  Text(value='B', layout=text_layout)")
	assert.Contains(t, code, "self.substrate2 =  Text(value='oxygen', layout=text_layout)")
	assert.Contains(t, code, "self.tab = VBox([\n          self.sbml_filename,\n          box0,\n          box1,\n          box2,\n        ])")
	assert.NotContains(t, code, "species3")
}

func TestGenerateFile_Idempotent(t *testing.T) {
	dir, cfg := writeConfig(t, twoMaps)
	out := filepath.Join(dir, "sbml_def.py")
	require.NoError(t, os.WriteFile(out, []byte(strings.Repeat("stale\n", 1000)), 0644))
	gen := sbmltab.New()

	_, err := gen.GenerateFile(context.Background(), cfg, out)
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	_, err = gen.GenerateFile(context.Background(), cfg, out)
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.NotContains(t, string(first), "stale")
	assert.Equal(t, first, second)
}

func TestGenerateFile_BadOutputDirectory(t *testing.T) {
	dir, cfg := writeConfig(t, twoMaps)
	_, err := sbmltab.New().GenerateFile(context.Background(), cfg, filepath.Join(dir, "missing", "sbml_def.py"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write")
}

func TestGenerateFile_NMapsInOrder(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		var sb strings.Builder
		sb.WriteString("<PhysiCell_settings><intracellular type=\"sbml\">")
		for i := 1; i <= n; i++ {
			sb.WriteString(`<map species="s` + string(rune('a'+i)) + `" substrate="x"/>`)
		}
		sb.WriteString("</intracellular></PhysiCell_settings>")

		res, err := sbmltab.New().Generate(context.Background(), "inline", []byte(sb.String()))
		require.NoError(t, err)
		require.Len(t, res.Model.Entries, n)

		code := string(res.Code)
		last := -1
		for i := 1; i <= n; i++ {
			decl := "self.species" + strconv.Itoa(i) + " =  Text("
			idx := strings.Index(code, decl)
			require.GreaterOrEqual(t, idx, 0, decl)
			assert.Greater(t, idx, last, "declarations follow document order")
			last = idx
		}
		assert.Equal(t, n+1, strings.Count(code, "= Box(children=row"))
	}
}

func TestGenerateFile_FailuresWriteNothing(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "Malformed",
			content: "<model><intracellular>",
			check: func(t *testing.T, err error) {
				var perr *domain.ParseError
				assert.ErrorAs(t, err, &perr)
			},
		},
		{
			name:    "Duplicate Attribute",
			content: `<model><intracellular><map species="A" species="B" substrate="x"/></intracellular></model>`,
			check: func(t *testing.T, err error) {
				var perr *domain.ParseError
				assert.ErrorAs(t, err, &perr)
			},
		},
		{
			name:    "Unbound Prefix",
			content: `<model><intracellular><x:map species="A" substrate="x"/></intracellular></model>`,
			check: func(t *testing.T, err error) {
				var perr *domain.ParseError
				assert.ErrorAs(t, err, &perr)
			},
		},
		{
			name:    "No Entry Point",
			content: "<model/>",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrEntryPointNotFound)
			},
		},
		{
			name:    "Missing Attribute",
			content: `<model><intracellular><map species="A"/></intracellular></model>`,
			check: func(t *testing.T, err error) {
				var mae *domain.MissingAttributeError
				assert.ErrorAs(t, err, &mae)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, cfg := writeConfig(t, tt.content)
			out := filepath.Join(dir, "sbml_def.py")

			_, err := sbmltab.New().GenerateFile(context.Background(), cfg, out)
			require.Error(t, err)
			tt.check(t, err)

			_, statErr := os.Stat(out)
			assert.True(t, os.IsNotExist(statErr), "no output file expected")
		})
	}
}

func TestGenerateFile_MissingConfig(t *testing.T) {
	dir := t.TempDir()
	_, err := sbmltab.New().GenerateFile(context.Background(), filepath.Join(dir, "config.xml"), filepath.Join(dir, "out.py"))

	var mf *domain.MissingFileError
	assert.ErrorAs(t, err, &mf)
}

func TestGenerate_Metrics(t *testing.T) {
	c := metrics.New()
	gen := sbmltab.New(sbmltab.WithMetrics(c))

	_, err := gen.Generate(context.Background(), "ok", []byte(twoMaps))
	require.NoError(t, err)
	_, err = gen.Generate(context.Background(), "bad", []byte("<"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "m.prom")
	require.NoError(t, c.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sbmltab_map_entries_total 2")
	assert.Contains(t, string(data), `sbmltab_generations_total{result="error"} 1`)
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sbmltab.New().Generate(ctx, "x", []byte(twoMaps))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_Options(t *testing.T) {
	p := domain.Palette{Primary: "red", Secondary: "blue"}
	gen := sbmltab.New(sbmltab.WithPalette(p), sbmltab.WithFoldTagCase(true))

	model, err := gen.Model(context.Background(), "x", []byte(`<intracellular><Map species="A" substrate="x"/></intracellular>`))
	require.NoError(t, err)
	assert.Equal(t, p, model.Palette)
	assert.Len(t, model.Entries, 1)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(sbmltab.Version))
}
