package build

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"balde-template-gen/internal/diagnostic"
	"balde-template-gen/internal/gen"
)

const indexTemplate = `{% include "helpers.h" %}<h1>{{ title }}</h1>
<p>{{ greet("world", 3) }} 100%</p>
`

func newTestBuilder() *Builder {
	return NewBuilder(gen.NewGenerator(gen.DefaultGeneratorConfig()), nil)
}

func writeTemplate(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestArtifactFor(t *testing.T) {
	tests := []struct {
		path     string
		expected Artifact
		wantErr  bool
	}{
		{"index.c", ArtifactImplementation, false},
		{"views/index.c", ArtifactImplementation, false},
		{"index.h", ArtifactDeclaration, false},
		{"index.html", 0, true},
		{"index.cc", 0, true},
		{"index", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ArtifactFor(tt.path)
			if tt.wantErr {
				require.Error(t, err)

				kind, ok := diagnostic.KindOf(err)
				require.True(t, ok)
				assert.Equal(t, diagnostic.KindExtension, kind)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	assert.Equal(t, "implementation", ArtifactImplementation.String())
	assert.Equal(t, "declaration", ArtifactDeclaration.String())
}

func TestBuilder_Build_Implementation(t *testing.T) {
	dir := t.TempDir()
	tmpl := writeTemplate(t, dir, "index.html", indexTemplate)
	out := filepath.Join(dir, "gen", "index.c")

	require.NoError(t, newTestBuilder().Build(context.Background(), Job{Template: tmpl, Output: out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "#include <glib.h>\n#include <helpers.h>\n\n")
	assert.Contains(t, content,
		`static const gchar *balde_template_index_format = "<h1>%s</h1>\n<p>%s 100%%</p>\n";`)
	assert.Contains(t, content, "        balde_response_get_tmpl_var(response, \"title\"),\n"+
		"        greet(\n"+
		"            \"world\",\n"+
		"            3));\n")
}

func TestBuilder_Build_Declaration(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "index.h")

	// The declaration never reads the template.
	job := Job{Template: filepath.Join(dir, "missing.html"), Output: out}
	require.NoError(t, newTestBuilder().Build(context.Background(), job))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#ifndef __index_balde_template")
	assert.Contains(t, string(data), "extern void balde_template_index(balde_response_t *response);")
}

func TestBuilder_Build_Reproducible(t *testing.T) {
	dir := t.TempDir()
	tmpl := writeTemplate(t, dir, "page.html", indexTemplate)
	out := filepath.Join(dir, "page.c")

	b := newTestBuilder()
	require.NoError(t, b.Build(context.Background(), Job{Template: tmpl, Output: out}))
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	require.NoError(t, b.Build(context.Background(), Job{Template: tmpl, Output: out}))
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuilder_Build_Errors(t *testing.T) {
	dir := t.TempDir()
	good := writeTemplate(t, dir, "good.html", "ok")
	bad := writeTemplate(t, dir, "bad.html", "{{ oops ")
	blocker := writeTemplate(t, dir, "blocker", "")

	tests := []struct {
		name string
		job  Job
		kind diagnostic.Kind
	}{
		{"extension", Job{Template: good, Output: filepath.Join(dir, "out.txt")}, diagnostic.KindExtension},
		{"missing template", Job{Template: filepath.Join(dir, "nope.html"), Output: filepath.Join(dir, "out.c")}, diagnostic.KindIO},
		{"syntax", Job{Template: bad, Output: filepath.Join(dir, "bad.c")}, diagnostic.KindSyntax},
		{"unwritable", Job{Template: good, Output: filepath.Join(blocker, "out.c")}, diagnostic.KindIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestBuilder().Build(context.Background(), tt.job)
			require.Error(t, err)

			kind, ok := diagnostic.KindOf(err)
			require.True(t, ok, err.Error())
			assert.Equal(t, tt.kind, kind, err.Error())
		})
	}
}

func TestBuilder_Build_RejectsInvalidLiterals(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"include escape", `{% include "a\q.h" %}`},
		{"multiline string argument", "{{ f(\"a\nb\") }}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := writeTemplate(t, dir, "page.html", tt.content)
			out := filepath.Join(dir, "page.c")

			err := newTestBuilder().Build(context.Background(), Job{Template: tmpl, Output: out})
			require.Error(t, err)

			kind, _ := diagnostic.KindOf(err)
			assert.Equal(t, diagnostic.KindSyntax, kind)
			assert.Contains(t, err.Error(), tmpl+":1:")

			_, statErr := os.Stat(out)
			assert.ErrorIs(t, statErr, os.ErrNotExist)
		})
	}
}

func TestBuilder_Build_ExtensionCheckedFirst(t *testing.T) {
	// An unreadable template with a bad extension reports the extension.
	err := newTestBuilder().Build(context.Background(), Job{Template: "/does/not/exist", Output: "out.txt"})

	kind, ok := diagnostic.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, diagnostic.KindExtension, kind)
}

func TestBuilder_Build_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestBuilder().Build(ctx, Job{Template: "a.html", Output: filepath.Join(t.TempDir(), "a.h")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuilder_BuildAll(t *testing.T) {
	dir := t.TempDir()

	var jobs []Job

	for _, name := range []string{"one", "two", "three", "four"} {
		tmpl := writeTemplate(t, dir, name+".html", "<p>{{ "+name+" }}</p>")
		jobs = append(jobs,
			Job{Template: tmpl, Output: filepath.Join(dir, "out", name+".c")},
			Job{Template: tmpl, Output: filepath.Join(dir, "out", name+".h")},
		)
	}

	require.NoError(t, newTestBuilder().BuildAll(context.Background(), jobs, 3))

	for _, job := range jobs {
		data, err := os.ReadFile(job.Output)
		require.NoError(t, err)
		assert.Contains(t, string(data), "balde_template_"+gen.DeriveIdentifier(job.Output))
	}
}

func TestBuilder_BuildAll_CollectsFailures(t *testing.T) {
	dir := t.TempDir()
	tmpl := writeTemplate(t, dir, "ok.html", "ok")

	jobs := []Job{
		{Template: tmpl, Output: filepath.Join(dir, "bad1.txt")},
		{Template: tmpl, Output: filepath.Join(dir, "ok.c")},
		{Template: filepath.Join(dir, "missing.html"), Output: filepath.Join(dir, "missing.c")},
	}

	err := newTestBuilder().BuildAll(context.Background(), jobs, 0)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "invalid filename")
	assert.Contains(t, msg, "failed to read source file")
	assert.Less(t, strings.Index(msg, "bad1.txt"), strings.Index(msg, "missing.html"))

	_, statErr := os.Stat(filepath.Join(dir, "ok.c"))
	assert.NoError(t, statErr)
}
