package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tplforge/tplforge/internal/classify"
	"github.com/tplforge/tplforge/internal/compose"
)

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"web", "web"},
		{"my-db", "myDb"},
		{"my_worker_2", "myWorker2"},
		{"API.gateway", "apiGateway"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CamelCase(tt.in), "CamelCase(%q)", tt.in)
	}
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "My Db", TitleWords("my-db"))
	assert.Equal(t, "Web", TitleWords("web"))
	assert.Equal(t, "Api Gateway", TitleWords("api_gateway"))
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, "myDbServiceName", ServiceNameField("my-db"))
	assert.Equal(t, "webServiceImage", ServiceImageField("web"))
	assert.Equal(t, "web_DB_HOST", EnvField("web", "DB_HOST"))
}

func TestAddFirstWriterWins(t *testing.T) {
	s := New()
	first := "one"
	second := "two"

	assert.True(t, s.Add("field", true, Field{Type: "string", Default: &first}))
	assert.False(t, s.Add("field", false, Field{Type: "string", Default: &second}))

	f, ok := s.Field("field")
	require.True(t, ok)
	assert.Equal(t, &first, f.Default)
	assert.Equal(t, []string{"field"}, s.Required())
}

func TestSynthesize(t *testing.T) {
	doc, err := compose.Parse(`
services:
  web:
    image: nginx:alpine
    environment:
      DB_HOST: db
  db:
    image: postgres:16
`)
	require.NoError(t, err)

	s := Synthesize(doc, classify.Partition(doc))

	assert.Equal(t, []string{
		"projectName",
		"dbServiceName",
		"dbServiceImage",
		"webServiceName",
		"webServiceImage",
		"web_DB_HOST",
	}, s.Names())

	assert.Equal(t, []string{
		"projectName",
		"dbServiceName",
		"dbServiceImage",
		"webServiceName",
		"webServiceImage",
	}, s.Required())

	name, ok := s.Field("webServiceName")
	require.True(t, ok)
	require.NotNil(t, name.Default)
	assert.Equal(t, "web", *name.Default)
	assert.Equal(t, "Web Service Name", name.Title)

	image, ok := s.Field("webServiceImage")
	require.True(t, ok)
	require.NotNil(t, image.Default)
	assert.Equal(t, "nginx:alpine", *image.Default)

	env, ok := s.Field("web_DB_HOST")
	require.True(t, ok)
	assert.Equal(t, "web: DB_HOST", env.Title)
	require.NotNil(t, env.Default)
	assert.Equal(t, "db", *env.Default)
}

func TestSynthesizeSkipsImageFieldForBuildOnlyService(t *testing.T) {
	doc, err := compose.Parse(`
services:
  worker:
    build: ./worker
`)
	require.NoError(t, err)

	s := Synthesize(doc, classify.Partition(doc))
	assert.True(t, s.Has("workerServiceName"))
	assert.False(t, s.Has("workerServiceImage"))
}

func TestMarshalYAMLKeepsInsertionOrder(t *testing.T) {
	s := New()
	s.Add("projectName", true, Field{Type: "string", Title: "Project Name"})
	def := "web"
	s.Add("webServiceName", true, Field{Type: "string", Title: "Web Service Name", Default: &def})
	s.Add("web_PORT", false, Field{Type: "string", Title: "web: PORT"})

	out, err := yaml.Marshal(s)
	require.NoError(t, err)

	var decoded struct {
		Type       string   `yaml:"type"`
		Required   []string `yaml:"required"`
		Properties yaml.Node `yaml:"properties"`
	}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "object", decoded.Type)
	assert.Equal(t, []string{"projectName", "webServiceName"}, decoded.Required)

	var keys []string
	for i := 0; i+1 < len(decoded.Properties.Content); i += 2 {
		keys = append(keys, decoded.Properties.Content[i].Value)
	}
	assert.Equal(t, []string{"projectName", "webServiceName", "web_PORT"}, keys)
}
