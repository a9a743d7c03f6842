package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreservesServiceOrder(t *testing.T) {
	doc, err := Parse(`
services:
  zeta:
    image: nginx:alpine
  alpha:
    image: redis:7
  mid:
    image: httpd:2
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, doc.ServiceNames())
}

func TestParseServiceSpecForms(t *testing.T) {
	doc, err := Parse(`
services:
  api:
    image: ghcr.io/acme/api:1.2
    build:
      context: ./api
      dockerfile: Dockerfile.prod
    command: ["node", "server.js"]
    environment:
      PORT: 3000
    ports:
      - 8080:3000
      - 9090
    volumes:
      - data:/var/lib/api
    depends_on:
      db:
        condition: service_healthy
  worker:
    build: ./worker
    command: npm run work
    environment:
      - QUEUE=jobs
    depends_on:
      - api
`)
	require.NoError(t, err)

	api, ok := doc.FindService("api")
	require.True(t, ok)
	assert.Equal(t, "ghcr.io/acme/api:1.2", api.Spec.Image)
	require.NotNil(t, api.Spec.Build)
	assert.Equal(t, "./api", api.Spec.Build.Context)
	assert.Equal(t, "Dockerfile.prod", api.Spec.Build.Dockerfile)
	assert.True(t, api.Spec.Command.IsSet())
	assert.Equal(t, "node server.js", api.Spec.Command.String())
	assert.Equal(t, []Token{{Text: "8080:3000", Scalar: true}, {Text: "9090", Scalar: true}}, api.Spec.Ports)
	assert.Equal(t, DependsOn{"db"}, api.Spec.DependsOn)

	worker, ok := doc.FindService("worker")
	require.True(t, ok)
	require.NotNil(t, worker.Spec.Build)
	assert.Equal(t, "./worker", worker.Spec.Build.Context)
	assert.Equal(t, "npm run work", worker.Spec.Command.String())
	assert.Equal(t, DependsOn{"api"}, worker.Spec.DependsOn)
}

func TestParseLongSyntaxPortsAndVolumes(t *testing.T) {
	doc, err := Parse(`
services:
  web:
    image: nginx:alpine
    ports:
      - target: 80
        published: 8080
    volumes:
      - type: volume
        source: data
        target: /srv/data
`)
	require.NoError(t, err)

	web, ok := doc.FindService("web")
	require.True(t, ok)

	require.Len(t, web.Spec.Ports, 1)
	assert.False(t, web.Spec.Ports[0].Scalar)
	assert.Contains(t, web.Spec.Ports[0].Text, "target: 80")

	require.Len(t, web.Spec.Volumes, 1)
	assert.False(t, web.Spec.Volumes[0].Scalar)
	assert.Contains(t, web.Spec.Volumes[0].Text, "source: data")

	_, ok = FirstPortBinding(web.Spec)
	assert.False(t, ok)
}

func TestParseTopLevelBlocks(t *testing.T) {
	doc, err := Parse(`
services:
  web:
    image: nginx:alpine
volumes:
  data:
networks:
  backend:
`)
	require.NoError(t, err)
	assert.True(t, doc.HasVolumesBlock)
	assert.True(t, doc.HasNetworks)
}

func TestParseEmptyDocument(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no services key", "version: '3'\n"},
		{"empty services", "services: {}\n"},
		{"empty text", ""},
		{"services not a mapping", "services:\n  - web\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)
			assert.True(t, IsEmptyDocumentError(err), "expected empty document error, got %v", err)
		})
	}
}

func TestParseMalformedSyntax(t *testing.T) {
	_, err := Parse("services:\n  web:\n   image: [unclosed\n")
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestParseTopLevelNotMapping(t *testing.T) {
	_, err := Parse("- just\n- a\n- list\n")
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}
