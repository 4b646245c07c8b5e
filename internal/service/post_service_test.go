package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
)

func TestBuildFileKeyShape(t *testing.T) {
	require.Regexp(t, `^\d+-[0-9a-f]{8}\.png$`, buildFileKey("capa.PNG"))
	require.Regexp(t, `^\d+-[0-9a-f]{8}$`, buildFileKey("noext"))

	// two keys for the same filename must not collide
	require.NotEqual(t, buildFileKey("a.jpg"), buildFileKey("a.jpg"))
}

func TestRenderMarkdown(t *testing.T) {
	svc := &PostService{md: goldmark.New()}

	html := svc.render("# Title\n\nsome *emphasis*")
	require.Contains(t, html, "<h1>Title</h1>")
	require.Contains(t, html, "<em>emphasis</em>")
}
