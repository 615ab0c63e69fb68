package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViews(t *testing.T) {
	views := Views()

	for _, name := range []string{"/index.html", "/error.html", "/layouts/main.html", "/partials/charts.html"} {
		f, err := views.Open(name)
		require.NoError(t, err, name)
		require.NoError(t, f.Close())
	}
}

func TestStatic(t *testing.T) {
	data, err := fs.ReadFile(Static(), "app.css")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
