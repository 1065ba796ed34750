package neutronbirth

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubOpenFile(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := OpenFile
	OpenFile = fn
	t.Cleanup(func() { OpenFile = orig })
}

func TestDisplayOpensRenderedFile(t *testing.T) {
	var opened string
	stubOpenFile(t, func(path string) error {
		opened = path
		return nil
	})
	require.NoError(t, Display(fixedScene(t)))
	require.NotEmpty(t, opened)
	t.Cleanup(func() { _ = os.Remove(opened) })

	data, err := os.ReadFile(opened)
	require.NoError(t, err)
	assert.Contains(t, string(data), Title)
}

func TestDisplayFailure(t *testing.T) {
	var opened string
	stubOpenFile(t, func(path string) error {
		opened = path
		return errors.New("no display")
	})
	err := Display(fixedScene(t))
	if opened != "" {
		t.Cleanup(func() { _ = os.Remove(opened) })
	}
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDisplay))
}
