package osutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockPathProvider is a PathProvider whose calls can be overridden per test.
type MockPathProvider struct {
	UserConfigDirFn func() (string, error)
	MkdirAllFn      func(path string, perm os.FileMode) error
	WriteFileFn     func(name string, data []byte, perm os.FileMode) error
}

func (m *MockPathProvider) UserConfigDir() (string, error) {
	if m.UserConfigDirFn != nil {
		return m.UserConfigDirFn()
	}
	return "", nil
}

func (m *MockPathProvider) MkdirAll(path string, perm os.FileMode) error {
	if m.MkdirAllFn != nil {
		return m.MkdirAllFn(path, perm)
	}
	return nil
}

func (m *MockPathProvider) WriteFile(name string, data []byte, perm os.FileMode) error {
	if m.WriteFileFn != nil {
		return m.WriteFileFn(name, data, perm)
	}
	return nil
}

func TestDefaultPathProvider_MkdirAllAndWriteFile(t *testing.T) {
	p := DefaultPathProvider{}
	dir := filepath.Join(t.TempDir(), "calrange", "nested")

	require.NoError(t, p.MkdirAll(dir, 0755))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	file := filepath.Join(dir, "config.toml")
	require.NoError(t, p.WriteFile(file, []byte("timezone = \"UTC\"\n"), 0644))
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "timezone = \"UTC\"\n", string(data))
}

func TestSetAndResetProvider(t *testing.T) {
	original := Provider
	defer func() { Provider = original }()

	mock := &MockPathProvider{
		UserConfigDirFn: func() (string, error) { return "/mock/config", nil },
	}
	SetProvider(mock)
	assert.Same(t, mock, Provider)

	dir, err := Provider.UserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/mock/config", dir)

	ResetProvider()
	_, ok := Provider.(DefaultPathProvider)
	assert.True(t, ok)
}

func TestMockPathProvider_Errors(t *testing.T) {
	boom := errors.New("mock error")
	mock := &MockPathProvider{
		UserConfigDirFn: func() (string, error) { return "", boom },
		MkdirAllFn:      func(string, os.FileMode) error { return boom },
		WriteFileFn:     func(string, []byte, os.FileMode) error { return boom },
	}

	_, err := mock.UserConfigDir()
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, mock.MkdirAll("/x", 0755), boom)
	assert.ErrorIs(t, mock.WriteFile("/x", nil, 0644), boom)
}
