package tui

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crxtools/go-crx/internal/config"
	"github.com/crxtools/go-crx/internal/types"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// writeContainer drops a minimal version 2 container (empty key and
// signature, payload immediately after the header) into dir
func writeContainer(t *testing.T, dir, stem string, payload []byte) string {
	t.Helper()
	data := make([]byte, 16+len(payload))
	copy(data[0:4], types.CrxMagic[:])
	binary.LittleEndian.PutUint32(data[4:8], 2)
	copy(data[16:], payload)

	path := filepath.Join(dir, stem+".crx")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")
	return cfg
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestBrowserNavigationWraps(t *testing.T) {
	dir := t.TempDir()
	writeContainer(t, dir, "aaa", []byte("a"))
	writeContainer(t, dir, "bbb", []byte("b"))
	writeContainer(t, dir, "ccc", []byte("c"))

	m := NewModel(dir, testConfig(t))
	require.Equal(t, stateBrowser, m.state)
	require.Len(t, m.files, 3)
	assert.Equal(t, 0, m.cursor)

	m, _ = update(t, m, keyMsg('j'))
	m, _ = update(t, m, keyMsg('j'))
	assert.Equal(t, 2, m.cursor)

	m, _ = update(t, m, keyMsg('j'))
	assert.Equal(t, 0, m.cursor, "down from the last entry wraps to the first")

	m, _ = update(t, m, keyMsg('k'))
	assert.Equal(t, 2, m.cursor, "up from the first entry wraps to the last")
}

func TestRefreshPicksUpNewFiles(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(dir, testConfig(t))
	require.Empty(t, m.files)

	writeContainer(t, dir, "fresh", []byte("x"))
	m, _ = update(t, m, keyMsg('r'))
	assert.Len(t, m.files, 1)
}

func TestConvertWithNoFilesStaysInBrowser(t *testing.T) {
	m := NewModel(t.TempDir(), testConfig(t))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateBrowser, m.state)
	assert.Nil(t, cmd)
}

func TestConvertFlow(t *testing.T) {
	dir := t.TempDir()
	writeContainer(t, dir, "demo", []byte("zip-bytes"))

	cfg := testConfig(t)
	m := NewModel(dir, cfg)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, stateProcessing, m.state)
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(convertDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	m, _ = update(t, m, done)
	assert.Equal(t, stateSuccess, m.state)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "demo.zip"), m.output)

	got, err := os.ReadFile(m.output)
	require.NoError(t, err)
	assert.Equal(t, "zip-bytes", string(got))
}

func TestConvertFailureShowsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.crx")
	require.NoError(t, os.WriteFile(path, []byte("not a container"), 0o644))

	m := NewModel(dir, testConfig(t))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, stateError, m.state)
	assert.Error(t, m.err)
}

func TestBackReturnsToBrowser(t *testing.T) {
	dir := t.TempDir()
	writeContainer(t, dir, "demo", []byte("z"))

	m := NewModel(dir, testConfig(t))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())
	require.Equal(t, stateSuccess, m.state)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, stateBrowser, m.state)
	assert.Nil(t, m.err)
	assert.Empty(t, m.output)
}

func TestQuitFromBrowser(t *testing.T) {
	m := NewModel(t.TempDir(), testConfig(t))

	_, cmd := update(t, m, keyMsg('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestProcessingIgnoresQuit(t *testing.T) {
	dir := t.TempDir()
	writeContainer(t, dir, "demo", []byte("z"))

	m := NewModel(dir, testConfig(t))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, stateProcessing, m.state)

	m, cmd := update(t, m, keyMsg('q'))
	assert.Equal(t, stateProcessing, m.state)
	assert.Nil(t, cmd)
}

func TestViewRendersStates(t *testing.T) {
	dir := t.TempDir()
	writeContainer(t, dir, "demo", []byte("z"))

	m := NewModel(dir, testConfig(t))
	assert.Contains(t, m.View(), "demo.crx")

	m.state = stateError
	m.err = os.ErrNotExist
	assert.Contains(t, m.View(), "Conversion failed")
}
