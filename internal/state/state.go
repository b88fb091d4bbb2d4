package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/gennyble/rnprefix/internal/fs"
	"github.com/gennyble/rnprefix/model"
)

const (
	stateDirName  = ".rnprefix"
	stateFileName = "state.json"

	ActionRename = "rename"
)

// Operation is a single journaled move.
type Operation struct {
	Action string `json:"action"`
	Path   string `json:"path"`
	// NewPath is where the file was moved to.
	NewPath string `json:"new_path"`
	// ContentHash is the SHA256 of the file right after the move. Undo and
	// redo refuse to touch a file whose content changed since.
	ContentHash string `json:"content_hash"`
}

// HistoryEntry is one accepted prefix and the moves it caused.
type HistoryEntry struct {
	Timestamp  int64       `json:"timestamp"`
	Prefix     string      `json:"prefix"`
	Operations []Operation `json:"operations"`
}

// State is the whole journal file.
type State struct {
	History      []HistoryEntry `json:"history"`
	CurrentIndex int            `json:"current_index"`
}

// Manager handles the lifecycle of the journal file.
type Manager struct {
	fsys      afero.Fs
	statePath string
	state     *State
	StateDir  string
}

// New loads the journal kept under rootDir. A missing or unreadable journal
// starts an empty history; nothing is written until Write is called.
func New(fsys afero.Fs, rootDir string) (*Manager, error) {
	if rootDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("could not get current working directory: %w", err)
		}
		rootDir = wd
	}

	stateDir := filepath.Join(rootDir, stateDirName)
	m := &Manager{
		fsys:      fsys,
		statePath: filepath.Join(stateDir, stateFileName),
		StateDir:  stateDir,
	}
	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

func emptyState() *State {
	return &State{CurrentIndex: -1, History: []HistoryEntry{}}
}

func (m *Manager) load() error {
	data, err := afero.ReadFile(m.fsys, m.statePath)
	if err != nil {
		if os.IsNotExist(err) {
			m.state = emptyState()
			return nil
		}
		return fmt.Errorf("could not read journal %s: %w", m.statePath, err)
	}

	st := emptyState()
	if err := json.Unmarshal(data, st); err != nil {
		return fmt.Errorf("invalid journal %s: %w", m.statePath, err)
	}
	if st.CurrentIndex < -1 || st.CurrentIndex >= len(st.History) {
		return fmt.Errorf("invalid journal %s: current index %d out of range", m.statePath, st.CurrentIndex)
	}
	m.state = st
	return nil
}

func (m *Manager) save() error {
	if err := m.fsys.MkdirAll(m.StateDir, 0755); err != nil {
		return fmt.Errorf("could not create journal directory: %w", err)
	}
	data, err := json.MarshalIndent(m.state, "", "  ")
	if err != nil {
		return err
	}
	if err := afero.WriteFile(m.fsys, m.statePath, data, 0644); err != nil {
		return fmt.Errorf("could not write journal: %w", err)
	}
	return nil
}

// Write appends a batch of moves, discarding anything that had been undone.
func (m *Manager) Write(prefix string, operations []Operation) error {
	if len(operations) == 0 {
		return nil
	}
	if m.state.CurrentIndex < len(m.state.History)-1 {
		m.state.History = m.state.History[:m.state.CurrentIndex+1]
	}

	m.state.History = append(m.state.History, HistoryEntry{
		Timestamp:  time.Now().UTC().Unix(),
		Prefix:     prefix,
		Operations: operations,
	})
	m.state.CurrentIndex++
	return m.save()
}

// GetOperationsToUndo returns the latest batch and moves the history pointer
// back past it.
func (m *Manager) GetOperationsToUndo() ([]Operation, error) {
	if m.state.CurrentIndex < 0 {
		return nil, nil
	}
	ops := m.state.History[m.state.CurrentIndex].Operations
	m.state.CurrentIndex--
	return ops, m.save()
}

// GetOperationsToRedo returns the batch after the history pointer and moves
// the pointer onto it.
func (m *Manager) GetOperationsToRedo() ([]Operation, error) {
	nextIndex := m.state.CurrentIndex + 1
	if nextIndex >= len(m.state.History) {
		return nil, nil
	}
	m.state.CurrentIndex = nextIndex
	return m.state.History[nextIndex].Operations, m.save()
}

// History returns the journaled batches, oldest first.
func (m *Manager) History() []HistoryEntry {
	return m.state.History
}

// CreateOperations turns successful moves into journal operations. Paths are
// made absolute so undo works from any directory.
func (m *Manager) CreateOperations(moved []model.FileRename) []Operation {
	ops := make([]Operation, 0, len(moved))
	for _, r := range moved {
		hash, err := fs.GetFileSHA256(m.fsys, r.NewPath)
		if err != nil {
			// An empty hash never matches, so undo will report this file.
			hash = ""
		}
		ops = append(ops, Operation{
			Action:      ActionRename,
			Path:        absolute(r.OldPath),
			NewPath:     absolute(r.NewPath),
			ContentHash: hash,
		})
	}
	return ops
}

func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
