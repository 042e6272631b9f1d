package update

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

type screenState struct {
	LastScreen     Screen `json:"last_screen"`
	SelectedItemID string `json:"selected_item_id"`
	UIDensity      int    `json:"ui_density"`
}

func (m *Model) persistScreenState() error {
	if strings.TrimSpace(m.stateFilePath) == "" {
		return nil
	}
	dir := filepath.Dir(m.stateFilePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := json.MarshalIndent(screenState{
		LastScreen:     m.CurrentScreen,
		SelectedItemID: m.SelectedItemID,
		UIDensity:      m.uiDensity,
	}, "", "  ")
	if err != nil {
		return err
	}
	tmp := m.stateFilePath + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, m.stateFilePath)
}

func loadScreenState(path string) (screenState, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return screenState{}, nil
	}
	raw, err := os.ReadFile(trimmed)
	if err != nil {
		if os.IsNotExist(err) {
			return screenState{}, nil
		}
		return screenState{}, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return screenState{}, nil
	}
	var state screenState
	if err := json.Unmarshal(raw, &state); err != nil {
		return screenState{}, err
	}
	return state, nil
}
