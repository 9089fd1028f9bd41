// Package history는 프로필 활성화 기록을 JSON 파일로 보관한다.
// 기록은 표시용이며 swap 동작에는 관여하지 않는다.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// History는 활성화 기록 파일의 최상위 구조체다.
type History struct {
	Version int     `json:"version"`
	Entries []Entry `json:"entries"`
}

// Entry는 하나의 활성화 기록이다.
type Entry struct {
	Profile     string `json:"profile"`
	Action      string `json:"action"`
	At          string `json:"at"`
	Fingerprint string `json:"fingerprint"`
}

const (
	// ActionActivate는 프로필 활성화 기록이다.
	ActionActivate = "activate"
	// ActionCapture는 현재 세션 저장 기록이다.
	ActionCapture = "capture"
)

// New는 빈 기록을 생성한다.
func New() *History {
	return &History{Version: 1}
}

// Load는 기록 파일을 파싱한다. 파일 없음/파싱 실패 시 빈 기록 반환 (graceful).
func Load(path string) (*History, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("history.Load: %w", err)
	}
	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return New(), nil
	}
	return &h, nil
}

// Append는 기록을 추가하고 limit개를 넘는 오래된 기록을 버린다. limit이 0 이하면 자르지 않는다.
func (h *History) Append(e Entry, limit int) {
	if e.At == "" {
		e.At = time.Now().UTC().Format(time.RFC3339)
	}
	h.Entries = append(h.Entries, e)
	if limit > 0 && len(h.Entries) > limit {
		h.Entries = h.Entries[len(h.Entries)-limit:]
	}
}

// Last는 주어진 action의 가장 최근 기록을 반환한다. action이 비어 있으면 종류를 가리지 않는다.
func (h *History) Last(action string) (*Entry, bool) {
	for i := len(h.Entries) - 1; i >= 0; i-- {
		e := h.Entries[i]
		if action == "" || e.Action == action {
			return &e, true
		}
	}
	return nil, false
}

// Time은 기록 시각을 파싱한다.
func (e Entry) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, e.At)
}

// Save는 기록을 JSON 파일로 저장한다 (0600 권한).
func (h *History) Save(path string) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("history.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("history.Save: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
