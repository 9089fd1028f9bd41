package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/cswap/internal/store"
)

// StoreDirCandidates는 쿠키 저장소가 있을 수 있는 경로 목록을 우선순위 순으로 반환한다.
// flatpak 설치를 먼저 보고, 다음으로 XDG 데이터 디렉토리를 본다.
func StoreDirCandidates(home string) []string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}
	return []string{
		filepath.Join(home, strings.TrimPrefix(DefaultStoreDir, "~/")),
		filepath.Join(dataHome, DefaultAppProcess),
	}
}

// DetectStoreDir는 후보 경로 중 활성 쿠키 파일이나 백업이 있는 첫 디렉토리를 찾는다.
// 찾지 못하면 false를 반환한다.
func DetectStoreDir(home string) (string, bool) {
	for _, dir := range StoreDirCandidates(home) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.Type().IsRegular() && store.Tracks(e.Name()) {
				return dir, true
			}
		}
	}
	return "", false
}
