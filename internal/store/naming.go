package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// 외부 애플리케이션과의 호환을 위해 파일 이름 규칙은 바이트 단위로 고정이다.
const (
	// ActiveName은 애플리케이션이 읽는 활성 쿠키 파일 이름이다.
	ActiveName = "cookies"
	// BackupPrefix는 프로필 백업 파일 이름의 접두사다.
	BackupPrefix = ActiveName + "_"

	txtSuffix   = ".txt"
	stagePrefix = "." + ActiveName + "."
	stageSuffix = ".swap"
)

// ValidateID는 식별자가 백업 파일 이름으로 안전하게 쓰일 수 있는지 검사한다.
func ValidateID(id string) error {
	switch {
	case id == "":
		return fmt.Errorf("%w: 빈 식별자", ErrInvalidIdentifier)
	case strings.HasPrefix(id, "."):
		return fmt.Errorf("%w: %q (숨김 파일 이름)", ErrInvalidIdentifier, id)
	case strings.ContainsAny(id, "/\\\x00"):
		return fmt.Errorf("%w: %q (경로 구분자 포함)", ErrInvalidIdentifier, id)
	}
	return nil
}

// parseBackupName은 디렉토리 항목 이름에서 프로필 식별자를 추출한다.
// 식별자는 첫 번째 접두사 이후의 문자열 전체다.
func parseBackupName(name string, trimTxt bool) (string, bool) {
	if strings.HasPrefix(name, ".") {
		return "", false
	}
	id, ok := strings.CutPrefix(name, BackupPrefix)
	if !ok {
		return "", false
	}
	if trimTxt {
		if base, ok := strings.CutSuffix(id, txtSuffix); ok {
			id = base
		} else if strings.Contains(id, ".") {
			return "", false
		}
	}
	if ValidateID(id) != nil {
		return "", false
	}
	return id, true
}

// backupName은 식별자에 해당하는 백업 파일 이름을 만든다.
func backupName(id string, trimTxt bool) string {
	if trimTxt {
		return BackupPrefix + id + txtSuffix
	}
	return BackupPrefix + id
}

// stageName은 swap 중간 단계용 임시 파일 이름을 만든다. 숨김 파일이라 목록에 나타나지 않는다.
func stageName() string {
	return stagePrefix + uuid.NewString() + stageSuffix
}

func isStageName(name string) bool {
	return strings.HasPrefix(name, stagePrefix) && strings.HasSuffix(name, stageSuffix)
}

// Tracks는 경로가 활성 파일이나 백업 파일 이름 규칙에 해당하는지 알려준다.
// 임시 파일 같은 숨김 파일은 해당하지 않는다.
func Tracks(path string) bool {
	name := filepath.Base(path)
	return name == ActiveName || strings.HasPrefix(name, BackupPrefix)
}
