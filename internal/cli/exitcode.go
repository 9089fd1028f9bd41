package cli

import (
	"errors"
)

// ExitCode는 cswap의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다 (입출력 실패 포함).
	ExitGeneral ExitCode = 1
	// ExitUnavailable는 저장소 디렉토리 접근 불가다.
	ExitUnavailable ExitCode = 2
	// ExitNotFound는 프로필 없음이다. 목록을 다시 확인해야 한다.
	ExitNotFound ExitCode = 3
	// ExitExists는 같은 이름의 프로필이 이미 있음이다.
	ExitExists ExitCode = 4
	// ExitPermission는 권한 없음이다.
	ExitPermission ExitCode = 5
	// ExitNoSession는 활성 세션 없음이다.
	ExitNoSession ExitCode = 6
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 7
	// ExitUsage는 잘못된 인자 또는 취소된 입력이다.
	ExitUsage ExitCode = 64
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrRepositoryUnavailable):
		return ExitUnavailable
	case errors.Is(err, ErrProfileNotFound):
		return ExitNotFound
	case errors.Is(err, ErrProfileAlreadyExists):
		return ExitExists
	case errors.Is(err, ErrPermissionDenied):
		return ExitPermission
	case errors.Is(err, ErrNoActiveSession):
		return ExitNoSession
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidIdentifier), errors.Is(err, ErrAborted), errors.Is(err, ErrInteractiveRequired):
		return ExitUsage
	default:
		return ExitGeneral
	}
}
