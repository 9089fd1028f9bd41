package cli

import (
	"errors"

	"github.com/hbjs97/cswap/internal/config"
	"github.com/hbjs97/cswap/internal/prompt"
	"github.com/hbjs97/cswap/internal/store"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrRepositoryUnavailable는 저장소 디렉토리를 읽을 수 없을 때의 sentinel error다.
	ErrRepositoryUnavailable = store.ErrRepositoryUnavailable
	// ErrProfileNotFound는 프로필 백업이 없을 때의 sentinel error다.
	ErrProfileNotFound = store.ErrProfileNotFound
	// ErrProfileAlreadyExists는 같은 이름의 백업이 이미 있을 때의 sentinel error다.
	ErrProfileAlreadyExists = store.ErrProfileAlreadyExists
	// ErrPermissionDenied는 쓰기 권한이 없을 때의 sentinel error다.
	ErrPermissionDenied = store.ErrPermissionDenied
	// ErrNoActiveSession는 활성 쿠키 파일이 없을 때의 sentinel error다.
	ErrNoActiveSession = store.ErrNoActiveSession
	// ErrInvalidIdentifier는 프로필 이름이 규칙에 맞지 않을 때의 sentinel error다.
	ErrInvalidIdentifier = store.ErrInvalidIdentifier
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
	// ErrAborted는 대화형 입력이 취소됐을 때의 sentinel error다.
	ErrAborted = prompt.ErrAborted
)

// ErrInteractiveRequired는 인자 없이 실행했지만 대화형 입력을 쓸 수 없을 때 반환된다.
var ErrInteractiveRequired = errors.New("인자가 필요합니다")
