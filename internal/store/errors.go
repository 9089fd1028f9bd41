package store

import (
	"errors"
	"io/fs"
)

var (
	// ErrRepositoryUnavailable는 저장소 디렉토리가 없거나 읽을 수 없을 때 반환된다.
	ErrRepositoryUnavailable = errors.New("쿠키 저장소를 사용할 수 없습니다")
	// ErrProfileNotFound는 프로필 백업 파일이 없을 때 반환된다. 목록을 다시 읽어야 한다.
	ErrProfileNotFound = errors.New("프로필을 찾을 수 없습니다")
	// ErrProfileAlreadyExists는 같은 식별자의 백업이 이미 있을 때 반환된다.
	ErrProfileAlreadyExists = errors.New("프로필이 이미 존재합니다")
	// ErrPermissionDenied는 저장소나 대상 파일에 쓸 권한이 없을 때 반환된다.
	ErrPermissionDenied = errors.New("권한이 없습니다")
	// ErrIOFailure는 그 밖의 읽기/쓰기/이름 변경 실패다.
	ErrIOFailure = errors.New("파일 입출력 실패")
	// ErrNoActiveSession는 활성 쿠키 파일이 없을 때 반환된다.
	ErrNoActiveSession = errors.New("활성 세션이 없습니다")
	// ErrInvalidIdentifier는 파일 이름 규칙에 맞지 않는 식별자다.
	ErrInvalidIdentifier = errors.New("잘못된 프로필 식별자")
)

// classify는 OS 에러를 권한 에러와 일반 입출력 에러로 나눈다.
func classify(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return ErrPermissionDenied
	}
	return ErrIOFailure
}
