// Package swap은 프로필 활성화 요청을 저장소에 대해 원자적으로 수행한다.
//
// 순서는 항상 같다: 백업과 활성 파일 권한 재확인 → 같은 디렉토리의 임시 파일로 복사 → 활성 파일 위치로
// rename → 실패 시 임시 파일 정리. 이전 활성 파일은 rename이 성공하기 전까지 건드리지 않는다.
// Switcher는 호출 사이에 상태를 갖지 않는다.
package swap

import (
	"fmt"

	"github.com/hbjs97/cswap/internal/logging"
	"github.com/hbjs97/cswap/internal/store"
)

var log = logging.GetLogger("swap")

// Repository는 Switcher가 사용하는 저장소 기능이다. *store.Repository가 구현한다.
type Repository interface {
	Stat(p store.Profile) error
	ActiveWritable() error
	Stage(p store.Profile) (*store.Staged, error)
	Commit(s *store.Staged) error
	Discard(s *store.Staged) error
}

var _ Repository = (*store.Repository)(nil)

// Switcher는 활성 파일 교체를 조율한다.
type Switcher struct {
	repo Repository
}

// New는 repo 위에서 동작하는 Switcher를 생성한다.
func New(repo Repository) *Switcher {
	return &Switcher{repo: repo}
}

// Activate는 활성 파일을 프로필 p의 백업 내용으로 교체한다.
// 이미 활성인 프로필도 복사와 rename을 다시 수행한다.
func (s *Switcher) Activate(p store.Profile) error {
	// 목록 이후 백업이 사라졌을 수 있다. 외부 수정과의 경쟁을 줄일 뿐 없애지는 못한다.
	if err := s.repo.Stat(p); err != nil {
		return fmt.Errorf("swap.Activate: %w", err)
	}

	// rename은 읽기 전용 활성 파일도 교체하므로 쓰기 권한을 먼저 확인한다.
	if err := s.repo.ActiveWritable(); err != nil {
		return fmt.Errorf("swap.Activate: %w", err)
	}

	staged, err := s.repo.Stage(p)
	if err != nil {
		return fmt.Errorf("swap.Activate: %w", err)
	}

	if err := s.repo.Commit(staged); err != nil {
		if discardErr := s.repo.Discard(staged); discardErr != nil {
			log.Warn("임시 파일 정리 실패", "path", staged.Path(), "err", discardErr)
		}
		return fmt.Errorf("swap.Activate: %w", err)
	}

	log.Info("프로필 활성화", "profile", p.ID, "bytes", staged.Size())
	return nil
}
