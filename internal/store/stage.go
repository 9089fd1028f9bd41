package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Staged는 활성 파일 교체를 기다리는 임시 파일이다.
type Staged struct {
	path string
	size int64
}

// Path는 임시 파일 경로를 반환한다.
func (s *Staged) Path() string {
	return s.path
}

// Size는 임시 파일에 기록된 바이트 수다.
func (s *Staged) Size() int64 {
	return s.size
}

// Stage는 프로필 백업 내용을 저장소 안의 고유한 임시 파일로 복사한다.
// 같은 파일시스템에 있어야 Commit의 rename이 원자적이다. 실패하면 임시 파일을 지운다.
func (r *Repository) Stage(p Profile) (*Staged, error) {
	if !r.owns(p) {
		return nil, fmt.Errorf("store.Stage: %w: %s", ErrProfileNotFound, p.Path)
	}
	src, err := os.Open(p.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("store.Stage: %w: %w", ErrProfileNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("store.Stage: %w: %w", classify(err), err)
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return nil, fmt.Errorf("store.Stage: %w: %w", classify(err), err)
	}

	path := filepath.Join(r.dir, stageName())
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return nil, fmt.Errorf("store.Stage: %w: %w", classify(err), err)
	}
	log.Debug("임시 파일 생성", "profile", p.ID, "path", path)

	n, err := r.copy(dst, src)
	if err == nil {
		err = dst.Sync()
	}
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		removeQuietly(path)
		return nil, fmt.Errorf("store.Stage: %w: %s: %w", classify(err), path, err)
	}
	return &Staged{path: path, size: n}, nil
}

// Commit은 임시 파일을 활성 파일 위치로 rename한다. 기존 활성 파일은 한 번에 교체된다.
func (r *Repository) Commit(s *Staged) error {
	if err := os.Rename(s.path, r.ActivePath()); err != nil {
		return fmt.Errorf("store.Commit: %w: %w", classify(err), err)
	}
	syncDir(r.dir)
	log.Debug("활성 파일 교체 완료", "from", s.path, "bytes", s.size)
	return nil
}

// Discard는 커밋되지 않은 임시 파일을 지운다. 이미 없으면 아무것도 하지 않는다.
func (r *Repository) Discard(s *Staged) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store.Discard: %w: %w", classify(err), err)
	}
	return nil
}

// Strays는 중단된 swap이 남긴 임시 파일 경로 목록을 반환한다.
func (r *Repository) Strays() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("store.Strays: %w: %w", ErrRepositoryUnavailable, err)
	}
	var strays []string
	for _, e := range entries {
		if !e.IsDir() && isStageName(e.Name()) {
			strays = append(strays, filepath.Join(r.dir, e.Name()))
		}
	}
	return strays, nil
}

// CleanStrays는 남은 임시 파일을 모두 지우고 지운 개수를 반환한다.
// 진행 중인 swap의 임시 파일도 지우므로 다른 swap이 없을 때만 호출해야 한다.
func (r *Repository) CleanStrays() (int, error) {
	strays, err := r.Strays()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, path := range strays {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return removed, fmt.Errorf("store.CleanStrays: %w: %w", classify(err), err)
		}
		removed++
	}
	return removed, nil
}

func removeQuietly(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("임시 파일 삭제 실패", "path", path, "err", err)
	}
}

// syncDir은 rename 결과를 디스크에 반영한다. 디렉토리 fsync를 지원하지 않는 플랫폼에서는 무시된다.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		log.Debug("디렉토리 열기 실패", "dir", dir, "err", err)
		return
	}
	defer func() { _ = d.Close() }()
	if err := d.Sync(); err != nil {
		log.Debug("디렉토리 fsync 실패", "dir", dir, "err", err)
	}
}

// Probe는 저장소 디렉토리에 임시 파일을 만들고 지워 쓰기 가능 여부를 확인한다.
func (r *Repository) Probe() error {
	path := filepath.Join(r.dir, stageName())
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("store.Probe: %w: %w", classify(err), err)
	}
	_ = f.Close()
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("store.Probe: %w: %w", classify(err), err)
	}
	return nil
}
