package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Capture는 현재 활성 파일을 id 식별자의 새 백업으로 복사한다.
// 같은 식별자의 백업이 있으면 덮어쓰지 않고 ErrProfileAlreadyExists를 반환한다.
func (r *Repository) Capture(id string) (Profile, error) {
	if err := ValidateID(id); err != nil {
		return Profile{}, fmt.Errorf("store.Capture: %w", err)
	}

	src, err := os.Open(r.ActivePath())
	if errors.Is(err, fs.ErrNotExist) {
		return Profile{}, fmt.Errorf("store.Capture: %w: %w", ErrNoActiveSession, err)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("store.Capture: %w: %w", classify(err), err)
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return Profile{}, fmt.Errorf("store.Capture: %w: %w", classify(err), err)
	}

	if err := r.ensureFree(id); err != nil {
		return Profile{}, err
	}

	path := filepath.Join(r.dir, backupName(id, r.trimTxt))
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if errors.Is(err, fs.ErrExist) {
		return Profile{}, fmt.Errorf("store.Capture: %w: %s", ErrProfileAlreadyExists, id)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("store.Capture: %w: %w", classify(err), err)
	}

	_, err = r.copy(dst, src)
	if err == nil {
		err = dst.Sync()
	}
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		removeQuietly(path)
		return Profile{}, fmt.Errorf("store.Capture: %w: %s: %w", classify(err), path, err)
	}
	syncDir(r.dir)

	log.Debug("현재 세션 저장", "profile", id, "path", path)
	return Profile{ID: id, Path: path}, nil
}

// ensureFree는 id로 해석되는 백업 파일이 하나도 없는지 확인한다.
func (r *Repository) ensureFree(id string) error {
	names := []string{backupName(id, false)}
	if r.trimTxt {
		names = append(names, backupName(id, true))
	}
	for _, name := range names {
		_, err := os.Lstat(filepath.Join(r.dir, name))
		if err == nil {
			return fmt.Errorf("store.Capture: %w: %s", ErrProfileAlreadyExists, id)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("store.Capture: %w: %w", classify(err), err)
		}
	}
	return nil
}
