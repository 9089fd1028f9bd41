// Package store는 쿠키 저장소 디렉토리에 대한 모든 파일시스템 접근을 담당한다.
//
// 저장소에는 애플리케이션이 읽는 활성 파일 "cookies"와 프로필별 백업 파일
// "cookies_<식별자>"가 있다. 프로필 정보는 파일 이름 자체이며 캐시하지 않는다.
// 내부 잠금이 없으므로 호출자가 쓰기 작업을 직렬화해야 한다.
package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hbjs97/cswap/internal/logging"
)

var log = logging.GetLogger("store")

// CopyFunc는 파일 내용을 복사하는 함수다. 기본값은 io.Copy다.
type CopyFunc func(dst io.Writer, src io.Reader) (int64, error)

// Option은 Repository 생성 옵션이다.
type Option func(*Repository)

// WithTrimTxtSuffix는 "cookies_<이름>.txt" 백업을 "<이름>" 프로필로 인식하게 한다.
func WithTrimTxtSuffix(trim bool) Option {
	return func(r *Repository) { r.trimTxt = trim }
}

// WithCopyFunc는 백업 복사에 쓰는 함수를 교체한다.
func WithCopyFunc(fn CopyFunc) Option {
	return func(r *Repository) { r.copy = fn }
}

// Repository는 하나의 저장소 디렉토리를 다룬다.
type Repository struct {
	dir     string
	trimTxt bool
	copy    CopyFunc
}

// New는 dir을 저장소로 쓰는 Repository를 생성한다. 디렉토리 존재 여부는 사용 시점에 확인한다.
func New(dir string, opts ...Option) *Repository {
	r := &Repository{dir: filepath.Clean(dir), copy: io.Copy}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dir은 저장소 디렉토리 경로를 반환한다.
func (r *Repository) Dir() string {
	return r.dir
}

// ActivePath는 활성 쿠키 파일 경로를 반환한다.
func (r *Repository) ActivePath() string {
	return filepath.Join(r.dir, ActiveName)
}

// List는 저장소를 스캔해 프로필 시퀀스를 반환한다. 순서는 디렉토리 순회 순서이며
// 시퀀스는 여러 번 순회할 수 있다. 빈 디렉토리는 빈 시퀀스다.
func (r *Repository) List() (iter.Seq[Profile], error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("store.List: %w: %w", ErrRepositoryUnavailable, err)
	}

	var ambiguous map[string]bool
	if r.trimTxt {
		ambiguous = r.findAmbiguous(entries)
	}

	return func(yield func(Profile) bool) {
		for _, e := range entries {
			id, ok := r.match(e)
			if !ok || ambiguous[id] {
				continue
			}
			if !yield(Profile{ID: id, Path: filepath.Join(r.dir, e.Name())}) {
				return
			}
		}
	}, nil
}

// Sorted는 List 결과를 식별자 순으로 정렬해 반환한다.
func (r *Repository) Sorted() ([]Profile, error) {
	seq, err := r.List()
	if err != nil {
		return nil, err
	}
	profiles := slices.Collect(seq)
	slices.SortFunc(profiles, func(a, b Profile) int {
		return strings.Compare(a.ID, b.ID)
	})
	return profiles, nil
}

// Lookup은 식별자로 프로필을 찾는다.
func (r *Repository) Lookup(id string) (Profile, error) {
	if err := ValidateID(id); err != nil {
		return Profile{}, fmt.Errorf("store.Lookup: %w", err)
	}
	seq, err := r.List()
	if err != nil {
		return Profile{}, err
	}
	for p := range seq {
		if p.ID == id {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("store.Lookup: %w: %s", ErrProfileNotFound, id)
}

// Stat은 프로필의 백업 파일이 아직 존재하는지 다시 확인한다.
func (r *Repository) Stat(p Profile) error {
	if !r.owns(p) {
		return fmt.Errorf("store.Stat: %w: %s는 %s 밖에 있습니다", ErrProfileNotFound, p.Path, r.dir)
	}
	info, err := os.Stat(p.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store.Stat: %w: %w", ErrProfileNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("store.Stat: %w: %w", classify(err), err)
	}
	if info.IsDir() {
		return fmt.Errorf("store.Stat: %w: %s는 디렉토리입니다", ErrProfileNotFound, p.Path)
	}
	return nil
}

// HasActive는 활성 쿠키 파일이 있는지 확인한다.
func (r *Repository) HasActive() (bool, error) {
	_, err := os.Stat(r.ActivePath())
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store.HasActive: %w: %w", classify(err), err)
	}
	return true, nil
}

// ActiveWritable은 활성 파일이 있을 때 쓰기 가능한지 확인한다. 활성 파일이 없으면 nil이다.
// rename은 대상 파일의 권한을 보지 않으므로 교체 전에 따로 확인한다.
func (r *Repository) ActiveWritable() error {
	f, err := os.OpenFile(r.ActivePath(), os.O_WRONLY, 0)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("store.ActiveWritable: %w: %w", classify(err), err)
	}
	return f.Close()
}

func (r *Repository) match(e fs.DirEntry) (string, bool) {
	if !r.isFile(e) {
		return "", false
	}
	return parseBackupName(e.Name(), r.trimTxt)
}

// isFile은 항목이 일반 파일이거나 일반 파일을 가리키는 심볼릭 링크인지 확인한다.
func (r *Repository) isFile(e fs.DirEntry) bool {
	switch {
	case e.Type().IsRegular():
		return true
	case e.Type()&fs.ModeSymlink == 0:
		return false
	}
	info, err := os.Stat(filepath.Join(r.dir, e.Name()))
	return err == nil && info.Mode().IsRegular()
}

func (r *Repository) owns(p Profile) bool {
	return p.Path != "" && filepath.Dir(filepath.Clean(p.Path)) == r.dir
}

// findAmbiguous는 .txt를 떼었을 때 같은 식별자가 되는 항목들을 찾는다.
func (r *Repository) findAmbiguous(entries []fs.DirEntry) map[string]bool {
	seen := make(map[string]bool, len(entries))
	dup := make(map[string]bool)
	for _, e := range entries {
		if !r.isFile(e) {
			continue
		}
		id, ok := parseBackupName(e.Name(), true)
		if !ok {
			continue
		}
		if seen[id] {
			dup[id] = true
			log.Warn("모호한 프로필 식별자를 무시합니다", "id", id)
		}
		seen[id] = true
	}
	return dup
}
