package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/zeebo/xxh3"
)

// Fingerprint는 파일 내용의 xxh3 해시와 크기다.
type Fingerprint struct {
	Hash uint64
	Size int64
}

func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x", f.Hash)
}

// fingerprintFile은 파일 내용을 스트리밍으로 해시한다.
func fingerprintFile(path string) (Fingerprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fingerprint{}, err
	}
	defer func() { _ = f.Close() }()

	h := xxh3.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return Fingerprint{}, err
	}
	return Fingerprint{Hash: h.Sum64(), Size: n}, nil
}

// ActiveFingerprint는 활성 파일의 지문을 반환한다.
func (r *Repository) ActiveFingerprint() (Fingerprint, error) {
	fp, err := fingerprintFile(r.ActivePath())
	if errors.Is(err, fs.ErrNotExist) {
		return Fingerprint{}, fmt.Errorf("store.ActiveFingerprint: %w: %w", ErrNoActiveSession, err)
	}
	if err != nil {
		return Fingerprint{}, fmt.Errorf("store.ActiveFingerprint: %w: %w", classify(err), err)
	}
	return fp, nil
}

// Current는 활성 파일과 내용이 같은 프로필을 찾는다.
// 일치하는 백업이 없으면 ok가 false다. 활성 파일이 없으면 ErrNoActiveSession이다.
func (r *Repository) Current() (p Profile, ok bool, err error) {
	active, err := r.ActiveFingerprint()
	if err != nil {
		return Profile{}, false, err
	}
	profiles, err := r.Sorted()
	if err != nil {
		return Profile{}, false, err
	}
	for _, candidate := range profiles {
		fp, err := fingerprintFile(candidate.Path)
		if err != nil {
			log.Debug("지문 계산 실패", "profile", candidate.ID, "err", err)
			continue
		}
		if fp == active {
			return candidate, true, nil
		}
	}
	return Profile{}, false, nil
}
