// Package watch는 저장소 디렉토리 변경을 감시한다.
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hbjs97/cswap/internal/logging"
	"github.com/hbjs97/cswap/internal/store"
)

var log = logging.GetLogger("watch")

// DefaultDebounce는 연속 이벤트를 하나로 묶는 대기 시간이다.
const DefaultDebounce = 200 * time.Millisecond

// Run은 dir의 프로필 관련 파일이 바뀔 때마다 onChange를 호출한다.
// 이벤트는 debounce 동안 묶인다. ctx가 끝나면 nil을 반환한다.
func Run(ctx context.Context, dir string, debounce time.Duration, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch.Run: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch.Run: %w: %w", store.ErrRepositoryUnavailable, err)
	}
	log.Debug("감시 시작", "dir", dir)

	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("감시 오류", "err", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !store.Tracks(event.Name) || (event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write)) {
				continue
			}
			log.Debug("변경 감지", "event", event.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
		case <-timerChan(timer):
			timer = nil
			onChange()
		}
	}
}

func timerChan(timer *time.Timer) <-chan time.Time {
	if timer == nil {
		return nil
	}
	return timer.C
}
