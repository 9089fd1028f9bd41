// Package logging은 모듈별 charmbracelet/log 로거를 관리한다.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvDebug는 로그 레벨을 지정하는 환경변수 이름이다 (debug, info, warn, error).
const EnvDebug = "CSWAP_DEBUG"

var (
	mu      sync.Mutex
	loggers = make(map[string]*log.Logger)
	level   = log.WarnLevel
	output  io.Writer = os.Stderr
)

// GetLogger는 모듈 이름에 해당하는 로거를 반환한다. 같은 이름이면 같은 로거를 돌려준다.
func GetLogger(module string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if lg, ok := loggers[module]; ok {
		return lg
	}
	lg := log.NewWithOptions(output, log.Options{
		Prefix: module,
		Level:  level,
	})
	loggers[module] = lg
	return lg
}

// SetLevel은 등록된 모든 로거와 이후 생성될 로거의 레벨을 바꾼다.
func SetLevel(lvl log.Level) {
	mu.Lock()
	defer mu.Unlock()

	level = lvl
	for _, lg := range loggers {
		lg.SetLevel(lvl)
	}
}

// SetOutput은 모든 로거의 출력 대상을 바꾼다.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	output = w
	for _, lg := range loggers {
		lg.SetOutput(w)
	}
}

// Level은 현재 전역 로그 레벨을 반환한다.
func Level() log.Level {
	mu.Lock()
	defer mu.Unlock()
	return level
}

func init() {
	if v := os.Getenv(EnvDebug); v != "" {
		if lvl, err := log.ParseLevel(v); err == nil {
			level = lvl
		}
	}
}
