//go:build !debug
// +build !debug

package maskgen

import (
	"fmt"
	"sync"
)

// DebugLog prints only when Debug is set (DEBUG env var); build with -tags debug to always print.
func DebugLog(format string, args ...interface{}) {
	if Debug {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

var once sync.Once

// DebugLogOnce prints the first message it is given while Debug is set and drops the rest.
func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	})
}
