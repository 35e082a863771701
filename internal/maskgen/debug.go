//go:build debug
// +build debug

package maskgen

import (
	"fmt"
	"sync"
)

// DebugLog always prints in debug builds, whatever Debug says.
func DebugLog(format string, args ...interface{}) {
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}

var once sync.Once

// DebugLogOnce prints the first message it is given and drops the rest.
func DebugLogOnce(format string, args ...interface{}) {
	once.Do(func() {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	})
}
