package tcp

import (
	"log"
	"sync/atomic"
	"time"
)

// ErrorLogFunc logs server errors
type ErrorLogFunc func(format string, v ...interface{})

var (
	DefaultErrorLogFunc ErrorLogFunc = log.Printf
)

type atomicBool int32

func (b *atomicBool) isSet() bool { return atomic.LoadInt32((*int32)(b)) != 0 }
func (b *atomicBool) setTrue()    { atomic.StoreInt32((*int32)(b), 1) }

var shutdownPollInterval = 500 * time.Millisecond
