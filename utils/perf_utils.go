package utils

import (
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// LogDuration emits a debug line with how long a store operation took.
// Meant to be deferred with the operation's start time.
func LogDuration(operation string, start time.Time, args ...interface{}) {
	elapsed := time.Since(start)
	if len(args) > 0 {
		log.Debugf("%s took %v (%v)", operation, elapsed, args)
	} else {
		log.Debugf("%s took %v", operation, elapsed)
	}
}
