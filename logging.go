package trainmapeva

import (
	"io"
	"log"
	"os"
)

// InitLogging sends progress lines to stdout, or discards them when quiet
func InitLogging(quiet bool) {
	if quiet {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
