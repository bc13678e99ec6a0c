package logging

import (
	"io"
	"log"
	"os"

	"deskgauge/internal/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Init routes the standard logger to stderr, or to a rotating file when one
// is configured. The returned closer flushes the file on shutdown.
func Init(cfg config.Log) io.Closer {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if cfg.File == "" {
		log.SetOutput(os.Stderr)
		return io.NopCloser(nil)
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	log.SetOutput(writer)
	log.Printf("Logging to %s (max %d MB, %d backups)", cfg.File, cfg.MaxSizeMB, cfg.MaxBackups)
	return writer
}
