package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

// StoreKind selects the backing implementation of the stores.
type StoreKind string

const (
	StoreSQLite StoreKind = "sqlite"
	StoreMemory StoreKind = "memory"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("VSCAN_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("VSCAN_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("VSCAN_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("VSCAN_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 3000
	}
	return port
}

func GetStoreKind() StoreKind {
	if os.Getenv("VSCAN_STORE") == string(StoreMemory) {
		return StoreMemory
	}
	return StoreSQLite
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("VSCAN_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("VSCAN_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

func GetUploadFolder() string {
	uploadFolderPath := os.Getenv("VSCAN_UPLOAD_FOLDER")
	if uploadFolderPath == "" {
		uploadFolderPath = "uploads"
	}
	return uploadFolderPath
}

// GetSessionMaxAge returns the lifetime of a login session. Sessions use a
// fixed window from creation, there is no sliding expiry.
func GetSessionMaxAge() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("VSCAN_SESSION_HOURS"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}
