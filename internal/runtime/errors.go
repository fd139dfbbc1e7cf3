package runtime

import "errors"

var (
	ErrSpawn         = errors.New("failed to start process")
	ErrCommandFailed = errors.New("command failed")
)
