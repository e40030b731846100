package constants

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockFileFormat(t *testing.T) {
	assert.Equal(t, "cronsetup-1000.lock", fmt.Sprintf(LockFileFormat, 1000))
}

func TestConfigFileName(t *testing.T) {
	assert.Equal(t, "cronsetup.toml", ConfigFileName)
}
