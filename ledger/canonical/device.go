package canonical

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/anyswap/xrpl-txmodel/common"
	"github.com/anyswap/xrpl-txmodel/log"
	"github.com/pborman/uuid"
)

// DeviceIDProvider supplies the stable per installation identifier digests are scoped to
type DeviceIDProvider interface {
	DeviceID() (string, error)
}

// StaticDeviceID is a fixed identifier
type StaticDeviceID string

// DeviceID impl DeviceIDProvider
func (id StaticDeviceID) DeviceID() (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: empty device id", ErrInvalidInput)
	}
	return string(id), nil
}

// FileDeviceID keeps the identifier in a file, generating a random UUID on first use
type FileDeviceID struct {
	Path string

	mu sync.Mutex
	id string
}

// NewFileDeviceID returns a provider backed by path
func NewFileDeviceID(path string) *FileDeviceID {
	return &FileDeviceID{Path: path}
}

// DeviceID impl DeviceIDProvider
func (f *FileDeviceID) DeviceID() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.id != "" {
		return f.id, nil
	}
	if common.FileExist(f.Path) {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return "", err
		}
		if id := strings.TrimSpace(string(data)); id != "" {
			f.id = id
			return id, nil
		}
	}
	if err := common.EnsureDir(f.Path); err != nil {
		return "", err
	}
	id := uuid.NewRandom().String()
	if err := os.WriteFile(f.Path, []byte(id+"\n"), 0o600); err != nil {
		return "", err
	}
	log.Info("generated device id", "file", f.Path)
	f.id = id
	return id, nil
}
