package cryptox

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/imgurshot/internal/common"
)

const keyFileSize = 48 // 32-byte secret + 16-byte salt

// LoadOrCreateSealKey returns the machine-local sealing key stored at path,
// generating the underlying secret and salt on first use. The file is
// created with 0600 permissions.
func LoadOrCreateSealKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		data = common.GenerateRandByteArray(keyFileSize)
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return nil, fmt.Errorf("failed to create key file %s: %w", path, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read key file %s: %w", path, err)
	}

	if len(data) != keyFileSize {
		return nil, fmt.Errorf("key file %s has unexpected size %d", path, len(data))
	}

	return DeriveSealKey(data[:32], data[32:]), nil
}
