package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"resumetailor/internal/logging"
	"resumetailor/internal/services"
)

const exportLockName = ".resumetailor.lock"

// Export writes the artifact's bytes into dir under its suggested name and
// returns the path written. It may be invoked repeatedly against the same
// artifact and never mutates flow state. A lock file in dir serializes
// concurrent invocations so two runs cannot interleave writes to the same
// destination; name collisions get a " (n)" suffix instead of overwriting.
func (m *Manager) Export(a *Artifact, dir string) (string, error) {
	if a == nil {
		return "", services.Wrap(services.ErrValidation, "artifact", "export", "no artifact to export", nil)
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.released {
		return "", services.Wrap(services.ErrValidation, "artifact", "export", "artifact already released", nil)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory %q: %w", dir, err)
	}

	lock := flock.New(filepath.Join(dir, exportLockName))
	if err := lock.Lock(); err != nil {
		return "", fmt.Errorf("acquire export lock: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	dest, err := resolveDestination(dir, a.suggestedName)
	if err != nil {
		return "", err
	}

	tmp := dest + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, a.data, 0o644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("finalize artifact: %w", err)
	}

	m.logger.Info("artifact exported",
		logging.String("artifact_id", a.id),
		logging.String("path", dest),
		logging.Int("bytes", len(a.data)),
	)
	return dest, nil
}

// resolveDestination finds a destination path that does not clobber an
// existing file, suffixing " (n)" before the extension like a browser
// download would.
func resolveDestination(dir, name string) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = DefaultName
	}

	candidate := filepath.Join(dir, base)
	if _, err := os.Stat(candidate); errors.Is(err, os.ErrNotExist) {
		return candidate, nil
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for n := 1; n <= 1000; n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		if _, err := os.Stat(candidate); errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free destination for %q in %q", base, dir)
}
