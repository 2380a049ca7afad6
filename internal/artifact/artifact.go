package artifact

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultName is used when the response carries no usable filename.
const DefaultName = "Resume_Tailored.pdf"

// Metadata carries the display information parsed from the response headers.
type Metadata struct {
	SuggestedName string
	AddedKeywords []string
}

// Artifact is the binary result of a successful generation plus its display
// metadata. The manager owns its lifecycle; once released the payload is gone
// and the artifact can no longer be exported.
type Artifact struct {
	id            string
	suggestedName string
	keywords      []string

	mu       sync.RWMutex
	data     []byte
	released bool
}

func newArtifact(data []byte, meta Metadata) *Artifact {
	name := meta.SuggestedName
	if name == "" {
		name = DefaultName
	}
	return &Artifact{
		id:            uuid.NewString(),
		suggestedName: name,
		keywords:      append([]string(nil), meta.AddedKeywords...),
		data:          data,
	}
}

// ID identifies the artifact in logs.
func (a *Artifact) ID() string { return a.id }

// SuggestedName is the filename the artifact should be saved under.
func (a *Artifact) SuggestedName() string { return a.suggestedName }

// AddedKeywords returns the keywords the remote service reported weaving in.
func (a *Artifact) AddedKeywords() []string {
	return append([]string(nil), a.keywords...)
}

// Size returns the payload size in bytes, zero once released.
func (a *Artifact) Size() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.data)
}

// Released reports whether the payload has been freed.
func (a *Artifact) Released() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.released
}

// release frees the payload. It blocks until any in-progress export finishes
// and reports whether this call performed the release.
func (a *Artifact) release() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.released {
		return false
	}
	a.released = true
	a.data = nil
	return true
}
