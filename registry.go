package fontfall

import (
	"sync"

	"github.com/npillmayer/fontfall/fontlang"
	"golang.org/x/text/language"
)

// Registry owns the process state font collections share: the monotonic
// collection-id counter and the interned language lists styles refer to by
// id. A Registry is handed to collection constructors explicitly, so tests
// and embedders can keep independent worlds; there is no ambient global.
//
// All methods are safe for concurrent use. A single mutex covers both
// concerns, which matches how briefly it is ever held.
type Registry struct {
	mu      sync.Mutex
	nextID  uint32
	listIDs map[string]uint32
	lists   [][]language.Tag
}

// NewRegistry creates an empty registry. Language-list id 0 is reserved for
// the empty list, so the zero Style works without any interning.
func NewRegistry() *Registry {
	return &Registry{
		listIDs: map[string]uint32{"": 0},
		lists:   [][]language.Tag{nil},
	}
}

// NextCollectionID returns a fresh identifier, unique and monotonically
// increasing within this registry.
func (r *Registry) NextCollectionID() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	return id
}

// LanguageListID interns a comma-separated BCP-47 language list ("en-US,ja")
// and returns its id. Equal spec strings yield equal ids; the empty spec
// yields id 0.
func (r *Registry) LanguageListID(spec string) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.listIDs[spec]; ok {
		return id
	}
	id := uint32(len(r.lists))
	r.listIDs[spec] = id
	r.lists = append(r.lists, fontlang.ParseList(spec))
	tracer().Debugf("interned language list #%d = %q", id, spec)
	return id
}

// LanguageList resolves an id issued by LanguageListID. Unknown ids resolve
// to the empty list.
func (r *Registry) LanguageList(id uint32) []language.Tag {
	r.mu.Lock()
	defer r.mu.Unlock()
	if int(id) >= len(r.lists) {
		return nil
	}
	return r.lists[id]
}
