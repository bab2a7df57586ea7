package staging

import (
	"slices"
	"sync"
	"time"

	"github.com/samber/lo"
)

// Store keeps at most one StagedFile per path, in insertion order.
// It is safe for concurrent use.
type Store struct {
	mu sync.Mutex

	files map[string]*StagedFile
	order []string
	// upstream blob SHAs from the last observed tree, by path
	observed map[string]string

	now func() time.Time
}

type Option func(*Store)

// WithClock overrides the time source used for LastModified.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		files:    map[string]*StagedFile{},
		order:    []string{},
		observed: map[string]string{},
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// MergeGenerated stages assistant output. Content is not applied over a
// manual edit, the original is never replaced and selection is kept.
func (s *Store) MergeGenerated(path, content string, isNew bool) StagedFile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !isNew {
		s.markObserved(path)
	}

	file, ok := s.files[path]
	if !ok {
		file = s.insert(path, OriginGenerated)
		file.Content = content
		file.IsSelected = true
		file.LastModified = s.now()
		s.refreshIsNew(file)
		return *file
	}

	if file.Origin != OriginManualEdit && file.Content != content {
		file.Content = content
		file.LastModified = s.now()
	}
	if file.Origin == OriginRepository {
		file.Origin = OriginGenerated
	}
	s.refreshIsNew(file)

	return *file
}

// MergeManualEdit stages a user edit. The edit wins over generated content and
// the file becomes selected.
func (s *Store) MergeManualEdit(path, content string, isNew bool) StagedFile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !isNew {
		s.markObserved(path)
	}

	file, ok := s.files[path]
	if !ok {
		file = s.insert(path, OriginManualEdit)
	}

	file.Origin = OriginManualEdit
	file.Content = content
	file.IsSelected = true
	file.LastModified = s.now()
	s.refreshIsNew(file)

	return *file
}

// SelectRepositoryFile stages an unchanged repository file for publishing.
func (s *Store) SelectRepositoryFile(path, content, sha string) StagedFile {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.markObserved(path)
	if sha != "" {
		s.observed[path] = sha
	}

	file, ok := s.files[path]
	if !ok {
		file = s.insert(path, OriginRepository)
		file.Content = content
		file.OriginalContent = content
		file.UpstreamSHA = sha
		file.LastModified = s.now()
	} else if file.OriginalContent == "" {
		file.OriginalContent = content
		if file.UpstreamSHA == "" {
			file.UpstreamSHA = sha
		}
	}

	file.IsSelected = true
	s.refreshIsNew(file)

	return *file
}

// ObserveTree records the paths of a fetched repository tree.
func (s *Store) ObserveTree(entries []TreeEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		s.observed[e.Path] = e.SHA
	}

	for _, file := range s.files {
		if sha := s.observed[file.Path]; sha != "" && file.UpstreamSHA == "" {
			file.UpstreamSHA = sha
		}
		s.refreshIsNew(file)
	}
}

// RecordOriginal sets the upstream content of a staged file when it is not
// yet known.
func (s *Store) RecordOriginal(path, content, sha string) (StagedFile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.markObserved(path)

	file, ok := s.files[path]
	if !ok {
		return StagedFile{}, false
	}

	if file.OriginalContent == "" {
		file.OriginalContent = content
	}
	if file.UpstreamSHA == "" {
		file.UpstreamSHA = sha
	}
	s.refreshIsNew(file)

	return *file, true
}

// ToggleSelection flips IsSelected. Unknown paths are ignored.
func (s *Store) ToggleSelection(path string) (StagedFile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, ok := s.files[path]
	if !ok {
		return StagedFile{}, false
	}

	file.IsSelected = !file.IsSelected

	return *file, true
}

// SetSelection sets IsSelected explicitly. Unknown paths are ignored.
func (s *Store) SetSelection(path string, selected bool) (StagedFile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, ok := s.files[path]
	if !ok {
		return StagedFile{}, false
	}

	file.IsSelected = selected

	return *file, true
}

func (s *Store) Remove(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[path]; !ok {
		return false
	}
	s.remove(path)

	return true
}

// RemovePublished drops the given snapshot entries whose content has not
// changed since the snapshot was taken and returns the dropped paths.
func (s *Store) RemovePublished(published []StagedFile) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := make([]string, 0, len(published))
	for _, p := range published {
		current, ok := s.files[p.Path]
		if !ok || current.Content != p.Content || !current.LastModified.Equal(p.LastModified) {
			continue
		}
		s.remove(p.Path)
		removed = append(removed, p.Path)
	}

	return removed
}

// Clear drops every staged file and the observed tree.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files = map[string]*StagedFile{}
	s.order = []string{}
	s.observed = map[string]string{}
}

func (s *Store) Get(path string) (StagedFile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, ok := s.files[path]
	if !ok {
		return StagedFile{}, false
	}

	return *file, true
}

// Files returns a snapshot of all staged files in insertion order.
func (s *Store) Files() []StagedFile {
	return s.snapshot(func(*StagedFile) bool { return true })
}

// Selected returns the selected files in insertion order.
func (s *Store) Selected() []StagedFile {
	return s.snapshot(func(f *StagedFile) bool { return f.IsSelected })
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.order)
}

// Observed reports whether path is known to exist upstream.
func (s *Store) Observed(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.observed[path]
	return ok
}

// ObservedPaths returns the known upstream paths, sorted.
func (s *Store) ObservedPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths := lo.Keys(s.observed)
	slices.Sort(paths)

	return paths
}

func (s *Store) snapshot(keep func(*StagedFile) bool) []StagedFile {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]StagedFile, 0, len(s.order))
	for _, path := range s.order {
		if file := s.files[path]; keep(file) {
			result = append(result, *file)
		}
	}

	return result
}

func (s *Store) remove(path string) {
	delete(s.files, path)
	s.order = slices.DeleteFunc(s.order, func(p string) bool { return p == path })
}

func (s *Store) insert(path string, origin Origin) *StagedFile {
	file := &StagedFile{
		Path:        path,
		Origin:      origin,
		UpstreamSHA: s.observed[path],
	}
	s.files[path] = file
	s.order = append(s.order, path)

	return file
}

func (s *Store) markObserved(path string) {
	if _, ok := s.observed[path]; !ok {
		s.observed[path] = ""
	}
}

// refreshIsNew applies: new iff no original content and never observed upstream.
func (s *Store) refreshIsNew(file *StagedFile) {
	_, seen := s.observed[file.Path]
	file.IsNew = file.OriginalContent == "" && !seen
}
