package settings

import "sync"

// Default presentation values, matching the gruvbox-flavored defaults the
// editor ships with.
const (
	DefaultBackgroundColor = "#282828"
	DefaultTextColor       = "#ebdbb2"
	DefaultFontFamily      = "roboto mono"
	DefaultCenterContent   = true
)

// Settings holds the user-chosen presentation options for rendered
// documents. Values are plain strings handed to the renderer as-is; the
// renderer trusts them (see render.Document).
type Settings struct {
	BackgroundColor string
	TextColor       string
	FontFamily      string
	CenterContent   bool
}

// Defaults returns the documented default settings.
func Defaults() Settings {
	return Settings{
		BackgroundColor: DefaultBackgroundColor,
		TextColor:       DefaultTextColor,
		FontFamily:      DefaultFontFamily,
		CenterContent:   DefaultCenterContent,
	}
}

// Partial is a sparse settings mutation. Nil fields leave the current value
// untouched, which is what gives config loading its merge semantics.
type Partial struct {
	BackgroundColor *string
	TextColor       *string
	FontFamily      *string
	CenterContent   *bool
}

// Store owns the current settings and notifies subscribers on every
// mutation. All GUI access happens on the Fyne event thread, but the store
// is guarded anyway since file loads complete on background goroutines.
type Store struct {
	mu          sync.Mutex
	current     Settings
	subscribers map[int]func(Settings)
	nextID      int
}

func NewStore() *Store {
	return &Store{
		current:     Defaults(),
		subscribers: make(map[int]func(Settings)),
	}
}

// Get returns a copy of the current settings.
func (s *Store) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set merges the non-nil fields of p into the current settings and
// notifies subscribers.
func (s *Store) Set(p Partial) {
	s.mu.Lock()
	if p.BackgroundColor != nil {
		s.current.BackgroundColor = *p.BackgroundColor
	}
	if p.TextColor != nil {
		s.current.TextColor = *p.TextColor
	}
	if p.FontFamily != nil {
		s.current.FontFamily = *p.FontFamily
	}
	if p.CenterContent != nil {
		s.current.CenterContent = *p.CenterContent
	}
	snapshot := s.current
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	for _, notify := range subs {
		notify(snapshot)
	}
}

// Reset restores the documented defaults and notifies subscribers.
func (s *Store) Reset() {
	s.mu.Lock()
	s.current = Defaults()
	snapshot := s.current
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	for _, notify := range subs {
		notify(snapshot)
	}
}

// Subscribe registers a callback invoked with a settings snapshot after
// every mutation. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Settings)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *Store) snapshotSubscribers() []func(Settings) {
	subs := make([]func(Settings), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return subs
}
