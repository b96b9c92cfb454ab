// Package guidance runs the actions a seeker takes within one session.
package guidance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/PabloGalante/life-guide/internal/app/reminder"
	"github.com/PabloGalante/life-guide/internal/app/session"
	"github.com/PabloGalante/life-guide/internal/app/theme"
	"github.com/PabloGalante/life-guide/internal/domain"
	"github.com/PabloGalante/life-guide/internal/observability"
)

var ErrIncompleteRequest = errors.New("faith and concern are required")

const (
	msgIncomplete       = "Please fill in all fields to receive guidance"
	msgGuidanceSaved    = "Guidance received and saved!"
	msgBackgroundLoaded = "Background loaded successfully!"
	msgThemeApplied     = "Scripture background applied!"
	msgThemeFailed      = "Failed to load scripture background"
	msgPrefsSaved       = "Preferences saved for this session!"
	msgFormCleared      = "Form cleared!"

	connectionErrorPrefix = "Connection error: "
	connectionErrorLimit  = 50
)

type Service struct {
	provider domain.GuidanceProvider
	themes   domain.ThemeAssetFetcher
	files    domain.ThemeAssetFetcher
	notifier domain.Notifier
	resolver *theme.Resolver
	picker   *reminder.Picker
	clock    reminder.Clock
	now      func() time.Time
}

type Option func(*Service)

func WithClock(c reminder.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithPicker(p *reminder.Picker) Option {
	return func(s *Service) { s.picker = p }
}

func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService wires the service. themes loads faith theme images, files
// loads seeker-supplied backgrounds and must stay inside its sandbox.
func NewService(
	provider domain.GuidanceProvider,
	themes domain.ThemeAssetFetcher,
	files domain.ThemeAssetFetcher,
	notifier domain.Notifier,
	opts ...Option,
) *Service {
	s := &Service{
		provider: provider,
		themes:   themes,
		files:    files,
		notifier: notifier,
		resolver: theme.NewResolver(),
		picker:   reminder.NewPicker(nil),
		clock:    reminder.SystemClock{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type SeekInput struct {
	Faith         string
	Path          domain.Path
	Concern       string
	RememberFaith bool
}

// SeekGuidance asks the provider for guidance and journals the answer.
// On failure the journal is left as it was.
func (s *Service) SeekGuidance(ctx context.Context, st *session.State, in SeekInput) (domain.JournalEntry, error) {
	log := sessionLogger(ctx, st)

	faith := strings.TrimSpace(in.Faith)
	concern := strings.TrimSpace(in.Concern)
	if faith == "" || concern == "" {
		s.notify(ctx, st, domain.NotifyWarning, msgIncomplete)
		return domain.JournalEntry{}, ErrIncompleteRequest
	}

	path := domain.ParsePath(string(in.Path))
	if in.RememberFaith {
		st.Preferences.Update(session.PreferenceUpdate{Faith: &faith})
	}

	log = log.With("faith", faith, "path", path)
	log.Info("seeking guidance", "concern_len", len(concern))

	text, err := s.provider.Generate(ctx, BuildGuidancePrompt(faith, path, concern))
	if err != nil {
		log.Error("guidance provider failed", "error", err)
		s.notify(ctx, st, domain.NotifyError, connectionErrorPrefix+firstRunes(err.Error(), connectionErrorLimit))
		return domain.JournalEntry{}, &domain.ProviderError{Err: err}
	}

	entry := domain.JournalEntry{
		ID:        domain.JournalEntryID(uuid.NewString()),
		Faith:     faith,
		Path:      path,
		Concern:   concern,
		Guidance:  text,
		CreatedAt: s.now(),
	}
	st.Journal.Append(entry)
	s.notify(ctx, st, domain.NotifySuccess, msgGuidanceSaved)

	log.Info("guidance saved", "entry_id", entry.ID, "guidance_len", len(text))
	return entry, nil
}

// BackgroundResult describes the background that was just applied.
// Theme is set only for faith themes.
type BackgroundResult struct {
	Mode  domain.BackgroundMode
	Theme *domain.FaithThemeEntry
	Asset domain.Asset
}

// ApplyFaithTheme resolves free text to a faith and switches to its theme.
// A failed fetch is returned without a notification.
func (s *Service) ApplyFaithTheme(ctx context.Context, st *session.State, freeText string) (BackgroundResult, error) {
	entry, err := s.resolver.ResolveByFreeText(freeText)
	if err != nil {
		sessionLogger(ctx, st).Info("no faith theme matched", "input", freeText)
		return BackgroundResult{}, err
	}

	res, err := s.applyTheme(ctx, st, entry)
	if err != nil {
		return BackgroundResult{}, err
	}
	s.notify(ctx, st, domain.NotifySuccess, fmt.Sprintf("Scripture background applied for %s!", entry.Name))
	return res, nil
}

// SelectFaithTheme switches to the theme of an exact faith key and
// remembers that faith.
func (s *Service) SelectFaithTheme(ctx context.Context, st *session.State, key string) (BackgroundResult, error) {
	entry, err := s.resolver.ResolveExplicit(key)
	if err != nil {
		return BackgroundResult{}, err
	}

	res, err := s.applyTheme(ctx, st, entry)
	if err != nil {
		s.notify(ctx, st, domain.NotifyError, msgThemeFailed)
		return BackgroundResult{}, err
	}
	s.notify(ctx, st, domain.NotifySuccess, msgThemeApplied)
	st.Preferences.Update(session.PreferenceUpdate{Faith: &entry.Name})
	return res, nil
}

// applyTheme commits the faith theme only once its image is fetched.
func (s *Service) applyTheme(ctx context.Context, st *session.State, entry domain.FaithThemeEntry) (BackgroundResult, error) {
	log := sessionLogger(ctx, st).With("faith", entry.Name)

	asset, err := s.themes.Fetch(ctx, entry.ImageRef)
	if err != nil {
		log.Error("failed to fetch faith theme", "error", err)
		return BackgroundResult{}, &domain.FetchError{Ref: entry.ImageRef, Err: err}
	}

	st.Background = domain.FaithThemeBackground(entry.Name)
	log.Info("faith theme applied", "bytes", len(asset.Data))
	return BackgroundResult{Mode: st.Background, Theme: &entry, Asset: asset}, nil
}

// ApplyCustomBackground loads an image from the background directory.
func (s *Service) ApplyCustomBackground(ctx context.Context, st *session.State, path string) (BackgroundResult, error) {
	log := sessionLogger(ctx, st).With("path", path)

	asset, err := s.files.Fetch(ctx, path)
	if err != nil {
		log.Error("failed to load custom background", "error", err)
		return BackgroundResult{}, &domain.FetchError{Ref: path, Err: err}
	}

	st.Background = domain.CustomFileBackground(path)
	s.notify(ctx, st, domain.NotifySuccess, msgBackgroundLoaded)

	log.Info("custom background applied", "bytes", len(asset.Data))
	return BackgroundResult{Mode: st.Background, Asset: asset}, nil
}

func (s *Service) ResetBackground(st *session.State) BackgroundResult {
	st.Background = domain.DefaultBackground()
	return BackgroundResult{Mode: st.Background}
}

func (s *Service) UpdatePreferences(ctx context.Context, st *session.State, u session.PreferenceUpdate) session.Preferences {
	st.Preferences.Update(u)
	s.notify(ctx, st, domain.NotifyInfo, msgPrefsSaved)
	return st.Preferences.Current()
}

// ClearForm only acknowledges; the form lives with the client.
func (s *Service) ClearForm(ctx context.Context, st *session.State) {
	s.notify(ctx, st, domain.NotifyInfo, msgFormCleared)
}

type Reminder struct {
	Hour    int    `json:"hour"`
	Message string `json:"message"`
}

// PollReminder reports whether a reminder is due at the current hour.
// Each scheduled hour fires at most once until a non-scheduled hour is seen.
func (s *Service) PollReminder(ctx context.Context, st *session.State) (Reminder, bool) {
	if !st.RemindersEnabled {
		return Reminder{}, false
	}

	hour := s.clock.NowHour()
	fire, next := reminder.ShouldFire(hour, st.Reminder)
	st.Reminder = next
	if !fire {
		return Reminder{}, false
	}

	r := Reminder{Hour: hour, Message: s.picker.Pick()}
	sessionLogger(ctx, st).Info("reminder fired", "hour", hour)
	return r, true
}

func (s *Service) SetRemindersEnabled(st *session.State, enabled bool) {
	st.RemindersEnabled = enabled
}

// notify counts the notification and hands it to the notifier. Delivery
// failures are logged only.
func (s *Service) notify(ctx context.Context, st *session.State, kind domain.NotificationKind, msg string) {
	n := domain.Notification{
		Kind:      kind,
		Message:   msg,
		Total:     st.Notifications.Increment(),
		CreatedAt: s.now(),
	}
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, st.ID, n); err != nil {
		sessionLogger(ctx, st).Error("failed to publish notification",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}
}

func sessionLogger(ctx context.Context, st *session.State) *slog.Logger {
	return observability.LoggerFromContext(observability.WithSessionID(ctx, string(st.ID)))
}

func firstRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
