package httpadapter

import (
	"encoding/base64"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/PabloGalante/life-guide/internal/app/guidance"
	"github.com/PabloGalante/life-guide/internal/app/journal"
	"github.com/PabloGalante/life-guide/internal/app/session"
	"github.com/PabloGalante/life-guide/internal/domain"
)

type sessionResponse struct {
	Session session.Snapshot `json:"session"`
}

type preferencesRequest struct {
	Faith        *string `json:"faith"`
	FavoritePath *string `json:"favorite_path"`
}

func (r preferencesRequest) update() session.PreferenceUpdate {
	u := session.PreferenceUpdate{Faith: r.Faith}
	if r.FavoritePath != nil {
		p := domain.ParsePath(*r.FavoritePath)
		u.FavoritePath = &p
	}
	return u
}

type preferencesResponse struct {
	Preferences session.Preferences `json:"preferences"`
}

type guidanceRequest struct {
	Faith         string `json:"faith"`
	Path          string `json:"path"`
	Concern       string `json:"concern"`
	RememberFaith bool   `json:"remember_faith"`
}

type guidanceResponse struct {
	Entry   domain.JournalEntry `json:"entry"`
	Summary journal.Summary     `json:"summary"`
}

type journalEntryResponse struct {
	domain.JournalEntry
	Summary journal.Summary `json:"summary"`
}

type journalResponse struct {
	Order   string                 `json:"order"`
	Total   int                    `json:"total"`
	Entries []journalEntryResponse `json:"entries"`
}

const (
	modeDefault = "default"
	modeFaith   = "faith"
	modeCustom  = "custom"
)

// backgroundRequest selects a background. For mode faith, key is an exact
// catalog key and takes precedence over the free-text faith field.
type backgroundRequest struct {
	Mode  string `json:"mode"`
	Faith string `json:"faith,omitempty"`
	Key   string `json:"key,omitempty"`
	Path  string `json:"path,omitempty"`
}

func (r backgroundRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Mode, validation.Required, validation.In(modeDefault, modeFaith, modeCustom)),
		validation.Field(&r.Faith, validation.When(r.Mode == modeFaith && r.Key == "", validation.Required)),
		validation.Field(&r.Path, validation.When(r.Mode == modeCustom, validation.Required)),
	)
}

type backgroundView struct {
	Kind domain.BackgroundKind `json:"kind"`
	Ref  string                `json:"ref,omitempty"`
}

type backgroundResponse struct {
	Background backgroundView          `json:"background"`
	Theme      *domain.FaithThemeEntry `json:"theme,omitempty"`
	DataURI    string                  `json:"data_uri,omitempty"`
}

func toBackgroundResponse(res guidance.BackgroundResult) backgroundResponse {
	out := backgroundResponse{
		Background: backgroundView{Kind: res.Mode.Kind()},
		Theme:      res.Theme,
	}
	if key, ok := res.Mode.FaithKey(); ok {
		out.Background.Ref = key
	} else if path, ok := res.Mode.CustomPath(); ok {
		out.Background.Ref = path
	}
	if len(res.Asset.Data) > 0 {
		out.DataURI = "data:" + res.Asset.ContentType + ";base64," + base64.StdEncoding.EncodeToString(res.Asset.Data)
	}
	return out
}

type reminderResponse struct {
	Fire    bool   `json:"fire"`
	Hour    int    `json:"hour,omitempty"`
	Message string `json:"message,omitempty"`
}

type remindersRequest struct {
	Enabled *bool `json:"enabled"`
}

func (r remindersRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Enabled, validation.NotNil),
	)
}

type remindersResponse struct {
	Enabled bool `json:"enabled"`
}

type pathView struct {
	Value domain.Path `json:"value"`
	Label string      `json:"label"`
}

type catalogResponse struct {
	Faiths []domain.FaithThemeEntry `json:"faiths"`
	Paths  []pathView               `json:"paths"`
}

type healthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}
