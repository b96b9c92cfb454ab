package domain

// BackgroundKind matches the values the UI reports as the active background type.
type BackgroundKind string

const (
	BackgroundDefault BackgroundKind = "default"
	BackgroundCustom  BackgroundKind = "custom"
	BackgroundFaith   BackgroundKind = "faith"
)

// BackgroundMode is a tagged variant: Default, CustomFile(path) or
// FaithTheme(key). The zero value is Default. Switching modes replaces the
// whole value.
type BackgroundMode struct {
	kind BackgroundKind
	ref  string
}

func DefaultBackground() BackgroundMode {
	return BackgroundMode{kind: BackgroundDefault}
}

func CustomFileBackground(path string) BackgroundMode {
	return BackgroundMode{kind: BackgroundCustom, ref: path}
}

func FaithThemeBackground(faithKey string) BackgroundMode {
	return BackgroundMode{kind: BackgroundFaith, ref: faithKey}
}

func (m BackgroundMode) Kind() BackgroundKind {
	if m.kind == "" {
		return BackgroundDefault
	}
	return m.kind
}

// CustomPath returns the file reference when the mode is CustomFile.
func (m BackgroundMode) CustomPath() (string, bool) {
	if m.kind != BackgroundCustom {
		return "", false
	}
	return m.ref, true
}

// FaithKey returns the catalog key when the mode is FaithTheme.
func (m BackgroundMode) FaithKey() (string, bool) {
	if m.kind != BackgroundFaith {
		return "", false
	}
	return m.ref, true
}
