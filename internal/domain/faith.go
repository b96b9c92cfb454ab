package domain

// FaithThemeEntry is a visual theme tied to a belief tradition.
type FaithThemeEntry struct {
	Name        string `json:"name"`
	ImageRef    string `json:"image_ref"`
	Description string `json:"description"`
}

// faithThemes is kept as a slice: resolution walks it in declaration order.
var faithThemes = []FaithThemeEntry{
	{
		Name:        "Hinduism",
		ImageRef:    "https://images.unsplash.com/photo-1599092027257-28b80e0d9a6b?auto=format&fit=crop&w=1200&q=80",
		Description: "🕉️ Sacred Mandala & Spiritual Patterns",
	},
	{
		Name:        "Christianity",
		ImageRef:    "https://images.unsplash.com/photo-1559327615-cd4628902d4a?auto=format&fit=crop&w=1200&q=80",
		Description: "✝️ Light & Serenity",
	},
	{
		Name:        "Islam",
		ImageRef:    "https://images.unsplash.com/photo-1529333166437-7750a6dd5a70?auto=format&fit=crop&w=1200&q=80",
		Description: "☪️ Islamic Geometric Patterns",
	},
	{
		Name:        "Buddhism",
		ImageRef:    "https://images.unsplash.com/photo-1465101162946-4377e57745c3?auto=format&fit=crop&w=1200&q=80",
		Description: "☸️ Peaceful Zen Garden",
	},
	{
		Name:        "Judaism",
		ImageRef:    "https://images.unsplash.com/photo-1606148162298-69e1f7a47c0c?auto=format&fit=crop&w=1200&q=80",
		Description: "✡️ Star of David & Heritage",
	},
	{
		Name:        "Sikhism",
		ImageRef:    "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=1200&q=80",
		Description: "☬ Golden Temple Inspired",
	},
	{
		Name:        "Spiritualism",
		ImageRef:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?auto=format&fit=crop&w=1200&q=80",
		Description: "✨ Cosmic & Spiritual Energy",
	},
	{
		Name:        "Taoism",
		ImageRef:    "https://images.unsplash.com/photo-1506126613408-eca07ce68773?auto=format&fit=crop&w=1200&q=80",
		Description: "☯️ Yin-Yang Balance",
	},
	{
		Name:        "Atheism",
		ImageRef:    "https://images.unsplash.com/photo-1519904981063-b0cf448d479e?auto=format&fit=crop&w=1200&q=80",
		Description: "🌌 Universe & Nature",
	},
}

// Faiths returns a copy of the catalog in declaration order.
func Faiths() []FaithThemeEntry {
	out := make([]FaithThemeEntry, len(faithThemes))
	copy(out, faithThemes)
	return out
}

// FaithNames returns the canonical keys in declaration order.
func FaithNames() []string {
	names := make([]string, 0, len(faithThemes))
	for _, f := range faithThemes {
		names = append(names, f.Name)
	}
	return names
}

// LookupFaith is a case-sensitive exact match on the canonical key.
func LookupFaith(name string) (FaithThemeEntry, bool) {
	for _, f := range faithThemes {
		if f.Name == name {
			return f, true
		}
	}
	return FaithThemeEntry{}, false
}
