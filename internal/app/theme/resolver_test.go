package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/life-guide/internal/app/theme"
	"github.com/PabloGalante/life-guide/internal/domain"
)

func TestResolveByFreeText(t *testing.T) {
	r := theme.NewResolver()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"prefix of key", "hindu", "Hinduism"},
		{"exact key", "Buddhism", "Buddhism"},
		{"mixed case", "cHrIsTiAnItY", "Christianity"},
		{"input contains key", "I was raised in Judaism", "Judaism"},
		{"surrounding spaces", "  tao  ", "Taoism"},
		{"declaration order wins", "ism", "Hinduism"},
		{"sikh", "sikh", "Sikhism"},
		{"spiritual", "spiritual", "Spiritualism"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ResolveByFreeText(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestResolveByFreeTextNoMatch(t *testing.T) {
	r := theme.NewResolver()

	for _, input := range []string{"xyz", "", "   ", "Jainism"} {
		_, err := r.ResolveByFreeText(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, domain.ErrNoMatch)

		var nm *domain.NoMatchError
		require.ErrorAs(t, err, &nm)
		assert.Equal(t, domain.FaithNames(), nm.Available)
	}
}

func TestResolveByFreeTextDeterministic(t *testing.T) {
	r := theme.NewResolver()

	first, err := r.ResolveByFreeText("is")
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := r.ResolveByFreeText("is")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolveExplicit(t *testing.T) {
	r := theme.NewResolver()

	got, err := r.ResolveExplicit("Islam")
	require.NoError(t, err)
	want, ok := domain.LookupFaith("Islam")
	require.True(t, ok)
	assert.Equal(t, want, got)

	_, err = r.ResolveExplicit("islam")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
