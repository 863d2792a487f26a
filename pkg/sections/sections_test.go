package sections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnownTypesOrder(t *testing.T) {
	req := require.New(t)
	req.Equal([]ImportType{Future, StandardLibrary, ThirdParty, FirstParty, LocalFolder}, KnownTypes())
}

func TestLabels(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		section Section
		label   string
	}{
		{"future", Known(Future), "future"},
		{"standard library", Known(StandardLibrary), "standard-library"},
		{"third party", Known(ThirdParty), "third-party"},
		{"first party", Known(FirstParty), "first-party"},
		{"local folder", Known(LocalFolder), "local-folder"},
		{"user defined", UserDefined("django"), "django"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.label, tt.section.Label(), "Label() for %s", tt.name)
			req.Equal(tt.section, Parse(tt.label), "Parse(%q)", tt.label)
		})
	}
}

func TestSectionEquality(t *testing.T) {
	req := require.New(t)

	// Sections are comparable values usable as map keys.
	req.Equal(UserDefined("django"), UserDefined("django"))
	req.NotEqual(UserDefined("django"), UserDefined("flask"))
	req.NotEqual(Known(Future), UserDefined("future-ish"))

	m := map[Section]int{
		Known(Future):         1,
		UserDefined("django"): 2,
	}
	req.Equal(1, m[Known(Future)])
	req.Equal(2, m[UserDefined("django")])
}

func TestIsBuiltinLabel(t *testing.T) {
	req := require.New(t)
	req.True(IsBuiltinLabel("future"))
	req.True(IsBuiltinLabel("standard-library"))
	req.False(IsBuiltinLabel("django"))
	req.False(IsBuiltinLabel("FUTURE"))
}

func TestUserDefinedFlag(t *testing.T) {
	req := require.New(t)
	req.False(Known(ThirdParty).IsUserDefined())
	req.True(UserDefined("django").IsUserDefined())
	req.Equal("django", UserDefined("django").Name())
	req.Equal(ThirdParty, Known(ThirdParty).Type())
}
