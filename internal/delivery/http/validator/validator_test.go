package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordPayload struct {
	Password string `validate:"required,accountpassword"`
}

type gamePayload struct {
	Released  string   `validate:"omitempty,releasedate"`
	Genres    []string `validate:"omitempty,dive,gamegenre"`
	Platforms []string `validate:"omitempty,dive,gameplatform"`
}

func TestAccountPasswordRule(t *testing.T) {
	t.Parallel()

	v := New()

	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "meets policy", password: "Sup3r#pass", valid: true},
		{name: "minimum length boundary", password: "Abc.12", valid: true},
		{name: "too short", password: "Ab#1", valid: false},
		{name: "too long", password: "Abcdefg#123456789012345", valid: false},
		{name: "missing uppercase", password: "weak#pass1", valid: false},
		{name: "missing symbol", password: "Weakpass1", valid: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(passwordPayload{Password: tc.password})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestReleaseDateRule(t *testing.T) {
	t.Parallel()

	v := New()

	require.NoError(t, v.Validate(gamePayload{Released: "2023-07-19"}))
	assert.Error(t, v.Validate(gamePayload{Released: "19-07-2023"}))
	assert.Error(t, v.Validate(gamePayload{Released: "2023/07/19"}))
}

func TestGameEnumRules(t *testing.T) {
	t.Parallel()

	v := New()

	require.NoError(t, v.Validate(gamePayload{
		Genres:    []string{"ACTION", "MASSIVELY MULTIPLAYER"},
		Platforms: []string{"PC", "NINTENDO SWITCH"},
	}))

	assert.Error(t, v.Validate(gamePayload{Genres: []string{"POLKA"}}))
	assert.Error(t, v.Validate(gamePayload{Platforms: []string{"COMMODORE 64"}}))
}
