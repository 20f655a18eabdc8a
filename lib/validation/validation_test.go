package validation_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icco/gamelog/lib/library"
	"github.com/icco/gamelog/lib/recommend"
	"github.com/icco/gamelog/lib/validation"
	"github.com/icco/gamelog/models"
)

func TestValidateID(t *testing.T) {
	id, err := validation.ValidateID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := validation.ValidateID(raw)
		assert.Error(t, err, raw)
	}
}

func TestValidateStatus(t *testing.T) {
	s, err := validation.ValidateStatus("disliked")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDisliked, s)

	_, err = validation.ValidateStatus("owned")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestValidateLibrary_StartingData(t *testing.T) {
	assert.NoError(t, validation.ValidateLibrary(slices.Concat(library.Seed(), recommend.DefaultPool())))
}

func TestValidateLibrary_Rejects(t *testing.T) {
	cases := map[string][]models.Game{
		"duplicate id":   {{ID: 1, Title: "A"}, {ID: 1, Title: "B"}},
		"empty title":    {{ID: 1}},
		"zero id":        {{Title: "A"}},
		"rating too big": {{ID: 1, Title: "A", Rating: models.Ptr(11.0)}},
		"negative hours": {{ID: 1, Title: "A", PlayTime: models.Ptr(-1)}},
	}
	for name, games := range cases {
		assert.Error(t, validation.ValidateLibrary(games), name)
	}
}

func TestValidateAndParsePitchResponse(t *testing.T) {
	body := []byte(`{"pitches":[
		{"id":101,"pitch":"  Roll for initiative.  "},
		{"id":101,"pitch":"Duplicate."},
		{"id":102,"pitch":"   "}
	]}`)

	resp, err := validation.ValidateAndParsePitchResponse(body)
	require.NoError(t, err)

	assert.Equal(t, []validation.PitchItem{{ID: 101, Pitch: "Roll for initiative."}}, resp.Pitches)
}

func TestValidatePitchResponse_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":        `pitches`,
		"missing pitches": `{}`,
		"extra field":     `{"pitches":[],"note":"hi"}`,
		"string id":       `{"pitches":[{"id":"101","pitch":"x"}]}`,
		"empty pitch":     `{"pitches":[{"id":101,"pitch":""}]}`,
	}
	for name, body := range cases {
		assert.Error(t, validation.ValidatePitchResponse([]byte(body)), name)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	validation.WriteError(rec, errors.New("boom"), http.StatusTeapot)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"boom"}`, rec.Body.String())
}
