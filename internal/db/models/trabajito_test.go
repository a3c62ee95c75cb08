package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrabajitoState(t *testing.T) {
	now := time.Now()

	tr := &Trabajito{}
	assert.Equal(t, StateRequested, tr.State())

	tr.DateFinish = &now
	assert.Equal(t, StateInProgress, tr.State())

	tr.EndNumber = "7731"
	assert.Equal(t, StateAwaitingConfirmation, tr.State())

	tr.ConfirmedAt = &now
	assert.Equal(t, StateCompleted, tr.State())
}

func TestTrabajitoValidate(t *testing.T) {
	valid := Trabajito{
		Description: "fix sink",
		DateInit:    time.Now(),
		SolicitorID: 1,
		HiredID:     2,
	}

	tests := []struct {
		name    string
		mutate  func(*Trabajito)
		wantErr bool
	}{
		{"valid", func(*Trabajito) {}, false},
		{"empty description", func(tr *Trabajito) { tr.Description = "" }, true},
		{"description at limit", func(tr *Trabajito) {
			tr.Description = strings.Repeat("a", MaxDescriptionLength)
		}, false},
		{"description over limit", func(tr *Trabajito) {
			tr.Description = strings.Repeat("a", MaxDescriptionLength+1)
		}, true},
		{"zero date_init", func(tr *Trabajito) { tr.DateInit = time.Time{} }, true},
		{"self hire", func(tr *Trabajito) { tr.HiredID = tr.SolicitorID }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := valid
			tt.mutate(&tr)
			err := tr.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTrabajitoMarshalJSON(t *testing.T) {
	tr := Trabajito{
		Description: "fix sink",
		DateInit:    time.Now(),
		EndNumber:   "7731",
		SolicitorID: 1,
		HiredID:     2,
		StatusID:    3,
	}

	data, err := json.Marshal(tr)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	// The confirmation code must never reach a client.
	assert.NotContains(t, string(data), "7731")
	assert.Equal(t, "awaiting_confirmation", fields["state"])
	assert.Equal(t, float64(1), fields["id_solicitor"])
	assert.Equal(t, float64(2), fields["id_hired"])
}

func TestParseLifecycleState(t *testing.T) {
	for _, state := range []LifecycleState{
		StateRequested, StateInProgress, StateAwaitingConfirmation, StateCompleted,
	} {
		parsed, err := ParseLifecycleState(state.String())
		require.NoError(t, err)
		assert.Equal(t, state, parsed)
	}

	_, err := ParseLifecycleState("cancelled")
	assert.Error(t, err)
}

func TestListOptionsNormalize(t *testing.T) {
	opts := &ListOptions{}
	opts.Normalize()
	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, DefaultPageSize, opts.PageSize)
	assert.Equal(t, 0, opts.Offset())

	opts = &ListOptions{Page: 3, PageSize: 5000}
	opts.Normalize()
	assert.Equal(t, MaxPageSize, opts.PageSize)
	assert.Equal(t, 2*MaxPageSize, opts.Offset())
}
