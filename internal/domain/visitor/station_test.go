package visitor

import (
	"context"
	"testing"

	"ciao/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStation_DropsScansUntilAcknowledged(t *testing.T) {
	repo := &fakeRepository{}
	svc, _ := newTestService(repo)
	st := NewStation(svc, ModeCheckIn)
	ctx := context.Background()

	res, accepted := st.Handle(ctx, payloadFor("Anna", "0791111111"))
	require.True(t, accepted)
	require.NoError(t, res.Err)
	assert.False(t, st.Enabled())

	_, accepted = st.Handle(ctx, payloadFor("Beat", "0792222222"))
	assert.False(t, accepted)
	assert.Len(t, repo.records, 1)

	st.Acknowledge()
	_, accepted = st.Handle(ctx, payloadFor("Beat", "0792222222"))
	assert.True(t, accepted)
	assert.Len(t, repo.records, 2)
}

func TestStation_FailedScanAlsoDisables(t *testing.T) {
	svc, _ := newTestService(&fakeRepository{})
	st := NewStation(svc, ModeCheckIn)

	res, accepted := st.Handle(context.Background(), "not a code")
	require.True(t, accepted)
	assert.ErrorIs(t, res.Err, ErrInvalidFormat)
	assert.False(t, st.Enabled())
}

func TestStation_FocusBlur(t *testing.T) {
	repo := &fakeRepository{}
	svc, _ := newTestService(repo)
	st := NewStation(svc, ModeCheckIn)
	ctx := context.Background()

	st.Blur()
	_, accepted := st.Handle(ctx, validPayload)
	assert.False(t, accepted)
	assert.Empty(t, repo.records)

	st.Focus()
	_, accepted = st.Handle(ctx, validPayload)
	assert.True(t, accepted)
}

func TestStation_CheckOutMode(t *testing.T) {
	repo := &fakeRepository{}
	svc, _ := newTestService(repo)
	ctx := context.Background()
	_, err := svc.CheckIn(ctx, payloadFor("Anna", "0791111111"))
	require.NoError(t, err)

	st := NewStation(svc, ModeCheckOut)
	res, accepted := st.Handle(ctx, `{"phoneNumber":"0791111111"}`)
	require.True(t, accepted)
	require.NoError(t, res.Err)
	assert.False(t, res.Record.Open())
}

func TestResult_Alert(t *testing.T) {
	de := i18n.New(nil, "de")
	rec := Record{FirstName: "Anna", LastName: "Muster", Street: "Weg 1", PostalCode: "3000", City: "Bern", PhoneNumber: "0791111111"}

	title, body := Result{Mode: ModeCheckIn, Record: rec}.Alert(de)
	assert.Equal(t, "Erfolg", title)
	assert.Equal(t, "Daten erfolgreich gelesen:\nAnna Muster, Weg 1 3000 Bern\n0791111111", body)

	title, body = Result{Err: ErrIncompleteData}.Alert(de)
	assert.Equal(t, "Fehler", title)
	assert.Equal(t, de.T(i18n.DataIncompleteInvalid), body)

	_, body = Result{Mode: ModeCheckOut, Err: ErrNoMatchingCheckIn}.Alert(de)
	assert.Equal(t, de.T(i18n.NoMatchingCheckIn), body)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("check-out")
	require.NoError(t, err)
	assert.Equal(t, ModeCheckOut, m)
	assert.Equal(t, "checkout", m.String())

	_, err = ParseMode("sideways")
	assert.Error(t, err)
}
