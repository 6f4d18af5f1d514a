package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"ciao/internal/domain/visitor"
	"ciao/internal/i18n"
	"ciao/internal/infrastructure/files"
	"ciao/internal/infrastructure/share"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type staticLoader struct {
	records []visitor.Record
	err     error
}

func (l staticLoader) Load(context.Context) ([]visitor.Record, error) {
	return l.records, l.err
}

type MockFlags struct {
	mock.Mock
}

func (m *MockFlags) Exported(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlags) MarkExported(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockFlags) ClearExported(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type failingSharer struct{}

func (failingSharer) Share(context.Context, share.Document) (string, error) {
	return "", errors.New("share sheet dismissed")
}

// capturingSharer records the document contents.
type capturingSharer struct {
	name string
	body string
}

func (c *capturingSharer) Share(_ context.Context, doc share.Document) (string, error) {
	b, err := io.ReadAll(doc.Body)
	if err != nil {
		return "", err
	}
	c.name, c.body = doc.Name, string(b)
	return "captured:" + doc.Name, nil
}

var exportDay = time.Date(2020, time.July, 3, 14, 5, 9, 0, time.UTC)

func sampleRecords() []visitor.Record {
	out := exportDay.Add(90 * time.Minute).UnixMilli()
	return []visitor.Record{
		{FirstName: "Anna", LastName: "Muster", Street: "Weg 1", PostalCode: "3000", City: "Bern", PhoneNumber: "0791111111", Timestamp: exportDay.UnixMilli(), Checkout: &out},
		{FirstName: "Beat", LastName: `O"Neil`, Street: "Gasse 2", PostalCode: "8000", City: "Zürich", PhoneNumber: "0792222222", Email: "b@x.ch", Timestamp: exportDay.Add(time.Minute).UnixMilli()},
	}
}

func TestFormatter_Encode(t *testing.T) {
	f := NewFormatter(i18n.New(time.UTC, "en"), SchemaV1)

	got := f.Encode(sampleRecords())
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, `"Check-in","Check-out","First name","Last name","Street","Postal code","City","Phone number"`, lines[0])
	assert.Equal(t, `"7/3/2020, 2:05:09 PM","7/3/2020, 3:35:09 PM","Anna","Muster","Weg 1","3000","Bern","0791111111"`, lines[1])
	assert.Equal(t, `"7/3/2020, 2:06:09 PM","","Beat","O""Neil","Gasse 2","8000","Zürich","0792222222"`, lines[2])
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestFormatter_EncodeSchemaV2(t *testing.T) {
	f := NewFormatter(i18n.New(time.UTC, "de"), SchemaV2)

	lines := strings.Split(f.Encode(sampleRecords()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], `"Check-in","Check-out","Vorname","Nachname"`))
	assert.True(t, strings.HasSuffix(lines[0], `"E-Mail","Geburtsdatum"`))
	assert.True(t, strings.HasSuffix(lines[2], `"b@x.ch",""`))
	assert.True(t, strings.HasPrefix(lines[1], `"3.7.2020, 14:05:09"`))
}

func TestFormatter_EncodeEmpty(t *testing.T) {
	f := NewFormatter(i18n.New(time.UTC, "en"), SchemaV1)
	got := f.Encode(nil)
	assert.Len(t, strings.Split(got, "\n"), 1)
}

// Переводы строк внутри поля не экранируются: поле остается в кавычках,
// файл читается как CSV, но физических строк становится больше N+1.
func TestFormatter_EncodeEmbeddedNewline(t *testing.T) {
	f := NewFormatter(i18n.New(time.UTC, "en"), SchemaV1)
	records := sampleRecords()
	records[0].Street = "Weg 1\nHinterhaus"

	got := f.Encode(records)
	assert.Len(t, strings.Split(got, "\n"), 4)
	assert.Contains(t, got, "\"Weg 1\nHinterhaus\"")

	rows, err := csv.NewReader(strings.NewReader(got)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Weg 1\nHinterhaus", rows[1][4])
	assert.Equal(t, `O"Neil`, rows[2][3])
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "ciao-data-export-2020-7-3", BaseName("ciao-data", exportDay))
	assert.Equal(t, "ciao-data-export-2021-12-24", BaseName("ciao-data", time.Date(2021, time.December, 24, 0, 0, 0, 0, time.UTC)))
}

func newTestService(t *testing.T, loader Loader, flags FlagStore) (*Service, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	layout := files.NewLayout(fs, "/cache", "/docs")
	f := NewFormatter(i18n.New(time.UTC, "en"), SchemaV1)
	svc := NewService(loader, flags, layout, f, "ciao-data", time.UTC, slog.Default(),
		WithClock(func() time.Time { return exportDay }))
	return svc, fs
}

func TestService_Export(t *testing.T) {
	flags := new(MockFlags)
	flags.On("MarkExported", mock.Anything).Return(nil).Once()
	svc, fs := newTestService(t, staticLoader{records: sampleRecords()}, flags)

	sharer := &capturingSharer{}
	res, err := svc.Export(context.Background(), sharer)
	require.NoError(t, err)

	assert.Equal(t, "ciao-data-export-2020-7-3.csv", res.Name)
	assert.Equal(t, "captured:ciao-data-export-2020-7-3.csv", res.Location)
	assert.Equal(t, 2, res.Count)
	assert.Len(t, strings.Split(sharer.body, "\n"), 3)

	// временный файл удален после шаринга
	exists, err := afero.Exists(fs, "/cache/ciao-data-export-2020-7-3.csv")
	require.NoError(t, err)
	assert.False(t, exists)

	flags.AssertExpectations(t)
}

func TestService_ExportShareFailure(t *testing.T) {
	flags := new(MockFlags)
	svc, fs := newTestService(t, staticLoader{records: sampleRecords()}, flags)

	_, err := svc.Export(context.Background(), failingSharer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "share sheet dismissed")

	flags.AssertNotCalled(t, "MarkExported", mock.Anything)
	exists, _ := afero.Exists(fs, "/cache/ciao-data-export-2020-7-3.csv")
	assert.False(t, exists)
}

func TestService_ExportLoadFailure(t *testing.T) {
	flags := new(MockFlags)
	svc, _ := newTestService(t, staticLoader{err: errors.New("db down")}, flags)

	_, err := svc.Export(context.Background(), &capturingSharer{})
	assert.ErrorContains(t, err, "db down")
}

func TestService_WriteToAvoidsCollisions(t *testing.T) {
	svc, fs := newTestService(t, staticLoader{records: sampleRecords()}, new(MockFlags))
	ctx := context.Background()

	first, n, err := svc.WriteTo(ctx, fs, "/docs/archive")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	second, _, err := svc.WriteTo(ctx, fs, "/docs/archive")
	require.NoError(t, err)

	assert.Equal(t, "/docs/archive/ciao-data-export-2020-7-3.csv", first)
	assert.Equal(t, "/docs/archive/ciao-data-export-2020-7-3-1.csv", second)

	a, _ := afero.ReadFile(fs, first)
	b, _ := afero.ReadFile(fs, second)
	assert.True(t, bytes.Equal(a, b))
}
