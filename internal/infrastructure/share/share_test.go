package share

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestDirSharer(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewDirSharer(fs, "/out", slog.Default())
	ctx := context.Background()

	loc, err := s.Share(ctx, Document{Name: "export.csv", Size: 3, Body: strings.NewReader("a,b")})
	require.NoError(t, err)
	assert.Equal(t, "/out/export.csv", loc)

	loc, err = s.Share(ctx, Document{Name: "export.csv", Size: 3, Body: strings.NewReader("c,d")})
	require.NoError(t, err)
	assert.Equal(t, "/out/export-1.csv", loc)

	b, err := afero.ReadFile(fs, "/out/export.csv")
	require.NoError(t, err)
	assert.Equal(t, "a,b", string(b))
}

func TestWriterSharer(t *testing.T) {
	var buf bytes.Buffer
	loc, err := NewWriterSharer(&buf).Share(context.Background(), Document{Name: "x.csv", Body: strings.NewReader("hello")})
	require.NoError(t, err)
	assert.Equal(t, "x.csv", loc)
	assert.Equal(t, "hello", buf.String())
}

type MockPutter struct {
	mock.Mock
}

func (m *MockPutter) PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucket, object, reader, size, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func TestS3Sharer(t *testing.T) {
	putter := new(MockPutter)
	s := newS3Sharer(putter, "venue", "exports", slog.Default())
	s.now = func() time.Time { return time.Date(2020, time.July, 3, 0, 0, 0, 0, time.UTC) }

	keyMatch := mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "exports/2020/07/03/") && strings.HasSuffix(key, "-export.csv")
	})
	putter.On("PutObject", mock.Anything, "venue", keyMatch, mock.Anything, int64(3), mock.Anything).
		Return(minio.UploadInfo{Key: "exports/2020/07/03/id-export.csv", Size: 3}, nil).Once()

	loc, err := s.Share(context.Background(), Document{Name: "export.csv", Size: 3, Body: strings.NewReader("a,b")})
	require.NoError(t, err)
	assert.Equal(t, "s3://venue/exports/2020/07/03/id-export.csv", loc)
	putter.AssertExpectations(t)
}

func TestS3Sharer_Error(t *testing.T) {
	putter := new(MockPutter)
	s := newS3Sharer(putter, "venue", "", slog.Default())
	putter.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	_, err := s.Share(context.Background(), Document{Name: "export.csv", Size: -1, Body: strings.NewReader("")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
