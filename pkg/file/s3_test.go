package file_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/buildlocale/pkg/file"
)

// MockS3Client is a mock implementation of the S3Client interface
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func (m *MockS3Client) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadObjectOutput), args.Error(1)
}

func (m *MockS3Client) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.ListObjectsV2Output), args.Error(1)
}

// MockS3ListObjectsV2Paginator is a mock implementation of the S3ListObjectsV2Paginator interface
type MockS3ListObjectsV2Paginator struct {
	mock.Mock
}

func (m *MockS3ListObjectsV2Paginator) HasMorePages() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockS3ListObjectsV2Paginator) NextPage(ctx context.Context, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	args := m.Called(ctx, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.ListObjectsV2Output), args.Error(1)
}

func newMockStorage(t *testing.T, cfg file.S3Config, opts ...file.S3Option) (*file.S3Storage, *MockS3Client) {
	t.Helper()
	client := new(MockS3Client)
	if cfg.Bucket == "" {
		cfg.Bucket = "test-bucket"
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	storage, err := file.NewS3Storage(context.Background(), cfg, append([]file.S3Option{file.WithS3Client(client)}, opts...)...)
	require.NoError(t, err)
	return storage, client
}

func TestNewS3Storage(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		storage, err := file.NewS3Storage(context.Background(), file.S3Config{
			Bucket:      "test-bucket",
			Region:      "us-east-1",
			AccessKeyID: "test-key",
			SecretKey:   "test-secret",
		})
		require.NoError(t, err)
		require.NotNil(t, storage)
	})

	t.Run("with custom endpoint", func(t *testing.T) {
		t.Parallel()
		storage, err := file.NewS3Storage(context.Background(), file.S3Config{
			Bucket:         "test-bucket",
			Region:         "us-east-1",
			Endpoint:       "http://localhost:9000",
			ForcePathStyle: true,
		})
		require.NoError(t, err)
		require.NotNil(t, storage)
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()
		storage, err := file.NewS3Storage(context.Background(), file.S3Config{Region: "us-east-1"})
		assert.True(t, errors.Is(err, file.ErrInvalidConfig))
		assert.Nil(t, storage)
	})

	t.Run("missing region", func(t *testing.T) {
		t.Parallel()
		storage, err := file.NewS3Storage(context.Background(), file.S3Config{Bucket: "test-bucket"})
		assert.True(t, errors.Is(err, file.ErrInvalidConfig))
		assert.Nil(t, storage)
	})
}

func TestS3Storage_WriteFile(t *testing.T) {
	t.Parallel()

	t.Run("uploads json with prefix", func(t *testing.T) {
		t.Parallel()
		storage, client := newMockStorage(t, file.S3Config{Prefix: "/releases/"})

		var captured *s3.PutObjectInput
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*s3.PutObjectInput)
			}).
			Return(&s3.PutObjectOutput{}, nil)

		err := storage.WriteFile(context.Background(), "./out/en.locale.json", []byte(`{"a":1}`))
		require.NoError(t, err)
		require.NotNil(t, captured)

		assert.Equal(t, "test-bucket", aws.ToString(captured.Bucket))
		assert.Equal(t, "releases/out/en.locale.json", aws.ToString(captured.Key))
		assert.Equal(t, "application/json", aws.ToString(captured.ContentType))
		assert.Equal(t, int64(7), aws.ToInt64(captured.ContentLength))
		body, err := io.ReadAll(captured.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(body))
		client.AssertExpectations(t)
	})

	t.Run("classifies access denied", func(t *testing.T) {
		t.Parallel()
		storage, client := newMockStorage(t, file.S3Config{})

		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"})

		err := storage.WriteFile(context.Background(), "en.locale.json", []byte("{}"))
		assert.ErrorIs(t, err, file.ErrAccessDenied)
	})

	t.Run("keeps double dots inside names", func(t *testing.T) {
		t.Parallel()
		storage, client := newMockStorage(t, file.S3Config{})

		client.On("PutObject", mock.Anything, mock.MatchedBy(func(params *s3.PutObjectInput) bool {
			return aws.ToString(params.Key) == "v1..2/rel..en.locale.json"
		}), mock.Anything).Return(&s3.PutObjectOutput{}, nil)

		err := storage.WriteFile(context.Background(), "./v1..2/rel..en.locale.json", []byte("{}"))
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("rejects parent segments", func(t *testing.T) {
		t.Parallel()
		storage, client := newMockStorage(t, file.S3Config{Prefix: "releases"})

		for _, p := range []string{"../en.locale.json", "out/../../en.locale.json", ".."} {
			err := storage.WriteFile(context.Background(), p, []byte("{}"))
			assert.ErrorIs(t, err, file.ErrInvalidPath, p)
		}
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects empty path", func(t *testing.T) {
		t.Parallel()
		storage, _ := newMockStorage(t, file.S3Config{})
		err := storage.WriteFile(context.Background(), "/", []byte("{}"))
		assert.ErrorIs(t, err, file.ErrInvalidPath)
	})
}

func TestS3Storage_ReadFile(t *testing.T) {
	t.Parallel()

	t.Run("downloads object", func(t *testing.T) {
		t.Parallel()
		storage, client := newMockStorage(t, file.S3Config{})

		client.On("GetObject", mock.Anything, mock.MatchedBy(func(params *s3.GetObjectInput) bool {
			return aws.ToString(params.Key) == "app/en.locale.json"
		}), mock.Anything).Return(&s3.GetObjectOutput{
			Body: io.NopCloser(strings.NewReader(`{"hello":"hi"}`)),
		}, nil)

		data, err := storage.ReadFile(context.Background(), "app/en.locale.json")
		require.NoError(t, err)
		assert.Equal(t, `{"hello":"hi"}`, string(data))
	})

	t.Run("missing object", func(t *testing.T) {
		t.Parallel()
		storage, client := newMockStorage(t, file.S3Config{})

		client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &types.NoSuchKey{})

		_, err := storage.ReadFile(context.Background(), "app/en.locale.json")
		assert.ErrorIs(t, err, file.ErrFileNotFound)
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()
		storage, client := newMockStorage(t, file.S3Config{})

		client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &types.NoSuchBucket{})

		_, err := storage.ReadFile(context.Background(), "app/en.locale.json")
		assert.ErrorIs(t, err, file.ErrBucketNotFound)
	})
}

func TestS3Storage_Exists(t *testing.T) {
	t.Parallel()

	storage, client := newMockStorage(t, file.S3Config{})

	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(params *s3.HeadObjectInput) bool {
		return aws.ToString(params.Key) == "present.json"
	}), mock.Anything).Return(&s3.HeadObjectOutput{}, nil)
	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(params *s3.HeadObjectInput) bool {
		return aws.ToString(params.Key) == "absent.json"
	}), mock.Anything).Return(nil, &smithy.GenericAPIError{Code: "NotFound"})

	assert.True(t, storage.Exists(context.Background(), "present.json"))
	assert.False(t, storage.Exists(context.Background(), "absent.json"))
}

func TestS3Storage_Walk(t *testing.T) {
	t.Parallel()

	t.Run("lists all pages and strips prefix", func(t *testing.T) {
		t.Parallel()
		paginator := new(MockS3ListObjectsV2Paginator)
		paginator.On("HasMorePages").Return(true).Twice()
		paginator.On("HasMorePages").Return(false).Once()
		paginator.On("NextPage", mock.Anything, mock.Anything).Return(&s3.ListObjectsV2Output{
			Contents: []types.Object{
				{Key: aws.String("base/app/en.locale.json")},
				{Key: aws.String("base/app/admin/")},
			},
		}, nil).Once()
		paginator.On("NextPage", mock.Anything, mock.Anything).Return(&s3.ListObjectsV2Output{
			Contents: []types.Object{
				{Key: aws.String("base/app/admin/fr.locale.json")},
			},
		}, nil).Once()

		var gotPrefix string
		storage, _ := newMockStorage(t, file.S3Config{Prefix: "base"},
			file.WithPaginatorFactory(func(_ file.S3Client, params *s3.ListObjectsV2Input) file.S3ListObjectsV2Paginator {
				gotPrefix = aws.ToString(params.Prefix)
				return paginator
			}),
		)

		files, err := storage.Walk(context.Background(), "app")
		require.NoError(t, err)
		assert.Equal(t, "base/app/", gotPrefix)
		assert.Equal(t, []string{"app/en.locale.json", "app/admin/fr.locale.json"}, files)
		paginator.AssertExpectations(t)
	})

	t.Run("rejects parent segments", func(t *testing.T) {
		t.Parallel()
		storage, _ := newMockStorage(t, file.S3Config{})
		_, err := storage.Walk(context.Background(), "app/../..")
		assert.ErrorIs(t, err, file.ErrInvalidPath)
	})

	t.Run("nil paginator", func(t *testing.T) {
		t.Parallel()
		storage, _ := newMockStorage(t, file.S3Config{})
		_, err := storage.Walk(context.Background(), "app")
		assert.ErrorIs(t, err, file.ErrPaginatorNil)
	})

	t.Run("page error", func(t *testing.T) {
		t.Parallel()
		paginator := new(MockS3ListObjectsV2Paginator)
		paginator.On("HasMorePages").Return(true)
		paginator.On("NextPage", mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "SlowDown"})

		storage, _ := newMockStorage(t, file.S3Config{},
			file.WithPaginatorFactory(func(file.S3Client, *s3.ListObjectsV2Input) file.S3ListObjectsV2Paginator {
				return paginator
			}),
		)

		_, err := storage.Walk(context.Background(), ".")
		assert.ErrorIs(t, err, file.ErrServiceUnavailable)
	})
}

func TestGlob_S3(t *testing.T) {
	t.Parallel()

	paginator := new(MockS3ListObjectsV2Paginator)
	paginator.On("HasMorePages").Return(true).Once()
	paginator.On("HasMorePages").Return(false).Once()
	paginator.On("NextPage", mock.Anything, mock.Anything).Return(&s3.ListObjectsV2Output{
		Contents: []types.Object{
			{Key: aws.String("app/en.locale.json")},
			{Key: aws.String("app/notes.txt")},
		},
	}, nil).Once()

	storage, _ := newMockStorage(t, file.S3Config{},
		file.WithPaginatorFactory(func(file.S3Client, *s3.ListObjectsV2Input) file.S3ListObjectsV2Paginator {
			return paginator
		}),
	)

	files, err := file.Glob(context.Background(), storage, []string{"app/**/*.locale.json"})
	require.NoError(t, err)
	assert.Equal(t, []string{"app/en.locale.json"}, files)
}

func TestContentType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "application/json", file.ContentType("a/en.locale.json"))
	assert.Equal(t, "application/octet-stream", file.ContentType("a/en.unknownext"))
}
