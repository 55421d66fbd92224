package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scenecache/cmd/scenecache/commands"
	"go.trai.ch/scenecache/internal/app"
	"go.trai.ch/scenecache/internal/build"
	"go.trai.ch/scenecache/internal/core/domain"
	"go.trai.ch/scenecache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	settings    domain.Settings
	configured  bool
	indexFunc   func(ctx context.Context, args []string, opts app.IndexOptions) ([]app.IndexResult, error)
	inspectFunc func(args []string) ([]app.ArtifactStatus, error)
	watchFunc   func(ctx context.Context, args []string, opts app.IndexOptions) error
	cleanFunc   func(args []string) error
}

func (m *mockApp) Configure(s domain.Settings) {
	m.settings = s
	m.configured = true
}

func (m *mockApp) Index(ctx context.Context, args []string, opts app.IndexOptions) ([]app.IndexResult, error) {
	if m.indexFunc != nil {
		return m.indexFunc(ctx, args, opts)
	}
	return nil, nil
}

func (m *mockApp) Inspect(args []string) ([]app.ArtifactStatus, error) {
	if m.inspectFunc != nil {
		return m.inspectFunc(args)
	}
	return nil, nil
}

func (m *mockApp) Watch(ctx context.Context, args []string, opts app.IndexOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, args, opts)
	}
	return nil
}

func (m *mockApp) Clean(args []string) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(args)
	}
	return nil
}

func (m *mockApp) GetLocalAnchorUsages(uint64) (int, error) {
	return 0, domain.ErrNotImplemented
}

func (m *mockApp) GetGuidUsages(string) (int, error) {
	return 0, domain.ErrNotImplemented
}

func (m *mockApp) GetComponentsFor(uint64) ([]uint64, error) {
	return nil, domain.ErrNotImplemented
}

// recordingLogger implements ports.Logger and commands.LogConfigurer.
type recordingLogger struct {
	json  bool
	level domain.LogLevel
}

func (l *recordingLogger) Debug(string) {}
func (l *recordingLogger) Info(string) {}
func (l *recordingLogger) Warn(string) {}
func (l *recordingLogger) Error(error) {}

func (l *recordingLogger) SetJSON(enable bool) { l.json = enable }
func (l *recordingLogger) SetLevel(level domain.LogLevel) { l.level = level }

func newCLI(t *testing.T, a commands.Application, args ...string) (*commands.CLI, *mocks.MockConfigLoader, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)

	cli := commands.New(a, loader, &recordingLogger{})
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	cli.SetArgs(args)
	return cli, loader, out
}

func TestCommands_Index(t *testing.T) {
	t.Run("wires flags over config", func(t *testing.T) {
		var capturedOpts app.IndexOptions
		var capturedArgs []string

		mock := &mockApp{
			indexFunc: func(_ context.Context, args []string, opts app.IndexOptions) ([]app.IndexResult, error) {
				capturedArgs = args
				capturedOpts = opts
				return []app.IndexResult{
					{Path: "a.unity", Outcome: app.OutcomeBuilt},
					{Path: "b.unity", Outcome: app.OutcomeBuilt},
					{Path: "c.unity", Outcome: app.OutcomeReused},
				}, nil
			},
		}

		fromFile := domain.DefaultSettings()
		fromFile.Jobs = 2
		fromFile.CheckFrequency = 50

		cli, loader, out := newCLI(t, mock,
			"index", "Assets", "--force", "--jobs", "8", "--staleness", "checksum")
		loader.EXPECT().Load(gomock.Any()).Return(fromFile, nil)

		require.NoError(t, cli.Execute(context.Background()))

		assert.Equal(t, []string{"Assets"}, capturedArgs)
		assert.True(t, capturedOpts.Force)
		require.True(t, mock.configured)
		assert.Equal(t, 8, mock.settings.Jobs)
		assert.Equal(t, 50, mock.settings.CheckFrequency)
		assert.Equal(t, domain.StalenessChecksum, mock.settings.Staleness)
		assert.Contains(t, out.String(), "2 built, 1 reused")
	})

	t.Run("uses explicit config file", func(t *testing.T) {
		mock := &mockApp{}
		cli, loader, _ := newCLI(t, mock, "index", "a.unity", "--config", "ci.yaml")
		loader.EXPECT().LoadFile("ci.yaml").Return(domain.DefaultSettings(), nil)

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, mock.configured)
	})

	t.Run("returns config errors", func(t *testing.T) {
		mock := &mockApp{
			indexFunc: func(context.Context, []string, app.IndexOptions) ([]app.IndexResult, error) {
				panic("should not be called")
			},
		}
		cli, loader, _ := newCLI(t, mock, "index", "a.unity")
		loader.EXPECT().Load(gomock.Any()).Return(domain.Settings{}, domain.ErrConfigParseFailed)

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrConfigParseFailed)
	})

	t.Run("rejects invalid flags", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
			want error
		}{
			{name: "jobs", args: []string{"--jobs", "0"}, want: domain.ErrInvalidJobs},
			{name: "check frequency", args: []string{"--check-frequency=-3"}, want: domain.ErrInvalidCheckFrequency},
			{name: "staleness", args: []string{"--staleness", "never"}, want: domain.ErrInvalidStalenessMode},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cli, loader, _ := newCLI(t, &mockApp{}, append([]string{"index", "a.unity"}, tt.args...)...)
				loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)

				err := cli.Execute(context.Background())
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.want.Error())
			})
		}
	})

	t.Run("returns error on index failure", func(t *testing.T) {
		mock := &mockApp{
			indexFunc: func(context.Context, []string, app.IndexOptions) ([]app.IndexResult, error) {
				return []app.IndexResult{{Path: "a.unity", Outcome: app.OutcomeFailed}}, errors.Join(domain.ErrIndexFailed, domain.ErrFormat)
			},
		}
		cli, loader, out := newCLI(t, mock, "index", "a.unity")
		loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrIndexFailed)
		assert.Contains(t, out.String(), "1 failed")
	})

	t.Run("shows usage when no paths provided", func(t *testing.T) {
		mock := &mockApp{
			indexFunc: func(context.Context, []string, app.IndexOptions) ([]app.IndexResult, error) {
				panic("should not be called")
			},
		}
		cli, _, out := newCLI(t, mock, "index")

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, out.String(), "Usage:")
	})
}

func TestCommands_LoggerFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)

	log := &recordingLogger{}
	cli := commands.New(&mockApp{}, loader, log)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"index", "a.unity", "--log-json", "--log-level", "debug"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, log.json)
	assert.Equal(t, domain.LogLevelDebug, log.level)
}

func TestCommands_Watch(t *testing.T) {
	var captured []string
	mock := &mockApp{
		watchFunc: func(_ context.Context, args []string, _ app.IndexOptions) error {
			captured = args
			return nil
		},
	}
	cli, loader, _ := newCLI(t, mock, "watch", "Assets/Scenes", "--debounce", "2s")
	loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []string{"Assets/Scenes"}, captured)
	assert.Equal(t, 2*time.Second, mock.settings.Debounce)
}

func TestCommands_Inspect(t *testing.T) {
	persisted := time.Now().Add(-time.Hour)
	mock := &mockApp{
		inspectFunc: func([]string) ([]app.ArtifactStatus, error) {
			return []app.ArtifactStatus{
				{
					Path: "main.unity",
					Handle: domain.CacheHandle{
						Cache: &domain.Cache{
							Nodes:     make([]domain.NodeDescription, 3),
							Documents: 2,
							Source:    domain.SourceInfo{Size: 2048},
						},
						DeserializedAt: persisted,
					},
				},
				{Path: "other.unity", Err: domain.ErrArtifactNotFound, Stale: true},
			}, nil
		},
	}
	cli, loader, out := newCLI(t, mock, "inspect", "main.unity", "other.unity")
	loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)

	require.NoError(t, cli.Execute(context.Background()))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "SOURCE")
	assert.Regexp(t, `main\.unity\s+completed\s+3\s+2\s+2\.0 KiB\s+1 hour ago\s+yes`, string(lines[1]))
	assert.Regexp(t, `other\.unity\s+not indexed\s+-`, string(lines[2]))
}

func TestCommands_Clean(t *testing.T) {
	var captured []string
	mock := &mockApp{
		cleanFunc: func(args []string) error {
			captured = args
			return nil
		},
	}
	cli, loader, _ := newCLI(t, mock, "clean", "Assets")
	loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []string{"Assets"}, captured)
}

func TestCommands_Query(t *testing.T) {
	t.Run("returns not implemented", func(t *testing.T) {
		cli, _, _ := newCLI(t, &mockApp{}, "query", "guid-usages", "--guid", "abc")

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrNotImplemented)
	})

	t.Run("requires its flag", func(t *testing.T) {
		cli, _, _ := newCLI(t, &mockApp{}, "query", "anchor-usages")

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotImplemented)
	})
}

func TestCommands_Version(t *testing.T) {
	cli, _, out := newCLI(t, &mockApp{}, "version")

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "scenecache version "+build.Version)
}
