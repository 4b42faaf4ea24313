package usecase_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/deploycfg/internal/adapters/network"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

const (
	testPrivateKey  = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testProdKey     = "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	testStarlandKey = "0x5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a"
	testInfuraKey   = "infura-secret"
)

func testSecrets() *config.Secrets {
	return &config.Secrets{
		PrivateKey:         testPrivateKey,
		ProdPrivateKey:     testProdKey,
		StarlandPrivateKey: testStarlandKey,
		InfuraAPIKey:       testInfuraKey,
		ExplorerKeys: map[string]string{
			config.EnvEtherscanAPIKey: "etherscan-secret",
			config.EnvBscscanAPIKey:   "",
		},
	}
}

func testRuntime() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		ProjectRoot:    "/project",
		DataDir:        "/project/.deploycfg",
		NonInteractive: true,
		Secrets:        testSecrets(),
	}
}

func testProject(t *testing.T) *config.ProjectConfig {
	t.Helper()
	secrets := testSecrets()
	pc, err := usecase.BuildProjectConfig(network.NewResolver(secrets), secrets)
	require.NoError(t, err)
	return pc
}

// MockAccountDeriver is a mock implementation of AccountDeriver
type MockAccountDeriver struct {
	mock.Mock
}

func (m *MockAccountDeriver) Count(n *config.Network) int {
	args := m.Called(n)
	return args.Int(0)
}

func (m *MockAccountDeriver) AddressAt(n *config.Network, index int) (common.Address, bool, error) {
	args := m.Called(n, index)
	return args.Get(0).(common.Address), args.Bool(1), args.Error(2)
}

// MockChainIDFetcher is a mock implementation of ChainIDFetcher
type MockChainIDFetcher struct {
	mock.Mock
}

func (m *MockChainIDFetcher) FetchChainID(ctx context.Context, rpcURL string) (uint64, error) {
	args := m.Called(ctx, rpcURL)
	return args.Get(0).(uint64), args.Error(1)
}

// MockConfigEncoder is a mock implementation of ConfigEncoder
type MockConfigEncoder struct {
	mock.Mock
}

func (m *MockConfigEncoder) Encode(cfg *config.ProjectConfig, format usecase.ExportFormat) ([]byte, error) {
	args := m.Called(cfg, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockFileWriter is a mock implementation of FileWriter
type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) WriteFile(ctx context.Context, path string, content []byte) error {
	args := m.Called(ctx, path, content)
	return args.Error(0)
}

func (m *MockFileWriter) FileExists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

// MockLocalConfigStore is a mock implementation of LocalConfigStore
type MockLocalConfigStore struct {
	mock.Mock
}

func (m *MockLocalConfigStore) Exists() bool {
	return m.Called().Bool(0)
}

func (m *MockLocalConfigStore) Load(ctx context.Context) (*config.LocalConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.LocalConfig), args.Error(1)
}

func (m *MockLocalConfigStore) Save(ctx context.Context, cfg *config.LocalConfig) error {
	return m.Called(ctx, cfg).Error(0)
}

func (m *MockLocalConfigStore) GetPath() string {
	return m.Called().String(0)
}

// MockNetworkSelector is a mock implementation of NetworkSelector
type MockNetworkSelector struct {
	mock.Mock
}

func (m *MockNetworkSelector) SelectNetwork(ctx context.Context, keys []string, prompt string) (string, error) {
	args := m.Called(ctx, keys, prompt)
	return args.String(0), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}
