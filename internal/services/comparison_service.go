package services

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"ridgeai/internal/events"
	"ridgeai/internal/llm/client"
	"ridgeai/internal/models"
	"ridgeai/internal/repositories"
)

// Pipeline stage names emitted to the frontend while a comparison runs.
const (
	StageHashing     = "hashing"
	StageCredentials = "credentials"
	StageProvider    = "provider"
	StageParsing     = "parsing"
	StagePersisting  = "persisting"
	StageDone        = "done"
	StageFailed      = "failed"
)

// Error code prefixes the frontend matches on. Auth codes open the settings
// modal instead of the generic error banner.
const (
	errCodeAuth        = "ERR_AUTH"
	errCodeQuota       = "ERR_QUOTA"
	errCodeBadResponse = "ERR_BAD_RESPONSE"
	errCodeAnalysis    = "ERR_ANALYSIS"
)

// Environment variables consulted when no key is stored for a provider.
const (
	geminiEnvKey     = "GEMINI_API_KEY"
	openRouterEnvKey = "OPENROUTER_API_KEY"
)

// KeyStore is the credential surface the orchestrator needs; satisfied by
// KeyringService.
type KeyStore interface {
	GetApiKey(provider string) (string, error)
}

// ForensicAnalyzer is the single-call provider surface; satisfied by
// client.ForensicClient.
type ForensicAnalyzer interface {
	Analyze(ctx context.Context, prompt string, img1, img2 client.Image) (*client.Analysis, error)
}

// ClientFactory builds a provider client for one invocation, so each
// comparison picks up the latest stored settings and key.
type ClientFactory func(ctx context.Context, cfg client.Config) (ForensicAnalyzer, error)

// ComparisonService runs the full comparison pipeline: hash, resolve
// credentials, one provider call, parse, chain-of-custody merge, best-effort
// usage/history persistence.
type ComparisonService struct {
	context   context.Context
	settings  repositories.AppSettingsRepository
	keyring   KeyStore
	usage     UsageService
	history   HistoryService
	newClient ClientFactory
	envKey    func(name string) string
}

func NewComparisonService(settings repositories.AppSettingsRepository, keyring KeyStore, usage UsageService, history HistoryService) *ComparisonService {
	return &ComparisonService{
		settings: settings,
		keyring:  keyring,
		usage:    usage,
		history:  history,
		newClient: func(ctx context.Context, cfg client.Config) (ForensicAnalyzer, error) {
			return client.New(ctx, cfg)
		},
		envKey: os.Getenv,
	}
}

func (s *ComparisonService) Startup(ctx context.Context) error {
	s.context = ctx
	if s.settings == nil {
		return fmt.Errorf("settings repository not configured")
	}
	if s.keyring == nil {
		return fmt.Errorf("keyring service not configured")
	}
	if s.usage == nil {
		return fmt.Errorf("usage service not configured")
	}
	if s.history == nil {
		return fmt.Errorf("history service not configured")
	}
	return nil
}

// SetClientFactory swaps the provider client constructor; used by tests.
func (s *ComparisonService) SetClientFactory(f ClientFactory) {
	if f != nil {
		s.newClient = f
	}
}

// SetEnvLookup swaps the environment lookup used for fallback keys.
func (s *ComparisonService) SetEnvLookup(f func(name string) string) {
	if f != nil {
		s.envKey = f
	}
}

// Compare is the frontend-bound entry point. Image bytes arrive base64
// encoded from the webview. Failures come back as "CODE:message" strings so
// the frontend can route auth errors to key configuration.
func (s *ComparisonService) Compare(file1Name, file1MIME, file1B64, file2Name, file2MIME, file2B64 string) (*models.ComparisonResult, error) {
	data1, err := base64.StdEncoding.DecodeString(file1B64)
	if err != nil {
		return nil, fmt.Errorf("%s:invalid image data for %s", errCodeAnalysis, file1Name)
	}
	data2, err := base64.StdEncoding.DecodeString(file2B64)
	if err != nil {
		return nil, fmt.Errorf("%s:invalid image data for %s", errCodeAnalysis, file2Name)
	}

	ctx := s.context
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := s.compare(ctx,
		client.Image{Name: file1Name, MIME: file1MIME, Data: data1},
		client.Image{Name: file2Name, MIME: file2MIME, Data: data2},
	)
	if err != nil {
		return nil, codedError(err)
	}
	return result, nil
}

// compare runs the pipeline strictly in order; any failure discards all
// progress for this invocation.
func (s *ComparisonService) compare(ctx context.Context, img1, img2 client.Image) (*models.ComparisonResult, error) {
	if len(img1.Data) == 0 || len(img2.Data) == 0 {
		return nil, errors.New("both fingerprint images are required")
	}

	caseID := uuid.NewString()
	ctx = events.WithCase(ctx, caseID)

	emitStage(ctx, StageHashing)
	hash1 := contentHash(img1.Data)
	hash2 := contentHash(img2.Data)

	emitStage(ctx, StageCredentials)
	settings, err := s.settings.Get(ctx)
	if errors.Is(err, repositories.ErrStorageUnavailable) {
		// An unreadable store means the settings are absent, not that the
		// comparison is impossible. Fall back to defaults and keep going.
		log.Printf("settings store unavailable, using defaults: %v", err)
		events.Emit(ctx, events.ScanEventStage, events.NewWarn("settings store unavailable, using defaults"))
		settings = models.DefaultAppSettings()
	} else if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("load settings: %w", err))
	}
	apiKey, err := s.resolveKey(settings.Provider)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	emitStage(ctx, StageProvider)
	analyzer, err := s.newClient(ctx, client.Config{
		Provider:     settings.Provider,
		APIKey:       apiKey,
		DeepAnalysis: settings.DeepAnalysis,
	})
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	analysis, err := analyzer.Analyze(ctx, client.ForensicPrompt(), img1, img2)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	emitStage(ctx, StageParsing)
	result, err := client.ParseComparison(analysis.Content)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	// The custody block is assigned after decoding so nothing the provider
	// returns can supply or override it.
	result.ChainOfCustody = models.ChainOfCustody{
		CaseID:            caseID,
		File1Hash:         hash1,
		File2Hash:         hash2,
		Timestamp:         time.Now().UnixMilli(),
		IntegrityVerified: true,
	}

	emitStage(ctx, StagePersisting)
	s.persistOutcome(ctx, img1, img2, result, analysis.TotalTokens)

	emitStage(ctx, StageDone)
	done := events.NewSuccess("comparison complete")
	done.Stage = StageDone
	events.Emit(ctx, events.ScanEventDone, done)
	return result, nil
}

// persistOutcome records usage and history. Both are best effort: a storage
// failure is logged and the comparison still succeeds.
func (s *ComparisonService) persistOutcome(ctx context.Context, img1, img2 client.Image, result *models.ComparisonResult, tokens int64) {
	if stat, err := s.usage.RecordScan(ctx, tokens); err != nil {
		log.Printf("usage counter update failed: %v", err)
		events.Emit(ctx, events.ScanEventUsage, events.NewWarn("usage counter update failed"))
	} else {
		evt := events.NewInfo("usage updated")
		evt.Metadata = map[string]string{
			"day":   stat.Day,
			"scans": fmt.Sprintf("%d", stat.ScanCount),
		}
		events.Emit(ctx, events.ScanEventUsage, evt)
	}

	payload, err := json.Marshal(result)
	if err != nil {
		log.Printf("could not serialize result for history: %v", err)
		return
	}
	record := &models.HistoryRecord{
		File1Name:  img1.Name,
		File2Name:  img2.Name,
		File1MIME:  img1.MIME,
		File2MIME:  img2.MIME,
		File1Data:  img1.Data,
		File2Data:  img2.Data,
		ResultJSON: string(payload),
	}
	if _, err := s.history.Save(ctx, record); err != nil {
		log.Printf("could not save comparison to history: %v", err)
		events.Emit(ctx, events.ScanEventUsage, events.NewWarn("history save failed"))
	}
}

// resolveKey prefers the keyring entry and falls back to the environment.
func (s *ComparisonService) resolveKey(provider string) (string, error) {
	apiKey, err := s.keyring.GetApiKey(provider)
	if err != nil {
		// A broken keyring degrades to the env fallback rather than failing.
		log.Printf("keyring lookup failed for %s: %v", provider, err)
		apiKey = ""
	}
	if apiKey == "" {
		apiKey = s.envKey(envKeyName(provider))
	}
	if apiKey == "" {
		return "", fmt.Errorf("%w for provider %s", client.ErrAPIKeyMissing, provider)
	}
	return apiKey, nil
}

func envKeyName(provider string) string {
	if provider == models.ProviderOpenRouter {
		return openRouterEnvKey
	}
	return geminiEnvKey
}

func (s *ComparisonService) fail(ctx context.Context, err error) error {
	evt := events.NewError(err.Error())
	evt.Stage = StageFailed
	events.Emit(ctx, events.ScanEventStage, evt)
	return err
}

func emitStage(ctx context.Context, stage string) {
	events.Emit(ctx, events.ScanEventStage, events.NewStage(stage))
}

func codedError(err error) error {
	switch {
	case client.IsAuthError(err):
		return fmt.Errorf("%s:%s", errCodeAuth, err.Error())
	case errors.Is(err, client.ErrQuotaExceeded):
		return fmt.Errorf("%s:%s", errCodeQuota, err.Error())
	case errors.Is(err, client.ErrMalformedResponse):
		return fmt.Errorf("%s:%s", errCodeBadResponse, err.Error())
	default:
		return fmt.Errorf("%s:%s", errCodeAnalysis, err.Error())
	}
}

func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
