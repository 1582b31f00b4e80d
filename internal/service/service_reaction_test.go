package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-channel-reactor/internal/adapter"
	"github.com/MKhiriev/go-channel-reactor/internal/logger"
	"github.com/MKhiriev/go-channel-reactor/internal/mock"
	"github.com/MKhiriev/go-channel-reactor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestReactionSvc — хелпер для создания reactionService с моками;
// сессия уже аутентифицирована и выдаёт mockClient
func newTestReactionSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*reactionService,
	*mock.MockChannelGateway,
	*mock.MockReactionClient,
	*mock.MockHistoryRepository,
) {
	t.Helper()
	mockGateway := mock.NewMockChannelGateway(ctrl)
	mockClient := mock.NewMockReactionClient(ctrl)
	mockHistory := mock.NewMockHistoryRepository(ctrl)

	session := &sessionService{
		gateway:  mockGateway,
		logger:   logger.Nop(),
		settings: models.DefaultSettings(),
		client:   mockClient,
	}

	svc := NewReactionService(session, mockGateway, mockHistory, logger.Nop()).(*reactionService)

	return svc, mockGateway, mockClient, mockHistory
}

// ── SendSingle ───────────────────────────────────────────────────────────────

func TestReactionService_SendSingle_EmptyEmojis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestReactionSvc(t, ctrl)

	_, err := svc.SendSingle(context.Background(), "https://whatsapp.com/channel/ABC123/1", "   ")
	require.ErrorIs(t, err, ErrEmptyEmojis)
}

func TestReactionService_SendSingle_InvalidURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, _, _ := newTestReactionSvc(t, ctrl)

	mockGateway.EXPECT().IsValidChannelURL("not-a-url").Return(false)

	_, err := svc.SendSingle(context.Background(), "not-a-url", "👍")
	require.ErrorIs(t, err, ErrInvalidURL)
}

func TestReactionService_SendSingle_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, _, _ := newTestReactionSvc(t, ctrl)
	// сессия без клиента
	svc.session = &sessionService{gateway: mockGateway, logger: logger.Nop()}

	mockGateway.EXPECT().IsValidChannelURL(gomock.Any()).Return(true)

	_, err := svc.SendSingle(context.Background(), "https://whatsapp.com/channel/ABC123/1", "👍")
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestReactionService_SendSingle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, mockClient, mockHistory := newTestReactionSvc(t, ctrl)
	ctx := context.Background()

	url := "https://whatsapp.com/channel/ABC123/42"
	resp := models.ReactionResponse{
		Message: "Reaction sent",
		Data:    models.ReactionData{BotResponse: "ok"},
		Details: models.ReactionDetails{Reacts: "👍❤️"},
	}

	gomock.InOrder(
		mockGateway.EXPECT().IsValidChannelURL(url).Return(true),
		mockClient.EXPECT().SendReaction(ctx, url, "👍❤️").Return(resp, nil),
		mockHistory.EXPECT().Append(gomock.Any()).DoAndReturn(
			func(entry models.HistoryEntry) (models.HistoryEntry, error) {
				assert.Equal(t, models.KindSingle, entry.Kind)
				assert.Equal(t, models.StatusSuccess, entry.Status)
				assert.Equal(t, url, entry.URL)
				assert.Equal(t, "Reaction sent", entry.ResultMessage)
				require.NotNil(t, entry.DurationMs)
				return entry, nil
			},
		),
	)

	result, err := svc.SendSingle(ctx, "  "+url+"  ", " 👍❤️ ")
	require.NoError(t, err)
	assert.False(t, result.Failed)
	assert.Equal(t, "Reaction sent", result.Message)
	assert.Equal(t, "ok", result.BotResponse)
	assert.Equal(t, "👍❤️", result.Reacts)
	assert.Empty(t, result.PersistWarning)
}

func TestReactionService_SendSingle_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, mockClient, mockHistory := newTestReactionSvc(t, ctrl)
	ctx := context.Background()

	url := "https://whatsapp.com/channel/ABC123/42"
	statusErr := &adapter.StatusError{Code: 404, Message: "post not found"}

	gomock.InOrder(
		mockGateway.EXPECT().IsValidChannelURL(url).Return(true),
		mockClient.EXPECT().SendReaction(ctx, url, "🔥").Return(models.ReactionResponse{}, statusErr),
		mockHistory.EXPECT().Append(gomock.Any()).DoAndReturn(
			func(entry models.HistoryEntry) (models.HistoryEntry, error) {
				assert.Equal(t, models.StatusFailed, entry.Status)
				assert.Equal(t, "post not found", entry.ErrorMessage)
				return entry, nil
			},
		),
	)

	result, err := svc.SendSingle(ctx, url, "🔥")
	// сбой сервера — это результат, а не ошибка операции
	require.NoError(t, err)
	assert.True(t, result.Failed)
	assert.Equal(t, 404, result.StatusCode)
	assert.Equal(t, "post not found", result.ErrorMessage)
}

func TestReactionService_SendSingle_HistoryFlushWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, mockClient, mockHistory := newTestReactionSvc(t, ctrl)
	ctx := context.Background()

	url := "https://whatsapp.com/channel/ABC123/42"

	gomock.InOrder(
		mockGateway.EXPECT().IsValidChannelURL(url).Return(true),
		mockClient.EXPECT().SendReaction(ctx, url, "👍").Return(models.ReactionResponse{Message: "ok"}, nil),
		mockHistory.EXPECT().Append(gomock.Any()).Return(models.HistoryEntry{}, errors.New("disk full")),
	)

	result, err := svc.SendSingle(ctx, url, "👍")
	require.NoError(t, err)
	assert.False(t, result.Failed)
	assert.Contains(t, result.PersistWarning, "disk full")
}

// ── SendBatch ────────────────────────────────────────────────────────────────

func TestReactionService_SendBatch_FiltersInvalidItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, mockClient, mockHistory := newTestReactionSvc(t, ctrl)
	ctx := context.Background()

	requests := []models.ReactionRequest{
		{URL: "https://whatsapp.com/channel/ABC123/1", Emojis: "👍"},
		{URL: "bad", Emojis: "🔥"},
		{URL: "https://whatsapp.com/channel/ABC123/2", Emojis: "   "},
	}

	mockGateway.EXPECT().IsValidChannelURL("https://whatsapp.com/channel/ABC123/1").Return(true)
	mockGateway.EXPECT().IsValidChannelURL("bad").Return(false)
	// третий элемент отсеивается по пустым эмодзи до проверки URL

	mockClient.EXPECT().SendBatchReactions(ctx, gomock.Any(), models.BatchOptions{DelayMs: 500}).DoAndReturn(
		func(_ context.Context, forwarded []models.ReactionRequest, _ models.BatchOptions) ([]models.BatchItemResult, error) {
			require.Len(t, forwarded, 1, "до коллаборатора должен дойти только валидный элемент")
			assert.Equal(t, "https://whatsapp.com/channel/ABC123/1", forwarded[0].URL)
			return []models.BatchItemResult{{Success: true, Message: "ok"}}, nil
		},
	)
	mockHistory.EXPECT().Append(gomock.Any()).DoAndReturn(
		func(entry models.HistoryEntry) (models.HistoryEntry, error) {
			assert.Equal(t, models.KindBatch, entry.Kind)
			assert.Equal(t, models.StatusSuccess, entry.Status)
			assert.Equal(t, 1, entry.TotalCount)
			return entry, nil
		},
	)

	summary, err := svc.SendBatch(ctx, requests, 500)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, models.StatusSuccess, summary.Status)
	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 0, summary.FailedCount)
}

func TestReactionService_SendBatch_NoValidRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, _, _ := newTestReactionSvc(t, ctrl)

	mockGateway.EXPECT().IsValidChannelURL("bad").Return(false)

	_, err := svc.SendBatch(context.Background(), []models.ReactionRequest{{URL: "bad", Emojis: "👍"}}, 0)
	// ничего не отправлено и ничего не записано
	require.ErrorIs(t, err, ErrNoValidRequests)
}

func TestReactionService_SendBatch_PartialStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, mockClient, mockHistory := newTestReactionSvc(t, ctrl)
	ctx := context.Background()

	requests := []models.ReactionRequest{
		{URL: "https://whatsapp.com/channel/ABC123/1", Emojis: "👍"},
		{URL: "https://whatsapp.com/channel/ABC123/2", Emojis: "👍"},
		{URL: "https://whatsapp.com/channel/ABC123/3", Emojis: "👍"},
	}

	mockGateway.EXPECT().IsValidChannelURL(gomock.Any()).Return(true).Times(3)
	mockClient.EXPECT().SendBatchReactions(ctx, gomock.Any(), gomock.Any()).Return(
		[]models.BatchItemResult{
			{Success: true, Message: "ok"},
			{Success: false, Error: "http 404: post not found"},
			{Success: true, Message: "ok"},
		}, nil,
	)
	mockHistory.EXPECT().Append(gomock.Any()).DoAndReturn(
		func(entry models.HistoryEntry) (models.HistoryEntry, error) {
			assert.Equal(t, models.StatusPartial, entry.Status)
			require.NotNil(t, entry.SuccessCount)
			require.NotNil(t, entry.FailedCount)
			assert.Equal(t, 2, *entry.SuccessCount)
			assert.Equal(t, 1, *entry.FailedCount)
			return entry, nil
		},
	)

	summary, err := svc.SendBatch(ctx, requests, 0)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPartial, summary.Status)
	assert.Equal(t, 2, summary.SuccessCount)
	assert.Equal(t, 1, summary.FailedCount)
	assert.Len(t, summary.Results, 3)
}

func TestReactionService_SendBatch_WholeOperationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, mockClient, mockHistory := newTestReactionSvc(t, ctrl)
	ctx := context.Background()

	mockGateway.EXPECT().IsValidChannelURL(gomock.Any()).Return(true)
	mockClient.EXPECT().SendBatchReactions(ctx, gomock.Any(), gomock.Any()).Return(nil, context.Canceled)
	mockHistory.EXPECT().Append(gomock.Any()).DoAndReturn(
		func(entry models.HistoryEntry) (models.HistoryEntry, error) {
			assert.Equal(t, models.StatusFailed, entry.Status)
			assert.NotEmpty(t, entry.ErrorMessage)
			return entry, nil
		},
	)

	summary, err := svc.SendBatch(ctx, []models.ReactionRequest{{URL: "https://whatsapp.com/channel/ABC123/1", Emojis: "👍"}}, 0)
	require.NoError(t, err)
	assert.True(t, summary.Failed)
	assert.Equal(t, models.StatusFailed, summary.Status)
}

func TestReactionService_SendBatch_ClampsNegativeDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, mockClient, mockHistory := newTestReactionSvc(t, ctrl)
	ctx := context.Background()

	mockGateway.EXPECT().IsValidChannelURL(gomock.Any()).Return(true)
	mockClient.EXPECT().SendBatchReactions(ctx, gomock.Any(), models.BatchOptions{DelayMs: 0}).Return(
		[]models.BatchItemResult{{Success: true}}, nil,
	)
	mockHistory.EXPECT().Append(gomock.Any()).DoAndReturn(
		func(entry models.HistoryEntry) (models.HistoryEntry, error) { return entry, nil },
	)

	_, err := svc.SendBatch(ctx, []models.ReactionRequest{{URL: "https://whatsapp.com/channel/ABC123/1", Emojis: "👍"}}, -100)
	require.NoError(t, err)
}

// ── SendBatchFromFile ────────────────────────────────────────────────────────

func TestReactionService_SendBatchFromFile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, mockClient, mockHistory := newTestReactionSvc(t, ctrl)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "batch.json")
	payload := `[{"url":"https://whatsapp.com/channel/ABC123/1","emojis":"👍"},{"url":"bad","emojis":"🔥"}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	mockGateway.EXPECT().IsValidChannelURL("https://whatsapp.com/channel/ABC123/1").Return(true)
	mockGateway.EXPECT().IsValidChannelURL("bad").Return(false)
	mockClient.EXPECT().SendBatchReactions(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, forwarded []models.ReactionRequest, _ models.BatchOptions) ([]models.BatchItemResult, error) {
			require.Len(t, forwarded, 1)
			return []models.BatchItemResult{{Success: true, Message: "ok"}}, nil
		},
	)
	mockHistory.EXPECT().Append(gomock.Any()).DoAndReturn(
		func(entry models.HistoryEntry) (models.HistoryEntry, error) {
			assert.Equal(t, models.KindFile, entry.Kind)
			assert.Equal(t, path, entry.SourceFile)
			return entry, nil
		},
	)

	summary, err := svc.SendBatchFromFile(ctx, path, 0)
	require.NoError(t, err)
	assert.Equal(t, path, summary.SourceFile)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Skipped)
}

func TestReactionService_SendBatchFromFile_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestReactionSvc(t, ctrl)

	_, err := svc.SendBatchFromFile(context.Background(), filepath.Join(t.TempDir(), "nope.json"), 0)
	require.ErrorIs(t, err, ErrBatchFileRead)
}

func TestReactionService_SendBatchFromFile_NotAnArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestReactionSvc(t, ctrl)

	path := filepath.Join(t.TempDir(), "batch.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"url":"x","emojis":"y"}`), 0o644))

	_, err := svc.SendBatchFromFile(context.Background(), path, 0)
	require.ErrorIs(t, err, ErrBatchFileFormat)
}

// ── InspectURL ───────────────────────────────────────────────────────────────

func TestReactionService_InspectURL_Extracts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, _, _ := newTestReactionSvc(t, ctrl)

	url := "https://whatsapp.com/channel/0029VbAzDjIBFLgbEyadQb3y/178"
	mockGateway.EXPECT().IsValidChannelURL(url).Return(true)

	report := svc.InspectURL("  " + url + "  ")
	assert.True(t, report.Valid)
	assert.True(t, report.Extracted)
	assert.Equal(t, "0029VbAzDjIBFLgbEyadQb3y", report.ChannelID)
	assert.Equal(t, "178", report.PostID)
}

func TestReactionService_InspectURL_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, _, _ := newTestReactionSvc(t, ctrl)

	mockGateway.EXPECT().IsValidChannelURL("not-a-url").Return(false)

	report := svc.InspectURL("not-a-url")
	assert.False(t, report.Valid)
	assert.False(t, report.Extracted)
	assert.Empty(t, report.ChannelID)
}
