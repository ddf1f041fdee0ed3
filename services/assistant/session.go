package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smartmeet/config"
	"smartmeet/models"
	"smartmeet/utils"
)

// Session state lives in Redis as one JSON blob per conversation, expiring
// after the configured idle TTL. Losing the blob cancels the attempt; it
// never touches committed meetings.

func sessionTTL() time.Duration {
	return time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
}

func loadSession(ctx context.Context, sessionID string) (*models.ScheduleSession, error) {
	if sessionID == "" {
		return nil, NewSessionError("session not initialized")
	}

	cacheClient := utils.GetSessionCacheClient()
	data, err := cacheClient.Get(ctx, sessionID).Result()
	if err != nil {
		return nil, NewSessionError(fmt.Sprintf("session %s not found or expired", sessionID))
	}

	var session models.ScheduleSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse session %s: %w", sessionID, err)
	}
	return &session, nil
}

func saveSession(ctx context.Context, session *models.ScheduleSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", session.SessionID, err)
	}

	cacheClient := utils.GetSessionCacheClient()
	if err := cacheClient.Set(ctx, session.SessionID, data, sessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store session %s: %w", session.SessionID, err)
	}
	return nil
}

func deleteSession(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	utils.GetSessionCacheClient().Del(ctx, sessionID)
}
