package apiclient

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
)

// The backup controller is mounted under /api, unlike the rest of the API.
const backupsPath = "/api/backups"

func (c *Client) CreateBackup(ctx context.Context) (domain.BackupResult, error) {
	var result domain.BackupResult
	err := c.post(ctx, backupsPath+"/create", nil, struct{}{}, &result)
	return result, err
}

func (c *Client) ListBackups(ctx context.Context) ([]domain.Backup, error) {
	var backups []domain.Backup
	err := c.get(ctx, backupsPath, nil, &backups)
	return backups, err
}

func (c *Client) RestoreBackup(ctx context.Context, backupID int64) (domain.BackupResult, error) {
	var result domain.BackupResult
	if backupID <= 0 {
		return result, ErrMissingID
	}
	err := c.post(ctx, backupsPath+"/"+strconv.FormatInt(backupID, 10)+"/restore", nil, struct{}{}, &result)
	return result, err
}

func (c *Client) BackupStatus(ctx context.Context) (domain.BackupStatus, error) {
	var status domain.BackupStatus
	err := c.get(ctx, backupsPath+"/status", nil, &status)
	return status, err
}

func (c *Client) CleanupBackups(ctx context.Context) (domain.BackupResult, error) {
	var result domain.BackupResult
	err := c.delete(ctx, backupsPath+"/cleanup", &result)
	return result, err
}

// AskAI forwards a free-form question to the assistant and returns its answer.
func (c *Client) AskAI(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("question is required")
	}
	var answer domain.AIAnswer
	if err := c.post(ctx, "/ai/ask", nil, map[string]string{"question": question}, &answer); err != nil {
		return "", err
	}
	return answer.Answer, nil
}
