package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	redis "github.com/redis/go-redis/v9"
)

// FileStore keeps the session in a JSON file readable only by the owner.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the zero state when the file does not exist yet.
func (f *FileStore) Load(_ context.Context) (State, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return State{}, nil
	}
	if err != nil {
		return State{}, err
	}
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return State{}, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return state, nil
}

func (f *FileStore) Save(_ context.Context, state State) error {
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// RedisStore keeps the session in a single hash.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = "precificapro:session"
	}
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) Load(ctx context.Context) (State, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return State{}, err
	}
	return State{
		AccessToken:  fields["accessToken"],
		RefreshToken: fields["refreshToken"],
		Theme:        Theme(fields["theme"]),
	}, nil
}

func (r *RedisStore) Save(ctx context.Context, state State) error {
	return r.client.HSet(ctx, r.key, map[string]any{
		"accessToken":  state.AccessToken,
		"refreshToken": state.RefreshToken,
		"theme":        string(state.Theme),
	}).Err()
}
