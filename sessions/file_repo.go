package sessions

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const stateFileName = "session.json"

// FileRepo stores the session as a JSON key-value file under a data folder,
// the CLI counterpart of the browser's localStorage area.
type FileRepo struct {
	folder string
}

var _ Repo = (*FileRepo)(nil)

// NewFileRepo returns a FileRepo rooted at the given folder. The folder is
// created lazily on the first Save.
func NewFileRepo(folder string) *FileRepo {
	return &FileRepo{folder: folder}
}

func (fr *FileRepo) Save(token string, expiresAt time.Time) error {
	if err := os.MkdirAll(fr.folder, 0o700); err != nil {
		return fmt.Errorf("sessions.FileRepo.Save: %w", err)
	}

	values := map[string]string{
		tokenKey:     token,
		expiresAtKey: strconv.FormatInt(expiresAt.UnixMilli(), 10),
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("sessions.FileRepo.Save: %w", err)
	}

	if err := os.WriteFile(fr.path(), data, 0o600); err != nil {
		return fmt.Errorf("sessions.FileRepo.Save: %w", err)
	}
	return nil
}

func (fr *FileRepo) Read() (Session, error) {
	data, err := os.ReadFile(fr.path())
	if errors.Is(err, fs.ErrNotExist) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("sessions.FileRepo.Read: %w", err)
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return Session{}, fmt.Errorf("sessions.FileRepo.Read: %w", err)
	}

	session := Session{Token: values[tokenKey]}
	if raw := values[expiresAtKey]; raw != "" {
		millis, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			session.ExpiresAt = time.UnixMilli(millis)
		}
	}
	return session, nil
}

// Clear removes the whole state file. Anything else a collaborator stored in
// it goes too, matching the broad-clear policy of the browser client.
func (fr *FileRepo) Clear() error {
	err := os.Remove(fr.path())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("sessions.FileRepo.Clear: %w", err)
	}
	return nil
}

func (fr *FileRepo) path() string {
	return filepath.Join(fr.folder, stateFileName)
}
