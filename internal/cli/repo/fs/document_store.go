package fs

import (
	"GuardaSenha/internal/cli/model"
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DocumentStore: файловое хранилище для экспортируемых пакетов и временных
// копий импортируемых файлов.
type DocumentStore struct {
	// Dir: выделенная папка приложения для экспорта.
	Dir string
	// TempDir: каталог для временных копий; пусто: os.TempDir().
	TempDir string
}

// NewDocumentStore создаёт хранилище поверх папки экспорта.
func NewDocumentStore(dir string) DocumentStore {
	return DocumentStore{Dir: dir}
}

func (d DocumentStore) exportDir() (string, error) {
	if d.Dir == "" {
		return "", errors.New("empty export dir")
	}
	if err := os.MkdirAll(d.Dir, 0o700); err != nil {
		return "", err
	}
	return d.Dir, nil
}

// WriteExport сохраняет содержимое пакета в новый файл папки экспорта и возвращает путь.
// Существующие файлы не перезаписываются.
func (d DocumentStore) WriteExport(content string) (string, error) {
	dir, err := d.exportDir()
	if err != nil {
		return "", err
	}
	stamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("guardasenha-%s.json", stamp))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, os.ErrExist) {
		// два экспорта в одну секунду
		path = filepath.Join(dir, fmt.Sprintf("guardasenha-%s-%s.json", stamp, uuid.NewString()[:8]))
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	}
	if err != nil {
		return "", err
	}
	if _, err := io.WriteString(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

// StagedFile: временная копия выбранного пользователем файла.
type StagedFile struct {
	Path string
}

// Read возвращает содержимое временной копии.
func (f *StagedFile) Read() ([]byte, error) {
	return os.ReadFile(f.Path)
}

// Release удаляет временную копию. Повторный вызов безопасен.
func (f *StagedFile) Release() error {
	if f == nil || f.Path == "" {
		return nil
	}
	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Stage копирует выбранный файл во временный каталог под уникальным именем.
// Пустой путь означает, что выбор отменён (model.ErrImportCancelled).
func (d DocumentStore) Stage(picked string) (*StagedFile, error) {
	picked = strings.TrimRight(picked, trailingSpace)
	if picked == "" {
		return nil, model.ErrImportCancelled
	}
	src, err := os.Open(picked)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	tmp := d.TempDir
	if tmp == "" {
		tmp = os.TempDir()
	}
	dstPath := filepath.Join(tmp, "guardasenha-import-"+uuid.NewString()+".json")
	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, err
	}
	staged := &StagedFile{Path: dstPath}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = staged.Release()
		return nil, err
	}
	if err := dst.Close(); err != nil {
		_ = staged.Release()
		return nil, err
	}
	return staged, nil
}

// ReadPickedPath читает путь к файлу из r (одна строка). Пустая строка или EOF: отмена.
func ReadPickedPath(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	path := strings.TrimRight(line, trailingSpace)
	if path == "" {
		return "", model.ErrImportCancelled
	}
	return path, nil
}

// trailingSpace: хвост строки, который терминал добавляет к выбранному пути.
const trailingSpace = " \t\r\n"
