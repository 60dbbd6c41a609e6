package samples

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned for an id with no stored sample.
var ErrNotFound = errors.New("sample not found")

// Service defines persistence operations for wave samples.
type Service interface {
	List() ([]Sample, error)
	Get(id string) (Sample, error)
	Create(s Sample) (Sample, error)
	Update(id string, mutate func(*Sample) error) (Sample, error)
	Delete(id string) error
}

var _ Service = (*fileService)(nil)

// fileService stores each sample as a JSON file under baseDir.
type fileService struct {
	baseDir string
	log     *zap.Logger
}

// NewFileService creates a sample service rooted at dir (created if missing).
func NewFileService(dir string, log *zap.Logger) (Service, error) {
	if dir == "" {
		return nil, errors.New("empty samples dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &fileService{baseDir: dir, log: log}, nil
}

func (s *fileService) samplePath(id string) string { return filepath.Join(s.baseDir, id+".json") }

// List loads all sample JSON files sorted by creation time, newest first.
// Unreadable or corrupt files are skipped.
func (s *fileService) List() ([]Sample, error) {
	dir, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}
	var files []fs.FileInfo
	for _, de := range dir {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		files = append(files, info)
	}

	samples := make([]Sample, 0, len(files))
	for _, fi := range files {
		b, err := os.ReadFile(filepath.Join(s.baseDir, fi.Name()))
		if err != nil {
			s.log.Warn("skipping unreadable sample", zap.String("file", fi.Name()), zap.Error(err))
			continue
		}
		var smp Sample
		if err := json.Unmarshal(b, &smp); err != nil || smp.ID == "" {
			s.log.Warn("skipping corrupt sample", zap.String("file", fi.Name()), zap.Error(err))
			continue
		}
		if strings.TrimSpace(smp.CreatedAt) == "" { // backfill from file mtime
			smp.CreatedAt = fi.ModTime().UTC().Format(time.RFC3339Nano)
		}
		samples = append(samples, smp)
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return createdAt(samples[i]).After(createdAt(samples[j]))
	})
	return samples, nil
}

func createdAt(s Sample) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s.CreatedAt)
	return t
}

func (s *fileService) Get(id string) (Sample, error) {
	if id == "" {
		return Sample{}, errors.New("empty id")
	}
	if _, err := uuid.Parse(id); err != nil {
		return Sample{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	b, err := os.ReadFile(s.samplePath(id))
	if errors.Is(err, fs.ErrNotExist) {
		return Sample{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Sample{}, err
	}
	var smp Sample
	if err := json.Unmarshal(b, &smp); err != nil {
		return Sample{}, err
	}
	if smp.ID == "" {
		return Sample{}, errors.New("sample missing id")
	}
	return smp, nil
}

func (s *fileService) Create(smp Sample) (Sample, error) {
	if err := smp.Validate(); err != nil {
		return Sample{}, err
	}
	smp.ID = uuid.NewString()
	if strings.TrimSpace(smp.CreatedAt) == "" {
		smp.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}
	if err := s.write(smp); err != nil {
		return Sample{}, err
	}
	s.log.Info("sample created", zap.String("id", smp.ID), zap.String("label", smp.Label))
	return smp, nil
}

func (s *fileService) Update(id string, mutate func(*Sample) error) (Sample, error) {
	cur, err := s.Get(id)
	if err != nil {
		return Sample{}, err
	}
	if mutate != nil {
		if err := mutate(&cur); err != nil {
			return Sample{}, err
		}
	}
	cur.ID = id
	if strings.TrimSpace(cur.CreatedAt) == "" {
		cur.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}
	if err := cur.Validate(); err != nil {
		return Sample{}, err
	}
	if err := s.write(cur); err != nil {
		return Sample{}, err
	}
	return cur, nil
}

func (s *fileService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := os.Remove(s.samplePath(id)); err != nil {
		return err
	}
	s.log.Info("sample deleted", zap.String("id", id))
	return nil
}

// write replaces the sample file through a temporary file and a rename.
func (s *fileService) write(smp Sample) error {
	data, err := json.MarshalIndent(smp, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.samplePath(smp.ID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.samplePath(smp.ID))
}
