package presets

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	ErrNotFound      = errors.New("preset does not exist")
	ErrDuplicateName = errors.New("preset name is already taken")
	ErrBadFormat     = errors.New("preset data format is not correct")
	ErrBadExtension  = errors.New("incorrect file extension")
	ErrFileExists    = errors.New("file already exists")
	ErrEmptyName     = errors.New("name can't be empty")
)

// Store reads and writes presets in a single JSON file under dir. All
// operations re-read the file so external edits are picked up; the mutex
// only guards against concurrent writers within this process.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open prepares a store under dir, creating the directory and seeding the
// built-in solar-system preset when the store file does not exist yet.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{dir: dir}
	path := s.path()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.write([]Preset{BuiltinSolarSystem()}); err != nil {
			return nil, fmt.Errorf("seed builtin preset: %w", err)
		}
	} else if err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the data directory the store lives in.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path() string {
	return filepath.Join(s.dir, StoreFileName)
}

// All returns every stored preset in file order.
func (s *Store) All() ([]Preset, error) {
	data, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodePresets(data)
}

// Names returns the display names of all stored presets.
func (s *Store) Names() ([]string, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	return names, nil
}

// Get looks a preset up by display name.
func (s *Store) Get(name string) (Preset, error) {
	all, err := s.All()
	if err != nil {
		return Preset{}, err
	}
	std := StandardizeName(name)
	for _, p := range all {
		if p.StandardizedName == std {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Save appends a preset, rejecting a standardized name that is already
// taken.
func (s *Store) Save(p Preset) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	p.StandardizedName = StandardizeName(p.Name)
	if err := getValidator().Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.All()
	if err != nil {
		return err
	}
	for _, existing := range all {
		if existing.StandardizedName == p.StandardizedName {
			return fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
	}
	return s.write(append(all, p))
}

// Remove deletes the preset with the given display name.
func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.All()
	if err != nil {
		return err
	}
	std := StandardizeName(name)
	kept := all[:0]
	found := false
	for _, p := range all {
		if p.StandardizedName == std {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s.write(kept)
}

// ImportFile merges every preset from an external preset file into the
// store. Presets whose standardized name is already taken are rejected as a
// whole, leaving the store untouched.
func (s *Store) ImportFile(path string) error {
	if !strings.HasSuffix(path, Extension) {
		return fmt.Errorf("%w: want %s", ErrBadExtension, Extension)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read preset file: %w", err)
	}
	incoming, err := decodePresets(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.All()
	if err != nil {
		return err
	}
	taken := make(map[string]struct{}, len(all))
	for _, p := range all {
		taken[p.StandardizedName] = struct{}{}
	}
	for _, p := range incoming {
		p.StandardizedName = StandardizeName(p.Name)
		if _, dup := taken[p.StandardizedName]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		taken[p.StandardizedName] = struct{}{}
		all = append(all, p)
	}
	return s.write(all)
}

// ExportFile writes the whole store to dir/name with the preset extension
// appended when missing. Refuses to overwrite an existing file.
func (s *Store) ExportFile(dir, name string) (string, error) {
	name = strings.TrimSuffix(filepath.Base(name), Extension)
	if name == "" {
		return "", ErrEmptyName
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("export directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("export path %q is not a directory", dir)
	}

	all, err := s.All()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name+Extension)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrFileExists, path)
	}
	data, err := json.MarshalIndent(all, "", "    ")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, data, 0o644)
}

func (s *Store) write(all []Preset) error {
	data, err := json.MarshalIndent(all, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0o644)
}

func decodePresets(data []byte) ([]Preset, error) {
	var all []Preset
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	v := getValidator()
	for _, p := range all {
		if err := v.Struct(p); err != nil {
			return nil, fmt.Errorf("%w: preset %q: %v", ErrBadFormat, p.Name, err)
		}
	}
	return all, nil
}

// DefaultDataDir is the per-user application data directory the store lives
// in when no override is configured.
func DefaultDataDir() (string, error) {
	base, err := userDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "SolarApp"), nil
}
