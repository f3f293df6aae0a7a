// Package store persists the site list as a JSON file. Saves are full
// overwrites; there is exactly one writer, so no file locking is needed.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vigil-sh/vigil/internal/domain"
)

// Store reads and writes the site list at a fixed path
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a store backed by the file at path
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the store's file path
func (s *Store) Path() string {
	return s.path
}

// Load reads all sites from the store file. Monitoring state fields are
// reset to their initial values: an in-progress outage is not durable
// across restarts. Returns ErrStoreNotFound if the file does not exist.
func (s *Store) Load() ([]domain.Site, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]domain.Site, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("reading site store: %w", err)
	}

	var sites []domain.Site
	if err := json.Unmarshal(data, &sites); err != nil {
		return nil, fmt.Errorf("unmarshaling site store: %w", err)
	}

	for i := range sites {
		sites[i] = sites[i].WithDefaults()
		sites[i].ResetState()
	}

	return sites, nil
}

// Save overwrites the store file with the given site list
func (s *Store) Save(sites []domain.Site) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(sites)
}

func (s *Store) save(sites []domain.Site) error {
	if sites == nil {
		sites = []domain.Site{}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating store directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(sites, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling sites: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("opening site store: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing site store: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing site store: %w", err)
	}

	return nil
}

// Add validates the site and appends it to the store. A missing store file
// is treated as an empty list. Returns ErrSiteExists if a site with the
// same URL is already present.
func (s *Store) Add(site domain.Site) error {
	site = site.WithDefaults()
	if err := site.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sites, err := s.load()
	if err != nil && err != domain.ErrStoreNotFound {
		return err
	}

	for _, existing := range sites {
		if existing.URL == site.URL {
			return fmt.Errorf("%w: %s", domain.ErrSiteExists, site.URL)
		}
	}

	return s.save(append(sites, site))
}

// Remove deletes the site with the given URL from the store
func (s *Store) Remove(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sites, err := s.load()
	if err != nil {
		if err == domain.ErrStoreNotFound {
			return fmt.Errorf("%w: %s", domain.ErrSiteNotFound, url)
		}
		return err
	}

	kept := sites[:0]
	found := false
	for _, site := range sites {
		if site.URL == url {
			found = true
			continue
		}
		kept = append(kept, site)
	}
	if !found {
		return fmt.Errorf("%w: %s", domain.ErrSiteNotFound, url)
	}

	return s.save(kept)
}
