// Package memory provides an in-memory RepositorySource.
//
// It backs pipeline tests and the CLI's offline mode, where repositories are
// read from a JSON dump of the hosting API instead of the network.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/custodia-labs/repofolio/internal/core/domain"
	"github.com/custodia-labs/repofolio/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.RepositorySource = (*Source)(nil)

// Operation names a RepositorySource call, used to inject failures.
type Operation string

const (
	OpCheckQuota       Operation = "check_quota"
	OpListRepositories Operation = "list_repositories"
	OpGetRepository    Operation = "get_repository"
	OpGetLanguages     Operation = "get_languages"
	OpGetReadme        Operation = "get_readme"
	OpListDirectory    Operation = "list_directory"
)

// Source is an in-memory implementation of driven.RepositorySource.
// Data is keyed by repository full name ("owner/name").
type Source struct {
	mu           sync.Mutex
	repositories []domain.RawRepository
	languages    map[string]map[string]int
	readmes      map[string]string
	directories  map[string][]domain.DirectoryEntry
	failures     map[Operation]error
	quota        *domain.Quota
	calls        []Operation
}

// NewSource creates a source serving repos. Quota is unlimited until SetQuota.
func NewSource(repos ...domain.RawRepository) *Source {
	return &Source{
		repositories: append([]domain.RawRepository{}, repos...),
		languages:    make(map[string]map[string]int),
		readmes:      make(map[string]string),
		directories:  make(map[string][]domain.DirectoryEntry),
		failures:     make(map[Operation]error),
	}
}

// NewSourceFromJSON reads a JSON array of raw repositories.
// Anything other than an array fails with domain.ErrInvalidInput.
func NewSourceFromJSON(r io.Reader) (*Source, error) {
	var raws []domain.RawRepository
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, fmt.Errorf("%w: decode repositories: %v", domain.ErrInvalidInput, err)
	}
	if raws == nil {
		return nil, fmt.Errorf("%w: expected a JSON array of repositories", domain.ErrInvalidInput)
	}
	return NewSource(raws...), nil
}

// SetLanguages sets the language breakdown for fullName.
func (s *Source) SetLanguages(fullName string, langs map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.languages[fullName] = langs
}

// SetReadme sets the README text for fullName.
func (s *Source) SetReadme(fullName, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readmes[fullName] = text
}

// SetDirectory sets the entries listed at fullName/dir.
func (s *Source) SetDirectory(fullName, dir string, entries []domain.DirectoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.directories[fullName+"/"+dir] = entries
}

// Fail makes every call of op return err. A nil err clears the failure.
func (s *Source) Fail(op Operation, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// SetQuota limits the number of quota-consuming calls.
func (s *Source) SetQuota(q domain.Quota) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quota = &q
}

// Calls returns the operations issued so far, in order.
func (s *Source) Calls() []Operation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Operation(nil), s.calls...)
}

// CheckQuota returns the configured quota, or an unlimited one.
func (s *Source) CheckQuota(_ context.Context) (domain.Quota, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, OpCheckQuota)
	return s.checkQuota()
}

func (s *Source) checkQuota() (domain.Quota, error) {
	if err := s.failures[OpCheckQuota]; err != nil {
		return domain.Quota{}, &domain.QuotaCheckError{Err: err}
	}
	if s.quota == nil {
		return domain.UnlimitedQuota, nil
	}
	return *s.quota, nil
}

// consume records op, checks the quota and spends one call.
// Caller must hold the lock.
func (s *Source) consume(op Operation) error {
	s.calls = append(s.calls, op)
	q, err := s.checkQuota()
	if err != nil {
		return err
	}
	if s.quota != nil {
		if q.Exhausted() {
			return &domain.QuotaExceededError{Limit: q.Limit, ResetAt: q.ResetAt}
		}
		s.quota.Remaining--
	}
	return s.failures[op]
}

// ListRepositories returns the repositories owned by subject, or all of them
// for the authenticated identity.
func (s *Source) ListRepositories(_ context.Context, subject string) ([]domain.RawRepository, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.consume(OpListRepositories); err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) || errors.Is(err, domain.ErrQuotaCheck) {
			return nil, err
		}
		return nil, &domain.FetchError{Operation: "list repositories", Resource: subject, Err: err}
	}

	result := make([]domain.RawRepository, 0, len(s.repositories))
	for _, r := range s.repositories {
		if subject != "" && r.OwnerLogin() != subject {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

// GetRepository returns owner/name or a FetchError wrapping domain.ErrNotFound.
func (s *Source) GetRepository(_ context.Context, owner, name string) (*domain.RawRepository, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fullName := owner + "/" + name
	if err := s.consume(OpGetRepository); err != nil {
		return nil, &domain.FetchError{Operation: "get repository", Resource: fullName, Err: err}
	}
	for _, r := range s.repositories {
		if r.FullName == fullName {
			repo := r
			return &repo, nil
		}
	}
	return nil, &domain.FetchError{Operation: "get repository", Resource: fullName, Err: domain.ErrNotFound}
}

// GetLanguages returns the configured languages, or an empty map.
func (s *Source) GetLanguages(_ context.Context, owner, name string) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fullName := owner + "/" + name
	if err := s.consume(OpGetLanguages); err != nil {
		return nil, &domain.FetchError{Operation: "get languages", Resource: fullName, Err: err}
	}
	result := make(map[string]int)
	for lang, n := range s.languages[fullName] {
		result[lang] = n
	}
	return result, nil
}

// GetReadmeText returns the configured README, or nil when none is set.
func (s *Source) GetReadmeText(_ context.Context, owner, name string) (*string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fullName := owner + "/" + name
	if err := s.consume(OpGetReadme); err != nil {
		return nil, &domain.FetchError{Operation: "get readme", Resource: fullName, Err: err}
	}
	text, ok := s.readmes[fullName]
	if !ok {
		return nil, nil
	}
	return &text, nil
}

// ListDirectory returns the configured entries; errors yield an empty slice.
func (s *Source) ListDirectory(_ context.Context, owner, name, path string) []domain.DirectoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.consume(OpListDirectory); err != nil {
		return []domain.DirectoryEntry{}
	}
	return append([]domain.DirectoryEntry{}, s.directories[owner+"/"+name+"/"+path]...)
}
