package managers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/flowbaker/infomaniak/pkg/domain"
)

var ErrCredentialNotFound = errors.New("credential not found")

// CredentialEntry is a stored credential payload, e.g. {"api_token": "..."}.
type CredentialEntry struct {
	Name            string
	IntegrationType domain.IntegrationType
	Payload         map[string]any
}

// executorCredentialManager serves credentials loaded from configuration.
type executorCredentialManager struct {
	mtx         sync.RWMutex
	credentials map[string]CredentialEntry
}

func NewExecutorCredentialManager(credentials map[string]CredentialEntry) domain.ExecutorCredentialManager {
	stored := make(map[string]CredentialEntry, len(credentials))
	for id, entry := range credentials {
		stored[id] = entry
	}

	return &executorCredentialManager{
		credentials: stored,
	}
}

func (e *executorCredentialManager) GetDecryptedCredential(ctx context.Context, credentialID string) ([]byte, error) {
	entry, err := e.get(credentialID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credential payload: %w", err)
	}

	return payload, nil
}

func (e *executorCredentialManager) GetFullCredential(ctx context.Context, credentialID string) (domain.Credential, error) {
	entry, err := e.get(credentialID)
	if err != nil {
		return domain.Credential{}, err
	}

	payload := make(map[string]any, len(entry.Payload))
	for key, value := range entry.Payload {
		payload[key] = value
	}

	return domain.Credential{
		ID:               credentialID,
		Name:             entry.Name,
		Type:             domain.CredentialTypeDefault,
		IntegrationType:  entry.IntegrationType,
		DecryptedPayload: payload,
	}, nil
}

// CredentialIDs lists the configured credential IDs in order.
func CredentialIDs(manager domain.ExecutorCredentialManager) []string {
	m, ok := manager.(*executorCredentialManager)
	if !ok {
		return nil
	}

	m.mtx.RLock()
	defer m.mtx.RUnlock()

	ids := make([]string, 0, len(m.credentials))
	for id := range m.credentials {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func (e *executorCredentialManager) get(credentialID string) (CredentialEntry, error) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()

	entry, ok := e.credentials[credentialID]
	if !ok {
		return CredentialEntry{}, fmt.Errorf("%w: %s", ErrCredentialNotFound, credentialID)
	}

	return entry, nil
}

// ExecutorCredentialGetter decodes a stored credential into T
type ExecutorCredentialGetter[T any] struct {
	manager domain.ExecutorCredentialManager
}

func NewExecutorCredentialGetter[T any](
	manager domain.ExecutorCredentialManager,
) *ExecutorCredentialGetter[T] {
	return &ExecutorCredentialGetter[T]{
		manager: manager,
	}
}

func (e *ExecutorCredentialGetter[T]) GetDecryptedCredential(ctx context.Context, credentialID string) (T, error) {
	var zero T

	decryptedBytes, err := e.manager.GetDecryptedCredential(ctx, credentialID)
	if err != nil {
		return zero, fmt.Errorf("failed to get credential: %w", err)
	}

	var result T
	if err := json.Unmarshal(decryptedBytes, &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal credential: %w", err)
	}

	return result, nil
}
