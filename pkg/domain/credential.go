package domain

import "context"

type CredentialType string

var (
	CredentialTypeDefault CredentialType = "default"
)

// Credential is a named secret as held by the credential store.
type Credential struct {
	ID              string
	Name            string
	Type            CredentialType
	IntegrationType IntegrationType

	DecryptedPayload map[string]any
}

type CredentialGetter[T any] interface {
	GetDecryptedCredential(ctx context.Context, credentialID string) (T, error)
}

type ExecutorCredentialManager interface {
	GetDecryptedCredential(ctx context.Context, credentialID string) ([]byte, error)
	GetFullCredential(ctx context.Context, credentialID string) (Credential, error)
}
