package domain

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type CreateIntegrationParams struct {
	CredentialID string
}

type IntegrationCreator interface {
	CreateIntegration(ctx context.Context, p CreateIntegrationParams) (IntegrationExecutor, error)
}

type IntegrationExecutor interface {
	Execute(ctx context.Context, params IntegrationInput) (IntegrationOutput, error)
}

type IntegrationPeeker interface {
	Peek(ctx context.Context, params PeekParams) (PeekResult, error)
}

type IntegrationConnectionTester interface {
	TestConnection(ctx context.Context, params TestConnectionParams) (bool, error)
}

type TestConnectionParams struct {
	Credential Credential
}

type SelectIntegrationParams struct {
	IntegrationType IntegrationType
}

type IntegrationSelector interface {
	RegisterCreator(integrationType IntegrationType, creator IntegrationCreator)
	SelectCreator(ctx context.Context, params SelectIntegrationParams) (IntegrationCreator, error)
	RegisterConnectionTester(integrationType IntegrationType, connectionTester IntegrationConnectionTester)
	SelectConnectionTester(ctx context.Context, params SelectIntegrationParams) (IntegrationConnectionTester, error)
	RegisterSchema(schema Integration)
	SelectSchema(ctx context.Context, params SelectIntegrationParams) (Integration, error)
	Schemas() []Integration
}

type integrationSelector struct {
	mtx                     sync.RWMutex
	creatorsByType          map[IntegrationType]IntegrationCreator
	connectionTestersByType map[IntegrationType]IntegrationConnectionTester
	schemasByType           map[IntegrationType]Integration
}

func NewIntegrationSelector() IntegrationSelector {
	return &integrationSelector{
		creatorsByType:          make(map[IntegrationType]IntegrationCreator),
		connectionTestersByType: make(map[IntegrationType]IntegrationConnectionTester),
		schemasByType:           make(map[IntegrationType]Integration),
	}
}

func (s *integrationSelector) RegisterCreator(integrationType IntegrationType, creator IntegrationCreator) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.creatorsByType[integrationType] = creator
}

func (s *integrationSelector) SelectCreator(ctx context.Context, params SelectIntegrationParams) (IntegrationCreator, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	creator, ok := s.creatorsByType[params.IntegrationType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIntegrationNotFound, params.IntegrationType)
	}

	return creator, nil
}

func (s *integrationSelector) RegisterConnectionTester(integrationType IntegrationType, connectionTester IntegrationConnectionTester) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.connectionTestersByType[integrationType] = connectionTester
}

func (s *integrationSelector) SelectConnectionTester(ctx context.Context, params SelectIntegrationParams) (IntegrationConnectionTester, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	connectionTester, ok := s.connectionTestersByType[params.IntegrationType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIntegrationNotFound, params.IntegrationType)
	}

	return connectionTester, nil
}

func (s *integrationSelector) RegisterSchema(schema Integration) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.schemasByType[schema.ID] = schema
}

func (s *integrationSelector) SelectSchema(ctx context.Context, params SelectIntegrationParams) (Integration, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	schema, ok := s.schemasByType[params.IntegrationType]
	if !ok {
		return Integration{}, fmt.Errorf("%w: %s", ErrIntegrationNotFound, params.IntegrationType)
	}

	return schema, nil
}

// Schemas returns every registered schema sorted by ID.
func (s *integrationSelector) Schemas() []Integration {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	schemas := make([]Integration, 0, len(s.schemasByType))
	for _, schema := range s.schemasByType {
		schemas = append(schemas, schema)
	}

	sort.Slice(schemas, func(i, j int) bool {
		return schemas[i].ID < schemas[j].ID
	})

	return schemas
}
