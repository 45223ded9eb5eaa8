package executor

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/flowbaker/infomaniak/pkg/domain"

	"gopkg.in/yaml.v3"
)

// Step is one action described in a YAML file for the run command.
type Step struct {
	Integration    string         `yaml:"integration"`
	Action         string         `yaml:"action"`
	Credential     string         `yaml:"credential"`
	ContinueOnFail bool           `yaml:"continue_on_fail"`
	Settings       map[string]any `yaml:"settings"`
	Items          []any          `yaml:"items"`
}

func ParseStep(r io.Reader) (Step, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Step{}, fmt.Errorf("failed to read step: %w", err)
	}

	var step Step

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	if err := decoder.Decode(&step); err != nil {
		if errors.Is(err, io.EOF) {
			return Step{}, errors.New("step file is empty")
		}
		return Step{}, fmt.Errorf("failed to parse step: %w", err)
	}

	if step.Integration == "" {
		return Step{}, errors.New("step is missing integration")
	}

	if step.Action == "" {
		return Step{}, errors.New("step is missing action")
	}

	return step, nil
}

// ExecuteParams maps the step onto the executor, using defaultCredential when
// the step names none.
func (s Step) ExecuteParams(defaultCredential string) ExecuteParams {
	credential := s.Credential
	if credential == "" {
		credential = defaultCredential
	}

	items := make([]domain.Item, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, item)
	}

	return ExecuteParams{
		IntegrationType: domain.IntegrationType(s.Integration),
		ActionType:      domain.IntegrationActionType(s.Action),
		CredentialID:    credential,
		Settings:        s.Settings,
		Items:           items,
		ContinueOnFail:  s.ContinueOnFail,
	}
}
