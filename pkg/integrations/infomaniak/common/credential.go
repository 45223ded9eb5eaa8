package common

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/flowbaker/infomaniak/pkg/clients/infomaniak"
	"github.com/flowbaker/infomaniak/pkg/domain"

	"github.com/rs/zerolog/log"
)

type Credential struct {
	APIToken string `json:"api_token"`
}

// ClientOptions maps the shared integration dependencies onto client options.
func ClientOptions(deps domain.IntegrationDeps) []infomaniak.ClientOption {
	options := []infomaniak.ClientOption{}

	if deps.APIBaseURL != "" {
		options = append(options, infomaniak.WithBaseURL(deps.APIBaseURL))
	}

	if deps.HTTPClient != nil {
		options = append(options, infomaniak.WithHTTPClient(deps.HTTPClient))
	}

	if deps.UserAgent != "" {
		options = append(options, infomaniak.WithUserAgent(deps.UserAgent))
	}

	if deps.RequestObserver != nil {
		options = append(options, infomaniak.WithObserver(deps.RequestObserver))
	}

	return options
}

// ConnectionTester checks a token against GET /1/profile.
type ConnectionTester struct {
	clientOptions []infomaniak.ClientOption
}

func NewConnectionTester(deps domain.IntegrationDeps) *ConnectionTester {
	return &ConnectionTester{
		clientOptions: ClientOptions(deps),
	}
}

func (c *ConnectionTester) TestConnection(ctx context.Context, params domain.TestConnectionParams) (bool, error) {
	credentialJSON, err := json.Marshal(params.Credential.DecryptedPayload)
	if err != nil {
		return false, fmt.Errorf("failed to marshal credential: %w", err)
	}

	var credential Credential
	if err := json.Unmarshal(credentialJSON, &credential); err != nil {
		return false, fmt.Errorf("failed to unmarshal credential: %w", err)
	}

	client, err := infomaniak.NewClient(infomaniak.Credentials{APIToken: credential.APIToken}, c.clientOptions...)
	if err != nil {
		return false, err
	}

	data, err := client.Get(ctx, "/1/profile", nil, 0, infomaniak.WithIntent("verify API token"))
	if err != nil {
		log.Debug().Err(err).Str("credential_id", params.Credential.ID).Msg("Infomaniak connection test failed")
		return false, err
	}

	// the token is valid once the call succeeds, the profile only feeds the log
	profile, err := infomaniak.Decode[infomaniak.Profile](data)
	if err != nil {
		log.Debug().Err(err).Str("credential_id", params.Credential.ID).Msg("Infomaniak connection test succeeded with an unexpected profile shape")
		return true, nil
	}

	log.Debug().Int64("profile_id", profile.ID).Msg("Infomaniak connection test succeeded")

	return true, nil
}
