package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Misenpai/prweb/internal/shared/apperror"
)

type ssoHeader struct {
	Username     string   `json:"username"`
	ProjectCodes []string `json:"projectCodes"`
	Timestamp    int64    `json:"timestamp"`
}

// Client talks to the PI backend. It injects whichever credential the
// caller holds, sends and receives JSON, and nothing more: no retry, no
// response-schema validation. Callers branch on the upstream `success`
// field themselves.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

func (c *Client) Get(ctx context.Context, cred Credential, path string, out any) error {
	return c.do(ctx, cred, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, cred Credential, path string, body, out any) error {
	return c.do(ctx, cred, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, cred Credential, path string, body, out any) error {
	return c.do(ctx, cred, http.MethodPut, path, body, out)
}

// PostWithIdentity merges the SSO identity fields directly into the POST
// body, for endpoints that expect identity in-payload rather than in the
// headers. Token credentials send the body unchanged.
func (c *Client) PostWithIdentity(ctx context.Context, cred Credential, path string, body map[string]any, out any) error {
	merged := make(map[string]any, len(body)+2)
	for k, v := range body {
		merged[k] = v
	}
	if cred.Kind() == CredentialSSO {
		identity := cred.Identity()
		merged["username"] = identity.Username
		merged["projectCodes"] = identity.ProjectCodes
	}
	return c.do(ctx, cred, http.MethodPost, path, merged, out)
}

func (c *Client) do(ctx context.Context, cred Credential, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInternalError, "failed to encode request body", http.StatusInternalServerError)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to build request", http.StatusInternalServerError)
	}
	req.Header.Set("Content-Type", "application/json")
	if err := applyCredential(req.Header, cred); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeUpstreamUnavailable, "Error connecting to server", http.StatusBadGateway)
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	// The status code is not inspected: the upstream contract is a JSON
	// body with a `success` flag on every response.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.Wrap(err, apperror.CodeUpstreamUnavailable, "Error connecting to server", http.StatusBadGateway)
	}
	return nil
}

func applyCredential(h http.Header, cred Credential) error {
	switch cred.Kind() {
	case CredentialToken:
		h.Set("Authorization", "Bearer "+cred.Token())
	case CredentialSSO:
		identity := cred.Identity()
		payload, err := json.Marshal(ssoHeader{
			Username:     identity.Username,
			ProjectCodes: identity.ProjectCodes,
			Timestamp:    time.Now().UnixMilli(),
		})
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInternalError, "failed to encode SSO identity", http.StatusInternalServerError)
		}
		h.Set("X-SSO-User", string(payload))
	}
	return nil
}
