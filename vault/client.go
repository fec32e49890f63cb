package vault

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"imvault/parser"
	"imvault/query"
	"io"
	"net/http"
	"net/url"
	"sync"
)

// Client talks to the Vault REST API of one ledger. Document operations use the collection of the config. A client can
// be used by multiple goroutines at the same time.
type Client struct {
	config     Config
	httpClient *http.Client

	mutex             sync.Mutex
	lastTransactionID int64
}

func NewClient(config *Config) *Client {
	return &Client{
		config: *config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

func (c *Client) Config() Config {
	return c.config
}

// LastTransactionID returns the transaction ID of the most recent successful create operation or 0 if there was none.
func (c *Client) LastTransactionID() int64 {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.lastTransactionID
}

func (c *Client) setLastTransactionID(transactionID int64) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.lastTransactionID = transactionID
}

func (c *Client) ledgerURL() string {
	return c.config.PrefixURL + url.PathEscape(c.config.Ledger)
}

func (c *Client) collectionURL(collectionName string) string {
	return c.ledgerURL() + "/collection/" + url.PathEscape(collectionName)
}

func (c *Client) documentURL(documentID string) string {
	return c.collectionURL(c.config.Collection) + "/document/" + url.PathEscape(documentID)
}

// call sends the payload as JSON and decodes the JSON response into result. The payload and result may be nil.
func (c *Client) call(ctx context.Context, method string, requestURL string, payload any, result any) error {
	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrapf(err, "Unable to encode request body for %s %s", method, requestURL)
		}
		sigolo.Tracef("Request body: %s", string(payloadBytes))
		body = bytes.NewReader(payloadBytes)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return errors.Wrapf(err, "Unable to create request %s %s", method, requestURL)
	}
	request.Header.Set("X-API-Key", c.config.APIKey)
	request.Header.Set("Accept", "application/json")
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	sigolo.Debugf("%s %s", method, requestURL)
	response, err := c.httpClient.Do(request)
	if err != nil {
		return errors.Wrapf(err, "Request %s %s failed", method, requestURL)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.Wrapf(err, "Unable to read response body of %s %s", method, requestURL)
	}
	sigolo.Tracef("Response with status %d: %s", response.StatusCode, string(responseBytes))

	if response.StatusCode >= http.StatusBadRequest {
		return NewResponseError(response.StatusCode, responseBytes)
	}

	if result == nil || len(bytes.TrimSpace(responseBytes)) == 0 {
		return nil
	}

	err = json.Unmarshal(responseBytes, result)
	if err != nil {
		return errors.Wrapf(err, "Unable to decode response of %s %s", method, requestURL)
	}

	return nil
}

// parseQuery turns a query string into the query body. Nothing should be sent to the Vault when this fails, since the
// same query string will always fail again.
func parseQuery(queryString string) (*query.Query, error) {
	comparisons, err := parser.ParseQueryString(queryString)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid search query '%s'", queryString)
	}
	return query.NewQuery(comparisons), nil
}
