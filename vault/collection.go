package vault

import (
	"context"
	"github.com/pkg/errors"
	"net/http"
)

type collectionsResponse struct {
	Collections []Collection `json:"collections"`
}

func (c *Client) Collections(ctx context.Context) ([]Collection, error) {
	var response collectionsResponse
	err := c.call(ctx, http.MethodGet, c.ledgerURL()+"/collections", nil, &response)
	if err != nil {
		return nil, errors.Wrap(err, "Listing collections failed")
	}
	return response.Collections, nil
}

func (c *Client) Collection(ctx context.Context, collectionName string) (*Collection, error) {
	collection := &Collection{}
	err := c.call(ctx, http.MethodGet, c.collectionURL(collectionName), nil, collection)
	if err != nil {
		return nil, errors.Wrapf(err, "Fetching collection '%s' failed", collectionName)
	}
	return collection, nil
}

func (c *Client) DeleteCollection(ctx context.Context, collectionName string) error {
	err := c.call(ctx, http.MethodDelete, c.collectionURL(collectionName), nil, nil)
	if err != nil {
		return errors.Wrapf(err, "Deleting collection '%s' failed", collectionName)
	}
	return nil
}
