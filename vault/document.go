package vault

import (
	"context"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"imvault/query"
	"net/http"
)

const (
	maxPerPage            = 100
	defaultSearchPerPage  = 10
	defaultAuditPerPage   = 100
	defaultFirstPageIndex = 1
)

type SearchOptions struct {
	Page    int
	PerPage int
	OrderBy string // Field to order by. No ordering when empty.
	Desc    bool
}

func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Page:    defaultFirstPageIndex,
		PerPage: defaultSearchPerPage,
		Desc:    true,
	}
}

type AuditOptions struct {
	Desc    bool `json:"desc"`
	Page    int  `json:"page"`
	PerPage int  `json:"perPage"`
}

func DefaultAuditOptions() AuditOptions {
	return AuditOptions{
		Desc:    true,
		Page:    defaultFirstPageIndex,
		PerPage: defaultAuditPerPage,
	}
}

type createDocumentsRequest struct {
	Documents []Document `json:"documents"`
}

type searchRequest struct {
	Query   *query.Query `json:"query"`
	Page    int          `json:"page"`
	PerPage int          `json:"perPage"`
}

type countRequest struct {
	Query *query.Query `json:"query"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

type replaceRequest struct {
	Document Document     `json:"document"`
	Query    *query.Query `json:"query"`
}

type proofRequest struct {
	TransactionID int64 `json:"transactionId"`
}

func validatePaging(page int, perPage int) error {
	if page < 1 {
		return errors.Wrapf(ErrInvalidOptions, "page must be at least 1 but was %d", page)
	}
	if perPage < 1 || perPage > maxPerPage {
		return errors.Wrapf(ErrInvalidOptions, "perPage must be between 1 and %d but was %d", maxPerPage, perPage)
	}
	return nil
}

func (c *Client) CreateDocument(ctx context.Context, document Document) (*CreateDocumentResponse, error) {
	response := &CreateDocumentResponse{}
	err := c.call(ctx, http.MethodPut, c.collectionURL(c.config.Collection)+"/document", document, response)
	if err != nil {
		return nil, errors.Wrap(err, "Creating document failed")
	}

	c.setLastTransactionID(int64(response.TransactionID))
	sigolo.Debugf("Created document %s in transaction %d", response.DocumentID, response.TransactionID)

	return response, nil
}

// CreateDocuments stores all documents in one transaction. The returned document IDs have the same order as the given
// documents.
func (c *Client) CreateDocuments(ctx context.Context, documents []Document) (*CreateDocumentsResponse, error) {
	response := &CreateDocumentsResponse{}
	err := c.call(ctx, http.MethodPut, c.collectionURL(c.config.Collection)+"/documents", createDocumentsRequest{Documents: documents}, response)
	if err != nil {
		return nil, errors.Wrapf(err, "Creating %d documents failed", len(documents))
	}

	if len(response.DocumentIDs) != len(documents) {
		return nil, errors.Errorf("Created %d documents but the Vault returned %d document IDs", len(documents), len(response.DocumentIDs))
	}

	c.setLastTransactionID(int64(response.TransactionID))
	sigolo.Debugf("Created %d documents in transaction %d", len(documents), response.TransactionID)

	return response, nil
}

// SearchDocuments returns the documents matching the query string, e.g. `age>=18 name:"^Jo"`. An empty query string
// matches all documents.
func (c *Client) SearchDocuments(ctx context.Context, queryString string, options SearchOptions) (*SearchResponse, error) {
	err := validatePaging(options.Page, options.PerPage)
	if err != nil {
		return nil, err
	}

	q, err := parseQuery(queryString)
	if err != nil {
		return nil, err
	}
	if options.OrderBy != "" {
		q.OrderedBy(options.OrderBy, options.Desc)
	}

	request := searchRequest{
		Query:   q,
		Page:    options.Page,
		PerPage: options.PerPage,
	}

	response := &SearchResponse{}
	err = c.call(ctx, http.MethodPost, c.collectionURL(c.config.Collection)+"/documents/search", request, response)
	if err != nil {
		return nil, errors.Wrap(err, "Searching documents failed")
	}

	sigolo.Debugf("Found %d documents on page %d", len(response.Revisions), response.Page)
	return response, nil
}

// ReplaceDocuments replaces the documents matching the query string by the given document.
func (c *Client) ReplaceDocuments(ctx context.Context, queryString string, document Document) (*ReplaceDocumentResponse, error) {
	q, err := parseQuery(queryString)
	if err != nil {
		return nil, err
	}

	response := &ReplaceDocumentResponse{}
	err = c.call(ctx, http.MethodPost, c.collectionURL(c.config.Collection)+"/document", replaceRequest{Document: document, Query: q}, response)
	if err != nil {
		return nil, errors.Wrap(err, "Replacing documents failed")
	}

	return response, nil
}

func (c *Client) CountDocuments(ctx context.Context, queryString string) (int64, error) {
	q, err := parseQuery(queryString)
	if err != nil {
		return 0, err
	}

	response := &countResponse{}
	err = c.call(ctx, http.MethodPost, c.collectionURL(c.config.Collection)+"/documents/count", countRequest{Query: q}, response)
	if err != nil {
		return 0, errors.Wrap(err, "Counting documents failed")
	}

	return response.Count, nil
}

// AuditDocument returns the revisions of the document together with the transaction they were created in.
func (c *Client) AuditDocument(ctx context.Context, documentID string, options AuditOptions) (*AuditResponse, error) {
	err := validatePaging(options.Page, options.PerPage)
	if err != nil {
		return nil, err
	}

	response := &AuditResponse{}
	err = c.call(ctx, http.MethodPost, c.documentURL(documentID)+"/audit", options, response)
	if err != nil {
		return nil, errors.Wrapf(err, "Auditing document %s failed", documentID)
	}

	return response, nil
}

// DocumentProof returns the proof of the document for the given transaction.
func (c *Client) DocumentProof(ctx context.Context, documentID string, transactionID int64) (Proof, error) {
	proof := Proof{}
	err := c.call(ctx, http.MethodPost, c.documentURL(documentID)+"/proof", proofRequest{TransactionID: transactionID}, &proof)
	if err != nil {
		return nil, errors.Wrapf(err, "Fetching proof of document %s for transaction %d failed", documentID, transactionID)
	}

	return proof, nil
}
