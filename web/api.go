package web

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/gorilla/mux"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"imvault/parser"
	"imvault/query"
	"imvault/vault"
	"io"
	"net/http"
	"strconv"
)

const maxLengthOfLoggedQuery = 10000

// DocumentSearcher is the part of the Vault client the API forwards queries to.
type DocumentSearcher interface {
	SearchDocuments(ctx context.Context, queryString string, options vault.SearchOptions) (*vault.SearchResponse, error)
	CountDocuments(ctx context.Context, queryString string) (int64, error)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details error  `json:"details,omitempty"`
}

func NewErrorResponse(message string, err error) ErrorResponse {
	return ErrorResponse{
		Error:   message,
		Details: err,
	}
}

type ParseResponse struct {
	FieldComparisons []query.FieldComparison `json:"fieldComparisons"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

func StartServer(port string, searcher DocumentSearcher) {
	r := initRouter(searcher)
	sigolo.Infof("Start server on port %s", port)
	err := http.ListenAndServe(":"+port, r)
	sigolo.FatalCheck(err)
}

func initRouter(searcher DocumentSearcher) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/parse", handleParse).Methods(http.MethodPost)
	r.HandleFunc("/search", func(writer http.ResponseWriter, request *http.Request) {
		handleSearch(writer, request, searcher)
	}).Methods(http.MethodPost)
	r.HandleFunc("/count", func(writer http.ResponseWriter, request *http.Request) {
		handleCount(writer, request, searcher)
	}).Methods(http.MethodPost)
	return r
}

func handleParse(writer http.ResponseWriter, request *http.Request) {
	queryString, ok := readQueryString(writer, request)
	if !ok {
		return
	}

	comparisons, err := parser.ParseQueryString(queryString)
	if err != nil {
		writeErrorResponse(writer, "Error parsing query", err)
		return
	}

	writeJsonResponse(writer, ParseResponse{FieldComparisons: comparisons})
}

func handleSearch(writer http.ResponseWriter, request *http.Request, searcher DocumentSearcher) {
	options, err := searchOptionsFromRequest(request)
	if err != nil {
		writeErrorResponse(writer, "Invalid search parameters", err)
		return
	}

	queryString, ok := readQueryString(writer, request)
	if !ok {
		return
	}

	response, err := searcher.SearchDocuments(request.Context(), queryString, options)
	if err != nil {
		writeErrorResponse(writer, "Error searching documents", err)
		return
	}

	sigolo.Debugf("Found %d documents", len(response.Revisions))
	writeJsonResponse(writer, response)
}

func handleCount(writer http.ResponseWriter, request *http.Request, searcher DocumentSearcher) {
	queryString, ok := readQueryString(writer, request)
	if !ok {
		return
	}

	count, err := searcher.CountDocuments(request.Context(), queryString)
	if err != nil {
		writeErrorResponse(writer, "Error counting documents", err)
		return
	}

	writeJsonResponse(writer, CountResponse{Count: count})
}

// searchOptionsFromRequest reads the URL parameters "page", "perPage", "orderBy" and "desc". Missing parameters keep
// their default value.
func searchOptionsFromRequest(request *http.Request) (vault.SearchOptions, error) {
	options := vault.DefaultSearchOptions()
	values := request.URL.Query()

	var err error
	if page := values.Get("page"); page != "" {
		options.Page, err = strconv.Atoi(page)
		if err != nil {
			return options, errors.Wrapf(vault.ErrInvalidOptions, "page '%s' is not a number", page)
		}
	}
	if perPage := values.Get("perPage"); perPage != "" {
		options.PerPage, err = strconv.Atoi(perPage)
		if err != nil {
			return options, errors.Wrapf(vault.ErrInvalidOptions, "perPage '%s' is not a number", perPage)
		}
	}
	if desc := values.Get("desc"); desc != "" {
		options.Desc, err = strconv.ParseBool(desc)
		if err != nil {
			return options, errors.Wrapf(vault.ErrInvalidOptions, "desc '%s' is not a boolean", desc)
		}
	}
	options.OrderBy = values.Get("orderBy")

	return options, nil
}

func readQueryString(writer http.ResponseWriter, request *http.Request) (string, bool) {
	queryBytes, err := io.ReadAll(request.Body)
	if err != nil {
		sigolo.Errorf("Error reading HTTP body of request to '%s': %+v", request.URL.Path, err)
		writeErrorResponse(writer, "Error reading HTTP body", err)
		return "", false
	}

	queryString := string(queryBytes)

	trimmedQueryString := queryString
	queryRunes := []rune(queryString)
	if len(queryRunes) > maxLengthOfLoggedQuery {
		trimmedQueryString = string(queryRunes[:maxLengthOfLoggedQuery]) + "... [truncated]"
	}
	sigolo.Infof("Query on %s: %s", request.URL.Path, trimmedQueryString)

	return queryString, true
}

// statusForError maps errors caused by the query or parameters to 400, failed Vault responses to 502 and everything
// else to 500.
func statusForError(err error) int {
	var malformedQueryErr *parser.MalformedQueryError
	var unsupportedOperatorErr *query.UnsupportedOperatorError
	var responseErr *vault.ResponseError

	switch {
	case errors.As(err, &malformedQueryErr), errors.As(err, &unsupportedOperatorErr), errors.Is(err, vault.ErrInvalidOptions):
		return http.StatusBadRequest
	case errors.As(err, &responseErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeErrorResponse(writer http.ResponseWriter, message string, err error) {
	status := statusForError(err)
	sigolo.Errorf("%s (status %d): %+v", message, status, err)

	errorResponseBytes, marshalErr := json.Marshal(NewErrorResponse(fmt.Sprintf("%s: %s", message, err.Error()), typedCause(err)))
	if marshalErr != nil {
		sigolo.Errorf("Error creating and marshalling error response object: %+v", marshalErr)
		status = http.StatusInternalServerError
		errorResponseBytes = []byte(`{"error":"Error creating error response"}`)
	}

	writer.Header().Set("Access-Control-Allow-Origin", "*")
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	_, err = writer.Write(errorResponseBytes)
	if err != nil {
		sigolo.Errorf("Error writing error response: %+v", err)
	}
}

// typedCause returns the wrapped error whose exported fields describe the problem or nil for any other error.
func typedCause(err error) error {
	var malformedQueryErr *parser.MalformedQueryError
	var unsupportedOperatorErr *query.UnsupportedOperatorError
	var responseErr *vault.ResponseError

	switch {
	case errors.As(err, &malformedQueryErr):
		return malformedQueryErr
	case errors.As(err, &unsupportedOperatorErr):
		return unsupportedOperatorErr
	case errors.As(err, &responseErr):
		return responseErr
	}
	return nil
}

func writeJsonResponse(writer http.ResponseWriter, value any) {
	writer.Header().Set("Access-Control-Allow-Origin", "*")
	writer.Header().Set("Content-Type", "application/json")

	responseBytes, err := json.Marshal(value)
	if err != nil {
		sigolo.Errorf("Error marshalling response: %+v", err)
		writeErrorResponse(writer, "Error creating response", err)
		return
	}

	_, err = writer.Write(responseBytes)
	if err != nil {
		sigolo.Errorf("Error writing response: %+v", err)
	}
}
