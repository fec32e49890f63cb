package main

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"imvault/parser"
	"imvault/vault"
	"imvault/web"
	"strings"
)

const VERSION = "v0.1.0"

var cli struct {
	Logging    string      `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info"`
	Version    VersionFlag `help:"Print version information and quit" name:"version" short:"v"`
	Config     string      `help:"Optional config file with the keys api_key, prefix_url, ledger, collection and timeout. VAULT_* environment variables take precedence." type:"path" short:"c"`
	Ledger     string      `help:"Ledger to use instead of the configured one."`
	Collection string      `help:"Collection to use instead of the configured one."`

	Parse struct {
		Query string `help:"The query string, e.g. 'id>=10 name=\"Joe Starr\"'." placeholder:"<query>" arg:""`
	} `cmd:"" help:"Prints the field comparisons of the given query without contacting the Vault."`
	Search struct {
		Query   string `help:"The query string. An empty query matches all documents." placeholder:"<query>" arg:"" optional:""`
		Page    int    `help:"Page of the result." default:"1"`
		PerPage int    `help:"Documents per page (1 to 100)." default:"10"`
		OrderBy string `help:"Field to order the result by."`
		Asc     bool   `help:"Order ascending instead of descending."`
	} `cmd:"" help:"Searches documents matching the query."`
	Count struct {
		Query string `help:"The query string." placeholder:"<query>" arg:"" optional:""`
	} `cmd:"" help:"Counts documents matching the query."`
	Replace struct {
		Query    string `help:"The query string selecting the documents to replace." placeholder:"<query>" arg:""`
		Document string `help:"The new document as JSON object." placeholder:"<document>" arg:""`
	} `cmd:"" help:"Replaces the documents matching the query."`
	Create struct {
		Documents []string `help:"One or more documents as JSON objects." placeholder:"<document>" arg:""`
	} `cmd:"" help:"Creates documents in one transaction."`
	Audit struct {
		DocumentID string `help:"The ID of the document." placeholder:"<document-id>" arg:""`
		Page       int    `help:"Page of the result." default:"1"`
		PerPage    int    `help:"Revisions per page (1 to 100)." default:"100"`
		Asc        bool   `help:"Oldest revision first."`
	} `cmd:"" help:"Lists all revisions of a document."`
	Proof struct {
		DocumentID    string `help:"The ID of the document." placeholder:"<document-id>" arg:""`
		TransactionID int64  `help:"The transaction of the document revision." placeholder:"<transaction-id>" arg:""`
	} `cmd:"" help:"Prints the proof of a document revision."`
	Collections struct {
	} `cmd:"" help:"Lists all collections of the ledger."`
	CollectionInfo struct {
		Name string `help:"Name of the collection." placeholder:"<name>" arg:""`
	} `cmd:"" help:"Prints fields and indexes of a collection."`
	DeleteCollection struct {
		Name string `help:"Name of the collection." placeholder:"<name>" arg:""`
	} `cmd:"" help:"Deletes a collection."`
	Serve struct {
		Port string `help:"Port of the HTTP server." default:"8080" short:"p"`
	} `cmd:"" help:"Starts an HTTP server offering /parse, /search and /count."`
}

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("imvault"),
		kong.Description("A client for immudb Vault to store, search and audit documents."),
		kong.Vars{
			"version": VERSION,
		},
	)

	if strings.ToLower(cli.Logging) == "debug" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	} else if strings.ToLower(cli.Logging) == "trace" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	} else if strings.ToLower(cli.Logging) == "info" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
	} else {
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
		sigolo.Fatalf("Unknown logging level '%s'", cli.Logging)
	}

	// Only the command itself, without arguments like "<query>".
	command := strings.Fields(ctx.Command())[0]

	// Parsing a query doesn't need any Vault configuration.
	if command == "parse" {
		comparisons, err := parser.ParseQueryString(cli.Parse.Query)
		sigolo.FatalCheck(err)
		printJson(comparisons)
		return
	}

	client := newClient()
	background := context.Background()

	switch command {
	case "search":
		options := vault.SearchOptions{
			Page:    cli.Search.Page,
			PerPage: cli.Search.PerPage,
			OrderBy: cli.Search.OrderBy,
			Desc:    !cli.Search.Asc,
		}
		response, err := client.SearchDocuments(background, cli.Search.Query, options)
		sigolo.FatalCheck(err)
		printJson(response)
	case "count":
		count, err := client.CountDocuments(background, cli.Count.Query)
		sigolo.FatalCheck(err)
		printJson(count)
	case "replace":
		document, err := parseDocument(cli.Replace.Document)
		sigolo.FatalCheck(err)
		response, err := client.ReplaceDocuments(background, cli.Replace.Query, document)
		sigolo.FatalCheck(err)
		printJson(response)
	case "create":
		var documents []vault.Document
		for _, documentString := range cli.Create.Documents {
			document, err := parseDocument(documentString)
			sigolo.FatalCheck(err)
			documents = append(documents, document)
		}

		if len(documents) == 1 {
			response, err := client.CreateDocument(background, documents[0])
			sigolo.FatalCheck(err)
			printJson(response)
		} else {
			response, err := client.CreateDocuments(background, documents)
			sigolo.FatalCheck(err)
			printJson(response)
		}
	case "audit":
		options := vault.AuditOptions{
			Desc:    !cli.Audit.Asc,
			Page:    cli.Audit.Page,
			PerPage: cli.Audit.PerPage,
		}
		response, err := client.AuditDocument(background, cli.Audit.DocumentID, options)
		sigolo.FatalCheck(err)
		printJson(response)
	case "proof":
		proof, err := client.DocumentProof(background, cli.Proof.DocumentID, cli.Proof.TransactionID)
		sigolo.FatalCheck(err)
		printJson(proof)
	case "collections":
		collections, err := client.Collections(background)
		sigolo.FatalCheck(err)
		printJson(collections)
	case "collection-info":
		collection, err := client.Collection(background, cli.CollectionInfo.Name)
		sigolo.FatalCheck(err)
		printJson(collection)
	case "delete-collection":
		err := client.DeleteCollection(background, cli.DeleteCollection.Name)
		sigolo.FatalCheck(err)
		sigolo.Infof("Deleted collection '%s'", cli.DeleteCollection.Name)
	case "serve":
		web.StartServer(cli.Serve.Port, client)
	default:
		sigolo.Errorf("Unknown command '%s'", ctx.Command())
	}
}

func newClient() *vault.Client {
	config, err := vault.LoadConfig(cli.Config)
	sigolo.FatalCheck(err)

	if cli.Ledger != "" {
		config.Ledger = cli.Ledger
	}
	if cli.Collection != "" {
		config.Collection = cli.Collection
	}
	sigolo.Debugf("Use ledger '%s' and collection '%s' at %s", config.Ledger, config.Collection, config.PrefixURL)

	return vault.NewClient(config)
}

func parseDocument(documentString string) (vault.Document, error) {
	document := vault.Document{}
	err := json.Unmarshal([]byte(documentString), &document)
	if err != nil {
		return nil, errors.Wrapf(err, "Document is not a JSON object: %s", documentString)
	}
	return document, nil
}

func printJson(value any) {
	output, err := json.MarshalIndent(value, "", "  ")
	sigolo.FatalCheck(errors.Wrap(err, "Unable to format output"))
	fmt.Println(string(output))
}
