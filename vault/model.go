package vault

// Document is an arbitrary JSON object. The Vault adds the properties "_id" and "_vault_md" to stored documents.
type Document map[string]any

// ID returns the "_id" property or an empty string if the document has none.
func (d Document) ID() string {
	id, ok := d["_id"].(string)
	if !ok {
		return ""
	}
	return id
}

type Collection struct {
	Name        string            `json:"name"`
	IDFieldName string            `json:"idFieldName"`
	Fields      []FieldDefinition `json:"fields"`
	Indexes     []IndexDefinition `json:"indexes"`
}

type FieldDefinition struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type IndexDefinition struct {
	Fields   []string `json:"fields"`
	IsUnique bool     `json:"isUnique"`
}

type CreateDocumentResponse struct {
	TransactionID ID     `json:"transactionId"`
	DocumentID    string `json:"documentId"`
}

type CreateDocumentsResponse struct {
	TransactionID ID       `json:"transactionId"`
	DocumentIDs   []string `json:"documentIds"`
}

type ReplaceDocumentResponse struct {
	TransactionID ID     `json:"transactionId"`
	DocumentID    string `json:"documentId"`
	Revision      ID     `json:"revision"`
}

// Revision is one version of a document as returned by searches and audits.
type Revision struct {
	TransactionID string   `json:"transactionId"`
	Revision      string   `json:"revision"`
	Document      Document `json:"document"`
}

type SearchResponse struct {
	SearchID  string     `json:"searchId"`
	Revisions []Revision `json:"revisions"`
	Page      int        `json:"page"`
	PerPage   int        `json:"perPage"`
}

type AuditResponse struct {
	Revisions []Revision `json:"revisions"`
	Page      int        `json:"page"`
	PerPage   int        `json:"perPage"`
}

// Proof is the cryptographic proof of a document revision. Its content is passed through unchanged.
type Proof map[string]any
