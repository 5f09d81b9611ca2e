package domain

// Document is file metadata within a project. The bytes themselves live in
// external storage; StoragePath is an opaque reference.
type Document struct {
	DocumentID  string `json:"documentID"`
	ProjectID   string `json:"projectID"`
	FileName    string `json:"fileName"`
	StoragePath string `json:"storagePath"`
	MimeType    string `json:"mimeType"`
	FileSize    int64  `json:"fileSize"`
	AuditFields
}

// DocumentFieldValue holds a custom field value for a document as untyped
// text. (DocumentID, CustomFieldID) is unique; the referenced field must
// belong to the document's project.
type DocumentFieldValue struct {
	FieldValueID  string `json:"fieldValueID"`
	DocumentID    string `json:"documentID"`
	CustomFieldID string `json:"customFieldID"`
	Value         string `json:"value"`
	AuditFields
}
