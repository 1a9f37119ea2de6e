package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBUnknownDriverError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaTablesExistError
	SchemaIndexError

	// Source errors
	SourceOpenError
	SourceNoInputError
	SourceS3Error
	SourceManifestError

	// Document errors
	DocumentDecodeError
	DocumentUnknownCategoryError
	DocumentNoKeyError
	DocumentInvalidKeyError

	// Parser errors
	ParserUnsupportedDocumentError

	// Load errors
	LoadResolveCompanyError
	LoadSyncDeleteError
	LoadSyncInsertError
	LoadProvenanceError
	LoadTransactionError
	LoadCancelledError
	LoadAllFilesFailedError
	LoadMetricsError

	// Query errors
	QueryNotFoundError
	QueryError
	QueryUnknownGroupError
)
