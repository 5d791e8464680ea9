package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile        = "file_path"
	FieldFormat      = "format"
	FieldOperationID = "operation_id"
	FieldGroupKey    = "group_key"
	FieldDealID      = "deal_id"
	FieldReason      = "reason"
	FieldCount       = "count"
	FieldError       = "error"
	FieldFingerprint = "fingerprint"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
)
