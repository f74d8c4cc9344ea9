/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Code generated from the PostgreSQL errcodes appendix
// (src/backend/utils/errcodes.txt); keep in sync with the server
// documentation when new codes are published. DO NOT EDIT BY HAND.

package sqlstate

// Class identities, one per published class section of the appendix.
const (
	ClassSuccessfulCompletion                    Class = "00"
	ClassWarning                                 Class = "01"
	ClassNoData                                  Class = "02"
	ClassSQLStatementNotYetComplete              Class = "03"
	ClassConnectionException                     Class = "08"
	ClassTriggeredActionException                Class = "09"
	ClassFeatureNotSupported                     Class = "0A"
	ClassInvalidTransactionInitiation            Class = "0B"
	ClassLocatorException                        Class = "0F"
	ClassInvalidGrantor                          Class = "0L"
	ClassInvalidRoleSpecification                Class = "0P"
	ClassDiagnosticsException                    Class = "0Z"
	ClassCaseNotFound                            Class = "20"
	ClassCardinalityViolation                    Class = "21"
	ClassDataException                           Class = "22"
	ClassIntegrityConstraintViolation            Class = "23"
	ClassInvalidCursorState                      Class = "24"
	ClassInvalidTransactionState                 Class = "25"
	ClassInvalidSQLStatementName                 Class = "26"
	ClassTriggeredDataChangeViolation            Class = "27"
	ClassInvalidAuthorizationSpecification       Class = "28"
	ClassDependentPrivilegeDescriptorsStillExist Class = "2B"
	ClassInvalidTransactionTermination           Class = "2D"
	ClassSQLRoutineException                     Class = "2F"
	ClassInvalidCursorName                       Class = "34"
	ClassExternalRoutineException                Class = "38"
	ClassExternalRoutineInvocationException      Class = "39"
	ClassSavepointException                      Class = "3B"
	ClassInvalidCatalogName                      Class = "3D"
	ClassInvalidSchemaName                       Class = "3F"
	ClassTransactionRollback                     Class = "40"
	ClassSyntaxErrorOrAccessRuleViolation        Class = "42"
	ClassWithCheckOptionViolation                Class = "44"
	ClassInsufficientResources                   Class = "53"
	ClassProgramLimitExceeded                    Class = "54"
	ClassObjectNotInPrerequisiteState            Class = "55"
	ClassOperatorIntervention                    Class = "57"
	ClassSystemError                             Class = "58"
	ClassSnapshotFailure                         Class = "72"
	ClassConfigFileError                         Class = "F0"
	ClassFDWError                                Class = "HV"
	ClassPLpgSQLError                            Class = "P0"
	ClassInternalError                           Class = "XX"
)

// classNames maps every registered class to its section name.
var classNames = map[Class]string{
	ClassSuccessfulCompletion:                    "SuccessfulCompletion",
	ClassWarning:                                 "Warning",
	ClassNoData:                                  "NoData",
	ClassSQLStatementNotYetComplete:              "SQLStatementNotYetComplete",
	ClassConnectionException:                     "ConnectionException",
	ClassTriggeredActionException:                "TriggeredActionException",
	ClassFeatureNotSupported:                     "FeatureNotSupported",
	ClassInvalidTransactionInitiation:            "InvalidTransactionInitiation",
	ClassLocatorException:                        "LocatorException",
	ClassInvalidGrantor:                          "InvalidGrantor",
	ClassInvalidRoleSpecification:                "InvalidRoleSpecification",
	ClassDiagnosticsException:                    "DiagnosticsException",
	ClassCaseNotFound:                            "CaseNotFound",
	ClassCardinalityViolation:                    "CardinalityViolation",
	ClassDataException:                           "DataException",
	ClassIntegrityConstraintViolation:            "IntegrityConstraintViolation",
	ClassInvalidCursorState:                      "InvalidCursorState",
	ClassInvalidTransactionState:                 "InvalidTransactionState",
	ClassInvalidSQLStatementName:                 "InvalidSQLStatementName",
	ClassTriggeredDataChangeViolation:            "TriggeredDataChangeViolation",
	ClassInvalidAuthorizationSpecification:       "InvalidAuthorizationSpecification",
	ClassDependentPrivilegeDescriptorsStillExist: "DependentPrivilegeDescriptorsStillExist",
	ClassInvalidTransactionTermination:           "InvalidTransactionTermination",
	ClassSQLRoutineException:                     "SQLRoutineException",
	ClassInvalidCursorName:                       "InvalidCursorName",
	ClassExternalRoutineException:                "ExternalRoutineException",
	ClassExternalRoutineInvocationException:      "ExternalRoutineInvocationException",
	ClassSavepointException:                      "SavepointException",
	ClassInvalidCatalogName:                      "InvalidCatalogName",
	ClassInvalidSchemaName:                       "InvalidSchemaName",
	ClassTransactionRollback:                     "TransactionRollback",
	ClassSyntaxErrorOrAccessRuleViolation:        "SyntaxErrorOrAccessRuleViolation",
	ClassWithCheckOptionViolation:                "WithCheckOptionViolation",
	ClassInsufficientResources:                   "InsufficientResources",
	ClassProgramLimitExceeded:                    "ProgramLimitExceeded",
	ClassObjectNotInPrerequisiteState:            "ObjectNotInPrerequisiteState",
	ClassOperatorIntervention:                    "OperatorIntervention",
	ClassSystemError:                             "SystemError",
	ClassSnapshotFailure:                         "SnapshotFailure",
	ClassConfigFileError:                         "ConfigFileError",
	ClassFDWError:                                "FDWError",
	ClassPLpgSQLError:                            "PLpgSQLError",
	ClassInternalError:                           "InternalError",
}

// Code identities, one per published condition. A handful of codes carry two
// published names (SQL-standard name plus a PostgreSQL alias); both constants
// exist, the name table resolves to the canonical one.
const (
	// Class 00 — Successful Completion
	SuccessfulCompletion Code = "00000"

	// Class 01 — Warning
	Warning                          Code = "01000"
	DynamicResultSetsReturned        Code = "0100C"
	ImplicitZeroBitPadding           Code = "01008"
	NullValueEliminatedInSetFunction Code = "01003"
	PrivilegeNotGranted              Code = "01007"
	PrivilegeNotRevoked              Code = "01006"
	StringDataRightTruncationWarning Code = "01004"
	DeprecatedFeature                Code = "01P01"

	// Class 02 — No Data (this is also a warning class per the SQL standard)
	NoData                                Code = "02000"
	NoAdditionalDynamicResultSetsReturned Code = "02001"

	// Class 03 — SQL Statement Not Yet Complete
	SQLStatementNotYetComplete Code = "03000"

	// Class 08 — Connection Exception
	ConnectionException                           Code = "08000"
	ConnectionDoesNotExist                        Code = "08003"
	ConnectionFailure                             Code = "08006"
	SQLClientUnableToEstablishSQLConnection       Code = "08001"
	SQLServerRejectedEstablishmentOfSQLConnection Code = "08004"
	TransactionResolutionUnknown                  Code = "08007"
	ProtocolViolation                             Code = "08P01"

	// Class 09 — Triggered Action Exception
	TriggeredActionException Code = "09000"

	// Class 0A — Feature Not Supported
	FeatureNotSupported Code = "0A000"

	// Class 0B — Invalid Transaction Initiation
	InvalidTransactionInitiation Code = "0B000"

	// Class 0F — Locator Exception
	LocatorException            Code = "0F000"
	InvalidLocatorSpecification Code = "0F001"

	// Class 0L — Invalid Grantor
	InvalidGrantor        Code = "0L000"
	InvalidGrantOperation Code = "0LP01"

	// Class 0P — Invalid Role Specification
	InvalidRoleSpecification Code = "0P000"

	// Class 0Z — Diagnostics Exception
	DiagnosticsException                           Code = "0Z000"
	StackedDiagnosticsAccessedWithoutActiveHandler Code = "0Z002"

	// Class 20 — Case Not Found
	CaseNotFound Code = "20000"

	// Class 21 — Cardinality Violation
	CardinalityViolation Code = "21000"

	// Class 22 — Data Exception
	DataException                             Code = "22000"
	ArraySubscriptError                       Code = "2202E"
	CharacterNotInRepertoire                  Code = "22021"
	DatetimeFieldOverflow                     Code = "22008"
	DivisionByZero                            Code = "22012"
	ErrorInAssignment                         Code = "22005"
	EscapeCharacterConflict                   Code = "2200B"
	IndicatorOverflow                         Code = "22022"
	IntervalFieldOverflow                     Code = "22015"
	InvalidArgumentForLogarithm               Code = "2201E"
	InvalidArgumentForNtileFunction           Code = "22014"
	InvalidArgumentForNthValueFunction        Code = "22016"
	InvalidArgumentForPowerFunction           Code = "2201F"
	InvalidArgumentForWidthBucketFunction     Code = "2201G"
	InvalidCharacterValueForCast              Code = "22018"
	InvalidDatetimeFormat                     Code = "22007"
	InvalidEscapeCharacter                    Code = "22019"
	InvalidEscapeOctet                        Code = "2200D"
	InvalidEscapeSequence                     Code = "22025"
	NonstandardUseOfEscapeCharacter           Code = "22P06"
	InvalidIndicatorParameterValue            Code = "22010"
	InvalidParameterValue                     Code = "22023"
	InvalidPrecedingOrFollowingSize           Code = "22013"
	InvalidRegularExpression                  Code = "2201B"
	InvalidRowCountInLimitClause              Code = "2201W"
	InvalidRowCountInResultOffsetClause       Code = "2201X"
	InvalidTablesampleArgument                Code = "2202H"
	InvalidTablesampleRepeat                  Code = "2202G"
	InvalidTimeZoneDisplacementValue          Code = "22009"
	InvalidUseOfEscapeCharacter               Code = "2200C"
	MostSpecificTypeMismatch                  Code = "2200G"
	NullValueNotAllowed                       Code = "22004"
	NullValueNoIndicatorParameter             Code = "22002"
	NumericValueOutOfRange                    Code = "22003"
	SequenceGeneratorLimitExceeded            Code = "2200H"
	StringDataLengthMismatch                  Code = "22026"
	StringDataRightTruncation                 Code = "22001"
	SubstringError                            Code = "22011"
	TrimError                                 Code = "22027"
	UnterminatedCString                       Code = "22024"
	ZeroLengthCharacterString                 Code = "2200F"
	FloatingPointException                    Code = "22P01"
	InvalidTextRepresentation                 Code = "22P02"
	InvalidBinaryRepresentation               Code = "22P03"
	BadCopyFileFormat                         Code = "22P04"
	UntranslatableCharacter                   Code = "22P05"
	NotAnXMLDocument                          Code = "2200L"
	InvalidXMLDocument                        Code = "2200M"
	InvalidXMLContent                         Code = "2200N"
	InvalidXMLComment                         Code = "2200S"
	InvalidXMLProcessingInstruction           Code = "2200T"
	DuplicateJSONObjectKeyValue               Code = "22030"
	InvalidArgumentForSQLJSONDatetimeFunction Code = "22031"
	InvalidJSONText                           Code = "22032"
	InvalidSQLJSONSubscript                   Code = "22033"
	MoreThanOneSQLJSONItem                    Code = "22034"
	NoSQLJSONItem                             Code = "22035"
	NonNumericSQLJSONItem                     Code = "22036"
	NonUniqueKeysInAJSONObject                Code = "22037"
	SingletonSQLJSONItemRequired              Code = "22038"
	SQLJSONArrayNotFound                      Code = "22039"
	SQLJSONMemberNotFound                     Code = "2203A"
	SQLJSONNumberNotFound                     Code = "2203B"
	SQLJSONObjectNotFound                     Code = "2203C"
	TooManyJSONArrayElements                  Code = "2203D"
	TooManyJSONObjectMembers                  Code = "2203E"
	SQLJSONScalarRequired                     Code = "2203F"
	SQLJSONItemCannotBeCastToTargetType       Code = "2203G"

	// Class 23 — Integrity Constraint Violation
	IntegrityConstraintViolation Code = "23000"
	RestrictViolation            Code = "23001"
	NotNullViolation             Code = "23502"
	ForeignKeyViolation          Code = "23503"
	UniqueViolation              Code = "23505"
	CheckViolation               Code = "23514"
	ExclusionViolation           Code = "23P01"

	// Class 24 — Invalid Cursor State
	InvalidCursorState Code = "24000"

	// Class 25 — Invalid Transaction State
	InvalidTransactionState                         Code = "25000"
	ActiveSQLTransaction                            Code = "25001"
	BranchTransactionAlreadyActive                  Code = "25002"
	HeldCursorRequiresSameIsolationLevel            Code = "25008"
	InappropriateAccessModeForBranchTransaction     Code = "25003"
	InappropriateIsolationLevelForBranchTransaction Code = "25004"
	NoActiveSQLTransactionForBranchTransaction      Code = "25005"
	ReadOnlySQLTransaction                          Code = "25006"
	SchemaAndDataStatementMixingNotSupported        Code = "25007"
	NoActiveSQLTransaction                          Code = "25P01"
	InFailedSQLTransaction                          Code = "25P02"
	IdleInTransactionSessionTimeout                 Code = "25P03"
	TransactionTimeout                              Code = "25P04"

	// Class 26 — Invalid SQL Statement Name
	InvalidSQLStatementName Code = "26000"

	// Class 27 — Triggered Data Change Violation
	TriggeredDataChangeViolation Code = "27000"

	// Class 28 — Invalid Authorization Specification
	InvalidAuthorizationSpecification Code = "28000"
	InvalidPassword                   Code = "28P01"

	// Class 2B — Dependent Privilege Descriptors Still Exist
	DependentPrivilegeDescriptorsStillExist Code = "2B000"
	DependentObjectsStillExist              Code = "2BP01"

	// Class 2D — Invalid Transaction Termination
	InvalidTransactionTermination Code = "2D000"

	// Class 2F — SQL Routine Exception
	SQLRoutineException              Code = "2F000"
	FunctionExecutedNoReturnStatement Code = "2F005"
	ModifyingSQLDataNotPermitted      Code = "2F002"
	ProhibitedSQLStatementAttempted   Code = "2F003"
	ReadingSQLDataNotPermitted        Code = "2F004"

	// Class 34 — Invalid Cursor Name
	InvalidCursorName Code = "34000"

	// Class 38 — External Routine Exception
	ExternalRoutineException                       Code = "38000"
	ContainingSQLNotPermitted                      Code = "38001"
	ExternalRoutineModifyingSQLDataNotPermitted    Code = "38002"
	ExternalRoutineProhibitedSQLStatementAttempted Code = "38003"
	ExternalRoutineReadingSQLDataNotPermitted      Code = "38004"

	// Class 39 — External Routine Invocation Exception
	ExternalRoutineInvocationException Code = "39000"
	InvalidSQLStateReturned            Code = "39001"
	ExternalRoutineNullValueNotAllowed Code = "39004"
	TriggerProtocolViolated            Code = "39P01"
	SRFProtocolViolated                Code = "39P02"
	EventTriggerProtocolViolated       Code = "39P03"

	// Class 3B — Savepoint Exception
	SavepointException            Code = "3B000"
	InvalidSavepointSpecification Code = "3B001"

	// Class 3D — Invalid Catalog Name
	InvalidCatalogName Code = "3D000"

	// Class 3F — Invalid Schema Name
	InvalidSchemaName Code = "3F000"

	// Class 40 — Transaction Rollback
	TransactionRollback                     Code = "40000"
	TransactionIntegrityConstraintViolation Code = "40002"
	SerializationFailure                    Code = "40001"
	StatementCompletionUnknown              Code = "40003"
	DeadlockDetected                        Code = "40P01"

	// Class 42 — Syntax Error or Access Rule Violation
	SyntaxErrorOrAccessRuleViolation   Code = "42000"
	SyntaxError                        Code = "42601"
	InsufficientPrivilege              Code = "42501"
	CannotCoerce                       Code = "42846"
	GroupingError                      Code = "42803"
	WindowingError                     Code = "42P20"
	InvalidRecursion                   Code = "42P19"
	InvalidForeignKey                  Code = "42830"
	InvalidName                        Code = "42602"
	NameTooLong                        Code = "42622"
	ReservedName                       Code = "42939"
	DatatypeMismatch                   Code = "42804"
	IndeterminateDatatype              Code = "42P18"
	CollationMismatch                  Code = "42P21"
	IndeterminateCollation             Code = "42P22"
	WrongObjectType                    Code = "42809"
	GeneratedAlways                    Code = "428C9"
	UndefinedColumn                    Code = "42703"
	UndefinedFunction                  Code = "42883"
	UndefinedTable                     Code = "42P01"
	UndefinedParameter                 Code = "42P02"
	UndefinedObject                    Code = "42704"
	DuplicateColumn                    Code = "42701"
	DuplicateCursor                    Code = "42P03"
	DuplicateDatabase                  Code = "42P04"
	DuplicateFunction                  Code = "42723"
	DuplicatePreparedStatement         Code = "42P05"
	DuplicateSchema                    Code = "42P06"
	DuplicateTable                     Code = "42P07"
	DuplicateAlias                     Code = "42712"
	DuplicateObject                    Code = "42710"
	AmbiguousColumn                    Code = "42702"
	AmbiguousFunction                  Code = "42725"
	AmbiguousParameter                 Code = "42P08"
	AmbiguousAlias                     Code = "42P09"
	InvalidColumnReference             Code = "42P10"
	InvalidColumnDefinition            Code = "42611"
	InvalidCursorDefinition            Code = "42P11"
	InvalidDatabaseDefinition          Code = "42P12"
	InvalidFunctionDefinition          Code = "42P13"
	InvalidPreparedStatementDefinition Code = "42P14"
	InvalidSchemaDefinition            Code = "42P15"
	InvalidTableDefinition             Code = "42P16"
	InvalidObjectDefinition            Code = "42P17"

	// Class 44 — WITH CHECK OPTION Violation
	WithCheckOptionViolation Code = "44000"

	// Class 53 — Insufficient Resources
	InsufficientResources      Code = "53000"
	DiskFull                   Code = "53100"
	OutOfMemory                Code = "53200"
	TooManyConnections         Code = "53300"
	ConfigurationLimitExceeded Code = "53400"

	// Class 54 — Program Limit Exceeded
	ProgramLimitExceeded Code = "54000"
	StatementTooComplex  Code = "54001"
	TooManyColumns       Code = "54011"
	TooManyArguments     Code = "54023"

	// Class 55 — Object Not In Prerequisite State
	ObjectNotInPrerequisiteState Code = "55000"
	ObjectInUse                  Code = "55006"
	CantChangeRuntimeParam       Code = "55P02"
	LockNotAvailable             Code = "55P03"
	UnsafeNewEnumValueUsage      Code = "55P04"

	// Class 57 — Operator Intervention
	OperatorIntervention Code = "57000"
	QueryCanceled        Code = "57014"
	AdminShutdown        Code = "57P01"
	CrashShutdown        Code = "57P02"
	CannotConnectNow     Code = "57P03"
	DatabaseDropped      Code = "57P04"
	IdleSessionTimeout   Code = "57P05"

	// Class 58 — System Error (errors external to PostgreSQL itself)
	SystemError   Code = "58000"
	IOError       Code = "58030"
	UndefinedFile Code = "58P01"
	DuplicateFile Code = "58P02"

	// Class 72 — Snapshot Failure
	SnapshotTooOld Code = "72000"

	// Class F0 — Configuration File Error
	ConfigFileError Code = "F0000"
	LockFileExists  Code = "F0001"

	// Class HV — Foreign Data Wrapper Error (SQL/MED)
	FDWError                             Code = "HV000"
	FDWColumnNameNotFound                Code = "HV005"
	FDWDynamicParameterValueNeeded       Code = "HV002"
	FDWFunctionSequenceError             Code = "HV010"
	FDWInconsistentDescriptorInformation Code = "HV021"
	FDWInvalidAttributeValue             Code = "HV024"
	FDWInvalidColumnName                 Code = "HV007"
	FDWInvalidColumnNumber               Code = "HV008"
	FDWInvalidDataType                   Code = "HV004"
	FDWInvalidDataTypeDescriptors        Code = "HV006"
	FDWInvalidDescriptorFieldIdentifier  Code = "HV091"
	FDWInvalidHandle                     Code = "HV00B"
	FDWInvalidOptionIndex                Code = "HV00C"
	FDWInvalidOptionName                 Code = "HV00D"
	FDWInvalidStringLengthOrBufferLength Code = "HV090"
	FDWInvalidStringFormat               Code = "HV00A"
	FDWInvalidUseOfNullPointer           Code = "HV009"
	FDWTooManyHandles                    Code = "HV014"
	FDWOutOfMemory                       Code = "HV001"
	FDWNoSchemas                         Code = "HV00P"
	FDWOptionNameNotFound                Code = "HV00J"
	FDWReplyHandle                       Code = "HV00K"
	FDWSchemaNotFound                    Code = "HV00Q"
	FDWTableNotFound                     Code = "HV00R"
	FDWUnableToCreateExecution           Code = "HV00L"
	FDWUnableToCreateReply               Code = "HV00M"
	FDWUnableToEstablishConnection       Code = "HV00N"

	// Class P0 — PL/pgSQL Error
	PLpgSQLError   Code = "P0000"
	RaiseException Code = "P0001"
	NoDataFound    Code = "P0002"
	TooManyRows    Code = "P0003"
	AssertFailure  Code = "P0004"

	// Class XX — Internal Error
	InternalError  Code = "XX000"
	DataCorrupted  Code = "XX001"
	IndexCorrupted Code = "XX002"
)

// PostgreSQL aliases: second published name for a code already defined above.
// The name table resolves these to the canonical (SQL-standard) name.
const (
	UndefinedPreparedStatement Code = "26000" // alias of InvalidSQLStatementName
	UndefinedCursor            Code = "34000" // alias of InvalidCursorName
	UndefinedDatabase          Code = "3D000" // alias of InvalidCatalogName
	UndefinedSchema            Code = "3F000" // alias of InvalidSchemaName
)

// codeNames maps every registered code to its canonical condition name.
var codeNames = map[Code]string{
	SuccessfulCompletion:                           "SuccessfulCompletion",
	Warning:                                        "Warning",
	DynamicResultSetsReturned:                      "DynamicResultSetsReturned",
	ImplicitZeroBitPadding:                         "ImplicitZeroBitPadding",
	NullValueEliminatedInSetFunction:               "NullValueEliminatedInSetFunction",
	PrivilegeNotGranted:                            "PrivilegeNotGranted",
	PrivilegeNotRevoked:                            "PrivilegeNotRevoked",
	StringDataRightTruncationWarning:               "StringDataRightTruncationWarning",
	DeprecatedFeature:                              "DeprecatedFeature",
	NoData:                                         "NoData",
	NoAdditionalDynamicResultSetsReturned:          "NoAdditionalDynamicResultSetsReturned",
	SQLStatementNotYetComplete:                     "SQLStatementNotYetComplete",
	ConnectionException:                            "ConnectionException",
	ConnectionDoesNotExist:                         "ConnectionDoesNotExist",
	ConnectionFailure:                              "ConnectionFailure",
	SQLClientUnableToEstablishSQLConnection:        "SQLClientUnableToEstablishSQLConnection",
	SQLServerRejectedEstablishmentOfSQLConnection:  "SQLServerRejectedEstablishmentOfSQLConnection",
	TransactionResolutionUnknown:                   "TransactionResolutionUnknown",
	ProtocolViolation:                              "ProtocolViolation",
	TriggeredActionException:                       "TriggeredActionException",
	FeatureNotSupported:                            "FeatureNotSupported",
	InvalidTransactionInitiation:                   "InvalidTransactionInitiation",
	LocatorException:                               "LocatorException",
	InvalidLocatorSpecification:                    "InvalidLocatorSpecification",
	InvalidGrantor:                                 "InvalidGrantor",
	InvalidGrantOperation:                          "InvalidGrantOperation",
	InvalidRoleSpecification:                       "InvalidRoleSpecification",
	DiagnosticsException:                           "DiagnosticsException",
	StackedDiagnosticsAccessedWithoutActiveHandler: "StackedDiagnosticsAccessedWithoutActiveHandler",
	CaseNotFound:                                   "CaseNotFound",
	CardinalityViolation:                           "CardinalityViolation",
	DataException:                                  "DataException",
	ArraySubscriptError:                            "ArraySubscriptError",
	CharacterNotInRepertoire:                       "CharacterNotInRepertoire",
	DatetimeFieldOverflow:                          "DatetimeFieldOverflow",
	DivisionByZero:                                 "DivisionByZero",
	ErrorInAssignment:                              "ErrorInAssignment",
	EscapeCharacterConflict:                        "EscapeCharacterConflict",
	IndicatorOverflow:                              "IndicatorOverflow",
	IntervalFieldOverflow:                          "IntervalFieldOverflow",
	InvalidArgumentForLogarithm:                    "InvalidArgumentForLogarithm",
	InvalidArgumentForNtileFunction:                "InvalidArgumentForNtileFunction",
	InvalidArgumentForNthValueFunction:             "InvalidArgumentForNthValueFunction",
	InvalidArgumentForPowerFunction:                "InvalidArgumentForPowerFunction",
	InvalidArgumentForWidthBucketFunction:          "InvalidArgumentForWidthBucketFunction",
	InvalidCharacterValueForCast:                   "InvalidCharacterValueForCast",
	InvalidDatetimeFormat:                          "InvalidDatetimeFormat",
	InvalidEscapeCharacter:                         "InvalidEscapeCharacter",
	InvalidEscapeOctet:                             "InvalidEscapeOctet",
	InvalidEscapeSequence:                          "InvalidEscapeSequence",
	NonstandardUseOfEscapeCharacter:                "NonstandardUseOfEscapeCharacter",
	InvalidIndicatorParameterValue:                 "InvalidIndicatorParameterValue",
	InvalidParameterValue:                          "InvalidParameterValue",
	InvalidPrecedingOrFollowingSize:                "InvalidPrecedingOrFollowingSize",
	InvalidRegularExpression:                       "InvalidRegularExpression",
	InvalidRowCountInLimitClause:                   "InvalidRowCountInLimitClause",
	InvalidRowCountInResultOffsetClause:            "InvalidRowCountInResultOffsetClause",
	InvalidTablesampleArgument:                     "InvalidTablesampleArgument",
	InvalidTablesampleRepeat:                       "InvalidTablesampleRepeat",
	InvalidTimeZoneDisplacementValue:               "InvalidTimeZoneDisplacementValue",
	InvalidUseOfEscapeCharacter:                    "InvalidUseOfEscapeCharacter",
	MostSpecificTypeMismatch:                       "MostSpecificTypeMismatch",
	NullValueNotAllowed:                            "NullValueNotAllowed",
	NullValueNoIndicatorParameter:                  "NullValueNoIndicatorParameter",
	NumericValueOutOfRange:                         "NumericValueOutOfRange",
	SequenceGeneratorLimitExceeded:                 "SequenceGeneratorLimitExceeded",
	StringDataLengthMismatch:                       "StringDataLengthMismatch",
	StringDataRightTruncation:                      "StringDataRightTruncation",
	SubstringError:                                 "SubstringError",
	TrimError:                                      "TrimError",
	UnterminatedCString:                            "UnterminatedCString",
	ZeroLengthCharacterString:                      "ZeroLengthCharacterString",
	FloatingPointException:                         "FloatingPointException",
	InvalidTextRepresentation:                      "InvalidTextRepresentation",
	InvalidBinaryRepresentation:                    "InvalidBinaryRepresentation",
	BadCopyFileFormat:                              "BadCopyFileFormat",
	UntranslatableCharacter:                        "UntranslatableCharacter",
	NotAnXMLDocument:                               "NotAnXMLDocument",
	InvalidXMLDocument:                             "InvalidXMLDocument",
	InvalidXMLContent:                              "InvalidXMLContent",
	InvalidXMLComment:                              "InvalidXMLComment",
	InvalidXMLProcessingInstruction:                "InvalidXMLProcessingInstruction",
	DuplicateJSONObjectKeyValue:                    "DuplicateJSONObjectKeyValue",
	InvalidArgumentForSQLJSONDatetimeFunction:      "InvalidArgumentForSQLJSONDatetimeFunction",
	InvalidJSONText:                                "InvalidJSONText",
	InvalidSQLJSONSubscript:                        "InvalidSQLJSONSubscript",
	MoreThanOneSQLJSONItem:                         "MoreThanOneSQLJSONItem",
	NoSQLJSONItem:                                  "NoSQLJSONItem",
	NonNumericSQLJSONItem:                          "NonNumericSQLJSONItem",
	NonUniqueKeysInAJSONObject:                     "NonUniqueKeysInAJSONObject",
	SingletonSQLJSONItemRequired:                   "SingletonSQLJSONItemRequired",
	SQLJSONArrayNotFound:                           "SQLJSONArrayNotFound",
	SQLJSONMemberNotFound:                          "SQLJSONMemberNotFound",
	SQLJSONNumberNotFound:                          "SQLJSONNumberNotFound",
	SQLJSONObjectNotFound:                          "SQLJSONObjectNotFound",
	TooManyJSONArrayElements:                       "TooManyJSONArrayElements",
	TooManyJSONObjectMembers:                       "TooManyJSONObjectMembers",
	SQLJSONScalarRequired:                          "SQLJSONScalarRequired",
	SQLJSONItemCannotBeCastToTargetType:            "SQLJSONItemCannotBeCastToTargetType",
	IntegrityConstraintViolation:                   "IntegrityConstraintViolation",
	RestrictViolation:                              "RestrictViolation",
	NotNullViolation:                               "NotNullViolation",
	ForeignKeyViolation:                            "ForeignKeyViolation",
	UniqueViolation:                                "UniqueViolation",
	CheckViolation:                                 "CheckViolation",
	ExclusionViolation:                             "ExclusionViolation",
	InvalidCursorState:                             "InvalidCursorState",
	InvalidTransactionState:                        "InvalidTransactionState",
	ActiveSQLTransaction:                           "ActiveSQLTransaction",
	BranchTransactionAlreadyActive:                 "BranchTransactionAlreadyActive",
	HeldCursorRequiresSameIsolationLevel:           "HeldCursorRequiresSameIsolationLevel",
	InappropriateAccessModeForBranchTransaction:    "InappropriateAccessModeForBranchTransaction",
	InappropriateIsolationLevelForBranchTransaction: "InappropriateIsolationLevelForBranchTransaction",
	NoActiveSQLTransactionForBranchTransaction:      "NoActiveSQLTransactionForBranchTransaction",
	ReadOnlySQLTransaction:                          "ReadOnlySQLTransaction",
	SchemaAndDataStatementMixingNotSupported:        "SchemaAndDataStatementMixingNotSupported",
	NoActiveSQLTransaction:                          "NoActiveSQLTransaction",
	InFailedSQLTransaction:                          "InFailedSQLTransaction",
	IdleInTransactionSessionTimeout:                 "IdleInTransactionSessionTimeout",
	TransactionTimeout:                              "TransactionTimeout",
	InvalidSQLStatementName:                         "InvalidSQLStatementName",
	TriggeredDataChangeViolation:                    "TriggeredDataChangeViolation",
	InvalidAuthorizationSpecification:               "InvalidAuthorizationSpecification",
	InvalidPassword:                                 "InvalidPassword",
	DependentPrivilegeDescriptorsStillExist:         "DependentPrivilegeDescriptorsStillExist",
	DependentObjectsStillExist:                      "DependentObjectsStillExist",
	InvalidTransactionTermination:                   "InvalidTransactionTermination",
	SQLRoutineException:                             "SQLRoutineException",
	FunctionExecutedNoReturnStatement:               "FunctionExecutedNoReturnStatement",
	ModifyingSQLDataNotPermitted:                    "ModifyingSQLDataNotPermitted",
	ProhibitedSQLStatementAttempted:                 "ProhibitedSQLStatementAttempted",
	ReadingSQLDataNotPermitted:                      "ReadingSQLDataNotPermitted",
	InvalidCursorName:                               "InvalidCursorName",
	ExternalRoutineException:                        "ExternalRoutineException",
	ContainingSQLNotPermitted:                       "ContainingSQLNotPermitted",
	ExternalRoutineModifyingSQLDataNotPermitted:     "ExternalRoutineModifyingSQLDataNotPermitted",
	ExternalRoutineProhibitedSQLStatementAttempted:  "ExternalRoutineProhibitedSQLStatementAttempted",
	ExternalRoutineReadingSQLDataNotPermitted:       "ExternalRoutineReadingSQLDataNotPermitted",
	ExternalRoutineInvocationException:              "ExternalRoutineInvocationException",
	InvalidSQLStateReturned:                         "InvalidSQLStateReturned",
	ExternalRoutineNullValueNotAllowed:              "ExternalRoutineNullValueNotAllowed",
	TriggerProtocolViolated:                         "TriggerProtocolViolated",
	SRFProtocolViolated:                             "SRFProtocolViolated",
	EventTriggerProtocolViolated:                    "EventTriggerProtocolViolated",
	SavepointException:                              "SavepointException",
	InvalidSavepointSpecification:                   "InvalidSavepointSpecification",
	InvalidCatalogName:                              "InvalidCatalogName",
	InvalidSchemaName:                               "InvalidSchemaName",
	TransactionRollback:                             "TransactionRollback",
	TransactionIntegrityConstraintViolation:         "TransactionIntegrityConstraintViolation",
	SerializationFailure:                            "SerializationFailure",
	StatementCompletionUnknown:                      "StatementCompletionUnknown",
	DeadlockDetected:                                "DeadlockDetected",
	SyntaxErrorOrAccessRuleViolation:                "SyntaxErrorOrAccessRuleViolation",
	SyntaxError:                                     "SyntaxError",
	InsufficientPrivilege:                           "InsufficientPrivilege",
	CannotCoerce:                                    "CannotCoerce",
	GroupingError:                                   "GroupingError",
	WindowingError:                                  "WindowingError",
	InvalidRecursion:                                "InvalidRecursion",
	InvalidForeignKey:                               "InvalidForeignKey",
	InvalidName:                                     "InvalidName",
	NameTooLong:                                     "NameTooLong",
	ReservedName:                                    "ReservedName",
	DatatypeMismatch:                                "DatatypeMismatch",
	IndeterminateDatatype:                           "IndeterminateDatatype",
	CollationMismatch:                               "CollationMismatch",
	IndeterminateCollation:                          "IndeterminateCollation",
	WrongObjectType:                                 "WrongObjectType",
	GeneratedAlways:                                 "GeneratedAlways",
	UndefinedColumn:                                 "UndefinedColumn",
	UndefinedFunction:                               "UndefinedFunction",
	UndefinedTable:                                  "UndefinedTable",
	UndefinedParameter:                              "UndefinedParameter",
	UndefinedObject:                                 "UndefinedObject",
	DuplicateColumn:                                 "DuplicateColumn",
	DuplicateCursor:                                 "DuplicateCursor",
	DuplicateDatabase:                               "DuplicateDatabase",
	DuplicateFunction:                               "DuplicateFunction",
	DuplicatePreparedStatement:                      "DuplicatePreparedStatement",
	DuplicateSchema:                                 "DuplicateSchema",
	DuplicateTable:                                  "DuplicateTable",
	DuplicateAlias:                                  "DuplicateAlias",
	DuplicateObject:                                 "DuplicateObject",
	AmbiguousColumn:                                 "AmbiguousColumn",
	AmbiguousFunction:                               "AmbiguousFunction",
	AmbiguousParameter:                              "AmbiguousParameter",
	AmbiguousAlias:                                  "AmbiguousAlias",
	InvalidColumnReference:                          "InvalidColumnReference",
	InvalidColumnDefinition:                         "InvalidColumnDefinition",
	InvalidCursorDefinition:                         "InvalidCursorDefinition",
	InvalidDatabaseDefinition:                       "InvalidDatabaseDefinition",
	InvalidFunctionDefinition:                       "InvalidFunctionDefinition",
	InvalidPreparedStatementDefinition:              "InvalidPreparedStatementDefinition",
	InvalidSchemaDefinition:                         "InvalidSchemaDefinition",
	InvalidTableDefinition:                          "InvalidTableDefinition",
	InvalidObjectDefinition:                         "InvalidObjectDefinition",
	WithCheckOptionViolation:                        "WithCheckOptionViolation",
	InsufficientResources:                           "InsufficientResources",
	DiskFull:                                        "DiskFull",
	OutOfMemory:                                     "OutOfMemory",
	TooManyConnections:                              "TooManyConnections",
	ConfigurationLimitExceeded:                      "ConfigurationLimitExceeded",
	ProgramLimitExceeded:                            "ProgramLimitExceeded",
	StatementTooComplex:                             "StatementTooComplex",
	TooManyColumns:                                  "TooManyColumns",
	TooManyArguments:                                "TooManyArguments",
	ObjectNotInPrerequisiteState:                    "ObjectNotInPrerequisiteState",
	ObjectInUse:                                     "ObjectInUse",
	CantChangeRuntimeParam:                          "CantChangeRuntimeParam",
	LockNotAvailable:                                "LockNotAvailable",
	UnsafeNewEnumValueUsage:                         "UnsafeNewEnumValueUsage",
	OperatorIntervention:                            "OperatorIntervention",
	QueryCanceled:                                   "QueryCanceled",
	AdminShutdown:                                   "AdminShutdown",
	CrashShutdown:                                   "CrashShutdown",
	CannotConnectNow:                                "CannotConnectNow",
	DatabaseDropped:                                 "DatabaseDropped",
	IdleSessionTimeout:                              "IdleSessionTimeout",
	SystemError:                                     "SystemError",
	IOError:                                         "IOError",
	UndefinedFile:                                   "UndefinedFile",
	DuplicateFile:                                   "DuplicateFile",
	SnapshotTooOld:                                  "SnapshotTooOld",
	ConfigFileError:                                 "ConfigFileError",
	LockFileExists:                                  "LockFileExists",
	FDWError:                                        "FDWError",
	FDWColumnNameNotFound:                           "FDWColumnNameNotFound",
	FDWDynamicParameterValueNeeded:                  "FDWDynamicParameterValueNeeded",
	FDWFunctionSequenceError:                        "FDWFunctionSequenceError",
	FDWInconsistentDescriptorInformation:            "FDWInconsistentDescriptorInformation",
	FDWInvalidAttributeValue:                        "FDWInvalidAttributeValue",
	FDWInvalidColumnName:                            "FDWInvalidColumnName",
	FDWInvalidColumnNumber:                          "FDWInvalidColumnNumber",
	FDWInvalidDataType:                              "FDWInvalidDataType",
	FDWInvalidDataTypeDescriptors:                   "FDWInvalidDataTypeDescriptors",
	FDWInvalidDescriptorFieldIdentifier:             "FDWInvalidDescriptorFieldIdentifier",
	FDWInvalidHandle:                                "FDWInvalidHandle",
	FDWInvalidOptionIndex:                           "FDWInvalidOptionIndex",
	FDWInvalidOptionName:                            "FDWInvalidOptionName",
	FDWInvalidStringLengthOrBufferLength:            "FDWInvalidStringLengthOrBufferLength",
	FDWInvalidStringFormat:                          "FDWInvalidStringFormat",
	FDWInvalidUseOfNullPointer:                      "FDWInvalidUseOfNullPointer",
	FDWTooManyHandles:                               "FDWTooManyHandles",
	FDWOutOfMemory:                                  "FDWOutOfMemory",
	FDWNoSchemas:                                    "FDWNoSchemas",
	FDWOptionNameNotFound:                           "FDWOptionNameNotFound",
	FDWReplyHandle:                                  "FDWReplyHandle",
	FDWSchemaNotFound:                               "FDWSchemaNotFound",
	FDWTableNotFound:                                "FDWTableNotFound",
	FDWUnableToCreateExecution:                      "FDWUnableToCreateExecution",
	FDWUnableToCreateReply:                          "FDWUnableToCreateReply",
	FDWUnableToEstablishConnection:                  "FDWUnableToEstablishConnection",
	PLpgSQLError:                                    "PLpgSQLError",
	RaiseException:                                  "RaiseException",
	NoDataFound:                                     "NoDataFound",
	TooManyRows:                                     "TooManyRows",
	AssertFailure:                                   "AssertFailure",
	InternalError:                                   "InternalError",
	DataCorrupted:                                   "DataCorrupted",
	IndexCorrupted:                                  "IndexCorrupted",
}
